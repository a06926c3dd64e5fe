package worker

import (
	"context"
	"sync"
	"time"

	"github.com/denmor86/landed-cost/internal/logger"
	"github.com/denmor86/landed-cost/internal/models"
	"github.com/denmor86/landed-cost/internal/services"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=worker.go -destination=mocks/worker_mock.go -package=mocks

// Processor - доводит захваченную задачу до конечного статуса
type Processor interface {
	Process(ctx context.Context, job models.CalculationJob) error
}

// JobWorker - основной воркер для обработки задач расчёта
type JobWorker struct {
	Jobs             services.JobsService
	Processor        Processor
	WaitGroup        sync.WaitGroup
	QuitChan         chan struct{}
	Concurrency      int
	BatchSize        int
	PollInterval     time.Duration
	MaintainInterval time.Duration
}

// NewJobWorker - конструктор обработчика очереди расчётов
func NewJobWorker(jobs services.JobsService, processor Processor, concurrency int, batchSize int, pollInterval time.Duration) *JobWorker {
	if concurrency <= 0 {
		concurrency = 1
	}
	if batchSize <= 0 {
		batchSize = concurrency
	}
	return &JobWorker{
		Jobs:             jobs,
		Processor:        processor,
		QuitChan:         make(chan struct{}),
		Concurrency:      concurrency,
		BatchSize:        batchSize,
		PollInterval:     pollInterval,
		MaintainInterval: time.Minute,
	}
}

// Start - запускает воркер в фоне
func (w *JobWorker) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер, задачи текущей пачки дорабатываются
func (w *JobWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - основная рабочая логика
func (w *JobWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()
	maintain := time.NewTicker(w.MaintainInterval)
	defer maintain.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("JobWorker signal stop")
			return
		case <-ctx.Done():
			logger.Info("JobWorker context done")
			return
		case <-maintain.C:
			if err := w.Jobs.Maintain(ctx); err != nil {
				logger.Error("Error jobs maintenance", "error", err)
			}
		case <-ticker.C:
			w.ProcessJobs(ctx)
		}
	}
}

// ProcessJobs - захват и обработка пачки задач, не более Concurrency одновременно.
// Возвращает количество захваченных задач.
func (w *JobWorker) ProcessJobs(ctx context.Context) int {
	jobs, err := w.Jobs.ClaimJobs(ctx, w.BatchSize)
	if err != nil {
		logger.Error("Error claim jobs for processing", "error", err)
		return 0
	}

	var g errgroup.Group
	g.SetLimit(w.Concurrency)
	for _, job := range jobs {
		job := job
		g.Go(func() error {
			if err := w.Processor.Process(ctx, job); err != nil {
				logger.Error("Error job processing", "job_id", job.ID, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()
	return len(jobs)
}
