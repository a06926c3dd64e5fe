package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/landed-cost/internal/logger"
	"github.com/denmor86/landed-cost/internal/models"
	"github.com/denmor86/landed-cost/internal/storage"
	"github.com/google/uuid"
)

//go:generate mockgen -source=jobs.go -destination=mocks/jobs_mock.go -package=mocks

type JobsService interface {
	Enqueue(ctx context.Context, clientID string, req models.CalculationRequest) (*models.CalculationJob, bool, error)
	GetJob(ctx context.Context, clientID string, id string) (*models.CalculationJob, error)
	Cancel(ctx context.Context, clientID string, id string) (*models.CalculationJob, error)
	ClaimJobs(ctx context.Context, count int) ([]models.CalculationJob, error)
	Maintain(ctx context.Context) error
}

type Jobs struct {
	Storage    storage.JobsStorage
	ResultTTL  time.Duration
	StaleAfter time.Duration
	Now        func() time.Time
}

func NewJobs(jobs storage.JobsStorage, resultTTL time.Duration, staleAfter time.Duration) JobsService {
	return &Jobs{Storage: jobs, ResultTTL: resultTTL, StaleAfter: staleAfter, Now: time.Now}
}

// Enqueue - ставит задачу в очередь. Повторная отправка job_id возвращает сохранённую задачу
// без нового запуска (created=false).
func (s *Jobs) Enqueue(ctx context.Context, clientID string, req models.CalculationRequest) (*models.CalculationJob, bool, error) {
	id := req.JobID
	if id == "" {
		id = uuid.NewString()
	}
	job := models.CalculationJob{
		ID:        id,
		ClientID:  clientID,
		Status:    models.StatusQueued,
		Payload:   req.Payload(),
		CreatedAt: s.Now().UTC(),
	}
	err := s.Storage.AddJob(ctx, job)
	if errors.Is(err, storage.ErrAlreadyExists) {
		existing, err := s.GetJob(ctx, clientID, id)
		if errors.Is(err, storage.ErrJobNotFound) {
			// job_id занят задачей другого клиента
			return nil, false, storage.ErrAlreadyExists
		}
		if err != nil {
			return nil, false, err
		}
		logger.Info("Job resubmitted", "job_id", id, "status", existing.Status)
		return existing, false, nil
	}
	if err != nil {
		logger.Error("Failed to enqueue job", "job_id", id, "error", err)
		return nil, false, err
	}
	logger.Info("Job queued", "job_id", id, "client_id", clientID, "path", job.Payload.Path)
	job.UpdatedAt = job.CreatedAt
	return &job, true, nil
}

// GetJob - задача клиента, чужие задачи не видны
func (s *Jobs) GetJob(ctx context.Context, clientID string, id string) (*models.CalculationJob, error) {
	job, err := s.Storage.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	if job.ClientID != clientID {
		return nil, storage.ErrJobNotFound
	}
	return job, nil
}

// Cancel - QUEUED сразу становится FAILED, захваченная задача отменяется на следующем переходе
func (s *Jobs) Cancel(ctx context.Context, clientID string, id string) (*models.CalculationJob, error) {
	if _, err := s.GetJob(ctx, clientID, id); err != nil {
		return nil, err
	}
	result := models.OutcomeResult(models.NewCalcError(models.KindCancelled, "", "cancelled by client"))
	job, err := s.Storage.CancelJob(ctx, id, result, s.Now().Add(s.ResultTTL))
	if err != nil {
		return nil, err
	}
	logger.Info("Job cancel requested", "job_id", id, "status", job.Status)
	return job, nil
}

func (s *Jobs) ClaimJobs(ctx context.Context, count int) ([]models.CalculationJob, error) {
	jobs, err := s.Storage.ClaimJobs(ctx, count)
	if err != nil {
		return nil, fmt.Errorf("failed to claim jobs: %w", err)
	}
	return jobs, nil
}

// Maintain - удаляет истёкшие результаты и переводит зависшие задачи в FAILED с возможностью повтора
func (s *Jobs) Maintain(ctx context.Context) error {
	now := s.Now()
	if s.StaleAfter > 0 {
		result := models.OutcomeResult(models.NewCalcError(models.KindUpstreamUnavailable, "", "worker stopped responding"))
		failed, err := s.Storage.FailStale(ctx, now.Add(-s.StaleAfter), result, now.Add(s.ResultTTL))
		if err != nil {
			return err
		}
		if failed > 0 {
			logger.Warn("Stale jobs failed", "count", failed)
		}
	}
	purged, err := s.Storage.PurgeExpired(ctx, now)
	if err != nil {
		return err
	}
	if purged > 0 {
		logger.Info("Expired jobs purged", "count", purged)
	}
	return nil
}
