package storage

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/landed-cost/internal/models"
)

//go:generate mockgen -source=storage.go -destination=mocks/storage_mock.go -package=mocks

// JobsStorage - очередь и хранилище задач расчёта.
// Все смены статуса выполняются как compare-and-set по текущему статусу.
type JobsStorage interface {
	AddJob(ctx context.Context, job models.CalculationJob) error
	GetJob(ctx context.Context, id string) (*models.CalculationJob, error)
	ClaimJobs(ctx context.Context, count int) ([]models.CalculationJob, error)
	TransitionStatus(ctx context.Context, id string, from models.JobStatus, to models.JobStatus) error
	FinishJob(ctx context.Context, id string, from models.JobStatus, to models.JobStatus, result models.JobResult, expiresAt time.Time) error
	CancelJob(ctx context.Context, id string, result models.JobResult, expiresAt time.Time) (*models.CalculationJob, error)
	FailStale(ctx context.Context, staleBefore time.Time, result models.JobResult, expiresAt time.Time) (int64, error)
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrStaleStatus       = errors.New("job status changed concurrently")
	ErrCancelRequested   = errors.New("job cancel requested")
	ErrInvalidTransition = errors.New("invalid job status transition")
	ErrJobFinished       = errors.New("job already finished")
)

func checkTransition(from, to models.JobStatus) error {
	if !from.CanTransition(to) {
		return ErrInvalidTransition
	}
	return nil
}

func checkFinish(from, to models.JobStatus) error {
	if !to.IsTerminal() {
		return ErrInvalidTransition
	}
	return checkTransition(from, to)
}
