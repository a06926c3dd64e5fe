package storage

import (
	"context"
	"sync"
	"time"

	"github.com/denmor86/landed-cost/internal/models"
)

// MemoryStorage - хранилище задач в памяти процесса с тем же контрактом, что и PostgreSQL
type MemoryStorage struct {
	mu    sync.Mutex
	jobs  map[string]*models.CalculationJob
	order []string
	now   func() time.Time
}

// NewMemoryStorage - хранилище в памяти, используется без DATABASE_DSN и в тестах
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{jobs: make(map[string]*models.CalculationJob), now: time.Now}
}

// WithClock - подмена часов для тестов
func (s *MemoryStorage) WithClock(now func() time.Time) *MemoryStorage {
	s.now = now
	return s
}

func cloneJob(job *models.CalculationJob) *models.CalculationJob {
	c := *job
	if job.Result != nil {
		r := *job.Result
		c.Result = &r
	}
	if job.ExpiresAt != nil {
		e := *job.ExpiresAt
		c.ExpiresAt = &e
	}
	return &c
}

func (s *MemoryStorage) AddJob(ctx context.Context, job models.CalculationJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.jobs[job.ID]; ok {
		return ErrAlreadyExists
	}
	job.Status = models.StatusQueued
	job.UpdatedAt = job.CreatedAt
	s.jobs[job.ID] = cloneJob(&job)
	s.order = append(s.order, job.ID)
	return nil
}

func (s *MemoryStorage) GetJob(ctx context.Context, id string) (*models.CalculationJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return nil, ErrJobNotFound
	}
	return cloneJob(job), nil
}

func (s *MemoryStorage) ClaimJobs(ctx context.Context, count int) ([]models.CalculationJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var claimed []models.CalculationJob
	for _, id := range s.order {
		if len(claimed) >= count {
			break
		}
		job := s.jobs[id]
		if job == nil || job.Status != models.StatusQueued || job.CancelRequested {
			continue
		}
		job.Status = models.StatusFetching
		job.Attempts++
		job.UpdatedAt = s.now()
		claimed = append(claimed, *cloneJob(job))
	}
	return claimed, nil
}

// conflict - причина несработавшего compare-and-set, вызывается под блокировкой
func (s *MemoryStorage) conflict(job *models.CalculationJob) error {
	if job.Status.IsTerminal() {
		return ErrJobFinished
	}
	if job.CancelRequested {
		return ErrCancelRequested
	}
	return ErrStaleStatus
}

func (s *MemoryStorage) TransitionStatus(ctx context.Context, id string, from models.JobStatus, to models.JobStatus) error {
	if err := checkTransition(from, to); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return ErrJobNotFound
	}
	if job.Status != from || job.CancelRequested {
		return s.conflict(job)
	}
	job.Status = to
	job.UpdatedAt = s.now()
	return nil
}

func (s *MemoryStorage) FinishJob(ctx context.Context, id string, from models.JobStatus, to models.JobStatus, result models.JobResult, expiresAt time.Time) error {
	if err := checkFinish(from, to); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return ErrJobNotFound
	}
	if job.Status != from || (job.CancelRequested && to != models.StatusFailed) {
		return s.conflict(job)
	}
	job.Status = to
	job.Result = &result
	job.ExpiresAt = &expiresAt
	job.UpdatedAt = s.now()
	return nil
}

func (s *MemoryStorage) CancelJob(ctx context.Context, id string, result models.JobResult, expiresAt time.Time) (*models.CalculationJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return nil, ErrJobNotFound
	}
	switch {
	case job.Status.IsTerminal():
		return nil, ErrJobFinished
	case job.Status == models.StatusQueued:
		job.Status = models.StatusFailed
		job.Result = &result
		job.ExpiresAt = &expiresAt
	}
	job.CancelRequested = true
	job.UpdatedAt = s.now()
	return cloneJob(job), nil
}

func (s *MemoryStorage) FailStale(ctx context.Context, staleBefore time.Time, result models.JobResult, expiresAt time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, job := range s.jobs {
		if job.Status == models.StatusQueued || job.Status.IsTerminal() || !job.UpdatedAt.Before(staleBefore) {
			continue
		}
		r := result
		e := expiresAt
		job.Status = models.StatusFailed
		job.Result = &r
		job.ExpiresAt = &e
		job.UpdatedAt = s.now()
		n++
	}
	return n, nil
}

func (s *MemoryStorage) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	order := s.order[:0]
	for _, id := range s.order {
		job := s.jobs[id]
		if job.Status.IsTerminal() && job.ExpiresAt != nil && job.ExpiresAt.Before(now) {
			delete(s.jobs, id)
			n++
			continue
		}
		order = append(order, id)
	}
	s.order = order
	return n, nil
}
