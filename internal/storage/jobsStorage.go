package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/landed-cost/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	jobColumns = `id, client_id, status, payload, result, cancel_requested, attempts, created_at, updated_at, expires_at`

	InsertJob = `INSERT INTO CALCULATION_JOBS (id, client_id, status, payload, attempts, created_at, updated_at)
				 VALUES ($1, $2, $3, $4, 0, $5, $5);`
	GetJob    = `SELECT ` + jobColumns + ` FROM CALCULATION_JOBS WHERE id=$1;`
	ClaimJobs = `UPDATE CALCULATION_JOBS
				 SET status = 'FETCHING',
				     attempts = attempts + 1,
				     updated_at = NOW()
				 WHERE id IN (
				     SELECT id FROM CALCULATION_JOBS
				     WHERE status = 'QUEUED' AND NOT cancel_requested
				     ORDER BY created_at
				     LIMIT $1
				     FOR UPDATE SKIP LOCKED
				 )
				 RETURNING ` + jobColumns + `;`
	TransitionJob = `UPDATE CALCULATION_JOBS
					 SET status = $3, updated_at = NOW()
					 WHERE id = $1 AND status = $2 AND NOT cancel_requested
					 RETURNING id;`
	FinishJob = `UPDATE CALCULATION_JOBS
				 SET status = $3, result = $4, expires_at = $5, updated_at = NOW()
				 WHERE id = $1 AND status = $2 AND (NOT cancel_requested OR $6)
				 RETURNING id;`
	CancelQueuedJob = `UPDATE CALCULATION_JOBS
					   SET status = 'FAILED', cancel_requested = TRUE, result = $2, expires_at = $3, updated_at = NOW()
					   WHERE id = $1 AND status = 'QUEUED'
					   RETURNING ` + jobColumns + `;`
	RequestCancelJob = `UPDATE CALCULATION_JOBS
						SET cancel_requested = TRUE, updated_at = NOW()
						WHERE id = $1 AND status NOT IN ('QUEUED', 'DONE', 'FAILED')
						RETURNING ` + jobColumns + `;`
	FailStaleJobs = `UPDATE CALCULATION_JOBS
					 SET status = 'FAILED', result = $2, expires_at = $3, updated_at = NOW()
					 WHERE status NOT IN ('QUEUED', 'DONE', 'FAILED') AND updated_at < $1;`
	PurgeExpiredJobs = `DELETE FROM CALCULATION_JOBS
						WHERE status IN ('DONE', 'FAILED') AND expires_at IS NOT NULL AND expires_at < $1;`
)

type JobDatabase struct {
	DB *Database
}

// Создание хранилища задач в PostgreSQL
func NewJobsStorage(db *Database) JobsStorage {
	return &JobDatabase{DB: db}
}

func scanJob(row pgx.Row) (*models.CalculationJob, error) {
	var (
		job     models.CalculationJob
		status  string
		payload []byte
		result  []byte
	)
	err := row.Scan(
		&job.ID,
		&job.ClientID,
		&status,
		&payload,
		&result,
		&job.CancelRequested,
		&job.Attempts,
		&job.CreatedAt,
		&job.UpdatedAt,
		&job.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}
	job.Status = models.JobStatus(status)
	if err := json.Unmarshal(payload, &job.Payload); err != nil {
		return nil, fmt.Errorf("failed to decode job payload: %w", err)
	}
	if len(result) > 0 {
		job.Result = &models.JobResult{}
		if err := json.Unmarshal(result, job.Result); err != nil {
			return nil, fmt.Errorf("failed to decode job result: %w", err)
		}
	}
	return &job, nil
}

func (s *JobDatabase) AddJob(ctx context.Context, job models.CalculationJob) error {
	payload, err := json.Marshal(job.Payload)
	if err != nil {
		return fmt.Errorf("failed to encode job payload: %w", err)
	}
	_, err = s.DB.Pool.Exec(ctx, InsertJob, job.ID, job.ClientID, string(models.StatusQueued), payload, job.CreatedAt)
	if err == nil {
		return nil
	}
	// Проверяем именно нарушение уникальности
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrAlreadyExists
	}
	return fmt.Errorf("failed to add job: %w", err)
}

func (s *JobDatabase) GetJob(ctx context.Context, id string) (*models.CalculationJob, error) {
	job, err := scanJob(s.DB.Pool.QueryRow(ctx, GetJob, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

func (s *JobDatabase) ClaimJobs(ctx context.Context, count int) ([]models.CalculationJob, error) {
	rows, err := s.DB.Pool.Query(ctx, ClaimJobs, count)
	if err != nil {
		return nil, fmt.Errorf("failed to claim jobs: %w", err)
	}
	defer rows.Close()

	var jobs []models.CalculationJob
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return jobs, fmt.Errorf("failed scan claimed job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

// conflict - причина, по которой compare-and-set не обновил строку
func (s *JobDatabase) conflict(ctx context.Context, id string) error {
	job, err := s.GetJob(ctx, id)
	if err != nil {
		return err
	}
	if job.Status.IsTerminal() {
		return ErrJobFinished
	}
	if job.CancelRequested {
		return ErrCancelRequested
	}
	return ErrStaleStatus
}

func (s *JobDatabase) TransitionStatus(ctx context.Context, id string, from models.JobStatus, to models.JobStatus) error {
	if err := checkTransition(from, to); err != nil {
		return err
	}
	var updated string
	err := s.DB.Pool.QueryRow(ctx, TransitionJob, id, string(from), string(to)).Scan(&updated)
	if errors.Is(err, pgx.ErrNoRows) {
		return s.conflict(ctx, id)
	}
	if err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}
	return nil
}

func (s *JobDatabase) FinishJob(ctx context.Context, id string, from models.JobStatus, to models.JobStatus, result models.JobResult, expiresAt time.Time) error {
	if err := checkFinish(from, to); err != nil {
		return err
	}
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode job result: %w", err)
	}
	var updated string
	// отмена не мешает завершить задачу со статусом FAILED
	err = s.DB.Pool.QueryRow(ctx, FinishJob, id, string(from), string(to), data, expiresAt, to == models.StatusFailed).Scan(&updated)
	if errors.Is(err, pgx.ErrNoRows) {
		return s.conflict(ctx, id)
	}
	if err != nil {
		return fmt.Errorf("failed to finish job: %w", err)
	}
	return nil
}

func (s *JobDatabase) CancelJob(ctx context.Context, id string, result models.JobResult, expiresAt time.Time) (*models.CalculationJob, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode job result: %w", err)
	}
	job, err := scanJob(s.DB.Pool.QueryRow(ctx, CancelQueuedJob, id, data, expiresAt))
	if err == nil {
		return job, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to cancel job: %w", err)
	}
	job, err = scanJob(s.DB.Pool.QueryRow(ctx, RequestCancelJob, id))
	if err == nil {
		return job, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to request job cancel: %w", err)
	}
	return nil, s.conflict(ctx, id)
}

func (s *JobDatabase) FailStale(ctx context.Context, staleBefore time.Time, result models.JobResult, expiresAt time.Time) (int64, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return 0, fmt.Errorf("failed to encode job result: %w", err)
	}
	tag, err := s.DB.Pool.Exec(ctx, FailStaleJobs, staleBefore, data, expiresAt)
	if err != nil {
		return 0, fmt.Errorf("failed to fail stale jobs: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (s *JobDatabase) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := s.DB.Pool.Exec(ctx, PurgeExpiredJobs, now)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired jobs: %w", err)
	}
	return tag.RowsAffected(), nil
}
