package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skillhub-backend-go/internal/db"
	"skillhub-backend-go/internal/models"
)

// ErrJobNotFound is returned when a job lookup misses.
var ErrJobNotFound = errors.New("job not found")

// ErrJobNotOpen is returned when a completion targets a job that has already
// been completed. The transition is one-way and never re-credits earnings.
var ErrJobNotOpen = errors.New("job is not open")

// jobService implements the JobService interface.
type jobService struct {
	jobRepo db.JobRepository
	ledger  LedgerService
}

// NewJobService creates a new JobService instance.
func NewJobService(jobRepo db.JobRepository, ledger LedgerService) JobService {
	return &jobService{
		jobRepo: jobRepo,
		ledger:  ledger,
	}
}

// ListJobs returns every job, newest first.
func (s *jobService) ListJobs(ctx context.Context) ([]*models.Job, error) {
	jobs, err := s.jobRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// CreateJob posts a new gig in the open state. A missing or non-positive
// price falls back to the platform default.
func (s *jobService) CreateJob(ctx context.Context, sess Session, req models.CreateJobRequest) (*models.Job, error) {
	if _, _, err := s.ledger.EnsureProfile(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to ensure poster profile: %w", err)
	}

	price := req.Price
	if price <= 0 {
		price = models.DefaultJobPrice
	}

	job := &models.Job{
		Title:     req.Title,
		Desc:      req.Desc,
		Price:     price,
		PosterUID: sess.UID,
		Status:    models.JobStatusOpen,
	}
	if _, err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

// CompleteJob transitions the job to completed exactly once and credits the
// completer's earnings by the job's price (or the default when unset). A job
// that is no longer open fails with ErrJobNotOpen and nothing is credited.
func (s *jobService) CompleteJob(ctx context.Context, sess Session, jobID string) (*JobCompletionResult, error) {
	if _, _, err := s.ledger.EnsureProfile(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to ensure completer profile: %w", err)
	}

	job, err := s.jobRepo.CompleteIfOpen(ctx, jobID, sess.UID, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, db.ErrNotFound):
			return nil, fmt.Errorf("%w: id '%s'", ErrJobNotFound, jobID)
		case errors.Is(err, db.ErrJobNotOpen):
			return nil, fmt.Errorf("%w: id '%s'", ErrJobNotOpen, jobID)
		default:
			return nil, fmt.Errorf("failed to complete job '%s': %w", jobID, err)
		}
	}

	reward := JobReward(job.Price)
	profile, err := s.ledger.CreditEarnings(ctx, sess.UID, reward)
	if err != nil {
		return nil, fmt.Errorf("job completed but crediting earnings failed: %w", err)
	}

	return &JobCompletionResult{
		Job:     job,
		Profile: profile,
		Reward:  reward,
	}, nil
}
