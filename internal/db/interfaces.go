package db

import (
	"context"
	"time"

	"skillhub-backend-go/internal/models"
)

// ProfileRepository defines the interface for profile (ledger) storage operations.
type ProfileRepository interface {
	GetByUID(ctx context.Context, uid string) (*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	Update(ctx context.Context, profile *models.Profile) error
	// IncrementCounters atomically adds the given deltas to the points and
	// earnings fields of an existing profile. Returns ErrNotFound when no
	// profile document exists for uid.
	IncrementCounters(ctx context.Context, uid string, points int64, earnings float64) error
}

// NoteRepository defines the interface for note storage operations.
type NoteRepository interface {
	Create(ctx context.Context, note *models.Note) (string, error) // Returns new note ID
	ListAll(ctx context.Context) ([]*models.Note, error)
	ListByAuthor(ctx context.Context, authorUID string) ([]*models.Note, error)
}

// JobRepository defines the interface for job (gig) storage operations.
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) (string, error) // Returns new job ID
	GetByID(ctx context.Context, jobID string) (*models.Job, error)
	ListAll(ctx context.Context) ([]*models.Job, error)
	// CompleteIfOpen transitions the job to completed, recording the
	// completer and timestamp, inside a transaction. Returns ErrJobNotOpen
	// when the job has already been completed.
	CompleteIfOpen(ctx context.Context, jobID, completerUID string, completedAt time.Time) (*models.Job, error)
}

// QuizRepository defines the interface for quiz storage operations.
// Quizzes are read-only; they are provisioned out of band.
type QuizRepository interface {
	GetByID(ctx context.Context, quizID string) (*models.Quiz, error)
	ListAll(ctx context.Context) ([]*models.Quiz, error)
}

// AttemptRepository defines the interface for the append-only quiz attempt log.
type AttemptRepository interface {
	Create(ctx context.Context, attempt *models.QuizAttempt) (string, error) // Returns new attempt ID
	ListByUID(ctx context.Context, uid string) ([]*models.QuizAttempt, error)
}
