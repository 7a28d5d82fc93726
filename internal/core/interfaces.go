package core

import (
	"context"

	"skillhub-backend-go/internal/models"
)

// LedgerService owns the per-user points and earnings counters and the
// profile lifecycle. It is the only component allowed to mutate counters.
type LedgerService interface {
	// EnsureProfile fetches the profile for the session's user, creating it
	// with defaults on first sight. Idempotent: at most one creation per UID.
	// The boolean reports whether a profile was created by this call.
	EnsureProfile(ctx context.Context, sess Session) (*models.Profile, bool, error)
	GetProfile(ctx context.Context, uid string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, uid string, req models.UpdateProfileRequest) (*models.Profile, error)
	// CreditPoints adds delta to the profile's points counter and returns the
	// updated profile. The profile must already exist.
	CreditPoints(ctx context.Context, uid string, delta int64) (*models.Profile, error)
	// CreditEarnings adds amount to the profile's earnings counter and
	// returns the updated profile. The profile must already exist.
	CreditEarnings(ctx context.Context, uid string, amount float64) (*models.Profile, error)
}

// NoteService covers the note catalog and the contribution reward flow.
type NoteService interface {
	ListNotes(ctx context.Context) ([]*models.Note, error)
	ListNotesByAuthor(ctx context.Context, authorUID string) ([]*models.Note, error)
	// CreateNote persists the note and credits the author's contribution
	// points. Returns the created note and the author's updated profile.
	CreateNote(ctx context.Context, sess Session, req models.CreateNoteRequest) (*models.Note, *models.Profile, error)
}

// JobCompletionResult is what a successful gig completion yields.
type JobCompletionResult struct {
	Job     *models.Job     `json:"job"`
	Profile *models.Profile `json:"profile"`
	Reward  float64         `json:"reward"`
}

// JobService covers the gig catalog and the completion reward flow.
type JobService interface {
	ListJobs(ctx context.Context) ([]*models.Job, error)
	CreateJob(ctx context.Context, sess Session, req models.CreateJobRequest) (*models.Job, error)
	// CompleteJob transitions the job open -> completed exactly once and
	// credits the completer's earnings by the job's price.
	CompleteJob(ctx context.Context, sess Session, jobID string) (*JobCompletionResult, error)
}

// QuizSubmissionResult is what a quiz submission yields.
type QuizSubmissionResult struct {
	AttemptID string          `json:"attemptId"`
	Score     int64           `json:"score"`
	Possible  int64           `json:"possible"`
	Profile   *models.Profile `json:"profile"`
}

// QuizService covers the quiz catalog, scoring, and the attempt log.
type QuizService interface {
	ListQuizzes(ctx context.Context) ([]*models.Quiz, error)
	GetQuiz(ctx context.Context, quizID string) (*models.Quiz, error)
	// SubmitQuiz scores the answers, appends an attempt record, and credits
	// the submitter's points by the score (which may be zero).
	SubmitQuiz(ctx context.Context, sess Session, quizID string, answers map[string]string) (*QuizSubmissionResult, error)
	ListAttempts(ctx context.Context, uid string) ([]*models.QuizAttempt, error)
}
