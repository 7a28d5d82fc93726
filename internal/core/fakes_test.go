package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	"skillhub-backend-go/internal/db"
	"skillhub-backend-go/internal/models"
)

// In-memory repository fakes. They honor the same contracts as the Firestore
// implementations, including the ErrNotFound / ErrJobNotOpen sentinels, and
// are safe for concurrent use so the ledger concurrency tests can hammer them.

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]models.Profile
	creates  int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]models.Profile)}
}

func (r *fakeProfileRepo) GetByUID(_ context.Context, uid string) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[uid]
	if !ok {
		return nil, fmt.Errorf("profile with UID '%s' not found: %w", uid, db.ErrNotFound)
	}
	cp := p
	return &cp, nil
}

func (r *fakeProfileRepo) Create(_ context.Context, profile *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[profile.UID]; ok {
		return fmt.Errorf("profile with UID '%s' already exists", profile.UID)
	}
	r.profiles[profile.UID] = *profile
	r.creates++
	return nil
}

func (r *fakeProfileRepo) Update(_ context.Context, profile *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[profile.UID] = *profile
	return nil
}

func (r *fakeProfileRepo) IncrementCounters(_ context.Context, uid string, points int64, earnings float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[uid]
	if !ok {
		return fmt.Errorf("profile with UID '%s' not found: %w", uid, db.ErrNotFound)
	}
	p.Points += points
	p.Earnings += earnings
	r.profiles[uid] = p
	return nil
}

func (r *fakeProfileRepo) createCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.creates
}

type fakeNoteRepo struct {
	mu    sync.Mutex
	notes []models.Note
}

func (r *fakeNoteRepo) Create(_ context.Context, note *models.Note) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	note.ID = fmt.Sprintf("note-%d", len(r.notes)+1)
	r.notes = append(r.notes, *note)
	return note.ID, nil
}

func (r *fakeNoteRepo) ListAll(_ context.Context) ([]*models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Note, 0, len(r.notes))
	for i := range r.notes {
		cp := r.notes[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeNoteRepo) ListByAuthor(_ context.Context, authorUID string) ([]*models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Note
	for i := range r.notes {
		if r.notes[i].AuthorUID == authorUID {
			cp := r.notes[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[string]models.Job
	seq  int
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]models.Job)}
}

func (r *fakeJobRepo) Create(_ context.Context, job *models.Job) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	job.ID = fmt.Sprintf("job-%d", r.seq)
	r.jobs[job.ID] = *job
	return job.ID, nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, jobID string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[jobID]
	if !ok {
		return nil, fmt.Errorf("job with ID '%s' not found: %w", jobID, db.ErrNotFound)
	}
	cp := j
	return &cp, nil
}

func (r *fakeJobRepo) ListAll(_ context.Context) ([]*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Job, 0, len(r.jobs))
	for id := range r.jobs {
		cp := r.jobs[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeJobRepo) CompleteIfOpen(_ context.Context, jobID, completerUID string, completedAt time.Time) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[jobID]
	if !ok {
		return nil, fmt.Errorf("job with ID '%s' not found: %w", jobID, db.ErrNotFound)
	}
	if j.Status != models.JobStatusOpen {
		return nil, fmt.Errorf("job with ID '%s' has status '%s': %w", jobID, j.Status, db.ErrJobNotOpen)
	}
	j.Status = models.JobStatusCompleted
	j.CompletedBy = completerUID
	j.CompletedAt = &completedAt
	r.jobs[jobID] = j
	cp := j
	return &cp, nil
}

type fakeQuizRepo struct {
	quizzes map[string]models.Quiz
}

func (r *fakeQuizRepo) GetByID(_ context.Context, quizID string) (*models.Quiz, error) {
	q, ok := r.quizzes[quizID]
	if !ok {
		return nil, fmt.Errorf("quiz with ID '%s' not found: %w", quizID, db.ErrNotFound)
	}
	cp := q
	return &cp, nil
}

func (r *fakeQuizRepo) ListAll(_ context.Context) ([]*models.Quiz, error) {
	out := make([]*models.Quiz, 0, len(r.quizzes))
	for id := range r.quizzes {
		cp := r.quizzes[id]
		out = append(out, &cp)
	}
	return out, nil
}

type fakeAttemptRepo struct {
	mu       sync.Mutex
	attempts []models.QuizAttempt
}

func (r *fakeAttemptRepo) Create(_ context.Context, attempt *models.QuizAttempt) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	attempt.ID = fmt.Sprintf("attempt-%d", len(r.attempts)+1)
	r.attempts = append(r.attempts, *attempt)
	return attempt.ID, nil
}

func (r *fakeAttemptRepo) ListByUID(_ context.Context, uid string) ([]*models.QuizAttempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.QuizAttempt
	for i := range r.attempts {
		if r.attempts[i].UID == uid {
			cp := r.attempts[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}
