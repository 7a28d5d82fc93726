package core

import (
	"context"
	"errors"
	"fmt"

	"skillhub-backend-go/internal/db"
	"skillhub-backend-go/internal/models"
)

// ErrQuizNotFound is returned when a quiz lookup misses.
var ErrQuizNotFound = errors.New("quiz not found")

// quizService implements the QuizService interface.
type quizService struct {
	quizRepo    db.QuizRepository
	attemptRepo db.AttemptRepository
	ledger      LedgerService
}

// NewQuizService creates a new QuizService instance.
func NewQuizService(quizRepo db.QuizRepository, attemptRepo db.AttemptRepository, ledger LedgerService) QuizService {
	return &quizService{
		quizRepo:    quizRepo,
		attemptRepo: attemptRepo,
		ledger:      ledger,
	}
}

// ListQuizzes returns every quiz.
func (s *quizService) ListQuizzes(ctx context.Context) ([]*models.Quiz, error) {
	quizzes, err := s.quizRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}
	return quizzes, nil
}

// GetQuiz retrieves a quiz by ID.
func (s *quizService) GetQuiz(ctx context.Context, quizID string) (*models.Quiz, error) {
	quiz, err := s.quizRepo.GetByID(ctx, quizID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: id '%s'", ErrQuizNotFound, quizID)
		}
		return nil, fmt.Errorf("failed to get quiz '%s': %w", quizID, err)
	}
	return quiz, nil
}

// SubmitQuiz scores the submitted answers against the quiz, appends an
// attempt record, and credits the submitter's points by the score. Every
// submission is logged, including repeats and zero scores.
func (s *quizService) SubmitQuiz(ctx context.Context, sess Session, quizID string, answers map[string]string) (*QuizSubmissionResult, error) {
	quiz, err := s.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	score, possible := ScoreQuiz(quiz.Questions, answers)

	attempt := &models.QuizAttempt{
		QuizID: quiz.ID,
		UID:    sess.UID,
		Score:  score,
	}
	attemptID, err := s.attemptRepo.Create(ctx, attempt)
	if err != nil {
		return nil, fmt.Errorf("failed to record quiz attempt: %w", err)
	}

	if _, _, err := s.ledger.EnsureProfile(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to ensure submitter profile: %w", err)
	}
	profile, err := s.ledger.CreditPoints(ctx, sess.UID, score)
	if err != nil {
		return nil, fmt.Errorf("attempt recorded but crediting points failed: %w", err)
	}

	return &QuizSubmissionResult{
		AttemptID: attemptID,
		Score:     score,
		Possible:  possible,
		Profile:   profile,
	}, nil
}

// ListAttempts returns a user's attempt history, newest first.
func (s *quizService) ListAttempts(ctx context.Context, uid string) ([]*models.QuizAttempt, error) {
	attempts, err := s.attemptRepo.ListByUID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts for uid '%s': %w", uid, err)
	}
	return attempts, nil
}
