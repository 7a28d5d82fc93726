package core

import (
	"context"
	"errors"
	"testing"

	"skillhub-backend-go/internal/models"
)

func newQuizFixture(t *testing.T) (QuizService, *fakeAttemptRepo, *fakeProfileRepo) {
	t.Helper()
	quizRepo := &fakeQuizRepo{quizzes: map[string]models.Quiz{
		"quiz-1": {
			ID:    "quiz-1",
			Title: "Go basics",
			Questions: []models.Question{
				{ID: "q1", Correct: "A", Points: 2},
				{ID: "q2", Correct: "B", Points: 1},
			},
		},
	}}
	attemptRepo := &fakeAttemptRepo{}
	profileRepo := newFakeProfileRepo()
	svc := NewQuizService(quizRepo, attemptRepo, NewLedgerService(profileRepo, true))
	return svc, attemptRepo, profileRepo
}

func TestSubmitQuizScoresAndCredits(t *testing.T) {
	svc, _, _ := newQuizFixture(t)
	sess := Session{UID: "student", DisplayName: "Sam"}

	result, err := svc.SubmitQuiz(context.Background(), sess, "quiz-1", map[string]string{"q1": "A", "q2": "C"})
	if err != nil {
		t.Fatalf("SubmitQuiz() error = %v", err)
	}
	if result.Score != 2 {
		t.Errorf("result.Score = %d, want 2", result.Score)
	}
	if result.Possible != 3 {
		t.Errorf("result.Possible = %d, want 3", result.Possible)
	}
	if result.Profile.Points != 2 {
		t.Errorf("profile.Points = %d, want score credited (2)", result.Profile.Points)
	}
	if result.AttemptID == "" {
		t.Error("result.AttemptID is empty, want recorded attempt")
	}

	attempts, err := svc.ListAttempts(context.Background(), "student")
	if err != nil {
		t.Fatalf("ListAttempts() error = %v", err)
	}
	if len(attempts) != 1 {
		t.Fatalf("len(attempts) = %d, want 1", len(attempts))
	}
	if attempts[0].QuizID != "quiz-1" || attempts[0].Score != 2 {
		t.Errorf("attempt = %+v, want quiz-1 with score 2", attempts[0])
	}
}

func TestSubmitQuizZeroScoreIsStillLogged(t *testing.T) {
	svc, _, _ := newQuizFixture(t)
	sess := Session{UID: "student"}

	result, err := svc.SubmitQuiz(context.Background(), sess, "quiz-1", nil)
	if err != nil {
		t.Fatalf("SubmitQuiz() error = %v", err)
	}
	if result.Score != 0 {
		t.Errorf("result.Score = %d, want 0", result.Score)
	}
	if result.Profile.Points != 0 {
		t.Errorf("profile.Points = %d, want 0", result.Profile.Points)
	}

	attempts, err := svc.ListAttempts(context.Background(), "student")
	if err != nil {
		t.Fatalf("ListAttempts() error = %v", err)
	}
	if len(attempts) != 1 {
		t.Errorf("len(attempts) = %d, want the zero-score attempt logged", len(attempts))
	}
}

func TestSubmitQuizAllowsRepeatAttempts(t *testing.T) {
	svc, _, _ := newQuizFixture(t)
	sess := Session{UID: "student"}
	answers := map[string]string{"q1": "A", "q2": "B"}

	if _, err := svc.SubmitQuiz(context.Background(), sess, "quiz-1", answers); err != nil {
		t.Fatalf("first SubmitQuiz() error = %v", err)
	}
	result, err := svc.SubmitQuiz(context.Background(), sess, "quiz-1", answers)
	if err != nil {
		t.Fatalf("second SubmitQuiz() error = %v", err)
	}

	// No uniqueness constraint: both attempts logged, both credited.
	attempts, err := svc.ListAttempts(context.Background(), "student")
	if err != nil {
		t.Fatalf("ListAttempts() error = %v", err)
	}
	if len(attempts) != 2 {
		t.Errorf("len(attempts) = %d, want 2", len(attempts))
	}
	if result.Profile.Points != 6 {
		t.Errorf("profile.Points = %d, want 6 after two full-score attempts", result.Profile.Points)
	}
}

func TestSubmitQuizUnknownQuiz(t *testing.T) {
	svc, attemptRepo, _ := newQuizFixture(t)

	if _, err := svc.SubmitQuiz(context.Background(), Session{UID: "student"}, "missing", nil); !errors.Is(err, ErrQuizNotFound) {
		t.Errorf("SubmitQuiz(missing) error = %v, want ErrQuizNotFound", err)
	}
	if len(attemptRepo.attempts) != 0 {
		t.Errorf("attempts logged for unknown quiz = %d, want 0", len(attemptRepo.attempts))
	}
}
