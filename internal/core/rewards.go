package core

import "skillhub-backend-go/internal/models"

// Reward policy for the platform. These rules are deliberately kept in one
// pure module, away from handlers and storage, so they can be tested in
// isolation.

// NoteContributionPoints is credited to the author of every new note.
const NoteContributionPoints int64 = 5

// JobReward returns the earnings credited for completing a job. A job whose
// price field is missing or non-positive pays the platform default.
func JobReward(price float64) float64 {
	if price > 0 {
		return price
	}
	return models.DefaultJobPrice
}

// QuestionWorth returns the points a question is worth. A stored value below
// 1 (including the zero value of an absent field) counts as the default of 1.
func QuestionWorth(q models.Question) int64 {
	if q.Points > 0 {
		return q.Points
	}
	return 1
}

// ScoreQuiz computes the score for a set of submitted answers: the sum of
// each question's worth where the submitted answer matches the correct one.
// It also returns the maximum possible score. Unanswered questions score 0.
func ScoreQuiz(questions []models.Question, answers map[string]string) (score, possible int64) {
	for _, q := range questions {
		worth := QuestionWorth(q)
		possible += worth
		if answer, ok := answers[q.ID]; ok && answer == q.Correct {
			score += worth
		}
	}
	return score, possible
}
