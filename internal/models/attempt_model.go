package models

import "time"

// QuizAttempt is an append-only record of one quiz submission. A user may
// submit the same quiz any number of times; every submission is logged.
type QuizAttempt struct {
	ID     string    `json:"id" firestore:"-"` // Document ID, auto-generated
	QuizID string    `json:"quizId" firestore:"quizId"`
	UID    string    `json:"uid" firestore:"uid"`
	Score  int64     `json:"score" firestore:"score"`
	At     time.Time `json:"at" firestore:"at,serverTimestamp"`
}
