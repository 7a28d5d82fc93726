package models

// Question is a single multiple-choice question within a quiz.
// Points below 1 (including the zero value of a missing field) are scored
// as the default of 1.
type Question struct {
	ID      string   `json:"id" firestore:"id"`
	Text    string   `json:"text" firestore:"text"`
	Options []string `json:"options" firestore:"options"`
	Correct string   `json:"correct" firestore:"correct"`
	Points  int64    `json:"points,omitempty" firestore:"points,omitempty"`
}

// Quiz is a read-only assessment; quizzes are provisioned out of band and
// never created or edited through the API.
type Quiz struct {
	ID        string     `json:"id" firestore:"-"` // Document ID
	Title     string     `json:"title" firestore:"title"`
	Desc      string     `json:"desc,omitempty" firestore:"desc,omitempty"`
	Questions []Question `json:"questions" firestore:"questions"`
}
