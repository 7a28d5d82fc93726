package models

import "time"

// Job status values. A job moves from open to completed exactly once.
const (
	JobStatusOpen      = "open"
	JobStatusCompleted = "completed"
)

// DefaultJobPrice is used when a job is created or completed without a price.
const DefaultJobPrice float64 = 50

// Job (a "gig") is a paid task posted by one user and completed by another.
type Job struct {
	ID          string     `json:"id" firestore:"-"` // Document ID, auto-generated
	Title       string     `json:"title" firestore:"title"`
	Desc        string     `json:"desc,omitempty" firestore:"desc,omitempty"`
	Price       float64    `json:"price" firestore:"price"`
	PosterUID   string     `json:"posterUid" firestore:"posterUid"`
	Status      string     `json:"status" firestore:"status"` // "open" | "completed"
	CompletedBy string     `json:"completedBy,omitempty" firestore:"completedBy,omitempty"`
	CreatedAt   time.Time  `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	CompletedAt *time.Time `json:"completedAt,omitempty" firestore:"completedAt,omitempty"`
}
