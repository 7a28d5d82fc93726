package models

import "time"

// Note is a study note contributed by a user. Immutable after creation.
type Note struct {
	ID         string    `json:"id" firestore:"-"` // Document ID, auto-generated
	Title      string    `json:"title" firestore:"title"`
	Preview    string    `json:"preview,omitempty" firestore:"preview,omitempty"`
	Content    string    `json:"content" firestore:"content"`
	AuthorUID  string    `json:"authorUid" firestore:"authorUid"`
	AuthorName string    `json:"authorName" firestore:"authorName"` // Denormalized snapshot of the author's display name
	CreatedAt  time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
