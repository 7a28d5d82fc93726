package models

import "time"

// DefaultRole is assigned to every newly created profile.
const DefaultRole = "Student"

// Profile represents a user's ledger document: identity details plus the
// points and earnings counters mutated by the reward workflow.
type Profile struct {
	UID       string    `json:"uid" firestore:"-"` // Firebase Auth UID, used as the document ID
	Name      string    `json:"name" firestore:"name"`
	Role      string    `json:"role" firestore:"role"` // e.g. "Student"
	Bio       string    `json:"bio" firestore:"bio"`
	Points    int64     `json:"points" firestore:"points"`
	Earnings  float64   `json:"earnings" firestore:"earnings"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}
