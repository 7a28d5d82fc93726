package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"skillhub-backend-go/internal/models"
)

const attemptsCollection = "attempts"

// firestoreAttemptRepository implements the AttemptRepository interface using Firestore.
// Attempts are an append-only log; there is no update or delete.
type firestoreAttemptRepository struct {
	client *firestore.Client
}

// NewFirestoreAttemptRepository creates a new instance of firestoreAttemptRepository.
func NewFirestoreAttemptRepository(client *firestore.Client) AttemptRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for AttemptRepository.")
	}
	return &firestoreAttemptRepository{client: client}
}

// Create appends a new attempt document with an auto-generated ID.
// The At timestamp is populated server-side via its serverTimestamp tag.
func (r *firestoreAttemptRepository) Create(ctx context.Context, attempt *models.QuizAttempt) (string, error) {
	docRef := r.client.Collection(attemptsCollection).NewDoc()
	attempt.ID = docRef.ID

	_, err := docRef.Create(ctx, attempt)
	if err != nil {
		return "", fmt.Errorf("failed to create quiz attempt: %w", err)
	}
	return docRef.ID, nil
}

// ListByUID retrieves the attempts submitted by a specific user, newest first.
func (r *firestoreAttemptRepository) ListByUID(ctx context.Context, uid string) ([]*models.QuizAttempt, error) {
	if uid == "" {
		return nil, errors.New("uid cannot be empty for ListByUID operation")
	}
	iter := r.client.Collection(attemptsCollection).
		Where("uid", "==", uid).
		OrderBy("at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var attempts []*models.QuizAttempt
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate attempts for uid '%s': %w", uid, err)
		}

		var attempt models.QuizAttempt
		if err := doc.DataTo(&attempt); err != nil {
			log.Printf("Error decoding attempt data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		attempt.ID = doc.Ref.ID
		attempts = append(attempts, &attempt)
	}

	return attempts, nil
}
