package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"skillhub-backend-go/internal/models"
)

const quizzesCollection = "quizzes"

// firestoreQuizRepository implements the QuizRepository interface using Firestore.
type firestoreQuizRepository struct {
	client *firestore.Client
}

// NewFirestoreQuizRepository creates a new instance of firestoreQuizRepository.
func NewFirestoreQuizRepository(client *firestore.Client) QuizRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for QuizRepository.")
	}
	return &firestoreQuizRepository{client: client}
}

// GetByID retrieves a quiz document from Firestore by its ID.
func (r *firestoreQuizRepository) GetByID(ctx context.Context, quizID string) (*models.Quiz, error) {
	if quizID == "" {
		return nil, errors.New("quizID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(quizzesCollection).Doc(quizID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("quiz with ID '%s' not found: %w", quizID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get quiz with ID '%s': %w", quizID, err)
	}

	var quiz models.Quiz
	if err := docSnap.DataTo(&quiz); err != nil {
		return nil, fmt.Errorf("failed to decode quiz data for ID '%s': %w", quizID, err)
	}
	quiz.ID = docSnap.Ref.ID

	return &quiz, nil
}

// ListAll retrieves every quiz.
func (r *firestoreQuizRepository) ListAll(ctx context.Context) ([]*models.Quiz, error) {
	iter := r.client.Collection(quizzesCollection).Documents(ctx)
	defer iter.Stop()

	var quizzes []*models.Quiz
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate quizzes: %w", err)
		}

		var quiz models.Quiz
		if err := doc.DataTo(&quiz); err != nil {
			log.Printf("Error decoding quiz data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		quiz.ID = doc.Ref.ID
		quizzes = append(quizzes, &quiz)
	}

	return quizzes, nil
}
