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

const notesCollection = "notes"

// firestoreNoteRepository implements the NoteRepository interface using Firestore.
type firestoreNoteRepository struct {
	client *firestore.Client
}

// NewFirestoreNoteRepository creates a new instance of firestoreNoteRepository.
func NewFirestoreNoteRepository(client *firestore.Client) NoteRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for NoteRepository.")
	}
	return &firestoreNoteRepository{client: client}
}

// Create adds a new note document to Firestore with an auto-generated ID.
// CreatedAt is handled by the serverTimestamp tag.
func (r *firestoreNoteRepository) Create(ctx context.Context, note *models.Note) (string, error) {
	docRef := r.client.Collection(notesCollection).NewDoc()
	note.ID = docRef.ID

	_, err := docRef.Create(ctx, note)
	if err != nil {
		return "", fmt.Errorf("failed to create note: %w", err)
	}
	return docRef.ID, nil
}

// ListAll retrieves every note, newest first.
func (r *firestoreNoteRepository) ListAll(ctx context.Context) ([]*models.Note, error) {
	query := r.client.Collection(notesCollection).OrderBy("createdAt", firestore.Desc)
	return collectNotes(query.Documents(ctx))
}

// ListByAuthor retrieves the notes contributed by a specific user, newest first.
func (r *firestoreNoteRepository) ListByAuthor(ctx context.Context, authorUID string) ([]*models.Note, error) {
	if authorUID == "" {
		return nil, errors.New("authorUID cannot be empty for ListByAuthor operation")
	}
	query := r.client.Collection(notesCollection).
		Where("authorUid", "==", authorUID).
		OrderBy("createdAt", firestore.Desc)
	return collectNotes(query.Documents(ctx))
}

func collectNotes(iter *firestore.DocumentIterator) ([]*models.Note, error) {
	defer iter.Stop()

	var notes []*models.Note
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate notes: %w", err)
		}

		var note models.Note
		if err := doc.DataTo(&note); err != nil {
			// Skip documents that no longer match the schema.
			log.Printf("Error decoding note data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		note.ID = doc.Ref.ID
		notes = append(notes, &note)
	}

	return notes, nil
}
