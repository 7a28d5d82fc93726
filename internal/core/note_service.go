package core

import (
	"context"
	"fmt"

	"skillhub-backend-go/internal/db"
	"skillhub-backend-go/internal/models"
)

// noteService implements the NoteService interface.
type noteService struct {
	noteRepo db.NoteRepository
	ledger   LedgerService
}

// NewNoteService creates a new NoteService instance.
func NewNoteService(noteRepo db.NoteRepository, ledger LedgerService) NoteService {
	return &noteService{
		noteRepo: noteRepo,
		ledger:   ledger,
	}
}

// ListNotes returns every note, newest first.
func (s *noteService) ListNotes(ctx context.Context) ([]*models.Note, error) {
	notes, err := s.noteRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// ListNotesByAuthor returns the notes contributed by one user.
func (s *noteService) ListNotesByAuthor(ctx context.Context, authorUID string) ([]*models.Note, error) {
	notes, err := s.noteRepo.ListByAuthor(ctx, authorUID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes for author '%s': %w", authorUID, err)
	}
	return notes, nil
}

// CreateNote persists a new note and credits the author's contribution
// points. The author's profile is ensured first, which also supplies the
// denormalized AuthorName snapshot.
func (s *noteService) CreateNote(ctx context.Context, sess Session, req models.CreateNoteRequest) (*models.Note, *models.Profile, error) {
	profile, _, err := s.ledger.EnsureProfile(ctx, sess)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to ensure author profile: %w", err)
	}

	note := &models.Note{
		Title:      req.Title,
		Preview:    req.Preview,
		Content:    req.Content,
		AuthorUID:  sess.UID,
		AuthorName: profile.Name,
	}
	if _, err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, nil, fmt.Errorf("failed to create note: %w", err)
	}

	credited, err := s.ledger.CreditPoints(ctx, sess.UID, NoteContributionPoints)
	if err != nil {
		// The note exists at this point; the author just didn't get paid.
		return note, profile, fmt.Errorf("note created but crediting points failed: %w", err)
	}

	return note, credited, nil
}
