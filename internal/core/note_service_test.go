package core

import (
	"context"
	"testing"

	"skillhub-backend-go/internal/models"
)

func TestCreateNoteCreditsAuthorFivePoints(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateNoteRequest
	}{
		{name: "full note", req: models.CreateNoteRequest{Title: "Pointers", Preview: "p", Content: "long form"}},
		{name: "title only", req: models.CreateNoteRequest{Title: "Slices"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profileRepo := newFakeProfileRepo()
			noteRepo := &fakeNoteRepo{}
			ledger := NewLedgerService(profileRepo, true)
			svc := NewNoteService(noteRepo, ledger)
			sess := Session{UID: "author", DisplayName: "Alex"}

			note, profile, err := svc.CreateNote(context.Background(), sess, tt.req)
			if err != nil {
				t.Fatalf("CreateNote() error = %v", err)
			}
			if note.ID == "" {
				t.Error("note.ID is empty, want assigned ID")
			}
			if note.AuthorUID != "author" {
				t.Errorf("note.AuthorUID = %q, want %q", note.AuthorUID, "author")
			}
			if note.AuthorName != "Alex" {
				t.Errorf("note.AuthorName = %q, want denormalized %q", note.AuthorName, "Alex")
			}
			// Exactly +5, regardless of note content.
			if profile.Points != NoteContributionPoints {
				t.Errorf("profile.Points = %d, want %d", profile.Points, NoteContributionPoints)
			}
		})
	}
}

func TestCreateNoteEnsuresProfileFirst(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	svc := NewNoteService(&fakeNoteRepo{}, NewLedgerService(profileRepo, true))

	// No profile exists for the session yet; the flow must create it rather
	// than silently dropping the credit.
	_, profile, err := svc.CreateNote(context.Background(), Session{UID: "fresh", Email: "fresh@example.com"}, models.CreateNoteRequest{Title: "t"})
	if err != nil {
		t.Fatalf("CreateNote() error = %v", err)
	}
	if got := profileRepo.createCount(); got != 1 {
		t.Errorf("profile creations = %d, want 1", got)
	}
	if profile.Points != NoteContributionPoints {
		t.Errorf("profile.Points = %d, want %d", profile.Points, NoteContributionPoints)
	}
}

func TestTwoNotesCreditTenPoints(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	noteRepo := &fakeNoteRepo{}
	svc := NewNoteService(noteRepo, NewLedgerService(profileRepo, true))
	sess := Session{UID: "author", DisplayName: "Alex"}

	if _, _, err := svc.CreateNote(context.Background(), sess, models.CreateNoteRequest{Title: "one"}); err != nil {
		t.Fatalf("first CreateNote() error = %v", err)
	}
	_, profile, err := svc.CreateNote(context.Background(), sess, models.CreateNoteRequest{Title: "two"})
	if err != nil {
		t.Fatalf("second CreateNote() error = %v", err)
	}
	if profile.Points != 2*NoteContributionPoints {
		t.Errorf("profile.Points = %d, want %d", profile.Points, 2*NoteContributionPoints)
	}

	notes, err := svc.ListNotesByAuthor(context.Background(), "author")
	if err != nil {
		t.Fatalf("ListNotesByAuthor() error = %v", err)
	}
	if len(notes) != 2 {
		t.Errorf("len(notes) = %d, want 2", len(notes))
	}
}
