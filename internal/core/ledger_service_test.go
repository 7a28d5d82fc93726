package core

import (
	"context"
	"errors"
	"sync"
	"testing"

	"skillhub-backend-go/internal/models"
)

func TestEnsureProfileCreatesWithDefaults(t *testing.T) {
	repo := newFakeProfileRepo()
	ledger := NewLedgerService(repo, true)
	sess := Session{UID: "u1", Email: "u1@example.com", DisplayName: "Alex"}

	profile, created, err := ledger.EnsureProfile(context.Background(), sess)
	if err != nil {
		t.Fatalf("EnsureProfile() error = %v", err)
	}
	if !created {
		t.Error("EnsureProfile() created = false, want true on first call")
	}
	if profile.Name != "Alex" {
		t.Errorf("profile.Name = %q, want %q", profile.Name, "Alex")
	}
	if profile.Role != models.DefaultRole {
		t.Errorf("profile.Role = %q, want %q", profile.Role, models.DefaultRole)
	}
	if profile.Bio != "" || profile.Points != 0 || profile.Earnings != 0 {
		t.Errorf("new profile carries non-default values: %+v", profile)
	}
}

func TestEnsureProfileIsIdempotent(t *testing.T) {
	repo := newFakeProfileRepo()
	ledger := NewLedgerService(repo, true)
	sess := Session{UID: "u1", DisplayName: "Alex"}

	first, _, err := ledger.EnsureProfile(context.Background(), sess)
	if err != nil {
		t.Fatalf("first EnsureProfile() error = %v", err)
	}
	second, created, err := ledger.EnsureProfile(context.Background(), sess)
	if err != nil {
		t.Fatalf("second EnsureProfile() error = %v", err)
	}
	if created {
		t.Error("second EnsureProfile() created = true, want false")
	}
	if second.UID != first.UID || second.Name != first.Name {
		t.Errorf("second EnsureProfile() = %+v, want same profile as first %+v", second, first)
	}
	if got := repo.createCount(); got != 1 {
		t.Errorf("repository creations = %d, want exactly 1", got)
	}
}

func TestEnsureProfileNameFallsBackToEmail(t *testing.T) {
	repo := newFakeProfileRepo()
	ledger := NewLedgerService(repo, true)

	profile, _, err := ledger.EnsureProfile(context.Background(), Session{UID: "u2", Email: "u2@example.com"})
	if err != nil {
		t.Fatalf("EnsureProfile() error = %v", err)
	}
	if profile.Name != "u2@example.com" {
		t.Errorf("profile.Name = %q, want email fallback", profile.Name)
	}
}

func TestCreditMissingProfileSurfacesNotFound(t *testing.T) {
	for _, atomic := range []bool{true, false} {
		name := "naive"
		if atomic {
			name = "atomic"
		}
		t.Run(name, func(t *testing.T) {
			ledger := NewLedgerService(newFakeProfileRepo(), atomic)

			if _, err := ledger.CreditPoints(context.Background(), "ghost", 5); !errors.Is(err, ErrProfileNotFound) {
				t.Errorf("CreditPoints() error = %v, want ErrProfileNotFound", err)
			}
			if _, err := ledger.CreditEarnings(context.Background(), "ghost", 50); !errors.Is(err, ErrProfileNotFound) {
				t.Errorf("CreditEarnings() error = %v, want ErrProfileNotFound", err)
			}
		})
	}
}

func TestCreditUpdatesCounters(t *testing.T) {
	for _, atomic := range []bool{true, false} {
		name := "naive"
		if atomic {
			name = "atomic"
		}
		t.Run(name, func(t *testing.T) {
			repo := newFakeProfileRepo()
			ledger := NewLedgerService(repo, atomic)
			sess := Session{UID: "u1", DisplayName: "Alex"}
			if _, _, err := ledger.EnsureProfile(context.Background(), sess); err != nil {
				t.Fatalf("EnsureProfile() error = %v", err)
			}

			profile, err := ledger.CreditPoints(context.Background(), "u1", 5)
			if err != nil {
				t.Fatalf("CreditPoints() error = %v", err)
			}
			if profile.Points != 5 {
				t.Errorf("profile.Points = %d, want 5", profile.Points)
			}

			profile, err = ledger.CreditEarnings(context.Background(), "u1", 75)
			if err != nil {
				t.Fatalf("CreditEarnings() error = %v", err)
			}
			if profile.Earnings != 75 {
				t.Errorf("profile.Earnings = %v, want 75", profile.Earnings)
			}
			if profile.Points != 5 {
				t.Errorf("profile.Points = %d after earnings credit, want 5", profile.Points)
			}
		})
	}
}

// Every defined reward trigger applies a non-negative delta, so counters
// driven only through those triggers can never go below zero.
func TestRewardTriggersNeverGoNegative(t *testing.T) {
	repo := newFakeProfileRepo()
	ledger := NewLedgerService(repo, true)
	sess := Session{UID: "u1", DisplayName: "Alex"}
	if _, _, err := ledger.EnsureProfile(context.Background(), sess); err != nil {
		t.Fatalf("EnsureProfile() error = %v", err)
	}

	// Note contribution, zero-score quiz, and a default-priced job.
	if _, err := ledger.CreditPoints(context.Background(), "u1", NoteContributionPoints); err != nil {
		t.Fatalf("CreditPoints(note) error = %v", err)
	}
	if _, err := ledger.CreditPoints(context.Background(), "u1", 0); err != nil {
		t.Fatalf("CreditPoints(zero score) error = %v", err)
	}
	profile, err := ledger.CreditEarnings(context.Background(), "u1", JobReward(0))
	if err != nil {
		t.Fatalf("CreditEarnings(job) error = %v", err)
	}

	if profile.Points < 0 {
		t.Errorf("profile.Points = %d, want >= 0", profile.Points)
	}
	if profile.Earnings < 0 {
		t.Errorf("profile.Earnings = %v, want >= 0", profile.Earnings)
	}
}

// N concurrent one-point credits in atomic mode must land exactly N points.
func TestConcurrentAtomicCredits(t *testing.T) {
	const n = 64

	repo := newFakeProfileRepo()
	ledger := NewLedgerService(repo, true)
	sess := Session{UID: "u1", DisplayName: "Alex"}
	if _, _, err := ledger.EnsureProfile(context.Background(), sess); err != nil {
		t.Fatalf("EnsureProfile() error = %v", err)
	}

	var wg sync.WaitGroup
	errCh := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := ledger.CreditPoints(context.Background(), "u1", 1); err != nil {
				errCh <- err
			}
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Errorf("CreditPoints() error = %v", err)
	}

	profile, err := ledger.GetProfile(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if profile.Points != n {
		t.Errorf("profile.Points = %d after %d concurrent credits, want %d", profile.Points, n, n)
	}
}

func TestUpdateProfileTouchesOnlyProvidedFields(t *testing.T) {
	repo := newFakeProfileRepo()
	ledger := NewLedgerService(repo, true)
	sess := Session{UID: "u1", DisplayName: "Alex"}
	if _, _, err := ledger.EnsureProfile(context.Background(), sess); err != nil {
		t.Fatalf("EnsureProfile() error = %v", err)
	}
	if _, err := ledger.CreditPoints(context.Background(), "u1", 7); err != nil {
		t.Fatalf("CreditPoints() error = %v", err)
	}

	bio := "learning Go"
	profile, err := ledger.UpdateProfile(context.Background(), "u1", models.UpdateProfileRequest{Bio: &bio})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if profile.Bio != bio {
		t.Errorf("profile.Bio = %q, want %q", profile.Bio, bio)
	}
	if profile.Name != "Alex" {
		t.Errorf("profile.Name = %q, want unchanged %q", profile.Name, "Alex")
	}
	if profile.Points != 7 {
		t.Errorf("profile.Points = %d, want counters untouched (7)", profile.Points)
	}
}
