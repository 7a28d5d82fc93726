package core

import (
	"context"
	"errors"
	"fmt"

	"skillhub-backend-go/internal/db"
	"skillhub-backend-go/internal/models"
)

// ErrProfileNotFound is returned when a credit or read targets a UID with no
// profile document. The miss is surfaced rather than swallowed so callers can
// decide what to do.
var ErrProfileNotFound = errors.New("profile not found")

// ledgerService implements the LedgerService interface.
type ledgerService struct {
	profileRepo db.ProfileRepository
	// atomic selects Firestore server-side increments for counter updates.
	// When false the service falls back to the legacy read-then-write flow,
	// which can lose an update under concurrent credits to the same UID.
	atomic bool
}

// NewLedgerService creates a new LedgerService instance. atomicIncrements
// should normally be true; the read-then-write mode exists only as the
// legacy behavior behind LEDGER_ATOMIC_INCREMENTS=false.
func NewLedgerService(profileRepo db.ProfileRepository, atomicIncrements bool) LedgerService {
	return &ledgerService{
		profileRepo: profileRepo,
		atomic:      atomicIncrements,
	}
}

// EnsureProfile retrieves the profile for the session's UID, creating one
// with default values when absent. Calling it again for the same UID is a
// no-op that returns the existing profile.
func (s *ledgerService) EnsureProfile(ctx context.Context, sess Session) (*models.Profile, bool, error) {
	if sess.UID == "" {
		return nil, false, errors.New("session UID cannot be empty")
	}

	profile, err := s.profileRepo.GetByUID(ctx, sess.UID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			newProfile := &models.Profile{
				UID:      sess.UID,
				Name:     sess.DefaultName(),
				Role:     models.DefaultRole,
				Bio:      "",
				Points:   0,
				Earnings: 0,
			}
			if createErr := s.profileRepo.Create(ctx, newProfile); createErr != nil {
				return nil, false, fmt.Errorf("failed to create profile (uid: %s) after not found: %w", sess.UID, createErr)
			}
			return newProfile, true, nil
		}
		return nil, false, fmt.Errorf("failed to get profile by UID '%s' from repository: %w", sess.UID, err)
	}

	return profile, false, nil
}

// GetProfile retrieves a profile by UID.
func (s *ledgerService) GetProfile(ctx context.Context, uid string) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: uid '%s'", ErrProfileNotFound, uid)
		}
		return nil, fmt.Errorf("failed to get profile by UID '%s' from repository: %w", uid, err)
	}
	return profile, nil
}

// UpdateProfile applies a partial update to the profile's descriptive fields.
// Counters are never touched here; only credit operations may change them.
func (s *ledgerService) UpdateProfile(ctx context.Context, uid string, req models.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.GetProfile(ctx, uid)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Role != nil {
		profile.Role = *req.Role
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile with UID '%s': %w", uid, err)
	}
	return profile, nil
}

// CreditPoints adds delta to the points counter.
func (s *ledgerService) CreditPoints(ctx context.Context, uid string, delta int64) (*models.Profile, error) {
	return s.credit(ctx, uid, delta, 0)
}

// CreditEarnings adds amount to the earnings counter.
func (s *ledgerService) CreditEarnings(ctx context.Context, uid string, amount float64) (*models.Profile, error) {
	return s.credit(ctx, uid, 0, amount)
}

func (s *ledgerService) credit(ctx context.Context, uid string, points int64, earnings float64) (*models.Profile, error) {
	if uid == "" {
		return nil, errors.New("uid cannot be empty for credit operation")
	}

	if s.atomic {
		if err := s.profileRepo.IncrementCounters(ctx, uid, points, earnings); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				return nil, fmt.Errorf("%w: uid '%s'", ErrProfileNotFound, uid)
			}
			return nil, fmt.Errorf("failed to increment counters for UID '%s': %w", uid, err)
		}
		return s.GetProfile(ctx, uid)
	}

	// Legacy mode: read the current counters, then write back current+delta.
	// Two concurrent credits for the same UID can lose one of the updates.
	profile, err := s.GetProfile(ctx, uid)
	if err != nil {
		return nil, err
	}
	profile.Points += points
	profile.Earnings += earnings
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to write credited counters for UID '%s': %w", uid, err)
	}
	return profile, nil
}
