package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/0xzahra/gmn/internal/domain"
)

// ProfileRepository round-trips the stored operator profile. The
// service treats the record as opaque; there is no auth behind it.
type ProfileRepository struct {
	store Store
}

// NewProfileRepository creates a ProfileRepository backed by store.
// Parameters:
//   - store: document store holding the profile JSON.
// Returns:
//   - *ProfileRepository: repository instance.
func NewProfileRepository(store Store) *ProfileRepository {
	return &ProfileRepository{store: store}
}

// Get loads the stored profile.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - *domain.UserProfile: stored profile.
//   - error: ErrNotFound when no profile is stored or the stored
//     document is unreadable; otherwise store errors.
func (r *ProfileRepository) Get(ctx context.Context) (*domain.UserProfile, error) {
	raw, ok, err := r.store.Load(ctx, KeyProfile)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if !ok {
		return nil, ErrNotFound
	}

	var p domain.UserProfile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, ErrNotFound
	}
	return &p, nil
}

// Put stores the profile, replacing any previous record.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - p: profile to store.
// Returns:
//   - error: non-nil if serialization or the store write fails.
func (r *ProfileRepository) Put(ctx context.Context, p *domain.UserProfile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := r.store.Save(ctx, KeyProfile, string(raw)); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// Delete removes the stored profile. Deleting a missing profile is a no-op.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - error: non-nil if the store delete fails.
func (r *ProfileRepository) Delete(ctx context.Context) error {
	return r.store.Delete(ctx, KeyProfile)
}
