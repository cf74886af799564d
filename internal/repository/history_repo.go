package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/0xzahra/gmn/internal/domain"
	"github.com/0xzahra/gmn/internal/logger"
)

// HistoryRepository keeps the capacity-bounded signal history. The
// full entry list lives in memory and is rewritten to the store as one
// JSON document on every append, newest first.
type HistoryRepository struct {
	store Store

	mu    sync.RWMutex
	items []domain.HistoryItem
}

// NewHistoryRepository creates a HistoryRepository backed by store.
// Parameters:
//   - store: document store holding the history JSON.
// Returns:
//   - *HistoryRepository: repository instance; call Load before use.
func NewHistoryRepository(store Store) *HistoryRepository {
	return &HistoryRepository{store: store}
}

// Load reads the persisted history document into memory. A missing or
// corrupt document yields an empty history; corruption is logged, not
// fatal.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - error: non-nil only when the store itself fails.
func (r *HistoryRepository) Load(ctx context.Context) error {
	raw, ok, err := r.store.Load(ctx, KeyHistory)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
	if !ok {
		return nil
	}

	var items []domain.HistoryItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.CtxError(ctx, "history document corrupt, starting empty: %v", err)
		return nil
	}
	r.items = items
	return nil
}

// Append prepends item, truncates to capacity, and persists the whole
// document. The in-memory list is only updated when the write succeeds.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - item: completed generation snapshot.
// Returns:
//   - error: non-nil if serialization or the store write fails.
func (r *HistoryRepository) Append(ctx context.Context, item domain.HistoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := make([]domain.HistoryItem, 0, len(r.items)+1)
	updated = append(updated, item)
	updated = append(updated, r.items...)
	if len(updated) > domain.HistoryCapacity {
		updated = updated[:domain.HistoryCapacity]
	}

	raw, err := json.Marshal(updated)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	if err := r.store.Save(ctx, KeyHistory, string(raw)); err != nil {
		return fmt.Errorf("save history: %w", err)
	}

	r.items = updated
	return nil
}

// List returns a copy of the current history, newest first.
// Parameters:
//   - ctx: unused; kept for interface symmetry.
// Returns:
//   - []domain.HistoryItem: snapshot of the in-memory history.
func (r *HistoryRepository) List(ctx context.Context) []domain.HistoryItem {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.HistoryItem, len(r.items))
	copy(out, r.items)
	return out
}
