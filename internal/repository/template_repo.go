package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/0xzahra/gmn/internal/domain"
	"github.com/0xzahra/gmn/internal/logger"
)

// TemplateRepository keeps saved caption templates, newest first,
// unbounded and without deduplication. Like history, the whole list is
// one persisted JSON document.
type TemplateRepository struct {
	store Store

	mu    sync.RWMutex
	items []domain.SavedTemplate
}

// NewTemplateRepository creates a TemplateRepository backed by store.
// Parameters:
//   - store: document store holding the templates JSON.
// Returns:
//   - *TemplateRepository: repository instance; call Load before use.
func NewTemplateRepository(store Store) *TemplateRepository {
	return &TemplateRepository{store: store}
}

// Load reads the persisted template document into memory. Missing or
// corrupt documents yield an empty list.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - error: non-nil only when the store itself fails.
func (r *TemplateRepository) Load(ctx context.Context) error {
	raw, ok, err := r.store.Load(ctx, KeyTemplates)
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
	if !ok {
		return nil
	}

	var items []domain.SavedTemplate
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.CtxError(ctx, "template document corrupt, starting empty: %v", err)
		return nil
	}
	r.items = items
	return nil
}

// Save stores text as a new template at the head of the list. Repeat
// saves of identical text create distinct entries.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - text: caption text to keep.
// Returns:
//   - domain.SavedTemplate: the created template with its minted ID.
//   - error: non-nil if serialization or the store write fails.
func (r *TemplateRepository) Save(ctx context.Context, text string) (domain.SavedTemplate, error) {
	tmpl := domain.SavedTemplate{
		ID:        domain.NewTimeID(),
		Text:      text,
		Timestamp: time.Now().UnixMilli(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	updated := make([]domain.SavedTemplate, 0, len(r.items)+1)
	updated = append(updated, tmpl)
	updated = append(updated, r.items...)

	if err := r.persist(ctx, updated); err != nil {
		return domain.SavedTemplate{}, err
	}
	r.items = updated
	return tmpl, nil
}

// Delete removes the template with the given ID.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: template ID.
// Returns:
//   - error: ErrNotFound for unknown IDs; otherwise persistence errors.
func (r *TemplateRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := make([]domain.SavedTemplate, 0, len(r.items))
	found := false
	for _, t := range r.items {
		if t.ID == id {
			found = true
			continue
		}
		updated = append(updated, t)
	}
	if !found {
		return ErrNotFound
	}

	if err := r.persist(ctx, updated); err != nil {
		return err
	}
	r.items = updated
	return nil
}

// List returns a copy of the saved templates, newest first.
// Parameters:
//   - ctx: unused; kept for interface symmetry.
// Returns:
//   - []domain.SavedTemplate: snapshot of the in-memory list.
func (r *TemplateRepository) List(ctx context.Context) []domain.SavedTemplate {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.SavedTemplate, len(r.items))
	copy(out, r.items)
	return out
}

// persist writes the full template list. Caller holds the lock.
func (r *TemplateRepository) persist(ctx context.Context, items []domain.SavedTemplate) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal templates: %w", err)
	}
	if err := r.store.Save(ctx, KeyTemplates, string(raw)); err != nil {
		return fmt.Errorf("save templates: %w", err)
	}
	return nil
}
