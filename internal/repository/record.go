package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Storage keys for the three persisted documents. Each document is a
// whole JSON payload rewritten in full on every mutation.
const (
	KeyHistory   = "gm_history"
	KeyTemplates = "gm_templates"
	KeyProfile   = "gm_user"
)

// ErrNotFound is returned when a requested record or entry does not exist.
var ErrNotFound = errors.New("not found")

// Record is one persisted document, keyed by its storage key.
type Record struct {
	Key       string    `gorm:"type:text;primaryKey" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for Record.
// Parameters: none.
// Returns:
//   - string: table name for GORM mapping.
func (Record) TableName() string {
	return "records"
}

// Store is a key/value document store. Implementations persist whole
// JSON documents under fixed keys.
type Store interface {
	// Load returns the document under key. The bool is false when no
	// document exists.
	Load(ctx context.Context, key string) (string, bool, error)
	// Save writes the document under key, replacing any previous value.
	Save(ctx context.Context, key, value string) error
	// Delete removes the document under key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}

// RecordStore is the database-backed Store.
type RecordStore struct {
	db *gorm.DB
}

// NewRecordStore creates a RecordStore bound to db.
// Parameters:
//   - db: GORM database handle.
// Returns:
//   - *RecordStore: store instance.
func NewRecordStore(db *gorm.DB) *RecordStore {
	return &RecordStore{db: db}
}

// Load retrieves the document stored under key.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - key: storage key.
// Returns:
//   - string: document value when present.
//   - bool: true when a document exists under key.
//   - error: non-nil if the lookup fails.
func (s *RecordStore) Load(ctx context.Context, key string) (string, bool, error) {
	var rec Record
	if err := s.db.WithContext(ctx).First(&rec, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return rec.Value, true, nil
}

// Save upserts the document under key.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - key: storage key.
//   - value: full document payload.
// Returns:
//   - error: non-nil if the write fails.
func (s *RecordStore) Save(ctx context.Context, key, value string) error {
	rec := Record{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&rec).Error
}

// Delete removes the document under key.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - key: storage key.
// Returns:
//   - error: non-nil if the delete fails.
func (s *RecordStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&Record{}, "key = ?", key).Error
}

// MemoryStore is an in-memory Store for tests.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string

	// SaveErr, when set, is returned by Save to simulate write failures.
	SaveErr error
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Load(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *MemoryStore) Save(ctx context.Context, key, value string) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Seed places a raw document under key without going through Save.
func (s *MemoryStore) Seed(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}
