// Package persistence implements the storage adapter and the repositories on
// top of it. All persisted state lives in one key→JSON-document table; no
// other component touches the database directly.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domainerror "github.com/marcus-savings/backend/internal/domain/error"
	"github.com/marcus-savings/backend/internal/integration/persistence/model"
)

// Logical storage keys, matching the original layout.
const (
	keyGoals    = "goals"
	keyProgress = "progress"
	keySettings = "settings"
	keyProfile  = "profile"
	keyFriends  = "friends"

	probeKey = "__probe"
)

// KVStore wraps the kv_records table with JSON (de)serialization. Reads
// distinguish an absent key (found=false, nil error) from an unreachable
// store (ErrStorageUnavailable), so callers can tell "no data yet" from
// "storage down".
type KVStore struct {
	db *gorm.DB
}

// NewKVStore creates a new KV store over the given database handle.
func NewKVStore(db *gorm.DB) *KVStore {
	return &KVStore{
		db: db,
	}
}

// WithTx returns a store bound to the given transaction handle.
func (s *KVStore) WithTx(tx *gorm.DB) *KVStore {
	return &KVStore{
		db: tx,
	}
}

// Read decodes the JSON document stored under key into dest.
func (s *KVStore) Read(ctx context.Context, key string, dest interface{}) (bool, error) {
	var record model.KVRecord
	result := s.db.WithContext(ctx).Where("key = ?", key).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", domainerror.ErrStorageUnavailable, result.Error)
	}

	if err := json.Unmarshal([]byte(record.Value), dest); err != nil {
		return false, fmt.Errorf("failed to decode document %q: %w", key, err)
	}
	return true, nil
}

// Write persists the JSON encoding of value under key, inserting or replacing.
func (s *KVStore) Write(ctx context.Context, key string, value interface{}) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode document %q: %w", key, err)
	}

	record := model.KVRecord{
		Key:       key,
		Value:     string(encoded),
		UpdatedAt: time.Now().UTC(),
	}
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", domainerror.ErrStorageUnavailable, result.Error)
	}
	return nil
}

// Delete removes the document stored under key. Deleting an absent key is a
// no-op.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	result := s.db.WithContext(ctx).Delete(&model.KVRecord{}, "key = ?", key)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", domainerror.ErrStorageUnavailable, result.Error)
	}
	return nil
}

// IsAvailable probes whether the store can be written to and read back.
func (s *KVStore) IsAvailable(ctx context.Context) bool {
	if err := s.Write(ctx, probeKey, "1"); err != nil {
		return false
	}
	var probe string
	found, err := s.Read(ctx, probeKey, &probe)
	if err != nil || !found {
		return false
	}
	return s.Delete(ctx, probeKey) == nil
}
