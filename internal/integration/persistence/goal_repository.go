package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marcus-savings/backend/internal/application/adapter"
	"github.com/marcus-savings/backend/internal/domain/entity"
	domainerror "github.com/marcus-savings/backend/internal/domain/error"
	"github.com/marcus-savings/backend/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface on the KV
// store. The full collection is read, modified, and written back on every
// mutation; single-writer execution makes that safe.
type goalRepository struct {
	db    *gorm.DB
	store *KVStore
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db:    db,
		store: NewKVStore(db),
	}
}

// List retrieves all goals in insertion order.
func (r *goalRepository) List(ctx context.Context) ([]*entity.Goal, error) {
	return listGoals(ctx, r.store)
}

// FindByID retrieves a goal by its ID.
func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	goals, err := listGoals(ctx, r.store)
	if err != nil {
		return nil, err
	}
	for _, goal := range goals {
		if goal.ID == id {
			return goal, nil
		}
	}
	return nil, domainerror.ErrGoalNotFound
}

// Upsert inserts or replaces the goal and persists the full collection.
func (r *goalRepository) Upsert(ctx context.Context, goal *entity.Goal) error {
	return upsertGoal(ctx, r.store, goal)
}

// Delete removes the goal with the given ID, a no-op when absent.
func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	goals, err := listGoals(ctx, r.store)
	if err != nil {
		return err
	}

	remaining := make([]model.GoalRecord, 0, len(goals))
	for _, goal := range goals {
		if goal.ID != id {
			remaining = append(remaining, model.GoalFromEntity(goal))
		}
	}
	return r.store.Write(ctx, keyGoals, remaining)
}

// ListProgress retrieves the full progress log in insertion order.
func (r *goalRepository) ListProgress(ctx context.Context) ([]entity.ProgressEntry, error) {
	return listProgress(ctx, r.store)
}

// SaveWithProgress appends the entry to the progress log and replaces the
// goal inside one transaction, so the two writes commit or fail together.
func (r *goalRepository) SaveWithProgress(ctx context.Context, goal *entity.Goal, entry entity.ProgressEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txStore := r.store.WithTx(tx)

		log, err := listProgress(ctx, txStore)
		if err != nil {
			return err
		}
		records := make([]model.ProgressRecord, 0, len(log)+1)
		for _, e := range log {
			records = append(records, model.ProgressFromEntity(e))
		}
		records = append(records, model.ProgressFromEntity(entry))

		if err := txStore.Write(ctx, keyProgress, records); err != nil {
			return err
		}
		return upsertGoal(ctx, txStore, goal)
	})
}

// ReplaceAll overwrites the goal collection and progress log.
func (r *goalRepository) ReplaceAll(ctx context.Context, goals []*entity.Goal, progress []entity.ProgressEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txStore := r.store.WithTx(tx)

		goalRecords := make([]model.GoalRecord, 0, len(goals))
		for _, goal := range goals {
			goalRecords = append(goalRecords, model.GoalFromEntity(goal))
		}
		if err := txStore.Write(ctx, keyGoals, goalRecords); err != nil {
			return err
		}

		progressRecords := make([]model.ProgressRecord, 0, len(progress))
		for _, entry := range progress {
			progressRecords = append(progressRecords, model.ProgressFromEntity(entry))
		}
		return txStore.Write(ctx, keyProgress, progressRecords)
	})
}

// Clear removes the goal collection and the progress log.
func (r *goalRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, keyGoals); err != nil {
		return err
	}
	return r.store.Delete(ctx, keyProgress)
}

func listGoals(ctx context.Context, store *KVStore) ([]*entity.Goal, error) {
	var records []model.GoalRecord
	found, err := store.Read(ctx, keyGoals, &records)
	if err != nil {
		return nil, err
	}
	if !found {
		return []*entity.Goal{}, nil
	}

	goals := make([]*entity.Goal, 0, len(records))
	for _, record := range records {
		goal, err := record.ToEntity()
		if err != nil {
			return nil, fmt.Errorf("corrupt goal record %s: %w", record.ID, err)
		}
		goals = append(goals, goal)
	}
	return goals, nil
}

func listProgress(ctx context.Context, store *KVStore) ([]entity.ProgressEntry, error) {
	var records []model.ProgressRecord
	found, err := store.Read(ctx, keyProgress, &records)
	if err != nil {
		return nil, err
	}
	if !found {
		return []entity.ProgressEntry{}, nil
	}

	entries := make([]entity.ProgressEntry, len(records))
	for i, record := range records {
		entries[i] = record.ToEntity()
	}
	return entries, nil
}

func upsertGoal(ctx context.Context, store *KVStore, goal *entity.Goal) error {
	goals, err := listGoals(ctx, store)
	if err != nil {
		return err
	}

	records := make([]model.GoalRecord, 0, len(goals)+1)
	replaced := false
	for _, existing := range goals {
		if existing.ID == goal.ID {
			records = append(records, model.GoalFromEntity(goal))
			replaced = true
		} else {
			records = append(records, model.GoalFromEntity(existing))
		}
	}
	if !replaced {
		records = append(records, model.GoalFromEntity(goal))
	}
	return store.Write(ctx, keyGoals, records)
}
