// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcus-savings/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations. The
// repository exclusively owns the persisted collection; every mutation goes
// through it and is persisted immediately.
type GoalRepository interface {
	// List retrieves all goals in insertion order.
	List(ctx context.Context) ([]*entity.Goal, error)

	// FindByID retrieves a goal by its ID, returning ErrGoalNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// Upsert inserts the goal if its ID is unseen, otherwise replaces it in
	// place, and persists the full collection.
	Upsert(ctx context.Context, goal *entity.Goal) error

	// Delete removes the goal with the given ID. Deleting an unknown ID is a
	// no-op, not an error.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListProgress retrieves the full progress log in insertion order.
	ListProgress(ctx context.Context) ([]entity.ProgressEntry, error)

	// SaveWithProgress appends the progress entry to the progress log and
	// replaces the goal, committing both writes as a single unit of work.
	SaveWithProgress(ctx context.Context, goal *entity.Goal, entry entity.ProgressEntry) error

	// ReplaceAll overwrites the goal collection and progress log, used when
	// importing a data backup.
	ReplaceAll(ctx context.Context, goals []*entity.Goal, progress []entity.ProgressEntry) error

	// Clear removes the goal collection and the progress log.
	Clear(ctx context.Context) error
}
