package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/marcus-savings/backend/internal/application/adapter"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	GoalID uuid.UUID
}

// DeleteGoalUseCase handles goal deletion logic.
type DeleteGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute removes the goal. Deleting an unknown ID is a no-op.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	if err := uc.goalRepo.Delete(ctx, input.GoalID); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return nil
}
