package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcus-savings/backend/internal/application/adapter"
	"github.com/marcus-savings/backend/internal/domain/entity"
)

// GetGoalInput represents the input for fetching a single goal.
type GetGoalInput struct {
	GoalID uuid.UUID
}

// GetGoalOutput represents the output of fetching a single goal.
type GetGoalOutput struct {
	Goal *entity.Goal
}

// GetGoalUseCase handles single-goal retrieval.
type GetGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goalRepo adapter.GoalRepository) *GetGoalUseCase {
	return &GetGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute retrieves the goal, returning ErrGoalNotFound when absent.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return nil, err
	}
	return &GetGoalOutput{Goal: goal}, nil
}
