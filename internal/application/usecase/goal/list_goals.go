package goal

import (
	"context"
	"fmt"

	"github.com/marcus-savings/backend/internal/application/adapter"
	"github.com/marcus-savings/backend/internal/domain/entity"
)

// ListGoalsOutput represents the output of listing all goals.
type ListGoalsOutput struct {
	Goals []*entity.Goal
}

// ListGoalsUseCase handles goal listing.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute retrieves all goals in insertion order.
func (uc *ListGoalsUseCase) Execute(ctx context.Context) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return &ListGoalsOutput{Goals: goals}, nil
}
