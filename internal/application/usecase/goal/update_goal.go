package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marcus-savings/backend/internal/application/adapter"
	"github.com/marcus-savings/backend/internal/domain/entity"
	domainerror "github.com/marcus-savings/backend/internal/domain/error"
	"github.com/marcus-savings/backend/internal/domain/validation"
)

// UpdateGoalInput represents a partial goal edit. Nil fields are left unchanged.
type UpdateGoalInput struct {
	GoalID       uuid.UUID
	Name         *string
	Category     *string
	TargetAmount *string
	EndDate      *string
}

// UpdateGoalOutput represents the output of a goal edit.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal editing logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	policy   validation.Policy
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository, policy validation.Policy) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
		policy:   policy,
	}
}

// Execute merges the updates into the stored goal. When name, target amount,
// or end date change, the merged result is re-validated with the edited goal
// excluded from the duplicate-name and ceiling checks.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return nil, err
	}

	needsValidation := false

	if input.Name != nil {
		goal.Name = strings.TrimSpace(*input.Name)
		needsValidation = true
	}
	if input.Category != nil {
		goal.Category = *input.Category
	}
	if input.TargetAmount != nil {
		needsValidation = true
	}
	if input.EndDate != nil {
		needsValidation = true
	}

	if needsValidation {
		form := validation.GoalForm{
			Name:         goal.Name,
			Category:     goal.Category,
			TargetAmount: goal.TargetAmount.String(),
			EndDate:      goal.EndDate.Format(validation.DateLayout),
		}
		if input.TargetAmount != nil {
			form.TargetAmount = *input.TargetAmount
		}
		if input.EndDate != nil {
			form.EndDate = *input.EndDate
		}

		existing, err := uc.goalRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load goals: %w", err)
		}
		others := make([]*entity.Goal, 0, len(existing))
		for _, g := range existing {
			if g.ID != goal.ID {
				others = append(others, g)
			}
		}

		result := validation.ValidateGoal(form, others, time.Now().UTC(), uc.policy)
		if !result.IsValid {
			return nil, domainerror.NewValidationError(classifyValidation(result), result.First, result.Errors)
		}

		if input.TargetAmount != nil {
			goal.TargetAmount, _ = decimal.NewFromString(strings.TrimSpace(*input.TargetAmount))
		}
		if input.EndDate != nil {
			goal.EndDate, _ = time.Parse(validation.DateLayout, strings.TrimSpace(*input.EndDate))
		}
	}

	if err := uc.goalRepo.Upsert(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{Goal: goal}, nil
}
