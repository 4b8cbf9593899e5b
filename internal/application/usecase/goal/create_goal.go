// Package goal contains goal lifecycle use cases.
package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/marcus-savings/backend/internal/application/adapter"
	"github.com/marcus-savings/backend/internal/domain/entity"
	domainerror "github.com/marcus-savings/backend/internal/domain/error"
	"github.com/marcus-savings/backend/internal/domain/validation"
)

// CreateGoalInput represents the raw form data for goal creation.
type CreateGoalInput struct {
	Name         string
	Category     string
	TargetAmount string
	EndDate      string
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	policy   validation.Policy
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository, policy validation.Policy) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
		policy:   policy,
	}
}

// Execute validates the form against the existing collection and persists a
// new goal with a fresh ID, zero progress, and an empty history.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	existing, err := uc.goalRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	form := validation.GoalForm{
		Name:         input.Name,
		Category:     input.Category,
		TargetAmount: input.TargetAmount,
		EndDate:      input.EndDate,
	}

	result := validation.ValidateGoal(form, existing, time.Now().UTC(), uc.policy)
	if !result.IsValid {
		return nil, domainerror.NewValidationError(classifyValidation(result), result.First, result.Errors)
	}

	// Parse errors are impossible past validation.
	targetAmount, _ := decimal.NewFromString(strings.TrimSpace(input.TargetAmount))
	endDate, _ := time.Parse(validation.DateLayout, strings.TrimSpace(input.EndDate))

	goal := entity.NewGoal(strings.TrimSpace(input.Name), input.Category, targetAmount, endDate)

	if err := uc.goalRepo.Upsert(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{Goal: goal}, nil
}

// classifyValidation picks the error code for a failed validation result
// based on the tagged violation kinds.
func classifyValidation(result validation.Result) domainerror.GoalErrorCode {
	if result.Kinds["limit"] == validation.KindLimitReached && len(result.Errors) == 1 {
		return domainerror.ErrCodeGoalLimitReached
	}
	if result.Kinds["name"] == validation.KindDuplicateName {
		return domainerror.ErrCodeDuplicateName
	}
	return domainerror.ErrCodeGoalValidation
}
