package goal

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marcus-savings/backend/internal/application/adapter"
	"github.com/marcus-savings/backend/internal/domain/entity"
	domainerror "github.com/marcus-savings/backend/internal/domain/error"
	"github.com/marcus-savings/backend/internal/domain/validation"
)

// AddProgressInput represents the input for recording a contribution.
type AddProgressInput struct {
	GoalID uuid.UUID
	Amount string
}

// AddProgressOutput represents the output of a recorded contribution.
type AddProgressOutput struct {
	Goal  *entity.Goal
	Entry entity.ProgressEntry
}

// AddProgressUseCase handles contribution recording and completion detection.
type AddProgressUseCase struct {
	goalRepo adapter.GoalRepository
	policy   validation.Policy
}

// NewAddProgressUseCase creates a new AddProgressUseCase instance.
func NewAddProgressUseCase(goalRepo adapter.GoalRepository, policy validation.Policy) *AddProgressUseCase {
	return &AddProgressUseCase{
		goalRepo: goalRepo,
		policy:   policy,
	}
}

// Execute appends a validated progress entry and updates the goal, committing
// both writes as one unit of work. Reaching the target marks the goal
// completed and stamps CompletedAt exactly once.
func (uc *AddProgressUseCase) Execute(ctx context.Context, input AddProgressInput) (*AddProgressOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return nil, err
	}

	if goal.IsCompleted {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalCompleted,
			"cannot add progress to completed goal",
			domainerror.ErrGoalCompleted,
		)
	}

	if message := validation.ProgressAmount(input.Amount, goal.CurrentAmount, goal.TargetAmount, uc.policy); message != "" {
		return nil, domainerror.NewValidationError(
			domainerror.ErrCodeInvalidProgress,
			message,
			map[string]string{"amount": message},
		)
	}

	amount, _ := decimal.NewFromString(strings.TrimSpace(input.Amount))
	entry := entity.NewProgressEntry(goal.ID, amount)
	goal.ApplyProgress(entry)

	if err := uc.goalRepo.SaveWithProgress(ctx, goal, entry); err != nil {
		return nil, fmt.Errorf("failed to save progress: %w", err)
	}

	return &AddProgressOutput{Goal: goal, Entry: entry}, nil
}
