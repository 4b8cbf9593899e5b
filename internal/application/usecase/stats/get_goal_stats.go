// Package stats contains the aggregation use cases. Statistics are
// recomputed from the full goal collection on every call; there is no cache
// and therefore no invalidation.
package stats

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/marcus-savings/backend/internal/application/adapter"
	"github.com/marcus-savings/backend/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// GoalPartition carries the collection partitioned for rendering.
type GoalPartition struct {
	Active    []*entity.Goal
	Completed []*entity.Goal
	All       []*entity.Goal
}

// GoalStats holds the derived statistics over the goal collection.
type GoalStats struct {
	Active          int
	Completed       int
	TotalSaved      decimal.Decimal
	TotalTarget     decimal.Decimal
	OverallProgress decimal.Decimal
	Goals           GoalPartition
}

// GetGoalStatsUseCase recomputes goal statistics on demand.
type GetGoalStatsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetGoalStatsUseCase creates a new GetGoalStatsUseCase instance.
func NewGetGoalStatsUseCase(goalRepo adapter.GoalRepository) *GetGoalStatsUseCase {
	return &GetGoalStatsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute derives the statistics from the current collection. TotalSaved sums
// every goal's current amount; TotalTarget sums targets of active goals only.
func (uc *GetGoalStatsUseCase) Execute(ctx context.Context) (*GoalStats, error) {
	goals, err := uc.goalRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}
	return Compute(goals), nil
}

// Compute derives GoalStats from a goal collection. Exposed separately so
// other aggregations can reuse it without another repository read.
func Compute(goals []*entity.Goal) *GoalStats {
	partition := GoalPartition{All: goals}
	totalSaved := decimal.Zero
	totalTarget := decimal.Zero

	for _, goal := range goals {
		totalSaved = totalSaved.Add(goal.CurrentAmount)
		if goal.IsCompleted {
			partition.Completed = append(partition.Completed, goal)
		} else {
			partition.Active = append(partition.Active, goal)
			totalTarget = totalTarget.Add(goal.TargetAmount)
		}
	}

	return &GoalStats{
		Active:          len(partition.Active),
		Completed:       len(partition.Completed),
		TotalSaved:      totalSaved,
		TotalTarget:     totalTarget,
		OverallProgress: Percentage(totalSaved, totalTarget),
		Goals:           partition,
	}
}

// Percentage returns current over target as a percentage rounded half-up to
// one decimal place, 0 when target is not positive, capped at 100.
func Percentage(current, target decimal.Decimal) decimal.Decimal {
	if target.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	percent := current.Div(target).Mul(hundred).Round(1)
	if percent.GreaterThan(hundred) {
		return hundred
	}
	return percent
}
