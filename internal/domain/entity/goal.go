// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal represents a savings target in the Marcus Savings Tracker.
type Goal struct {
	ID              uuid.UUID
	Name            string
	Category        string
	TargetAmount    decimal.Decimal
	CurrentAmount   decimal.Decimal
	EndDate         time.Time
	CreatedAt       time.Time
	ProgressHistory []ProgressEntry
	IsCompleted     bool
	CompletedAt     *time.Time
}

// ProgressEntry is an immutable record of a single contribution toward a goal.
type ProgressEntry struct {
	ID     uuid.UUID
	GoalID uuid.UUID
	Amount decimal.Decimal
	Date   time.Time
}

// NewGoal creates a new Goal entity with a fresh identifier, a zero current
// amount, and an empty progress history.
func NewGoal(name, category string, targetAmount decimal.Decimal, endDate time.Time) *Goal {
	return &Goal{
		ID:              uuid.New(),
		Name:            name,
		Category:        category,
		TargetAmount:    targetAmount,
		CurrentAmount:   decimal.Zero,
		EndDate:         endDate,
		CreatedAt:       time.Now().UTC(),
		ProgressHistory: []ProgressEntry{},
	}
}

// NewProgressEntry creates a progress entry for a goal stamped with the
// current time.
func NewProgressEntry(goalID uuid.UUID, amount decimal.Decimal) ProgressEntry {
	return ProgressEntry{
		ID:     uuid.New(),
		GoalID: goalID,
		Amount: amount,
		Date:   time.Now().UTC(),
	}
}

// ApplyProgress increases the goal's current amount by the entry's amount and
// records the entry in the goal's history. When the current amount reaches the
// target the goal is marked completed; the completion stamp is written once
// and never reverts.
func (g *Goal) ApplyProgress(entry ProgressEntry) {
	g.CurrentAmount = g.CurrentAmount.Add(entry.Amount)
	g.ProgressHistory = append(g.ProgressHistory, entry)

	if !g.IsCompleted && g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount) {
		g.IsCompleted = true
		completedAt := entry.Date
		g.CompletedAt = &completedAt
	}
}
