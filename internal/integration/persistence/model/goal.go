package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marcus-savings/backend/internal/domain/entity"
)

// dateLayout is the wire format for calendar dates in stored documents.
const dateLayout = "2006-01-02"

// GoalRecord is the JSON shape of a goal inside the goals document. Field
// names match the original storage layout so exported backups stay readable
// by it.
type GoalRecord struct {
	ID              uuid.UUID        `json:"id"`
	Name            string           `json:"name"`
	Category        string           `json:"category"`
	TargetAmount    decimal.Decimal  `json:"targetAmount"`
	CurrentAmount   decimal.Decimal  `json:"currentAmount"`
	EndDate         string           `json:"endDate"`
	CreatedAt       time.Time        `json:"createdAt"`
	ProgressHistory []ProgressRecord `json:"progressHistory"`
	IsCompleted     bool             `json:"isCompleted"`
	CompletedAt     *time.Time       `json:"completedAt"`
}

// ProgressRecord is the JSON shape of one progress entry.
type ProgressRecord struct {
	ID     uuid.UUID       `json:"id"`
	GoalID uuid.UUID       `json:"goalId"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}

// ToEntity converts a GoalRecord to a domain Goal entity.
func (r *GoalRecord) ToEntity() (*entity.Goal, error) {
	endDate, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", r.EndDate, err)
	}

	history := make([]entity.ProgressEntry, len(r.ProgressHistory))
	for i, p := range r.ProgressHistory {
		history[i] = p.ToEntity()
	}

	return &entity.Goal{
		ID:              r.ID,
		Name:            r.Name,
		Category:        r.Category,
		TargetAmount:    r.TargetAmount,
		CurrentAmount:   r.CurrentAmount,
		EndDate:         endDate,
		CreatedAt:       r.CreatedAt,
		ProgressHistory: history,
		IsCompleted:     r.IsCompleted,
		CompletedAt:     r.CompletedAt,
	}, nil
}

// GoalFromEntity creates a GoalRecord from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) GoalRecord {
	history := make([]ProgressRecord, len(goal.ProgressHistory))
	for i, p := range goal.ProgressHistory {
		history[i] = ProgressFromEntity(p)
	}

	return GoalRecord{
		ID:              goal.ID,
		Name:            goal.Name,
		Category:        goal.Category,
		TargetAmount:    goal.TargetAmount,
		CurrentAmount:   goal.CurrentAmount,
		EndDate:         goal.EndDate.Format(dateLayout),
		CreatedAt:       goal.CreatedAt,
		ProgressHistory: history,
		IsCompleted:     goal.IsCompleted,
		CompletedAt:     goal.CompletedAt,
	}
}

// ToEntity converts a ProgressRecord to a domain ProgressEntry.
func (r ProgressRecord) ToEntity() entity.ProgressEntry {
	return entity.ProgressEntry{
		ID:     r.ID,
		GoalID: r.GoalID,
		Amount: r.Amount,
		Date:   r.Date,
	}
}

// ProgressFromEntity creates a ProgressRecord from a domain ProgressEntry.
func ProgressFromEntity(entry entity.ProgressEntry) ProgressRecord {
	return ProgressRecord{
		ID:     entry.ID,
		GoalID: entry.GoalID,
		Amount: entry.Amount,
		Date:   entry.Date,
	}
}
