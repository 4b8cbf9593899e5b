package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/marcus-savings/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation. Amount and
// date fields are deliberately unvalidated at the binding layer; the
// validation engine produces the user-facing messages.
type CreateGoalRequest struct {
	Name         string           `json:"name"`
	Category     string           `json:"category"`
	TargetAmount *decimal.Decimal `json:"targetAmount"`
	EndDate      string           `json:"endDate"`
}

// UpdateGoalRequest represents the request body for goal editing. Nil fields
// are left unchanged.
type UpdateGoalRequest struct {
	Name         *string          `json:"name,omitempty"`
	Category     *string          `json:"category,omitempty"`
	TargetAmount *decimal.Decimal `json:"targetAmount,omitempty"`
	EndDate      *string          `json:"endDate,omitempty"`
}

// AddProgressRequest represents the request body for recording a contribution.
type AddProgressRequest struct {
	Amount *decimal.Decimal `json:"amount"`
}

// ProgressEntryResponse represents one progress entry in API responses.
type ProgressEntryResponse struct {
	ID     string    `json:"id"`
	GoalID string    `json:"goalId"`
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID              string                  `json:"id"`
	Name            string                  `json:"name"`
	Category        string                  `json:"category"`
	TargetAmount    float64                 `json:"targetAmount"`
	CurrentAmount   float64                 `json:"currentAmount"`
	EndDate         string                  `json:"endDate"`
	CreatedAt       time.Time               `json:"createdAt"`
	ProgressHistory []ProgressEntryResponse `json:"progressHistory"`
	IsCompleted     bool                    `json:"isCompleted"`
	CompletedAt     *time.Time              `json:"completedAt"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	history := make([]ProgressEntryResponse, len(g.ProgressHistory))
	for i, entry := range g.ProgressHistory {
		history[i] = ToProgressEntryResponse(entry)
	}

	return GoalResponse{
		ID:              g.ID.String(),
		Name:            g.Name,
		Category:        g.Category,
		TargetAmount:    g.TargetAmount.InexactFloat64(),
		CurrentAmount:   g.CurrentAmount.InexactFloat64(),
		EndDate:         g.EndDate.Format("2006-01-02"),
		CreatedAt:       g.CreatedAt,
		ProgressHistory: history,
		IsCompleted:     g.IsCompleted,
		CompletedAt:     g.CompletedAt,
	}
}

// ToProgressEntryResponse converts a domain ProgressEntry to its DTO.
func ToProgressEntryResponse(entry entity.ProgressEntry) ProgressEntryResponse {
	return ProgressEntryResponse{
		ID:     entry.ID.String(),
		GoalID: entry.GoalID.String(),
		Amount: entry.Amount.InexactFloat64(),
		Date:   entry.Date,
	}
}

// ToGoalListResponse converts a goal collection to a GoalListResponse DTO.
func ToGoalListResponse(goals []*entity.Goal) GoalListResponse {
	response := GoalListResponse{
		Goals: make([]GoalResponse, len(goals)),
	}
	for i, goal := range goals {
		response.Goals[i] = ToGoalResponse(goal)
	}
	return response
}

// AmountString renders an optional decimal request field as the raw string
// the validation engine expects, empty when the field was absent.
func AmountString(amount *decimal.Decimal) string {
	if amount == nil {
		return ""
	}
	return amount.String()
}
