// Package validation implements the pure goal validation engine. Every check
// returns an empty string when the value is valid or a human-readable message
// describing the first violation. Nothing in this package touches storage.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/marcus-savings/backend/internal/domain/entity"
)

const (
	// DateLayout is the wire format for goal end dates.
	DateLayout = "2006-01-02"

	minNameLength = 2
	maxNameLength = 50
)

// overflowTolerance allows progress to overshoot the target by 10%.
var overflowTolerance = decimal.NewFromFloat(1.1)

// Policy holds the tunable validation constants.
type Policy struct {
	MaxActiveGoals   int
	MinTargetAmount  decimal.Decimal
	MaxTargetAmount  decimal.Decimal
	MaxProgressEntry decimal.Decimal
	HorizonYears     int
}

// DefaultPolicy returns the canonical policy: at most 10 active goals,
// targets between $1 and $1,000,000, progress entries up to $10,000, and end
// dates no more than 5 years out.
func DefaultPolicy() Policy {
	return Policy{
		MaxActiveGoals:   10,
		MinTargetAmount:  decimal.NewFromInt(1),
		MaxTargetAmount:  decimal.NewFromInt(1_000_000),
		MaxProgressEntry: decimal.NewFromInt(10_000),
		HorizonYears:     5,
	}
}

// GoalForm carries the raw form fields for goal creation and editing.
type GoalForm struct {
	Name         string
	Category     string
	TargetAmount string
	EndDate      string
}

// Kind classifies a violation so callers can map it to an error code without
// inspecting message text.
type Kind int

const (
	KindInvalidField Kind = iota
	KindDuplicateName
	KindLimitReached
)

// Result aggregates per-field validation outcomes. Errors maps field name to
// the first violation for that field, Kinds carries each field's violation
// kind, and First holds the leading violation in check order (name,
// targetAmount, endDate, limit).
type Result struct {
	IsValid bool
	Errors  map[string]string
	Kinds   map[string]Kind
	First   string
}

// GoalName validates the goal name field.
func GoalName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "Goal name is required"
	}
	if len([]rune(trimmed)) < minNameLength {
		return fmt.Sprintf("Goal name must be at least %d characters", minNameLength)
	}
	if len([]rune(trimmed)) > maxNameLength {
		return fmt.Sprintf("Goal name must be less than %d characters", maxNameLength)
	}
	return ""
}

// TargetAmount validates the target amount field against the policy bounds.
func TargetAmount(amount string, policy Policy) string {
	if strings.TrimSpace(amount) == "" {
		return "Target amount is required"
	}
	value, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return "Target amount is required"
	}
	if value.LessThan(policy.MinTargetAmount) {
		return fmt.Sprintf("Target amount must be at least $%s", groupThousands(policy.MinTargetAmount))
	}
	if value.GreaterThan(policy.MaxTargetAmount) {
		return fmt.Sprintf("Target amount must be less than $%s", groupThousands(policy.MaxTargetAmount))
	}
	return ""
}

// TargetDate validates the end date field: strictly after tomorrow and within
// the policy horizon. now anchors the comparison so the check stays pure.
func TargetDate(date string, now time.Time, policy Policy) string {
	if strings.TrimSpace(date) == "" {
		return "Target date is required"
	}
	target, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return "Target date is required"
	}

	tomorrow := now.AddDate(0, 0, 1)
	if !target.After(tomorrow) {
		return "Target date must be at least tomorrow"
	}

	horizon := now.AddDate(policy.HorizonYears, 0, 0)
	if target.After(horizon) {
		return fmt.Sprintf("Target date cannot be more than %d years in the future", policy.HorizonYears)
	}
	return ""
}

// ProgressAmount validates a single contribution: positive, bounded per
// entry, and not pushing the goal past its target by more than 10%.
func ProgressAmount(amount string, currentAmount, targetAmount decimal.Decimal, policy Policy) string {
	if strings.TrimSpace(amount) == "" {
		return "Progress amount is required"
	}
	value, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return "Progress amount is required"
	}
	if value.LessThanOrEqual(decimal.Zero) {
		return "Progress amount must be greater than 0"
	}
	if value.GreaterThan(policy.MaxProgressEntry) {
		return fmt.Sprintf("Progress amount cannot exceed $%s in a single entry", groupThousands(policy.MaxProgressEntry))
	}
	if currentAmount.Add(value).GreaterThan(targetAmount.Mul(overflowTolerance)) {
		return "Progress would exceed target by more than 10%"
	}
	return ""
}

// ValidateGoal aggregates the per-field checks plus the duplicate-name and
// active-goal-ceiling checks against the existing collection. Callers editing
// a goal must exclude it from existing before calling.
func ValidateGoal(form GoalForm, existing []*entity.Goal, now time.Time, policy Policy) Result {
	errors := make(map[string]string)
	kinds := make(map[string]Kind)
	first := ""

	record := func(field, message string, kind Kind) {
		if message == "" {
			return
		}
		if _, taken := errors[field]; !taken {
			errors[field] = message
			kinds[field] = kind
		}
		if first == "" {
			first = message
		}
	}

	record("name", GoalName(form.Name), KindInvalidField)
	if errors["name"] == "" && hasDuplicateName(form.Name, existing) {
		record("name", "A goal with this name already exists", KindDuplicateName)
	}

	record("targetAmount", TargetAmount(form.TargetAmount, policy), KindInvalidField)
	record("endDate", TargetDate(form.EndDate, now, policy), KindInvalidField)

	if countActive(existing) >= policy.MaxActiveGoals {
		record("limit", fmt.Sprintf("You can have a maximum of %d active goals", policy.MaxActiveGoals), KindLimitReached)
	}

	return Result{
		IsValid: len(errors) == 0,
		Errors:  errors,
		Kinds:   kinds,
		First:   first,
	}
}

func hasDuplicateName(name string, existing []*entity.Goal) bool {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, goal := range existing {
		if strings.ToLower(strings.TrimSpace(goal.Name)) == normalized {
			return true
		}
	}
	return false
}

func countActive(goals []*entity.Goal) int {
	count := 0
	for _, goal := range goals {
		if !goal.IsCompleted {
			count++
		}
	}
	return count
}

// groupThousands renders a decimal with comma-grouped integer digits for
// validation messages, e.g. 1000000 -> "1,000,000".
func groupThousands(value decimal.Decimal) string {
	text := value.String()
	intPart, fracPart, hasFrac := strings.Cut(text, ".")

	negative := strings.HasPrefix(intPart, "-")
	if negative {
		intPart = intPart[1:]
	}

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	grouped := b.String()
	if negative {
		grouped = "-" + grouped
	}
	if hasFrac {
		grouped += "." + fracPart
	}
	return grouped
}
