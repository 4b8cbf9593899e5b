package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/marcus-savings/backend/internal/domain/entity"
)

var testNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func TestGoalName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty name",
			input:    "",
			expected: "Goal name is required",
		},
		{
			name:     "whitespace only",
			input:    "   ",
			expected: "Goal name is required",
		},
		{
			name:     "single character",
			input:    "A",
			expected: "Goal name must be at least 2 characters",
		},
		{
			name:     "two characters is valid",
			input:    "Ab",
			expected: "",
		},
		{
			name:     "surrounding whitespace is trimmed",
			input:    "  New Car  ",
			expected: "",
		},
		{
			name:     "fifty characters is valid",
			input:    strings.Repeat("a", 50),
			expected: "",
		},
		{
			name:     "fifty-one characters is too long",
			input:    strings.Repeat("a", 51),
			expected: "Goal name must be less than 50 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GoalName(tt.input); got != tt.expected {
				t.Errorf("GoalName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTargetAmount(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty amount",
			input:    "",
			expected: "Target amount is required",
		},
		{
			name:     "non-numeric amount",
			input:    "abc",
			expected: "Target amount is required",
		},
		{
			name:     "below minimum",
			input:    "0.5",
			expected: "Target amount must be at least $1",
		},
		{
			name:     "at minimum",
			input:    "1",
			expected: "",
		},
		{
			name:     "at maximum",
			input:    "1000000",
			expected: "",
		},
		{
			name:     "above maximum",
			input:    "1000001",
			expected: "Target amount must be less than $1,000,000",
		},
		{
			name:     "decimal amount",
			input:    "2500.75",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TargetAmount(tt.input, policy); got != tt.expected {
				t.Errorf("TargetAmount(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTargetDate(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty date",
			input:    "",
			expected: "Target date is required",
		},
		{
			name:     "malformed date",
			input:    "03/10/2026",
			expected: "Target date is required",
		},
		{
			name:     "today",
			input:    "2026-03-10",
			expected: "Target date must be at least tomorrow",
		},
		{
			name:     "tomorrow is still too soon",
			input:    "2026-03-11",
			expected: "Target date must be at least tomorrow",
		},
		{
			name:     "day after tomorrow",
			input:    "2026-03-12",
			expected: "",
		},
		{
			name:     "just inside the horizon",
			input:    "2031-03-09",
			expected: "",
		},
		{
			name:     "beyond the horizon",
			input:    "2031-03-11",
			expected: "Target date cannot be more than 5 years in the future",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TargetDate(tt.input, testNow, policy); got != tt.expected {
				t.Errorf("TargetDate(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestProgressAmount(t *testing.T) {
	policy := DefaultPolicy()
	current := decimal.NewFromInt(900)
	target := decimal.NewFromInt(1000)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty amount",
			input:    "",
			expected: "Progress amount is required",
		},
		{
			name:     "non-numeric amount",
			input:    "ten",
			expected: "Progress amount is required",
		},
		{
			name:     "zero",
			input:    "0",
			expected: "Progress amount must be greater than 0",
		},
		{
			name:     "negative",
			input:    "-5",
			expected: "Progress amount must be greater than 0",
		},
		{
			name:     "over the per-entry cap",
			input:    "10001",
			expected: "Progress amount cannot exceed $10,000 in a single entry",
		},
		{
			name:     "within the 10% tolerance",
			input:    "200",
			expected: "",
		},
		{
			name:     "exactly at the 10% tolerance",
			input:    "200.00",
			expected: "",
		},
		{
			name:     "beyond the 10% tolerance",
			input:    "201",
			expected: "Progress would exceed target by more than 10%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProgressAmount(tt.input, current, target, policy); got != tt.expected {
				t.Errorf("ProgressAmount(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestValidateGoal(t *testing.T) {
	policy := DefaultPolicy()

	validForm := GoalForm{
		Name:         "Emergency Fund",
		Category:     "Emergency Savings",
		TargetAmount: "5000",
		EndDate:      "2026-09-01",
	}

	t.Run("valid form with no existing goals", func(t *testing.T) {
		result := ValidateGoal(validForm, nil, testNow, policy)
		if !result.IsValid {
			t.Fatalf("expected valid, got errors %v", result.Errors)
		}
		if result.First != "" {
			t.Errorf("expected empty First, got %q", result.First)
		}
	})

	t.Run("duplicate name is case-insensitive", func(t *testing.T) {
		existing := []*entity.Goal{
			entity.NewGoal("emergency fund", "Emergency Savings", decimal.NewFromInt(100), testNow.AddDate(0, 6, 0)),
		}
		result := ValidateGoal(validForm, existing, testNow, policy)
		if result.IsValid {
			t.Fatal("expected duplicate name to be rejected")
		}
		if result.Errors["name"] != "A goal with this name already exists" {
			t.Errorf("unexpected name error: %q", result.Errors["name"])
		}
		if result.Kinds["name"] != KindDuplicateName {
			t.Errorf("expected duplicate kind, got %v", result.Kinds["name"])
		}
	})

	t.Run("first violation wins per field", func(t *testing.T) {
		form := GoalForm{Name: "", TargetAmount: "", EndDate: ""}
		result := ValidateGoal(form, nil, testNow, policy)
		if result.IsValid {
			t.Fatal("expected invalid result")
		}
		if result.First != "Goal name is required" {
			t.Errorf("expected name error first, got %q", result.First)
		}
		if len(result.Errors) != 3 {
			t.Errorf("expected 3 field errors, got %d: %v", len(result.Errors), result.Errors)
		}
		for field, kind := range result.Kinds {
			if kind != KindInvalidField {
				t.Errorf("expected invalid-field kind for %s, got %v", field, kind)
			}
		}
	})

	t.Run("active goal ceiling", func(t *testing.T) {
		existing := make([]*entity.Goal, 0, policy.MaxActiveGoals)
		for i := 0; i < policy.MaxActiveGoals; i++ {
			existing = append(existing, entity.NewGoal(
				"Goal "+string(rune('A'+i)),
				"Major Purchase",
				decimal.NewFromInt(100),
				testNow.AddDate(0, 6, 0),
			))
		}

		result := ValidateGoal(validForm, existing, testNow, policy)
		if result.IsValid {
			t.Fatal("expected ceiling to reject creation")
		}
		if result.Errors["limit"] != "You can have a maximum of 10 active goals" {
			t.Errorf("unexpected limit error: %q", result.Errors["limit"])
		}
		if result.Kinds["limit"] != KindLimitReached {
			t.Errorf("expected limit kind, got %v", result.Kinds["limit"])
		}
	})

	t.Run("completed goals do not count toward the ceiling", func(t *testing.T) {
		existing := make([]*entity.Goal, 0, policy.MaxActiveGoals)
		for i := 0; i < policy.MaxActiveGoals; i++ {
			goal := entity.NewGoal(
				"Goal "+string(rune('A'+i)),
				"Major Purchase",
				decimal.NewFromInt(100),
				testNow.AddDate(0, 6, 0),
			)
			goal.IsCompleted = true
			existing = append(existing, goal)
		}

		result := ValidateGoal(validForm, existing, testNow, policy)
		if !result.IsValid {
			t.Fatalf("expected valid, got errors %v", result.Errors)
		}
	})
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{1, "1"},
		{999, "999"},
		{1000, "1,000"},
		{10000, "10,000"},
		{1000000, "1,000,000"},
	}

	for _, tt := range tests {
		if got := groupThousands(decimal.NewFromInt(tt.input)); got != tt.expected {
			t.Errorf("groupThousands(%d) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
