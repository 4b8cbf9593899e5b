package stats

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/marcus-savings/backend/internal/application/adapter"
)

var (
	bigSaverThreshold  = decimal.NewFromInt(10_000)
	risingStarProgress = decimal.NewFromFloat(0.5)
)

// Achievement is one definition from the closed achievement set: an
// identifier, display data, and a predicate evaluated against current stats.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Emoji       string
	Unlocked    func(stats *GoalStats) bool
}

// Achievements returns the closed set of achievement definitions. The
// streak- and timing-based ones need a contribution time series the tracker
// does not keep, so their predicates evaluate false.
func Achievements() []Achievement {
	return []Achievement{
		{
			ID:          "first_goal",
			Name:        "First Goal",
			Description: "Created your first savings goal",
			Emoji:       "🎯",
			Unlocked: func(stats *GoalStats) bool {
				return len(stats.Goals.All) >= 1
			},
		},
		{
			ID:          "consistent_saver",
			Name:        "Consistent Saver",
			Description: "Added progress for 7 consecutive days",
			Emoji:       "📈",
			Unlocked: func(stats *GoalStats) bool {
				return false
			},
		},
		{
			ID:          "goal_crusher",
			Name:        "Goal Crusher",
			Description: "Completed your first goal",
			Emoji:       "💪",
			Unlocked: func(stats *GoalStats) bool {
				return stats.Completed >= 1
			},
		},
		{
			ID:          "big_saver",
			Name:        "Big Saver",
			Description: "Saved over $10,000 total",
			Emoji:       "💰",
			Unlocked: func(stats *GoalStats) bool {
				return stats.TotalSaved.GreaterThanOrEqual(bigSaverThreshold)
			},
		},
		{
			ID:          "milestone_master",
			Name:        "Milestone Master",
			Description: "Completed 3 goals",
			Emoji:       "🏆",
			Unlocked: func(stats *GoalStats) bool {
				return stats.Completed >= 3
			},
		},
		{
			ID:          "rising_star",
			Name:        "Rising Star",
			Description: "Reached 50% progress on any goal",
			Emoji:       "⭐",
			Unlocked: func(stats *GoalStats) bool {
				for _, goal := range stats.Goals.All {
					if goal.TargetAmount.IsPositive() &&
						goal.CurrentAmount.Div(goal.TargetAmount).GreaterThanOrEqual(risingStarProgress) {
						return true
					}
				}
				return false
			},
		},
		{
			ID:          "perfectionist",
			Name:        "Perfectionist",
			Description: "Completed a goal exactly on target date",
			Emoji:       "🎪",
			Unlocked: func(stats *GoalStats) bool {
				return false
			},
		},
		{
			ID:          "speed_saver",
			Name:        "Speed Saver",
			Description: "Completed a goal in under 30 days",
			Emoji:       "⚡",
			Unlocked: func(stats *GoalStats) bool {
				return false
			},
		},
	}
}

// AchievementStatus pairs a definition with its evaluated state.
type AchievementStatus struct {
	Achievement
	IsUnlocked bool
}

// GetAchievementsOutput represents the evaluated achievement set.
type GetAchievementsOutput struct {
	Achievements []AchievementStatus
}

// GetAchievementsUseCase evaluates every achievement against current stats.
type GetAchievementsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetAchievementsUseCase creates a new GetAchievementsUseCase instance.
func NewGetAchievementsUseCase(goalRepo adapter.GoalRepository) *GetAchievementsUseCase {
	return &GetAchievementsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute evaluates the full achievement set against freshly computed stats.
func (uc *GetAchievementsUseCase) Execute(ctx context.Context) (*GetAchievementsOutput, error) {
	goals, err := uc.goalRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	current := Compute(goals)
	definitions := Achievements()
	statuses := make([]AchievementStatus, 0, len(definitions))
	for _, definition := range definitions {
		statuses = append(statuses, AchievementStatus{
			Achievement: definition,
			IsUnlocked:  definition.Unlocked(current),
		})
	}

	return &GetAchievementsOutput{Achievements: statuses}, nil
}
