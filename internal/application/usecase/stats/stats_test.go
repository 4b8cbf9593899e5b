package stats

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marcus-savings/backend/internal/domain/entity"
)

// fakeGoalRepository serves a fixed collection for aggregation tests.
type fakeGoalRepository struct {
	goals []*entity.Goal
}

func (r *fakeGoalRepository) List(ctx context.Context) ([]*entity.Goal, error) { return r.goals, nil }

func (r *fakeGoalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	return nil, nil
}

func (r *fakeGoalRepository) Upsert(ctx context.Context, goal *entity.Goal) error { return nil }

func (r *fakeGoalRepository) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fakeGoalRepository) ListProgress(ctx context.Context) ([]entity.ProgressEntry, error) {
	return nil, nil
}

func (r *fakeGoalRepository) SaveWithProgress(ctx context.Context, goal *entity.Goal, entry entity.ProgressEntry) error {
	return nil
}

func (r *fakeGoalRepository) ReplaceAll(ctx context.Context, goals []*entity.Goal, progress []entity.ProgressEntry) error {
	return nil
}

func (r *fakeGoalRepository) Clear(ctx context.Context) error { return nil }

// fakeProfileRepository serves a fixed profile.
type fakeProfileRepository struct {
	profile *entity.Profile
}

func (r *fakeProfileRepository) GetProfile(ctx context.Context) (*entity.Profile, error) {
	return r.profile, nil
}

func (r *fakeProfileRepository) SaveProfile(ctx context.Context, profile *entity.Profile) error {
	return nil
}

func (r *fakeProfileRepository) GetSettings(ctx context.Context) (*entity.Settings, error) {
	return entity.DefaultSettings(), nil
}

func (r *fakeProfileRepository) SaveSettings(ctx context.Context, settings *entity.Settings) error {
	return nil
}

func (r *fakeProfileRepository) Clear(ctx context.Context) error { return nil }

func testGoal(name string, target, current int64, completed bool) *entity.Goal {
	g := entity.NewGoal(name, "other", decimal.NewFromInt(target), time.Now().AddDate(0, 6, 0))
	g.CurrentAmount = decimal.NewFromInt(current)
	g.IsCompleted = completed
	return g
}

func TestCompute(t *testing.T) {
	t.Run("empty collection yields zero stats", func(t *testing.T) {
		stats := Compute(nil)

		if stats.Active != 0 || stats.Completed != 0 {
			t.Errorf("expected zero counts, got active=%d completed=%d", stats.Active, stats.Completed)
		}
		if !stats.TotalSaved.IsZero() || !stats.TotalTarget.IsZero() {
			t.Errorf("expected zero totals, got saved=%s target=%s", stats.TotalSaved, stats.TotalTarget)
		}
		if !stats.OverallProgress.IsZero() {
			t.Errorf("expected zero progress, got %s", stats.OverallProgress)
		}
	})

	t.Run("partitions goals and sums totals", func(t *testing.T) {
		goals := []*entity.Goal{
			testGoal("Emergency Fund", 4000, 1000, false),
			testGoal("Laptop", 1200, 1200, true),
			testGoal("Vacation", 2000, 500, false),
		}

		stats := Compute(goals)

		if stats.Active != 2 {
			t.Errorf("expected 2 active, got %d", stats.Active)
		}
		if stats.Completed != 1 {
			t.Errorf("expected 1 completed, got %d", stats.Completed)
		}
		// Saved counts every goal, target only active ones
		if !stats.TotalSaved.Equal(decimal.NewFromInt(2700)) {
			t.Errorf("expected total saved 2700, got %s", stats.TotalSaved)
		}
		if !stats.TotalTarget.Equal(decimal.NewFromInt(6000)) {
			t.Errorf("expected total target 6000, got %s", stats.TotalTarget)
		}
		if !stats.OverallProgress.Equal(decimal.NewFromInt(45)) {
			t.Errorf("expected overall progress 45, got %s", stats.OverallProgress)
		}
		if len(stats.Goals.All) != 3 {
			t.Errorf("expected 3 goals in All, got %d", len(stats.Goals.All))
		}
	})
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		target   string
		expected string
	}{
		{"zero target", "100", "0", "0"},
		{"negative target", "100", "-5", "0"},
		{"quarter", "250", "1000", "25"},
		{"rounds half up to one decimal", "750.5", "1000", "75.1"},
		{"thirds keep one decimal", "1", "3", "33.3"},
		{"capped at 100", "1100", "1000", "100"},
		{"exact completion", "1000", "1000", "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, _ := decimal.NewFromString(tt.current)
			target, _ := decimal.NewFromString(tt.target)
			expected, _ := decimal.NewFromString(tt.expected)

			got := Percentage(current, target)
			if !got.Equal(expected) {
				t.Errorf("Percentage(%s, %s) = %s, want %s", tt.current, tt.target, got, expected)
			}
		})
	}
}

func TestAchievements(t *testing.T) {
	unlockedSet := func(goals []*entity.Goal) map[string]bool {
		stats := Compute(goals)
		unlocked := make(map[string]bool)
		for _, definition := range Achievements() {
			unlocked[definition.ID] = definition.Unlocked(stats)
		}
		return unlocked
	}

	t.Run("no goals unlocks nothing", func(t *testing.T) {
		unlocked := unlockedSet(nil)
		for id, state := range unlocked {
			if state {
				t.Errorf("achievement %s unexpectedly unlocked", id)
			}
		}
	})

	t.Run("first goal unlocks first_goal only", func(t *testing.T) {
		unlocked := unlockedSet([]*entity.Goal{testGoal("Emergency Fund", 4000, 0, false)})

		if !unlocked["first_goal"] {
			t.Error("expected first_goal to be unlocked")
		}
		if unlocked["goal_crusher"] || unlocked["big_saver"] || unlocked["rising_star"] {
			t.Error("no other achievement should be unlocked")
		}
	})

	t.Run("completion unlocks goal_crusher", func(t *testing.T) {
		unlocked := unlockedSet([]*entity.Goal{testGoal("Laptop", 1200, 1200, true)})

		if !unlocked["goal_crusher"] {
			t.Error("expected goal_crusher to be unlocked")
		}
		if unlocked["milestone_master"] {
			t.Error("milestone_master needs 3 completions")
		}
	})

	t.Run("three completions unlock milestone_master", func(t *testing.T) {
		goals := []*entity.Goal{
			testGoal("A", 100, 100, true),
			testGoal("B", 100, 100, true),
			testGoal("C", 100, 100, true),
		}
		if !unlockedSet(goals)["milestone_master"] {
			t.Error("expected milestone_master to be unlocked")
		}
	})

	t.Run("total savings unlock big_saver at the threshold", func(t *testing.T) {
		if unlockedSet([]*entity.Goal{testGoal("A", 20000, 9999, false)})["big_saver"] {
			t.Error("big_saver must stay locked below $10,000")
		}
		if !unlockedSet([]*entity.Goal{testGoal("A", 20000, 10000, false)})["big_saver"] {
			t.Error("expected big_saver at $10,000")
		}
	})

	t.Run("half progress on any goal unlocks rising_star", func(t *testing.T) {
		goals := []*entity.Goal{
			testGoal("Slow", 1000, 100, false),
			testGoal("Halfway", 1000, 500, false),
		}
		if !unlockedSet(goals)["rising_star"] {
			t.Error("expected rising_star at 50% progress")
		}
	})

	t.Run("time-series achievements stay locked", func(t *testing.T) {
		goals := []*entity.Goal{testGoal("Done", 100, 100, true)}
		unlocked := unlockedSet(goals)
		for _, id := range []string{"consistent_saver", "perfectionist", "speed_saver"} {
			if unlocked[id] {
				t.Errorf("achievement %s requires history the tracker does not keep", id)
			}
		}
	})

	t.Run("the set is stable", func(t *testing.T) {
		definitions := Achievements()
		if len(definitions) != 8 {
			t.Fatalf("expected 8 achievements, got %d", len(definitions))
		}
		seen := make(map[string]bool)
		for _, definition := range definitions {
			if seen[definition.ID] {
				t.Errorf("duplicate achievement id %s", definition.ID)
			}
			seen[definition.ID] = true
		}
	})
}

func TestGetProfileStatsUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("averages progress over active goals only", func(t *testing.T) {
		goals := []*entity.Goal{
			testGoal("Quarter", 1000, 250, false),
			testGoal("Three quarters", 1000, 750, false),
			testGoal("Done", 1000, 1000, true),
		}
		profile := entity.DefaultProfile()
		profile.JoinDate = time.Now().UTC().AddDate(0, 0, -30)

		uc := NewGetProfileStatsUseCase(&fakeGoalRepository{goals: goals}, &fakeProfileRepository{profile: profile})
		output, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.AvgProgress != 50 {
			t.Errorf("expected average progress 50, got %d", output.AvgProgress)
		}
		if output.MemberDays != 30 {
			t.Errorf("expected 30 member days, got %d", output.MemberDays)
		}
		if output.Profile.Name != "Marcus" {
			t.Errorf("expected the stored profile, got %q", output.Profile.Name)
		}
	})

	t.Run("no active goals yields zero average", func(t *testing.T) {
		profile := entity.DefaultProfile()
		uc := NewGetProfileStatsUseCase(&fakeGoalRepository{}, &fakeProfileRepository{profile: profile})

		output, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AvgProgress != 0 {
			t.Errorf("expected zero average, got %d", output.AvgProgress)
		}
	})

	t.Run("future join dates clamp member days at zero", func(t *testing.T) {
		profile := entity.DefaultProfile()
		profile.JoinDate = time.Now().UTC().AddDate(0, 0, 7)
		uc := NewGetProfileStatsUseCase(&fakeGoalRepository{}, &fakeProfileRepository{profile: profile})

		output, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.MemberDays != 0 {
			t.Errorf("expected clamped member days, got %d", output.MemberDays)
		}
	})
}
