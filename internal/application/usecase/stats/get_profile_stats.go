package stats

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/marcus-savings/backend/internal/application/adapter"
	"github.com/marcus-savings/backend/internal/domain/entity"
)

// ProfileStats extends the goal statistics with profile-level aggregates.
type ProfileStats struct {
	GoalStats
	AvgProgress int
	MemberDays  int
	Profile     *entity.Profile
}

// GetProfileStatsUseCase derives the profile page statistics.
type GetProfileStatsUseCase struct {
	goalRepo    adapter.GoalRepository
	profileRepo adapter.ProfileRepository
}

// NewGetProfileStatsUseCase creates a new GetProfileStatsUseCase instance.
func NewGetProfileStatsUseCase(goalRepo adapter.GoalRepository, profileRepo adapter.ProfileRepository) *GetProfileStatsUseCase {
	return &GetProfileStatsUseCase{
		goalRepo:    goalRepo,
		profileRepo: profileRepo,
	}
}

// Execute combines goal stats with the average progress over active goals and
// the days since the profile join date.
func (uc *GetProfileStatsUseCase) Execute(ctx context.Context) (*ProfileStats, error) {
	goals, err := uc.goalRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := uc.profileRepo.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	goalStats := Compute(goals)

	avgProgress := 0
	if len(goalStats.Goals.Active) > 0 {
		sum := decimal.Zero
		for _, goal := range goalStats.Goals.Active {
			sum = sum.Add(Percentage(goal.CurrentAmount, goal.TargetAmount))
		}
		avgProgress = int(sum.Div(decimal.NewFromInt(int64(len(goalStats.Goals.Active)))).Round(0).IntPart())
	}

	memberDays := int(time.Now().UTC().Sub(profile.JoinDate).Hours() / 24)
	if memberDays < 0 {
		memberDays = 0
	}

	return &ProfileStats{
		GoalStats:   *goalStats,
		AvgProgress: avgProgress,
		MemberDays:  memberDays,
		Profile:     profile,
	}, nil
}
