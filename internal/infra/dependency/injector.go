// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/marcus-savings/backend/config"
	"github.com/marcus-savings/backend/internal/application/adapter"
	"github.com/marcus-savings/backend/internal/application/usecase/friend"
	"github.com/marcus-savings/backend/internal/application/usecase/goal"
	"github.com/marcus-savings/backend/internal/application/usecase/profile"
	"github.com/marcus-savings/backend/internal/application/usecase/stats"
	"github.com/marcus-savings/backend/internal/domain/validation"
	"github.com/marcus-savings/backend/internal/infra/server/router"
	"github.com/marcus-savings/backend/internal/integration/adapters"
	"github.com/marcus-savings/backend/internal/integration/entrypoint/controller"
	"github.com/marcus-savings/backend/internal/integration/entrypoint/middleware"
	"github.com/marcus-savings/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config     *config.Config
	DB         *gorm.DB
	Router     *router.Router
	FriendRepo adapter.FriendRepository
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The redis client may be nil; invite codes then stay local and unverifiable.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	goalRepo := persistence.NewGoalRepository(db)
	profileRepo := persistence.NewProfileRepository(db)
	friendRepo := persistence.NewFriendRepository(db)

	var inviteStore adapter.InviteStore
	if redisClient != nil {
		inviteStore = adapters.NewInviteStore(redisClient)
	}

	policy := policyFromConfig(cfg.Goals)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, policy)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo, policy)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)
	addProgressUseCase := goal.NewAddProgressUseCase(goalRepo, policy)

	// Create stats use cases
	goalStatsUseCase := stats.NewGetGoalStatsUseCase(goalRepo)
	achievementsUseCase := stats.NewGetAchievementsUseCase(goalRepo)
	profileStatsUseCase := stats.NewGetProfileStatsUseCase(goalRepo, profileRepo)

	// Create profile use cases
	getProfileUseCase := profile.NewGetProfileUseCase(profileRepo)
	updateSettingsUseCase := profile.NewUpdateSettingsUseCase(profileRepo)
	exportDataUseCase := profile.NewExportDataUseCase(goalRepo, profileRepo)
	importDataUseCase := profile.NewImportDataUseCase(goalRepo, profileRepo)
	clearDataUseCase := profile.NewClearDataUseCase(goalRepo, profileRepo, friendRepo)

	// Create friend use cases
	listFriendsUseCase := friend.NewListFriendsUseCase(friendRepo)
	friendsStatsUseCase := friend.NewGetFriendsStatsUseCase(friendRepo)
	createInviteUseCase := friend.NewCreateInviteUseCase(goalRepo, inviteStore, cfg.Server.BaseURL, cfg.Redis.InviteTTL)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
		addProgressUseCase,
	)

	statsController := controller.NewStatsController(
		goalStatsUseCase,
		achievementsUseCase,
	)

	profileController := controller.NewProfileController(
		getProfileUseCase,
		profileStatsUseCase,
		updateSettingsUseCase,
		exportDataUseCase,
		importDataUseCase,
		clearDataUseCase,
	)

	friendController := controller.NewFriendController(
		listFriendsUseCase,
		friendsStatsUseCase,
		createInviteUseCase,
	)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var inviteRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		inviteRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		inviteRateLimiter = middleware.NewRateLimiter()
	}

	r := router.NewRouter(
		healthController,
		goalController,
		statsController,
		profileController,
		friendController,
		inviteRateLimiter,
		router.StaticConfig{Enabled: cfg.Static.Enabled, Dir: cfg.Static.Dir},
	)

	return &Injector{
		Config:     cfg,
		DB:         db,
		Router:     r,
		FriendRepo: friendRepo,
	}
}

// policyFromConfig converts the tunable goal settings to a validation policy.
func policyFromConfig(cfg config.GoalPolicyConfig) validation.Policy {
	return validation.Policy{
		MaxActiveGoals:   cfg.MaxActiveGoals,
		MinTargetAmount:  decimal.NewFromFloat(cfg.MinTargetAmount),
		MaxTargetAmount:  decimal.NewFromFloat(cfg.MaxTargetAmount),
		MaxProgressEntry: decimal.NewFromFloat(cfg.MaxProgressEntry),
		HorizonYears:     cfg.HorizonYears,
	}
}
