package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcus-savings/backend/internal/application/usecase/stats"
	"github.com/marcus-savings/backend/internal/integration/entrypoint/dto"
)

// StatsController handles statistics and achievement endpoints.
type StatsController struct {
	goalStatsUseCase    *stats.GetGoalStatsUseCase
	achievementsUseCase *stats.GetAchievementsUseCase
}

// NewStatsController creates a new stats controller instance.
func NewStatsController(
	goalStatsUseCase *stats.GetGoalStatsUseCase,
	achievementsUseCase *stats.GetAchievementsUseCase,
) *StatsController {
	return &StatsController{
		goalStatsUseCase:    goalStatsUseCase,
		achievementsUseCase: achievementsUseCase,
	}
}

// GetStats handles GET /stats requests.
func (c *StatsController) GetStats(ctx *gin.Context) {
	output, err := c.goalStatsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleStorageError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToStatsResponse(output))
}

// GetAchievements handles GET /achievements requests.
func (c *StatsController) GetAchievements(ctx *gin.Context) {
	output, err := c.achievementsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleStorageError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToAchievementListResponse(output))
}
