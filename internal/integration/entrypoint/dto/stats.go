package dto

import (
	"github.com/marcus-savings/backend/internal/application/usecase/stats"
	"github.com/marcus-savings/backend/internal/domain/entity"
)

// StatsGoalsResponse carries the partitioned goal collections.
type StatsGoalsResponse struct {
	Active    []GoalResponse `json:"active"`
	Completed []GoalResponse `json:"completed"`
	All       []GoalResponse `json:"all"`
}

// StatsResponse represents the derived goal statistics.
type StatsResponse struct {
	Active          int                `json:"active"`
	Completed       int                `json:"completed"`
	TotalSaved      float64            `json:"totalSaved"`
	TotalTarget     float64            `json:"totalTarget"`
	OverallProgress float64            `json:"overallProgress"`
	Goals           StatsGoalsResponse `json:"goals"`
}

// AchievementResponse represents one evaluated achievement.
type AchievementResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
	Unlocked    bool   `json:"unlocked"`
}

// AchievementListResponse represents the evaluated achievement set.
type AchievementListResponse struct {
	Achievements []AchievementResponse `json:"achievements"`
}

// ToStatsResponse converts derived GoalStats to a StatsResponse DTO.
func ToStatsResponse(s *stats.GoalStats) StatsResponse {
	return StatsResponse{
		Active:          s.Active,
		Completed:       s.Completed,
		TotalSaved:      s.TotalSaved.InexactFloat64(),
		TotalTarget:     s.TotalTarget.InexactFloat64(),
		OverallProgress: s.OverallProgress.InexactFloat64(),
		Goals: StatsGoalsResponse{
			Active:    toGoalResponses(s.Goals.Active),
			Completed: toGoalResponses(s.Goals.Completed),
			All:       toGoalResponses(s.Goals.All),
		},
	}
}

// ToAchievementListResponse converts evaluated achievements to their DTO.
func ToAchievementListResponse(output *stats.GetAchievementsOutput) AchievementListResponse {
	response := AchievementListResponse{
		Achievements: make([]AchievementResponse, len(output.Achievements)),
	}
	for i, status := range output.Achievements {
		response.Achievements[i] = AchievementResponse{
			ID:          status.ID,
			Name:        status.Name,
			Description: status.Description,
			Emoji:       status.Emoji,
			Unlocked:    status.IsUnlocked,
		}
	}
	return response
}

func toGoalResponses(goals []*entity.Goal) []GoalResponse {
	responses := make([]GoalResponse, len(goals))
	for i, goal := range goals {
		responses[i] = ToGoalResponse(goal)
	}
	return responses
}
