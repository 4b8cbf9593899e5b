package dto

import (
	"time"

	"github.com/marcus-savings/backend/internal/application/usecase/profile"
	"github.com/marcus-savings/backend/internal/application/usecase/stats"
	"github.com/marcus-savings/backend/internal/domain/entity"
	"github.com/marcus-savings/backend/internal/integration/persistence/model"
)

// PreferencesResponse represents the user preferences.
type PreferencesResponse struct {
	Theme         string `json:"theme"`
	Currency      string `json:"currency"`
	DateFormat    string `json:"dateFormat"`
	Notifications bool   `json:"notifications"`
}

// ProfileResponse represents the user profile.
type ProfileResponse struct {
	Name        string              `json:"name"`
	JoinDate    string              `json:"joinDate"`
	Avatar      string              `json:"avatar"`
	Preferences PreferencesResponse `json:"preferences"`
}

// ProfileStatsResponse extends the goal statistics with profile aggregates.
type ProfileStatsResponse struct {
	StatsResponse
	AvgProgress int             `json:"avgProgress"`
	MemberDays  int             `json:"memberDays"`
	Profile     ProfileResponse `json:"profile"`
}

// UpdateSettingsRequest represents a partial preferences edit.
type UpdateSettingsRequest struct {
	Theme         *string `json:"theme,omitempty"`
	Currency      *string `json:"currency,omitempty"`
	DateFormat    *string `json:"dateFormat,omitempty"`
	Notifications *bool   `json:"notifications,omitempty"`
}

// ExportDocument is the downloadable backup bundle. Record shapes are shared
// with the storage layer so a backup can be restored byte-for-byte.
type ExportDocument struct {
	Version    int                    `json:"version"`
	Goals      []model.GoalRecord     `json:"goals"`
	Progress   []model.ProgressRecord `json:"progress"`
	Settings   model.SettingsRecord   `json:"settings"`
	Profile    model.ProfileRecord    `json:"profile"`
	ExportDate time.Time              `json:"exportDate"`
}

// ImportRequest is the parsed backup bundle to restore. The version field is
// accepted but unchecked while only one format version exists.
type ImportRequest struct {
	Version  int                    `json:"version"`
	Goals    []model.GoalRecord     `json:"goals"`
	Progress []model.ProgressRecord `json:"progress"`
	Settings *model.SettingsRecord  `json:"settings"`
	Profile  *model.ProfileRecord   `json:"profile"`
}

// ToProfileResponse converts a domain Profile to its DTO.
func ToProfileResponse(p *entity.Profile) ProfileResponse {
	return ProfileResponse{
		Name:     p.Name,
		JoinDate: p.JoinDate.Format("2006-01-02"),
		Avatar:   p.Avatar,
		Preferences: PreferencesResponse{
			Theme:         p.Preferences.Theme,
			Currency:      p.Preferences.Currency,
			DateFormat:    p.Preferences.DateFormat,
			Notifications: p.Preferences.Notifications,
		},
	}
}

// ToProfileStatsResponse converts derived ProfileStats to its DTO.
func ToProfileStatsResponse(s *stats.ProfileStats) ProfileStatsResponse {
	return ProfileStatsResponse{
		StatsResponse: ToStatsResponse(&s.GoalStats),
		AvgProgress:   s.AvgProgress,
		MemberDays:    s.MemberDays,
		Profile:       ToProfileResponse(s.Profile),
	}
}

// ToExportDocument converts the export bundle to its download shape.
func ToExportDocument(output *profile.ExportDataOutput) ExportDocument {
	goals := make([]model.GoalRecord, len(output.Goals))
	for i, goal := range output.Goals {
		goals[i] = model.GoalFromEntity(goal)
	}

	progress := make([]model.ProgressRecord, len(output.Progress))
	for i, entry := range output.Progress {
		progress[i] = model.ProgressFromEntity(entry)
	}

	return ExportDocument{
		Version:    output.Version,
		Goals:      goals,
		Progress:   progress,
		Settings:   model.SettingsFromEntity(output.Settings),
		Profile:    model.ProfileFromEntity(output.Profile),
		ExportDate: output.ExportDate,
	}
}

// ToImportInput converts a parsed backup bundle to the import use case input.
func (r *ImportRequest) ToImportInput() (profile.ImportDataInput, error) {
	goals := make([]*entity.Goal, len(r.Goals))
	for i := range r.Goals {
		goal, err := r.Goals[i].ToEntity()
		if err != nil {
			return profile.ImportDataInput{}, err
		}
		goals[i] = goal
	}

	progress := make([]entity.ProgressEntry, len(r.Progress))
	for i := range r.Progress {
		progress[i] = r.Progress[i].ToEntity()
	}

	input := profile.ImportDataInput{
		Goals:    goals,
		Progress: progress,
	}
	if r.Settings != nil {
		input.Settings = r.Settings.ToEntity()
	}
	if r.Profile != nil {
		input.Profile = r.Profile.ToEntity()
	}
	return input, nil
}
