package profile

import (
	"context"
	"time"

	"github.com/marcus-savings/backend/internal/application/adapter"
	"github.com/marcus-savings/backend/internal/domain/entity"
)

// ExportVersion identifies the backup document format.
const ExportVersion = 1

// ExportDataOutput bundles everything the tracker persists, plus a format
// version and the export timestamp.
type ExportDataOutput struct {
	Version    int
	Goals      []*entity.Goal
	Progress   []entity.ProgressEntry
	Settings   *entity.Settings
	Profile    *entity.Profile
	ExportDate time.Time
}

// ExportDataUseCase assembles the downloadable backup document.
type ExportDataUseCase struct {
	goalRepo    adapter.GoalRepository
	profileRepo adapter.ProfileRepository
}

// NewExportDataUseCase creates a new ExportDataUseCase instance.
func NewExportDataUseCase(goalRepo adapter.GoalRepository, profileRepo adapter.ProfileRepository) *ExportDataUseCase {
	return &ExportDataUseCase{
		goalRepo:    goalRepo,
		profileRepo: profileRepo,
	}
}

// Execute reads every persisted collection and bundles it for download.
func (uc *ExportDataUseCase) Execute(ctx context.Context) (*ExportDataOutput, error) {
	goals, err := uc.goalRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	progress, err := uc.goalRepo.ListProgress(ctx)
	if err != nil {
		return nil, err
	}

	settings, err := uc.profileRepo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := uc.profileRepo.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	return &ExportDataOutput{
		Version:    ExportVersion,
		Goals:      goals,
		Progress:   progress,
		Settings:   settings,
		Profile:    profile,
		ExportDate: time.Now().UTC(),
	}, nil
}
