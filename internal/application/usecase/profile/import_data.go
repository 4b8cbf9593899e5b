package profile

import (
	"context"
	"fmt"

	"github.com/marcus-savings/backend/internal/application/adapter"
	"github.com/marcus-savings/backend/internal/domain/entity"
)

// ImportDataInput is the parsed backup document to restore.
type ImportDataInput struct {
	Goals    []*entity.Goal
	Progress []entity.ProgressEntry
	Settings *entity.Settings
	Profile  *entity.Profile
}

// ImportDataUseCase restores a previously exported backup, replacing the
// stored collections wholesale.
type ImportDataUseCase struct {
	goalRepo    adapter.GoalRepository
	profileRepo adapter.ProfileRepository
}

// NewImportDataUseCase creates a new ImportDataUseCase instance.
func NewImportDataUseCase(goalRepo adapter.GoalRepository, profileRepo adapter.ProfileRepository) *ImportDataUseCase {
	return &ImportDataUseCase{
		goalRepo:    goalRepo,
		profileRepo: profileRepo,
	}
}

// Execute replaces the goal collection and progress log with the imported
// records and restores settings and profile when present.
func (uc *ImportDataUseCase) Execute(ctx context.Context, input ImportDataInput) error {
	if err := uc.goalRepo.ReplaceAll(ctx, input.Goals, input.Progress); err != nil {
		return fmt.Errorf("failed to import goals: %w", err)
	}

	if input.Settings != nil {
		if err := uc.profileRepo.SaveSettings(ctx, input.Settings); err != nil {
			return fmt.Errorf("failed to import settings: %w", err)
		}
	}

	if input.Profile != nil {
		if err := uc.profileRepo.SaveProfile(ctx, input.Profile); err != nil {
			return fmt.Errorf("failed to import profile: %w", err)
		}
	}

	return nil
}
