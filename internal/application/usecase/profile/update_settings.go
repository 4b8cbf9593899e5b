package profile

import (
	"context"
	"fmt"

	"github.com/marcus-savings/backend/internal/application/adapter"
	"github.com/marcus-savings/backend/internal/domain/entity"
)

// UpdateSettingsInput represents a partial preferences edit. Nil fields are
// left unchanged.
type UpdateSettingsInput struct {
	Theme         *string
	Currency      *string
	DateFormat    *string
	Notifications *bool
}

// UpdateSettingsOutput represents the output of a preferences edit.
type UpdateSettingsOutput struct {
	Profile *entity.Profile
}

// UpdateSettingsUseCase merges preference updates into the stored profile.
type UpdateSettingsUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(profileRepo adapter.ProfileRepository) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		profileRepo: profileRepo,
	}
}

// Execute merges the updates into the profile preferences and persists the
// result. The settings record is kept in sync for the page-level consumers.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	profile, err := uc.profileRepo.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	if input.Theme != nil {
		profile.Preferences.Theme = *input.Theme
	}
	if input.Currency != nil {
		profile.Preferences.Currency = *input.Currency
	}
	if input.DateFormat != nil {
		profile.Preferences.DateFormat = *input.DateFormat
	}
	if input.Notifications != nil {
		profile.Preferences.Notifications = *input.Notifications
	}

	if err := uc.profileRepo.SaveProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	settings := &entity.Settings{
		Theme:      profile.Preferences.Theme,
		Currency:   profile.Preferences.Currency,
		DateFormat: profile.Preferences.DateFormat,
	}
	if err := uc.profileRepo.SaveSettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return &UpdateSettingsOutput{Profile: profile}, nil
}
