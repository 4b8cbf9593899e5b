// Package profile contains profile, settings, and data export use cases.
package profile

import (
	"context"

	"github.com/marcus-savings/backend/internal/application/adapter"
	"github.com/marcus-savings/backend/internal/domain/entity"
)

// GetProfileOutput represents the output of fetching the profile.
type GetProfileOutput struct {
	Profile *entity.Profile
}

// GetProfileUseCase handles profile retrieval.
type GetProfileUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(profileRepo adapter.ProfileRepository) *GetProfileUseCase {
	return &GetProfileUseCase{
		profileRepo: profileRepo,
	}
}

// Execute retrieves the stored profile, falling back to the default.
func (uc *GetProfileUseCase) Execute(ctx context.Context) (*GetProfileOutput, error) {
	profile, err := uc.profileRepo.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	return &GetProfileOutput{Profile: profile}, nil
}
