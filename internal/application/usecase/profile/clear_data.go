package profile

import (
	"context"
	"fmt"

	"github.com/marcus-savings/backend/internal/application/adapter"
)

// ClearDataUseCase permanently deletes all persisted user data.
type ClearDataUseCase struct {
	goalRepo    adapter.GoalRepository
	profileRepo adapter.ProfileRepository
	friendRepo  adapter.FriendRepository
}

// NewClearDataUseCase creates a new ClearDataUseCase instance.
func NewClearDataUseCase(
	goalRepo adapter.GoalRepository,
	profileRepo adapter.ProfileRepository,
	friendRepo adapter.FriendRepository,
) *ClearDataUseCase {
	return &ClearDataUseCase{
		goalRepo:    goalRepo,
		profileRepo: profileRepo,
		friendRepo:  friendRepo,
	}
}

// Execute removes goals, progress, settings, profile, and friends.
func (uc *ClearDataUseCase) Execute(ctx context.Context) error {
	if err := uc.goalRepo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear goals: %w", err)
	}
	if err := uc.profileRepo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear profile: %w", err)
	}
	if err := uc.friendRepo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear friends: %w", err)
	}
	return nil
}
