package adapter

import (
	"context"

	"github.com/marcus-savings/backend/internal/domain/entity"
)

// ProfileRepository defines the interface for profile and settings persistence.
type ProfileRepository interface {
	// GetProfile retrieves the stored profile, or the default profile when
	// none has been saved yet.
	GetProfile(ctx context.Context) (*entity.Profile, error)

	// SaveProfile persists the profile.
	SaveProfile(ctx context.Context, profile *entity.Profile) error

	// GetSettings retrieves the stored settings, or the defaults.
	GetSettings(ctx context.Context) (*entity.Settings, error)

	// SaveSettings persists the settings.
	SaveSettings(ctx context.Context, settings *entity.Settings) error

	// Clear removes the stored profile and settings.
	Clear(ctx context.Context) error
}

// FriendRepository defines the interface for the simulated social layer.
type FriendRepository interface {
	// List retrieves the friend records.
	List(ctx context.Context) ([]*entity.Friend, error)

	// Seed writes the friend records only when none are stored yet.
	Seed(ctx context.Context, friends []*entity.Friend) error

	// Clear removes the stored friend records.
	Clear(ctx context.Context) error
}
