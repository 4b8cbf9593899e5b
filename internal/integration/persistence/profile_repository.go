package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/marcus-savings/backend/internal/application/adapter"
	"github.com/marcus-savings/backend/internal/domain/entity"
	"github.com/marcus-savings/backend/internal/integration/persistence/model"
)

// profileRepository implements the adapter.ProfileRepository interface.
type profileRepository struct {
	store *KVStore
}

// NewProfileRepository creates a new profile repository instance.
func NewProfileRepository(db *gorm.DB) adapter.ProfileRepository {
	return &profileRepository{
		store: NewKVStore(db),
	}
}

// GetProfile retrieves the stored profile, or the default when absent.
func (r *profileRepository) GetProfile(ctx context.Context) (*entity.Profile, error) {
	var record model.ProfileRecord
	found, err := r.store.Read(ctx, keyProfile, &record)
	if err != nil {
		return nil, err
	}
	if !found {
		return entity.DefaultProfile(), nil
	}
	return record.ToEntity(), nil
}

// SaveProfile persists the profile.
func (r *profileRepository) SaveProfile(ctx context.Context, profile *entity.Profile) error {
	return r.store.Write(ctx, keyProfile, model.ProfileFromEntity(profile))
}

// GetSettings retrieves the stored settings, or the defaults when absent.
func (r *profileRepository) GetSettings(ctx context.Context) (*entity.Settings, error) {
	var record model.SettingsRecord
	found, err := r.store.Read(ctx, keySettings, &record)
	if err != nil {
		return nil, err
	}
	if !found {
		return entity.DefaultSettings(), nil
	}
	return record.ToEntity(), nil
}

// SaveSettings persists the settings.
func (r *profileRepository) SaveSettings(ctx context.Context, settings *entity.Settings) error {
	return r.store.Write(ctx, keySettings, model.SettingsFromEntity(settings))
}

// Clear removes the stored profile and settings.
func (r *profileRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, keyProfile); err != nil {
		return err
	}
	return r.store.Delete(ctx, keySettings)
}
