package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/marcus-savings/backend/internal/application/adapter"
	"github.com/marcus-savings/backend/internal/domain/entity"
	"github.com/marcus-savings/backend/internal/integration/persistence/model"
)

// friendRepository implements the adapter.FriendRepository interface.
type friendRepository struct {
	store *KVStore
}

// NewFriendRepository creates a new friend repository instance.
func NewFriendRepository(db *gorm.DB) adapter.FriendRepository {
	return &friendRepository{
		store: NewKVStore(db),
	}
}

// List retrieves the stored friend records.
func (r *friendRepository) List(ctx context.Context) ([]*entity.Friend, error) {
	var records []model.FriendRecord
	found, err := r.store.Read(ctx, keyFriends, &records)
	if err != nil {
		return nil, err
	}
	if !found {
		return []*entity.Friend{}, nil
	}

	friends := make([]*entity.Friend, len(records))
	for i, record := range records {
		friends[i] = record.ToEntity()
	}
	return friends, nil
}

// Seed writes the friend records only when none are stored yet.
func (r *friendRepository) Seed(ctx context.Context, friends []*entity.Friend) error {
	var existing []model.FriendRecord
	found, err := r.store.Read(ctx, keyFriends, &existing)
	if err != nil {
		return err
	}
	if found {
		return nil
	}

	records := make([]model.FriendRecord, len(friends))
	for i, friend := range friends {
		records[i] = model.FriendFromEntity(friend)
	}
	return r.store.Write(ctx, keyFriends, records)
}

// Clear removes the stored friend records.
func (r *friendRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, keyFriends)
}
