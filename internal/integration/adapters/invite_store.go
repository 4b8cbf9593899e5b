// Package adapters implements application service interfaces backed by
// external systems.
package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/marcus-savings/backend/internal/application/adapter"
)

const inviteKeyPrefix = "invite:"

// inviteStore implements adapter.InviteStore on Redis. Codes expire via TTL.
type inviteStore struct {
	client *redis.Client
}

// NewInviteStore creates a new Redis-backed invite store.
func NewInviteStore(client *redis.Client) adapter.InviteStore {
	return &inviteStore{
		client: client,
	}
}

// Save stores the invite code with the given time-to-live.
func (s *inviteStore) Save(ctx context.Context, code string, ttl time.Duration) error {
	if err := s.client.Set(ctx, inviteKeyPrefix+code, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to store invite code: %w", err)
	}
	return nil
}

// Exists reports whether the invite code is still live.
func (s *inviteStore) Exists(ctx context.Context, code string) (bool, error) {
	count, err := s.client.Exists(ctx, inviteKeyPrefix+code).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check invite code: %w", err)
	}
	return count > 0, nil
}
