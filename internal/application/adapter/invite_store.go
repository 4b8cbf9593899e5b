package adapter

import (
	"context"
	"time"
)

// InviteStore defines the interface for short-lived friend invite codes.
type InviteStore interface {
	// Save stores the invite code with the given time-to-live.
	Save(ctx context.Context, code string, ttl time.Duration) error

	// Exists reports whether the invite code is still live.
	Exists(ctx context.Context, code string) (bool, error)
}
