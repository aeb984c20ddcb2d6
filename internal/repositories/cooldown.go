package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kazzanonim/anonlink/internal/logger"
	"github.com/redis/go-redis/v9"
)

// CooldownRepository stores the instant of the last accepted send per
// sender identity in Redis. Keys expire with the cooldown window, so the
// store cleans itself up; overwritten, never accumulated.
type CooldownRepository struct {
	client *redis.Client
	window time.Duration
}

// NewCooldownRepository creates a repository with the given cooldown window.
func NewCooldownRepository(client *redis.Client, window time.Duration) *CooldownRepository {
	return &CooldownRepository{
		client: client,
		window: window,
	}
}

// GetLastSend returns the last accepted send instant for an identity,
// or nil when none is recorded (or the record has expired).
func (r *CooldownRepository) GetLastSend(ctx context.Context, identity string) (*time.Time, error) {
	key := fmt.Sprintf("cooldown:%s", identity)

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow(
		"key", key,
		"result", val,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	t, err := time.Parse(time.RFC3339Nano, val)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// SetLastSend overwrites the last accepted send instant for an identity.
func (r *CooldownRepository) SetLastSend(ctx context.Context, identity string, at time.Time) error {
	key := fmt.Sprintf("cooldown:%s", identity)

	err := r.client.Set(ctx, key, at.Format(time.RFC3339Nano), r.window).Err()

	logger.Log.Infow(
		"key", key,
		"at", at,
		"error", err,
	)

	return err
}
