package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/voice-transcriber/internal/logger"
)

// UserCacheRepository remembers which user ids were recently confirmed to exist.
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached entries
}

// NewUserCacheRepository creates a new repository instance with the given TTL
func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func userKey(userID uuid.UUID) string {
	return "user:exists:" + userID.String()
}

// Exists reports whether userID is cached as an existing user.
func (r *UserCacheRepository) Exists(ctx context.Context, userID uuid.UUID) (bool, error) {
	key := userKey(userID)
	err := r.client.Get(ctx, key).Err()

	logger.FromContext(ctx).Debugw("cache lookup", "key", key, "error", err)

	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Remember caches userID as an existing user.
func (r *UserCacheRepository) Remember(ctx context.Context, userID uuid.UUID) error {
	key := userKey(userID)
	err := r.client.Set(ctx, key, "1", r.exp).Err()

	logger.FromContext(ctx).Debugw("cache store", "key", key, "ttl", r.exp, "error", err)

	return err
}
