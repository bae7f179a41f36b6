package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/movie-catalog/internal/logger"
)

// SessionCacheRepository tracks revoked session token ids in Redis.
// Entries expire together with the token itself, so the set stays small.
type SessionCacheRepository struct {
	client *redis.Client
}

// NewSessionCacheRepository creates a new repository instance.
func NewSessionCacheRepository(client *redis.Client) *SessionCacheRepository {
	return &SessionCacheRepository{client: client}
}

func sessionKey(tokenID string) string {
	return fmt.Sprintf("session:revoked:%s", tokenID)
}

// Revoke marks a token id as revoked until the token would have expired anyway.
func (r *SessionCacheRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	key := sessionKey(tokenID)
	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.Log.Infow(
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// IsRevoked reports whether the token id has been revoked.
func (r *SessionCacheRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := sessionKey(tokenID)

	_, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		return false, err
	}

	return true, nil
}
