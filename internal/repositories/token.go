package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-social-graph/internal/logger"
)

// TokenRevocationRepository keeps the IDs of logged-out tokens in Redis until they expire
type TokenRevocationRepository struct {
	client *redis.Client
}

func NewTokenRevocationRepository(client *redis.Client) *TokenRevocationRepository {
	return &TokenRevocationRepository{client: client}
}

func revokedTokenKey(tokenID string) string {
	return fmt.Sprintf("revoked_token:%s", tokenID)
}

// Revoke marks tokenID as revoked for ttl. A non-positive ttl means the token has
// already expired and nothing is stored.
func (r *TokenRevocationRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	key := revokedTokenKey(tokenID)
	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.FromContext(ctx).Infow(
		"redis set",
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// IsRevoked reports whether tokenID was revoked.
func (r *TokenRevocationRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := revokedTokenKey(tokenID)
	n, err := r.client.Exists(ctx, key).Result()

	logger.FromContext(ctx).Infow(
		"redis exists",
		"key", key,
		"result", n,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return n > 0, nil
}
