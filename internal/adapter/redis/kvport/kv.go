package kvport

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"gitlab.com/webrequest.net/internal/core/ports/primary"
	"gitlab.com/webrequest.net/internal/core/ports/secondary"
)

var _ secondary.KeyValueStore = (*KeyValueRepository)(nil)

// KeyValueRepository implements the storage area with Redis strings.
// Every key is namespaced with a prefix so several deployments can share a
// database.
type KeyValueRepository struct {
	redisClient redis.UniversalClient
	logger      primary.Logger
	prefix      string
}

// NewKeyValueRepository creates a new Redis key-value repository
func NewKeyValueRepository(redisClient redis.UniversalClient, prefix string, logger primary.Logger) *KeyValueRepository {
	return &KeyValueRepository{
		redisClient: redisClient,
		logger:      logger,
		prefix:      prefix,
	}
}

func (r *KeyValueRepository) key(key string) string {
	return r.prefix + key
}

// Get retrieves the value stored under key
func (r *KeyValueRepository) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.redisClient.Get(ctx, r.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		r.logger.Error("Failed to get value", "key", key, "error", err)
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key without expiration
func (r *KeyValueRepository) Set(ctx context.Context, key string, value string) error {
	if err := r.redisClient.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		r.logger.Error("Failed to set value", "key", key, "error", err)
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// Delete removes key
func (r *KeyValueRepository) Delete(ctx context.Context, key string) error {
	if err := r.redisClient.Del(ctx, r.key(key)).Err(); err != nil {
		r.logger.Error("Failed to delete value", "key", key, "error", err)
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Ping checks the connection
func (r *KeyValueRepository) Ping(ctx context.Context) error {
	return r.redisClient.Ping(ctx).Err()
}
