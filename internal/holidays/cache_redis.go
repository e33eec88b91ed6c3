package holidays

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"workdays/pkg/platform/sentinel"
)

const redisKeyPrefix = "workdays:holidays:"

// RedisCache shares holiday sets between service instances. Sets are stored
// as a JSON array of dates with SET ... EX.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache wraps an existing client; its lifecycle is managed by the caller.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Load returns sentinel.ErrNotFound when the key is absent.
func (c *RedisCache) Load(ctx context.Context, key string) (Set, error) {
	raw, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return Set{}, sentinel.ErrNotFound
	}
	if err != nil {
		return Set{}, fmt.Errorf("redis get %s: %w", key, err)
	}
	var set Set
	if err := json.Unmarshal(raw, &set); err != nil {
		return Set{}, fmt.Errorf("decode cached holidays %s: %w", key, err)
	}
	return set, nil
}

// Store writes set with the given TTL. A non-positive ttl stores nothing.
func (c *RedisCache) Store(ctx context.Context, key string, set Set, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	raw, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("encode holidays: %w", err)
	}
	if err := c.client.Set(ctx, redisKeyPrefix+key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
