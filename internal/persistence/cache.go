package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a key is absent or caching is disabled.
var ErrCacheMiss = errors.New("cache miss")

// Cache is a thin JSON cache over Redis. A nil receiver or missing
// client degrades to a no-op, so the service works without Redis.
type Cache struct {
	redis *Redis
	ttl   time.Duration
}

// NewCache builds a cache with the given TTL.
func NewCache(r *Redis, ttl time.Duration) *Cache {
	return &Cache{redis: r, ttl: ttl}
}

// Get unmarshals the cached value for key into dest.
func (c *Cache) Get(ctx context.Context, key string, dest any) error {
	if c == nil || c.redis == nil || c.redis.Client == nil || c.ttl <= 0 {
		return ErrCacheMiss
	}
	raw, err := c.redis.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return err
	}
	return json.Unmarshal(raw, dest)
}

// Set stores value under key for the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, value any) error {
	if c == nil || c.redis == nil || c.redis.Client == nil || c.ttl <= 0 {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.redis.Client.Set(ctx, key, raw, c.ttl).Err()
}

// Delete removes keys, ignoring missing ones.
func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if c == nil || c.redis == nil || c.redis.Client == nil || len(keys) == 0 {
		return nil
	}
	return c.redis.Client.Del(ctx, keys...).Err()
}
