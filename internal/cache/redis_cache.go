package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/repair-shop-platform/internal/config"
	"github.com/redis/go-redis/v9"
)

// RedisCache stores JSON documents under plain string keys. Lookup lists
// are small, so a single GET/SET per list is enough.
type RedisCache struct {
	rdb        redis.Cmdable
	defaultTTL time.Duration
}

func NewRedisCache(client *redis.Client, cfg *config.CacheConfig) Cache {
	return &RedisCache{rdb: client, defaultTTL: cfg.DefaultTTL}
}

func (c *RedisCache) expiry(ttl time.Duration) time.Duration {
	if ttl > 0 {
		return ttl
	}
	return c.defaultTTL
}

func (c *RedisCache) Get(ctx context.Context, key string, value any) (bool, error) {

	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("cache get %q: %w", key, err)
	}

	if err := json.Unmarshal(raw, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache data for %q: %w", key, err)
	}

	return true, nil
}

// Set falls back to the configured TTL when ttl is zero or negative.
func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %q: %w", key, err)
	}

	if err := c.rdb.Set(ctx, key, raw, c.expiry(ttl)).Err(); err != nil {
		return fmt.Errorf("cache set %q: %w", key, err)
	}

	return nil
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("cache delete %q: %w", key, err)
	}
	return nil
}

// Close leaves the client open. It is shared with the login rate limiter
// and closed by its owner.
func (c *RedisCache) Close() error {
	return nil
}
