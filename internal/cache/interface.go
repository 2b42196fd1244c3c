package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/repair-shop-platform/internal/api/middleware"
)

type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const LookupListPrefix = "lookup:list"

// Remember returns the cached value for key, or calls load and stores its
// result. Cache failures are logged on the request logger and never fail
// the call.
func Remember[T any](ctx context.Context, c Cache, key string, ttl time.Duration, load func(ctx context.Context) (T, error)) (T, error) {
	logger := middleware.LoggerFromContext(ctx)
	var cached T

	found, err := c.Get(ctx, key, &cached)
	if err != nil {
		logger.WarnContext(ctx, "Cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	if found {
		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if err := c.Set(ctx, key, value, ttl); err != nil {
		logger.WarnContext(ctx, "Cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	return value, nil
}
