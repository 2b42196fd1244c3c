package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/repair-shop-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/config"
	"github.com/redis/go-redis/v9"
)

type RateLimitRepository interface {
	CheckLoginRateLimit(ctx context.Context, username string) (bool, int, int, error)
	ResetLoginAttempts(ctx context.Context, username string) error
}

// NewRedisClient connects and pings. The client is shared by the login
// limiter and the lookup cache.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {

	rc := cfg.RedisConnect
	slog.Info("Connecting to Redis", slog.String("host", rc.Host), slog.String("port", rc.Port), slog.Int("db", rc.DB))

	opt, err := redis.ParseURL(rc.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	opt.DB = rc.DB

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

// loginLimiter counts attempts per username in a fixed window that starts
// with the first attempt.
type loginLimiter struct {
	rdb         redis.Cmdable
	maxAttempts int64
	window      time.Duration
}

func NewRateLimitRepo(client *redis.Client, cfg *config.Config) RateLimitRepository {
	return &loginLimiter{
		rdb:         client,
		maxAttempts: cfg.RateConfig.MaxAttempts,
		window:      cfg.RateConfig.WindowSize,
	}
}

// CheckLoginRateLimit records an attempt and returns whether it is allowed,
// the attempts left in the window and the seconds to wait when blocked.
func (l *loginLimiter) CheckLoginRateLimit(ctx context.Context, username string) (bool, int, int, error) {

	key := loginAttemptsKey(username)

	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, l.window)
	ttl := pipe.TTL(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, 0, fmt.Errorf("login rate limit for %s: %w", username, err)
	}

	attempts := incr.Val()
	if attempts > l.maxAttempts {
		retryAfter := int(ttl.Val().Seconds())
		if retryAfter <= 0 {
			retryAfter = int(l.window.Seconds())
		}

		middleware.LoggerFromContext(ctx).Warn("Login attempts exceeded",
			slog.String("username", username), slog.Int64("attempts", attempts), slog.Int("retry_after", retryAfter))
		return false, 0, retryAfter, nil
	}

	return true, int(l.maxAttempts - attempts), 0, nil
}

// ResetLoginAttempts clears the window after a successful login.
func (l *loginLimiter) ResetLoginAttempts(ctx context.Context, username string) error {
	if err := l.rdb.Del(ctx, loginAttemptsKey(username)).Err(); err != nil {
		return fmt.Errorf("failed to reset login attempts: %w", err)
	}
	return nil
}

func loginAttemptsKey(username string) string {
	return "login_attempts:" + username
}
