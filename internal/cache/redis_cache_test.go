package cache_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/repair-shop-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/cache"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/config"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type marca struct {
	Name  string `json:"name"`
	Order int    `json:"order"`
}

func setup(t *testing.T) (cache.Cache, redismock.ClientMock, *config.CacheConfig) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := &config.CacheConfig{DefaultTTL: 10 * time.Minute}

	return cache.NewRedisCache(client, cfg), mock, cfg
}

func TestGet(t *testing.T) {
	ctx := t.Context()
	key := cache.Key(cache.LookupListPrefix, "marcas")
	value := marca{Name: "Samsung", Order: 1}
	data, err := json.Marshal(value)
	require.NoError(t, err)

	t.Run("Hit", func(t *testing.T) {
		c, mock, _ := setup(t)
		mock.ExpectGet(key).SetVal(string(data))

		var got marca
		found, err := c.Get(ctx, key, &got)

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, value, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Miss", func(t *testing.T) {
		c, mock, _ := setup(t)
		mock.ExpectGet(key).RedisNil()

		var got marca
		found, err := c.Get(ctx, key, &got)

		require.NoError(t, err)
		assert.False(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Redis error", func(t *testing.T) {
		c, mock, _ := setup(t)
		redisErr := errors.New("connection refused")
		mock.ExpectGet(key).SetErr(redisErr)

		var got marca
		found, err := c.Get(ctx, key, &got)

		require.Error(t, err)
		assert.False(t, found)
		assert.ErrorIs(t, err, redisErr)
	})

	t.Run("Corrupt payload", func(t *testing.T) {
		c, mock, _ := setup(t)
		mock.ExpectGet(key).SetVal(`{"name": 5}`)

		var got marca
		found, err := c.Get(ctx, key, &got)

		require.Error(t, err)
		assert.False(t, found)
		assert.Contains(t, err.Error(), "failed to unmarshal cache data")
	})
}

func TestSet(t *testing.T) {
	ctx := t.Context()
	key := "lookup:list:fallas"
	value := marca{Name: "Pantalla"}
	data, err := json.Marshal(value)
	require.NoError(t, err)

	t.Run("Explicit TTL", func(t *testing.T) {
		c, mock, _ := setup(t)
		mock.ExpectSet(key, data, time.Minute).SetVal("OK")

		require.NoError(t, c.Set(ctx, key, value, time.Minute))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Default TTL", func(t *testing.T) {
		c, mock, cfg := setup(t)
		mock.ExpectSet(key, data, cfg.DefaultTTL).SetVal("OK")

		require.NoError(t, c.Set(ctx, key, value, 0))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unmarshallable value", func(t *testing.T) {
		c, _, _ := setup(t)

		err := c.Set(ctx, key, make(chan int), time.Minute)

		var jsonErr *json.UnsupportedTypeError
		assert.ErrorAs(t, err, &jsonErr)
	})

	t.Run("Redis error", func(t *testing.T) {
		c, mock, _ := setup(t)
		redisErr := errors.New("SET failed")
		mock.ExpectSet(key, data, time.Minute).SetErr(redisErr)

		err := c.Set(ctx, key, value, time.Minute)
		assert.ErrorIs(t, err, redisErr)
	})
}

func TestDelete(t *testing.T) {
	ctx := t.Context()
	key := "lookup:list:categories"

	c, mock, _ := setup(t)
	mock.ExpectDel(key).SetVal(1)
	require.NoError(t, c.Delete(ctx, key))

	redisErr := errors.New("DEL failed")
	mock.ExpectDel(key).SetErr(redisErr)
	assert.ErrorIs(t, c.Delete(ctx, key), redisErr)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemember(t *testing.T) {
	ctx := t.Context()
	key := cache.Key(cache.LookupListPrefix, "marcas")
	value := []marca{{Name: "Apple"}, {Name: "Motorola"}}
	data, err := json.Marshal(value)
	require.NoError(t, err)

	t.Run("Loads and stores on miss", func(t *testing.T) {
		c, mock, _ := setup(t)
		mock.ExpectGet(key).RedisNil()
		mock.ExpectSet(key, data, time.Minute).SetVal("OK")

		calls := 0
		got, err := cache.Remember(ctx, c, key, time.Minute, func(ctx context.Context) ([]marca, error) {
			calls++
			return value, nil
		})

		require.NoError(t, err)
		assert.Equal(t, value, got)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Serves hit without loading", func(t *testing.T) {
		c, mock, _ := setup(t)
		mock.ExpectGet(key).SetVal(string(data))

		got, err := cache.Remember(ctx, c, key, time.Minute, func(ctx context.Context) ([]marca, error) {
			t.Fatal("loader must not run on a hit")
			return nil, nil
		})

		require.NoError(t, err)
		assert.Equal(t, value, got)
	})

	t.Run("Falls back to loader when redis is down", func(t *testing.T) {
		c, mock, _ := setup(t)
		mock.ExpectGet(key).SetErr(redis.ErrClosed)
		mock.ExpectSet(key, data, time.Minute).SetErr(redis.ErrClosed)

		got, err := cache.Remember(ctx, c, key, time.Minute, func(ctx context.Context) ([]marca, error) {
			return value, nil
		})

		require.NoError(t, err)
		assert.Equal(t, value, got)
	})

	t.Run("Cache warnings go to the request logger", func(t *testing.T) {
		c, mock, _ := setup(t)
		mock.ExpectGet(key).SetErr(redis.ErrClosed)
		mock.ExpectSet(key, data, time.Minute).SetVal("OK")

		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil)).With(slog.String("request_id", "req-42"))
		reqCtx := middleware.WithLogger(ctx, logger)

		_, err := cache.Remember(reqCtx, c, key, time.Minute, func(ctx context.Context) ([]marca, error) {
			return value, nil
		})

		require.NoError(t, err)
		assert.Contains(t, buf.String(), `"msg":"Cache read failed"`)
		assert.Contains(t, buf.String(), `"request_id":"req-42"`)
	})

	t.Run("Loader error is returned", func(t *testing.T) {
		c, mock, _ := setup(t)
		mock.ExpectGet(key).RedisNil()
		loadErr := errors.New("db down")

		_, err := cache.Remember(ctx, c, key, time.Minute, func(ctx context.Context) ([]marca, error) {
			return nil, loadErr
		})

		assert.ErrorIs(t, err, loadErr)
	})
}

func TestKey(t *testing.T) {
	assert.Equal(t, "lookup:list:marcas", cache.Key(cache.LookupListPrefix, "marcas"))
	assert.Equal(t, ":", cache.Key("", ""))
}

func TestCloseKeepsSharedClientOpen(t *testing.T) {
	ctx := t.Context()
	client, mock := redismock.NewClientMock()
	c := cache.NewRedisCache(client, &config.CacheConfig{DefaultTTL: time.Minute})

	require.NoError(t, c.Close())

	mock.ExpectGet("login_attempts:jperez").SetVal("1")
	assert.NoError(t, client.Get(ctx, "login_attempts:jperez").Err())
	assert.NoError(t, mock.ExpectationsWereMet())
}
