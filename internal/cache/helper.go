package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"ripple/internal/middleware"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by GetJSON when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// GetJSON fetches a key and unmarshals it into dest. Returns
// ErrCacheMiss when the key does not exist or the client is nil.
func GetJSON(ctx context.Context, rdb *redis.Client, key string, dest any) error {
	if rdb == nil {
		return ErrCacheMiss
	}
	raw, err := rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return ErrCacheMiss
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}

// SetJSON marshals value and stores it under key with a TTL. Errors are
// logged, not returned; a failed cache write never fails the request.
func SetJSON(ctx context.Context, rdb *redis.Client, key string, value any, ttl time.Duration) {
	if rdb == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		middleware.Logger.Warn("cache marshal failed", "key", key, "error", err)
		return
	}
	if err := rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		middleware.Logger.Warn("cache set failed", "key", key, "error", err)
	}
}

// Aside implements the cache-aside pattern: return the cached value if
// present, otherwise load from the source of truth and populate the
// cache for the next reader.
func Aside[T any](ctx context.Context, rdb *redis.Client, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	var cached T
	err := GetJSON(ctx, rdb, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		middleware.Logger.Warn("cache get failed", "key", key, "error", err)
	}

	value, err := load()
	if err != nil {
		return value, err
	}
	SetJSON(ctx, rdb, key, value, ttl)
	return value, nil
}
