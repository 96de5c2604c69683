package cache

import (
	"context"
	"fmt"
	"time"

	"ripple/internal/middleware"

	"github.com/redis/go-redis/v9"
)

// Cache key TTLs. Feed pages are short-lived because every post or
// comment invalidates them; user rows change rarely.
const (
	UserTTL       = 15 * time.Minute
	ProfileTTL    = 15 * time.Minute
	GlobalFeedTTL = 30 * time.Second
)

// UserKey is the cache key for a user row.
func UserKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// ProfileKey is the cache key for a user's profile.
func ProfileKey(userID uint) string {
	return fmt.Sprintf("profile:user:%d", userID)
}

// GlobalFeedKey is the cache key for a page of the global feed.
func GlobalFeedKey(limit, offset int) string {
	return fmt.Sprintf("feed:global:%d:%d", limit, offset)
}

// InvalidateUser removes a user's cached row and profile.
func InvalidateUser(ctx context.Context, rdb *redis.Client, userID uint) {
	if rdb == nil {
		return
	}
	if err := rdb.Del(ctx, UserKey(userID), ProfileKey(userID)).Err(); err != nil {
		middleware.Logger.Warn("cache invalidation failed", "user_id", userID, "error", err)
	}
}

// InvalidateGlobalFeed removes all cached global feed pages. Called on
// every new post or comment.
func InvalidateGlobalFeed(ctx context.Context, rdb *redis.Client) {
	if rdb == nil {
		return
	}
	iter := rdb.Scan(ctx, 0, "feed:global:*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		middleware.Logger.Warn("cache scan failed", "pattern", "feed:global:*", "error", err)
		return
	}
	if len(keys) > 0 {
		if err := rdb.Del(ctx, keys...).Err(); err != nil {
			middleware.Logger.Warn("cache invalidation failed", "keys", len(keys), "error", err)
		}
	}
}
