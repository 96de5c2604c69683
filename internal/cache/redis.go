// Package cache wraps Redis access: connection setup, key inventory and
// cache-aside helpers. All helpers degrade gracefully when Redis is
// unavailable so the API keeps serving from the database.
package cache

import (
	"context"
	"net"
	"time"

	"ripple/internal/config"
	"ripple/internal/middleware"
	"ripple/internal/observability"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

// metricsHook counts Redis command errors so cache degradation is
// visible on the dashboard.
type metricsHook struct{}

func (metricsHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		if err != nil {
			observability.RedisErrors.WithLabelValues("dial").Inc()
		}
		return conn, err
	}
}

func (metricsHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		if err != nil && err != redis.Nil {
			observability.RedisErrors.WithLabelValues(cmd.Name()).Inc()
		}
		return err
	}
}

func (metricsHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		if err != nil && err != redis.Nil {
			observability.RedisErrors.WithLabelValues("pipeline").Inc()
		}
		return err
	}
}

// InitRedis connects to Redis using the application config. On failure
// it logs a warning and leaves the client nil; callers treat a nil
// client as "cache disabled".
func InitRedis(cfg *config.Config) *redis.Client {
	// REDIS_URL accepts either a full redis:// URL or a bare host:port.
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		opts = &redis.Options{Addr: cfg.RedisURL}
	}

	client := redis.NewClient(opts)
	client.AddHook(metricsHook{})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		middleware.Logger.Warn("redis unreachable, cache disabled", "addr", opts.Addr, "error", err)
		return nil
	}

	middleware.Logger.Info("connected to redis", "addr", opts.Addr)
	redisClient = client
	return client
}

// GetClient returns the shared Redis client, which may be nil when the
// cache is disabled.
func GetClient() *redis.Client {
	return redisClient
}

// SetClient overrides the shared client. Used by tests with miniredis.
func SetClient(client *redis.Client) {
	redisClient = client
}
