// Package observability holds Prometheus collectors and OpenTelemetry
// tracing setup shared across the application.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency.
	DatabaseQueryLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ripple_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// DatabaseSlowQueries counts queries exceeding the slow threshold.
	DatabaseSlowQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ripple_database_slow_queries_total",
		Help: "Total number of slow database queries",
	})

	// FeedRequests counts feed resolutions by feed kind.
	FeedRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_feed_requests_total",
		Help: "Total number of feed resolutions by kind",
	}, []string{"kind"})
)
