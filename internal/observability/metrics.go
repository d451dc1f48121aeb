package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// FeedCacheHits counts listing-cache hits by view.
	FeedCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_feed_cache_hits_total",
		Help: "Total number of feed cache hits",
	}, []string{"view"})

	// FeedCacheMisses counts listing-cache misses by view.
	FeedCacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_feed_cache_misses_total",
		Help: "Total number of feed cache misses",
	}, []string{"view"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quill_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
