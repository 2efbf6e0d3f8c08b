package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	// EndpointDuration tracks per-endpoint engine latency.
	EndpointDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "neowatch",
			Subsystem: "engine",
			Name:      "endpoint_duration_seconds",
			Help:      "Duration of engine endpoint handling in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// InsightRequests counts calls to the insight service by outcome.
	InsightRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "neowatch",
			Subsystem: "engine",
			Name:      "insight_requests_total",
			Help:      "Insight service requests by outcome",
		},
		[]string{"outcome"},
	)

	// InsightCacheHits counts insight responses served from cache.
	InsightCacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "neowatch",
			Subsystem: "engine",
			Name:      "insight_cache_hits_total",
			Help:      "Insight responses served from cache",
		},
	)
)

// Register installs the engine collectors on the default registry. Safe
// to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(EndpointDuration, InsightRequests, InsightCacheHits)
	})
}
