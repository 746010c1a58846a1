package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	EndpointLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tradelite",
			Subsystem: "api",
			Name:      "latency_seconds",
			Help:      "Latency of API endpoints",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	EndpointErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tradelite",
			Subsystem: "api",
			Name:      "errors_total",
			Help:      "Errors by API endpoint",
		},
		[]string{"endpoint"},
	)

	CacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tradelite",
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Cache hits by operation",
		},
		[]string{"operation"},
	)

	CacheMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tradelite",
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Cache misses by operation",
		},
		[]string{"operation"},
	)

	FeedbackTier = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tradelite",
			Subsystem: "feedback",
			Name:      "tier_total",
			Help:      "Feedback generations by serving tier",
		},
		[]string{"tier"},
	)
)

func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			EndpointLatency,
			EndpointErrors,
			CacheHits,
			CacheMisses,
			FeedbackTier,
		)
	})
}
