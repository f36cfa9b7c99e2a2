package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "routesketch",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests processed",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "routesketch",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"method", "path"})

	// Routing metrics
	RoutesComputed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "routesketch",
		Subsystem: "route",
		Name:      "computed_total",
		Help:      "Total nearest-neighbor routes computed",
	})

	RouteComputeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "routesketch",
		Subsystem: "route",
		Name:      "compute_duration_seconds",
		Help:      "Time spent building a route",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
	})

	RoutePoints = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "routesketch",
		Subsystem: "route",
		Name:      "points",
		Help:      "Number of points per route request",
		Buckets:   []float64{2, 3, 5, 10, 20, 50, 100, 250},
	})

	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "routesketch",
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "Total route cache hits",
	})

	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "routesketch",
		Subsystem: "cache",
		Name:      "misses_total",
		Help:      "Total route cache misses",
	})

	CacheErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "routesketch",
		Subsystem: "cache",
		Name:      "errors_total",
		Help:      "Total route cache failures",
	}, []string{"operation"})
)

// Handler serves the Prometheus exposition endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
