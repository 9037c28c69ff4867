// Package metrics holds the Prometheus collectors exported at /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns a private registry so tests can build as many as they like.
type Collector struct {
	registry *prometheus.Registry

	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
	VersesResolved     *prometheus.CounterVec
	GeneratorCalls     *prometheus.CounterVec
	GeneratorDuration  *prometheus.HistogramVec
	OverrideMutations  *prometheus.CounterVec
	SupersededRequests prometheus.Counter
}

// NewCollector creates and registers all collectors under namespace.
func NewCollector(namespace string) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		VersesResolved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "verses_resolved_total",
				Help:      "Resolved verses by the source that answered",
			},
			[]string{"source"},
		),
		GeneratorCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "generator_calls_total",
				Help:      "Remote generator calls by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		GeneratorDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "generator_call_duration_seconds",
				Help:      "Remote generator latency in seconds",
				Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
			},
			[]string{"operation"},
		),
		OverrideMutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "override_mutations_total",
				Help:      "Admin override upserts and deletes",
			},
			[]string{"action"},
		),
		SupersededRequests: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "superseded_requests_total",
				Help:      "Requests dropped because a newer one for the same slot started",
			},
		),
	}

	c.registry.MustRegister(
		c.HTTPRequests,
		c.HTTPDuration,
		c.VersesResolved,
		c.GeneratorCalls,
		c.GeneratorDuration,
		c.OverrideMutations,
		c.SupersededRequests,
	)
	return c
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ObserveHTTP records one finished request. route should be the mux pattern,
// not the raw path, to keep label cardinality bounded.
func (c *Collector) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveGenerator records one generator call.
func (c *Collector) ObserveGenerator(operation string, err error, elapsed time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.GeneratorCalls.WithLabelValues(operation, outcome).Inc()
	c.GeneratorDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}
