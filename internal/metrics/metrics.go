// Package metrics defines the Prometheus collectors exported by the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "growthcast"

// Metrics groups the service collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	interpolated *prometheus.CounterVec
	degraded     *prometheus.CounterVec
	cache        *prometheus.CounterVec
	gatherer     prometheus.Gatherer
}

// New registers the collectors with reg. Passing a fresh prometheus.Registry
// keeps tests isolated from the default registry.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code",
		}, []string{"route", "method", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
		}, []string{"route"}),
		interpolated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "interpolations_total",
			Help:      "Interpolation outcomes by requested and executed method",
		}, []string{"requested", "executed"}),
		degraded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "interpolations_degraded_total",
			Help:      "Outcomes produced by a fallback method, by requested method",
		}, []string{"requested"}),
		cache: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_requests_total",
			Help:      "Response cache lookups by result",
		}, []string{"result"}),
		gatherer: reg,
	}
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// ObserveOutcome records which method produced a result.
func (m *Metrics) ObserveOutcome(requested, executed string) {
	if m == nil {
		return
	}
	m.interpolated.WithLabelValues(requested, executed).Inc()
	if requested != executed {
		m.degraded.WithLabelValues(requested).Inc()
	}
}

// CacheHit records a cache hit.
func (m *Metrics) CacheHit() {
	if m == nil {
		return
	}
	m.cache.WithLabelValues("hit").Inc()
}

// CacheMiss records a cache miss.
func (m *Metrics) CacheMiss() {
	if m == nil {
		return
	}
	m.cache.WithLabelValues("miss").Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}

	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
