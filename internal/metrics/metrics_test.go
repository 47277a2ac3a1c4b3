package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRequest("/predict", "POST", 200, 5*time.Millisecond)
	m.ObserveRequest("/predict", "POST", 200, 7*time.Millisecond)
	m.ObserveRequest("/predict", "POST", 400, time.Millisecond)

	require.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("/predict", "POST", "200")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("/predict", "POST", "400")))
	require.Equal(t, 1, testutil.CollectAndCount(m.duration))
}

func TestObserveOutcome(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveOutcome("linear", "linear")
	m.ObserveOutcome("spline", "linear")
	m.ObserveOutcome("spline", "linear")

	require.Equal(t, 1.0, testutil.ToFloat64(m.interpolated.WithLabelValues("linear", "linear")))
	require.Equal(t, 2.0, testutil.ToFloat64(m.interpolated.WithLabelValues("spline", "linear")))
	require.Equal(t, 2.0, testutil.ToFloat64(m.degraded.WithLabelValues("spline")))
	require.Equal(t, 1, testutil.CollectAndCount(m.degraded))
}

func TestCache(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.CacheHit()
	m.CacheMiss()
	m.CacheMiss()

	expected := `
# HELP growthcast_cache_requests_total Response cache lookups by result
# TYPE growthcast_cache_requests_total counter
growthcast_cache_requests_total{result="hit"} 1
growthcast_cache_requests_total{result="miss"} 2
`
	require.NoError(t, testutil.CollectAndCompare(m.cache, strings.NewReader(expected)))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics

	require.NotPanics(t, func() {
		m.ObserveRequest("/", "GET", 200, time.Second)
		m.ObserveOutcome("a", "b")
		m.CacheHit()
		m.CacheMiss()
	})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ObserveOutcome("lagrange", "polynomial")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `growthcast_interpolations_degraded_total{requested="lagrange"} 1`)
}
