package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/growthcast/dataset"
	"github.com/arloliu/growthcast/errs"
	"github.com/arloliu/growthcast/forecast"
	"github.com/arloliu/growthcast/format"
	"github.com/arloliu/growthcast/internal/cache"
	"github.com/arloliu/growthcast/internal/config"
	"github.com/arloliu/growthcast/internal/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	*Server
	cache   *cache.Cache
	metrics *metrics.Metrics
}

func newTestServer(t *testing.T, mutate ...func(*config.ServerConfig)) *testServer {
	t.Helper()

	cfg := config.Default().Server
	for _, m := range mutate {
		m(&cfg)
	}
	f, err := forecast.New()
	require.NoError(t, err)
	c, err := cache.New(32, format.CompressionS2)
	require.NoError(t, err)
	m := metrics.New(prometheus.NewRegistry())

	s, err := New(cfg, Deps{Forecaster: f, Cache: c, Metrics: m})
	require.NoError(t, err)

	return &testServer{Server: s, cache: c, metrics: m}
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var r *http.Request
	switch b := body.(type) {
	case nil:
		r = httptest.NewRequest(method, path, nil)
	case string:
		r = httptest.NewRequest(method, path, strings.NewReader(b))
		r.Header.Set("Content-Type", "application/json")
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = httptest.NewRequest(method, path, bytes.NewReader(raw))
		r.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	ts.Handler().ServeHTTP(rec, r)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())

	return v
}

var doubling = []forecast.Point{{Year: 2019, Users: 10}, {Year: 2020, Users: 20}, {Year: 2021, Users: 40}, {Year: 2022, Users: 80}}

func TestPredict(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/predict", forecast.Request{Method: "linear", Data: doubling, Steps: 2})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "miss", rec.Header().Get(headerCache))

	resp := decode[forecast.Response](t, rec)
	require.Equal(t, []forecast.Point{{Year: 2023, Users: 120}, {Year: 2024, Users: 160}}, resp.Predictions)
	require.Equal(t, "2019 - 2022", resp.HistoricalRange)
	require.Equal(t, "linear", resp.ExecutedMethod)

	again := ts.do(t, http.MethodPost, "/predict", forecast.Request{Method: "LINEAR", Data: doubling, Steps: 2})
	require.Equal(t, http.StatusOK, again.Code)
	require.Equal(t, "hit", again.Header().Get(headerCache))
	require.JSONEq(t, rec.Body.String(), again.Body.String())

	s := ts.cache.Stats()
	require.Equal(t, uint64(1), s.Hits)
	require.Equal(t, 1, s.Entries)
}

func TestPredictDefaultsToOneStep(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/predict", `{"method":"spline","data":[{"year":2021,"users":100},{"year":2022,"users":130}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[forecast.Response](t, rec)
	require.Equal(t, []forecast.Point{{Year: 2023, Users: 160}}, resp.Predictions)
	require.True(t, resp.Degraded)
}

func TestPredictErrors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name    string
		body    any
		status  int
		summary string
		method  string
	}{
		{"invalid json", `{"method":`, http.StatusBadRequest, "Invalid JSON in request body", ""},
		{"missing method", `{"data":[{"year":2020,"users":1},{"year":2021,"users":2}]}`, http.StatusBadRequest, "Missing 'method' in request", ""},
		{"missing data", `{"method":"linear"}`, http.StatusBadRequest, "Missing 'data' in request", ""},
		{"unknown method", forecast.Request{Method: "cubic", Data: doubling}, http.StatusBadRequest, "Unknown method", "cubic"},
		{"one point", forecast.Request{Method: "linear", Data: doubling[:1]}, http.StatusBadRequest, "Insufficient data", "linear"},
		{"gap", forecast.Request{Method: "linear", Data: []forecast.Point{{Year: 2019, Users: 1}, {Year: 2021, Users: 2}}}, http.StatusBadRequest, "Invalid year sequence", "linear"},
		{"zero users", forecast.Request{Method: "linear", Data: []forecast.Point{{Year: 2019, Users: 0}, {Year: 2020, Users: 2}}}, http.StatusBadRequest, "Invalid user counts", "linear"},
		{"too many steps", forecast.Request{Method: "linear", Data: doubling, Steps: 500}, http.StatusBadRequest, "Invalid steps", "linear"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, http.MethodPost, "/predict", tt.body)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())

			body := decode[ErrorResponse](t, rec)
			require.Equal(t, tt.summary, body.Error)
			require.Equal(t, tt.method, body.Method)
		})
	}
	require.Zero(t, ts.cache.Len(), "errors are not cached")
}

func TestCompare(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/predict/compare", forecast.CompareRequest{Data: doubling, Steps: 1})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode[forecast.CompareResponse](t, rec)
	require.Len(t, resp.Results, 4)
	require.Equal(t, 120.0, resp.Results["linear"].Predictions[0].Users)
}

func TestCalculate(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/calculate", `{"method":"polynomial","x":[1,2,3],"y":[1,4,9],"xToPredict":4}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode[forecast.ExplainResponse](t, rec)
	require.Equal(t, 16.0, resp.InterpolatedValue)
	require.NotEmpty(t, resp.CalculationSteps)

	rec = ts.do(t, http.MethodPost, "/calculate", `{"method":"linear","x":[1,2],"y":[1,2]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Missing 'xToPredict' in request", decode[ErrorResponse](t, rec).Error)

	rec = ts.do(t, http.MethodPost, "/calculate", `{"method":"linear","x":[1,1],"y":[1,2],"xToPredict":1}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Invalid input data", decode[ErrorResponse](t, rec).Error)
}

func TestCurve(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/calculate/curve", `{"method":"spline","x":[1,2,3,4],"y":[1,4,9,16],"points":10}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode[forecast.CurveResponse](t, rec)
	require.Len(t, resp.Points, 11)
	require.InDelta(t, 0.7, resp.Points[0].X, 1e-9)
	require.InDelta(t, 4.3, resp.Points[10].X, 1e-9)
}

func TestCharts(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/predict/chart", forecast.CompareRequest{Data: doubling, Steps: 2})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, htmlContentType, rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "User growth forecast")

	rec = ts.do(t, http.MethodPost, "/calculate/curve/chart", `{"method":"spline","x":[1,2,3,4],"y":[1,4,9,16]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Contains(t, rec.Body.String(), "Interpolation curve")

	rec = ts.do(t, http.MethodPost, "/predict/chart", forecast.CompareRequest{Data: doubling[:1]})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Insufficient data", decode[ErrorResponse](t, rec).Error)
}

func TestExport(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/calculate/export", `{"method":"polynomial","x":[1,2,3],"y":[1,4,9],"xToPredict":4}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, csvContentType, rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Header().Get("Content-Disposition"), "interpolation-polynomial.csv")
	require.True(t, strings.HasPrefix(rec.Body.String(), "Interpolation method: Polynomial\n"))
	require.Contains(t, rec.Body.String(), "Y,16\n")
}

func TestExamples(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/calculate/examples/spline", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, dataset.Example(format.MethodSpline), decode[dataset.ExampleInput](t, rec))

	rec = ts.do(t, http.MethodGet, "/calculate/examples/unknown", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, dataset.Example(format.MethodLinear), decode[dataset.ExampleInput](t, rec))
}

func TestSampleData(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/data", "/data/sample"} {
		rec := ts.do(t, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		records := decode[[]dataset.Record](t, rec)
		require.Len(t, records, 10)
		require.Equal(t, 2015, records[0].Year)
	}
}

func upload(t *testing.T, ts *testServer, field, filename, content string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/data", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	ts.Handler().ServeHTTP(rec, r)

	return rec
}

func TestUpload(t *testing.T) {
	ts := newTestServer(t)

	rec := upload(t, ts, "file", "growth.csv", "year,users,key_event\n2020,10,\n2021,15,launch\n")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, []dataset.Record{{Year: 2020, Users: 10}, {Year: 2021, Users: 15, Event: "launch"}}, decode[[]dataset.Record](t, rec))

	rec = upload(t, ts, "file", "growth.csv", "year,count\n2020,10\n")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Invalid CSV columns", decode[ErrorResponse](t, rec).Error)

	rec = upload(t, ts, "file", "growth.csv", "year,users\n2020,10\n2022,12\n")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Invalid year sequence", decode[ErrorResponse](t, rec).Error)

	rec = upload(t, ts, "other", "growth.csv", "year,users\n")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "No file part in request", decode[ErrorResponse](t, rec).Error)
}

func TestHealthAndRequestID(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	_, err := uuid.Parse(rec.Header().Get(HeaderRequestID))
	require.NoError(t, err)

	id := uuid.NewString()
	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.Header.Set(HeaderRequestID, id)
	rec = httptest.NewRecorder()
	ts.Handler().ServeHTTP(rec, r)
	require.Equal(t, id, rec.Header().Get(HeaderRequestID))

	r = httptest.NewRequest(http.MethodGet, "/health", nil)
	r.Header.Set(HeaderRequestID, "not-a-uuid")
	rec = httptest.NewRecorder()
	ts.Handler().ServeHTTP(rec, r)
	require.NotEqual(t, "not-a-uuid", rec.Header().Get(HeaderRequestID))
}

func TestCORS(t *testing.T) {
	ts := newTestServer(t)

	r := httptest.NewRequest(http.MethodOptions, "/predict", nil)
	r.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	ts.Handler().ServeHTTP(rec, r)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	restricted := newTestServer(t, func(c *config.ServerConfig) {
		c.CORSOrigins = []string{"https://app.example"}
	})
	tests := []struct {
		origin string
		want   string
	}{
		{"https://app.example", "https://app.example"},
		{"https://evil.example", ""},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/health", nil)
		r.Header.Set("Origin", tt.origin)
		rec := httptest.NewRecorder()
		restricted.Handler().ServeHTTP(rec, r)
		assert.Equal(t, tt.want, rec.Header().Get("Access-Control-Allow-Origin"), tt.origin)
	}
}

func TestBodyLimit(t *testing.T) {
	ts := newTestServer(t, func(c *config.ServerConfig) { c.MaxBodyBytes = 64 })

	points := make([]forecast.Point, 20)
	for i := range points {
		points[i] = forecast.Point{Year: 2000 + i, Users: float64(i + 1)}
	}
	rec := ts.do(t, http.MethodPost, "/predict", forecast.Request{Method: "linear", Data: points})
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	ts.do(t, http.MethodPost, "/predict", forecast.Request{Method: "spline", Data: doubling[:2]})
	rec := ts.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	require.Contains(t, body, `growthcast_http_requests_total{method="POST",route="/predict",status="200"} 1`)
	require.Contains(t, body, `growthcast_interpolations_degraded_total{requested="spline"} 1`)
	require.Contains(t, body, `growthcast_cache_requests_total{result="miss"} 1`)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		summary string
	}{
		{"validation", errs.NewValidationError("x", errs.ErrDuplicateX, "x repeats"), http.StatusBadRequest, "Invalid input data"},
		{"unmapped validation", errs.NewValidationError("x", errors.New("other"), "odd"), http.StatusBadRequest, "Invalid request"},
		{"interpolation", errs.NewInterpolationFailure("lagrange", fmt.Errorf("linear: %w", errs.ErrNonFiniteResult)), http.StatusUnprocessableEntity, "Interpolation failed"},
		{"deadline", fmt.Errorf("compare: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, "Request timed out"},
		{"too large", &http.MaxBytesError{Limit: 10}, http.StatusRequestEntityTooLarge, "Request body too large"},
		{"other", errors.New("boom"), http.StatusInternalServerError, "Internal error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := classify(tt.err, "lagrange")
			require.Equal(t, tt.status, status)
			require.Equal(t, tt.summary, body.Error)
		})
	}
}

func TestNewRequiresForecaster(t *testing.T) {
	_, err := New(config.Default().Server, Deps{})
	require.Error(t, err)
}
