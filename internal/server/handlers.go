package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/arloliu/growthcast/chart"
	"github.com/arloliu/growthcast/dataset"
	"github.com/arloliu/growthcast/forecast"
	"github.com/arloliu/growthcast/format"
	"github.com/arloliu/growthcast/internal/hash"
	"github.com/arloliu/growthcast/internal/pool"
)

const (
	jsonContentType = "application/json; charset=utf-8"
	csvContentType  = "text/csv; charset=utf-8"
	htmlContentType = "text/html; charset=utf-8"

	// headerCache reports "hit" or "miss" on cacheable routes.
	headerCache = "X-Cache"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handlePredict(c *gin.Context) {
	var req forecast.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeBindError(c, err)
		return
	}

	key := s.fingerprint("predict", req.Method).points(req.Data).Int(int64(req.Steps)).Sum()
	s.serveCached(c, key, req.Method, func() (any, error) {
		resp, err := s.forecaster.Forecast(req)
		if err != nil {
			return nil, err
		}
		s.metrics.ObserveOutcome(resp.Method, resp.ExecutedMethod)

		return resp, nil
	})
}

func (s *Server) handleCompare(c *gin.Context) {
	var req forecast.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeBindError(c, err)
		return
	}

	key := s.fingerprint("compare", "").points(req.Data).Int(int64(req.Steps)).Sum()
	s.serveCached(c, key, "", func() (any, error) {
		resp, err := s.forecaster.Compare(c.Request.Context(), req)
		if err != nil {
			return nil, err
		}
		for _, r := range resp.Results {
			s.metrics.ObserveOutcome(r.Method, r.ExecutedMethod)
		}

		return resp, nil
	})
}

func (s *Server) handleCalculate(c *gin.Context) {
	var req forecast.ExplainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeBindError(c, err)
		return
	}

	key := s.fingerprint("calculate", req.Method).Floats(req.X).Floats(req.Y).Float(*req.XToPredict).Sum()
	s.serveCached(c, key, req.Method, func() (any, error) {
		resp, err := s.forecaster.Explain(req)
		if err != nil {
			return nil, err
		}
		s.metrics.ObserveOutcome(resp.Method, resp.ExecutedMethod)

		return resp, nil
	})
}

func (s *Server) handleCurve(c *gin.Context) {
	var req forecast.CurveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeBindError(c, err)
		return
	}

	key := s.fingerprint("curve", req.Method).Floats(req.X).Floats(req.Y).Int(int64(req.Intervals)).Sum()
	s.serveCached(c, key, req.Method, func() (any, error) {
		return s.forecaster.Curve(req)
	})
}

func (s *Server) handleChart(c *gin.Context) {
	var req forecast.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeBindError(c, err)
		return
	}

	resp, err := s.forecaster.Compare(c.Request.Context(), req)
	if err != nil {
		s.writeError(c, err, "")
		return
	}

	var buf bytes.Buffer
	if err := chart.RenderForecast(&buf, "User growth forecast", req.Data, resp); err != nil {
		s.writeError(c, err, "")
		return
	}
	c.Data(http.StatusOK, htmlContentType, buf.Bytes())
}

func (s *Server) handleCurveChart(c *gin.Context) {
	var req forecast.CurveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeBindError(c, err)
		return
	}

	resp, err := s.forecaster.Curve(req)
	if err != nil {
		s.writeError(c, err, req.Method)
		return
	}

	var buf bytes.Buffer
	if err := chart.RenderCurve(&buf, "Interpolation curve", resp, req.X, req.Y); err != nil {
		s.writeError(c, err, req.Method)
		return
	}
	c.Data(http.StatusOK, htmlContentType, buf.Bytes())
}

func (s *Server) handleExport(c *gin.Context) {
	var req forecast.ExplainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeBindError(c, err)
		return
	}

	resp, err := s.forecaster.Explain(req)
	if err != nil {
		s.writeError(c, err, req.Method)
		return
	}

	var buf bytes.Buffer
	if err := dataset.WriteExplanationCSV(&buf, resp, s.locale()); err != nil {
		s.writeError(c, err, req.Method)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="interpolation-%s.csv"`, resp.Method))
	c.Data(http.StatusOK, csvContentType, buf.Bytes())
}

func (s *Server) handleExample(c *gin.Context) {
	// Unknown names fall back to the linear example.
	m, _ := format.ParseMethod(c.Param("method"))
	c.JSON(http.StatusOK, dataset.Example(m))
}

func (s *Server) handleSample(c *gin.Context) {
	records, err := dataset.Sample()
	if err != nil {
		s.fail(c, http.StatusInternalServerError, ErrorResponse{Error: "Failed to load sample data", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

func (s *Server) handleUpload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		if status, body := badJSON(err); status == http.StatusRequestEntityTooLarge {
			s.fail(c, status, body)
			return
		}
		s.fail(c, http.StatusBadRequest, ErrorResponse{Error: "No file part in request"})
		return
	}
	if strings.TrimSpace(fh.Filename) == "" {
		s.fail(c, http.StatusBadRequest, ErrorResponse{Error: "No selected file"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		s.fail(c, http.StatusBadRequest, ErrorResponse{Error: "CSV processing failed", Details: err.Error()})
		return
	}
	defer f.Close()

	records, err := dataset.Load(f)
	if err != nil {
		s.writeError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, records)
}

// serveCached writes the JSON encoding of compute's result, memoizing the
// encoded body under key when a cache is configured. Errors are not cached.
func (s *Server) serveCached(c *gin.Context, key uint64, method string, compute func() (any, error)) {
	if s.cache != nil {
		body, ok, err := s.cache.Get(key)
		if err != nil {
			s.logger.Warn("cache read failed", slog.Any("error", err))
		}
		if ok {
			s.metrics.CacheHit()
			c.Header(headerCache, "hit")
			c.Data(http.StatusOK, jsonContentType, body)

			return
		}
		s.metrics.CacheMiss()
	}

	v, err := compute()
	if err != nil {
		s.writeError(c, err, method)
		return
	}

	buf := pool.GetResponseBuffer()
	defer pool.PutResponseBuffer(buf)
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		s.writeError(c, err, method)
		return
	}

	if s.cache != nil {
		if err := s.cache.Put(key, buf.Bytes()); err != nil {
			s.logger.Warn("cache write failed", slog.Any("error", err))
		}
		c.Header(headerCache, "miss")
	}
	c.Data(http.StatusOK, jsonContentType, buf.Bytes())
}

func (s *Server) locale() format.Locale {
	return s.forecaster.Engine().Config().Locale
}

// requestKey extends hash.Fingerprint with forecast points.
type requestKey struct {
	*hash.Fingerprint
}

func (s *Server) fingerprint(route, method string) requestKey {
	f := hash.NewFingerprint(route).
		String(strings.ToLower(strings.TrimSpace(method))).
		Uint(uint64(s.locale()))

	return requestKey{f}
}

func (k requestKey) points(points []forecast.Point) requestKey {
	k.Uint(uint64(len(points)))
	for _, p := range points {
		k.Int(int64(p.Year)).Float(p.Users)
	}

	return k
}
