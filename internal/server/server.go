// Package server exposes the forecasting API over HTTP with gin.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/arloliu/growthcast/forecast"
	"github.com/arloliu/growthcast/internal/cache"
	"github.com/arloliu/growthcast/internal/config"
	"github.com/arloliu/growthcast/internal/metrics"
)

// shutdownGrace bounds how long Run waits for in-flight requests.
const shutdownGrace = 10 * time.Second

// Deps are the collaborators of a Server. Only Forecaster is required.
type Deps struct {
	Forecaster *forecast.Forecaster
	// Cache memoizes responses; nil disables caching.
	Cache *cache.Cache
	// Metrics records request metrics; nil disables them.
	Metrics *metrics.Metrics
	// MetricsPath mounts Metrics.Handler; empty means "/metrics".
	MetricsPath string
	Logger      *slog.Logger
}

// Server is the HTTP front end of a Forecaster.
type Server struct {
	cfg        config.ServerConfig
	router     *gin.Engine
	forecaster *forecast.Forecaster
	cache      *cache.Cache
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

var registerTagNames sync.Once

// New builds a Server and registers its routes.
//
// Parameters:
//   - cfg: Listener address, timeouts, body limit and CORS origins
//   - deps: Forecaster plus optional cache, metrics and logger
//
// Returns:
//   - *Server: Ready to Run or to serve via Handler
//   - error: Missing forecaster
func New(cfg config.ServerConfig, deps Deps) (*Server, error) {
	if deps.Forecaster == nil {
		return nil, errors.New("server requires a forecaster")
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 1 << 20
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	registerTagNames.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(jsonFieldName)
		}
	})

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	s := &Server{
		cfg:        cfg,
		router:     router,
		forecaster: deps.Forecaster,
		cache:      deps.Cache,
		metrics:    deps.Metrics,
		logger:     deps.Logger,
	}
	router.Use(gin.Recovery(), requestID(), s.observe(), s.cors(), bodyLimit(cfg.MaxBodyBytes), timeout(cfg.RequestTimeout))
	s.registerRoutes(deps.MetricsPath)

	return s, nil
}

func (s *Server) registerRoutes(metricsPath string) {
	s.router.GET("/health", s.handleHealth)
	if s.metrics != nil {
		if metricsPath == "" {
			metricsPath = "/metrics"
		}
		s.router.GET(metricsPath, gin.WrapH(s.metrics.Handler()))
	}

	predict := s.router.Group("/predict")
	predict.POST("", s.handlePredict)
	predict.POST("/compare", s.handleCompare)
	predict.POST("/chart", s.handleChart)

	calc := s.router.Group("/calculate")
	calc.POST("", s.handleCalculate)
	calc.POST("/curve", s.handleCurve)
	calc.POST("/curve/chart", s.handleCurveChart)
	calc.POST("/export", s.handleExport)
	calc.GET("/examples/:method", s.handleExample)

	data := s.router.Group("/data")
	data.GET("", s.handleSample)
	data.GET("/sample", s.handleSample)
	data.POST("", s.handleUpload)
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", slog.String("addr", s.cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	s.logger.Info("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	return nil
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}

	return name
}
