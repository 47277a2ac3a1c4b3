package forecast

import (
	"errors"
	"fmt"

	"github.com/arloliu/growthcast/interp"
	"github.com/arloliu/growthcast/internal/options"
)

const (
	// DefaultMaxSteps bounds how many years a single forecast may request.
	DefaultMaxSteps = 50
	// DefaultCurveIntervals is the number of sub-intervals a sampled curve spans.
	DefaultCurveIntervals = 100
	// MaxCurveIntervals bounds CurveRequest.Intervals.
	MaxCurveIntervals = 10000
)

// Config holds Forecaster configuration.
type Config struct {
	Engine   *interp.Engine
	MaxSteps int
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithEngine sets the interpolation engine.
func WithEngine(e *interp.Engine) Option {
	return options.New("WithEngine", func(cfg *Config) error {
		if e == nil {
			return errors.New("engine must not be nil")
		}
		cfg.Engine = e

		return nil
	})
}

// WithMaxSteps sets the largest accepted step count.
func WithMaxSteps(n int) Option {
	return options.New("WithMaxSteps", func(cfg *Config) error {
		if n < 1 {
			return fmt.Errorf("max steps must be positive, got %d", n)
		}
		cfg.MaxSteps = n

		return nil
	})
}
