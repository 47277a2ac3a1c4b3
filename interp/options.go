package interp

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/arloliu/growthcast/format"
	"github.com/arloliu/growthcast/internal/options"
	"github.com/arloliu/growthcast/regression"
)

// Config holds Engine configuration.
type Config struct {
	Logger               *slog.Logger
	BarycentricThreshold int
	MaxDegree            int
	Locale               format.Locale
	Clamp                bool
}

func defaultConfig() Config {
	return Config{
		Logger:               slog.New(slog.DiscardHandler),
		BarycentricThreshold: DefaultBarycentricThreshold,
		MaxDegree:            regression.DefaultMaxDegree,
		Locale:               format.LocaleEnglish,
		Clamp:                true,
	}
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithLogger sets the logger receiving method and fallback events.
func WithLogger(l *slog.Logger) Option {
	return options.New("WithLogger", func(cfg *Config) error {
		if l == nil {
			return errors.New("logger must not be nil")
		}
		cfg.Logger = l

		return nil
	})
}

// WithBarycentricThreshold sets the largest series evaluated in direct Lagrange form.
func WithBarycentricThreshold(n int) Option {
	return options.New("WithBarycentricThreshold", func(cfg *Config) error {
		if n < 2 {
			return fmt.Errorf("threshold must be at least 2, got %d", n)
		}
		cfg.BarycentricThreshold = n

		return nil
	})
}

// WithMaxDegree sets the polynomial predict-path degree cap.
func WithMaxDegree(d int) Option {
	return options.New("WithMaxDegree", func(cfg *Config) error {
		if d < 1 {
			return fmt.Errorf("max degree must be at least 1, got %d", d)
		}
		cfg.MaxDegree = d

		return nil
	})
}

// WithLocale sets the language of explain traces.
func WithLocale(l format.Locale) Option {
	return options.New("WithLocale", func(cfg *Config) error {
		if !l.Valid() {
			return fmt.Errorf("unsupported locale %d", l)
		}
		cfg.Locale = l

		return nil
	})
}

// WithClamp enables or disables clamping of Invalid predictions to min(y).
func WithClamp(enabled bool) Option {
	return options.NoError("WithClamp", func(cfg *Config) {
		cfg.Clamp = enabled
	})
}
