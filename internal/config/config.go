// Package config loads the growthcast service configuration.
//
// Values come from, in increasing precedence: built-in defaults, an optional
// YAML file, and GROWTHCAST_* environment variables where nested keys are
// joined with underscores (GROWTHCAST_SERVER_ADDR, GROWTHCAST_CACHE_ENABLED).
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/arloliu/growthcast/format"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "GROWTHCAST"

// Config is the complete service configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Engine  EngineConfig  `mapstructure:"engine"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr           string        `mapstructure:"addr" validate:"required"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"gt=0"`
	MaxBodyBytes   int64         `mapstructure:"max_body_bytes" validate:"gt=0"`
	CORSOrigins    []string      `mapstructure:"cors_origins"`
}

// EngineConfig configures interpolation and forecasting.
type EngineConfig struct {
	MaxSteps             int    `mapstructure:"max_steps" validate:"gte=1,lte=1000"`
	BarycentricThreshold int    `mapstructure:"barycentric_threshold" validate:"gte=2"`
	PolynomialMaxDegree  int    `mapstructure:"polynomial_max_degree" validate:"gte=1,lte=10"`
	Locale               string `mapstructure:"locale" validate:"oneof=en id"`
	Clamp                bool   `mapstructure:"clamp"`
}

// CacheConfig configures the response cache.
type CacheConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	MaxEntries  int    `mapstructure:"max_entries" validate:"gte=1"`
	Compression string `mapstructure:"compression" validate:"oneof=none zstd s2 lz4"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"startswith=/"`
}

var defaults = map[string]any{
	"server.addr":                  ":8080",
	"server.read_timeout":          "10s",
	"server.write_timeout":         "30s",
	"server.request_timeout":       "15s",
	"server.max_body_bytes":        1 << 20,
	"server.cors_origins":          []string{"*"},
	"engine.max_steps":             50,
	"engine.barycentric_threshold": 10,
	"engine.polynomial_max_degree": 3,
	"engine.locale":                "en",
	"engine.clamp":                 true,
	"cache.enabled":                true,
	"cache.max_entries":            1024,
	"cache.compression":            "s2",
	"log.level":                    "info",
	"log.format":                   "text",
	"metrics.enabled":              true,
	"metrics.path":                 "/metrics",
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads the configuration.
//
// Parameters:
//   - path: YAML file to read; empty uses defaults and environment only
//
// Returns:
//   - *Config: Validated configuration
//   - error: Unreadable file, undecodable value or failed validation
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file failed (%s): %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = true
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}); err != nil {
		return nil, fmt.Errorf("parsing config failed: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("built-in configuration is invalid: %v", err))
	}

	return cfg
}

// Validate checks every field constraint.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s fails %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}

		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// LocaleValue returns the parsed engine locale.
func (e EngineConfig) LocaleValue() format.Locale {
	l, err := format.ParseLocale(e.Locale)
	if err != nil {
		return format.LocaleEnglish
	}

	return l
}

// CompressionValue returns the parsed cache compression.
func (c CacheConfig) CompressionValue() format.CompressionType {
	ct, err := format.ParseCompression(c.Compression)
	if err != nil {
		return format.CompressionNone
	}

	return ct
}
