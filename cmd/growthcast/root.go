package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/arloliu/growthcast/forecast"
	"github.com/arloliu/growthcast/internal/config"
	"github.com/arloliu/growthcast/internal/logger"
	"github.com/arloliu/growthcast/interp"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "growthcast",
		Short: "Forecast user growth with linear, polynomial, spline and Lagrange interpolation",
		Long: `growthcast predicts future yearly user counts from a short history and
explains single interpolations step by step.

Run "growthcast serve" for the HTTP API or use the predict, explain and
compare commands directly.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML configuration file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	cmd.AddCommand(
		newServeCmd(opts),
		newPredictCmd(opts),
		newExplainCmd(opts),
		newCompareCmd(opts),
		newMethodsCmd(opts),
		newChartCmd(opts),
	)

	return cmd
}

// runtime is the configured state a command runs with.
type runtime struct {
	cfg        *config.Config
	logger     *slog.Logger
	forecaster *forecast.Forecaster
}

// load reads the configuration, applies flag overrides and builds the forecaster.
// An empty locale keeps the configured one.
func (o *rootOptions) load(logOut io.Writer, locale string) (*runtime, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if locale != "" {
		cfg.Engine.Locale = locale
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(logOut, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	f, err := newForecaster(cfg, log)
	if err != nil {
		return nil, err
	}

	return &runtime{cfg: cfg, logger: log, forecaster: f}, nil
}

func newForecaster(cfg *config.Config, log *slog.Logger) (*forecast.Forecaster, error) {
	engine, err := interp.NewEngine(
		interp.WithLogger(log),
		interp.WithBarycentricThreshold(cfg.Engine.BarycentricThreshold),
		interp.WithMaxDegree(cfg.Engine.PolynomialMaxDegree),
		interp.WithLocale(cfg.Engine.LocaleValue()),
		interp.WithClamp(cfg.Engine.Clamp),
	)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	return forecast.New(forecast.WithEngine(engine), forecast.WithMaxSteps(cfg.Engine.MaxSteps))
}
