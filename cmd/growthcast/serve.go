package main

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/arloliu/growthcast/internal/cache"
	"github.com/arloliu/growthcast/internal/metrics"
	"github.com/arloliu/growthcast/internal/server"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := opts.load(cmd.ErrOrStderr(), "")
			if err != nil {
				return err
			}
			slog.SetDefault(rt.logger)

			srv, err := newServer(rt)
			if err != nil {
				return err
			}

			return srv.Run(cmd.Context())
		},
	}
}

func newServer(rt *runtime) (*server.Server, error) {
	deps := server.Deps{Forecaster: rt.forecaster, Logger: rt.logger}

	if rt.cfg.Cache.Enabled {
		c, err := cache.New(rt.cfg.Cache.MaxEntries, rt.cfg.Cache.CompressionValue())
		if err != nil {
			return nil, err
		}
		deps.Cache = c
	}

	if rt.cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		deps.Metrics = metrics.New(reg)
		deps.MetricsPath = rt.cfg.Metrics.Path
	}

	rt.logger.Info("server configured",
		slog.String("addr", rt.cfg.Server.Addr),
		slog.Bool("cache", rt.cfg.Cache.Enabled),
		slog.String("compression", rt.cfg.Cache.Compression),
		slog.Bool("metrics", rt.cfg.Metrics.Enabled),
		slog.String("locale", rt.cfg.Engine.Locale))

	return server.New(rt.cfg.Server, deps)
}
