package config_fx

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"

	"arca/internal/infra/config"
	"arca/pkg/i18n"
	"arca/pkg/logger"
	"arca/pkg/metrics"
)

var Module = fx.Provide(
	config.LoadConfig,
	provideLogger,
	provideRegistry,
	provideMetrics,
	provideBundle)

func provideLogger(lc fx.Lifecycle, cfg *config.Config) logger.Logger {
	log := logger.NewLogger(cfg.LogLevel)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = log.Sync()
			return nil
		},
	})
	return log
}

func provideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func provideMetrics(cfg *config.Config, reg *prometheus.Registry) *metrics.Metrics {
	return metrics.NewMetrics(cfg.MetricsNamespace, reg)
}

func provideBundle(cfg *config.Config) *i18n.Bundle {
	return i18n.NewBundle(cfg.DefaultLanguage)
}
