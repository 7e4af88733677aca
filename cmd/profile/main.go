// Command profile runs the SAMUR activations analysis once: it reads the
// historical activations CSV, derives per-call features, aggregates the
// per-severity distribution table, and writes the YAML document consumed by
// the downstream emergency generator.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/madridsim/samur-data-profile/internal/adapter/csvfile"
	"github.com/madridsim/samur-data-profile/internal/adapter/yamlfile"
	"github.com/madridsim/samur-data-profile/internal/config"
	"github.com/madridsim/samur-data-profile/internal/observability"
	"github.com/madridsim/samur-data-profile/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	reader := csvfile.NewReader(cfg, logger)
	writer := yamlfile.NewWriter(cfg, logger)

	p := pipeline.New(reader, writer, logger, metrics, nil)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := p.Run(ctx); err != nil {
		logger.Error("profiling run failed", "error", err)
		observability.LogSummary(logger, prometheus.DefaultGatherer)
		os.Exit(1)
	}

	observability.LogSummary(logger, prometheus.DefaultGatherer)
}
