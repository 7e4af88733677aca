package observability

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madridsim/samur-data-profile/internal/config"
)

func TestLogSummary(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetricsForTesting()
	registry.MustRegister(m.RecordsExtracted, m.RecordsBySeverity, m.StageDuration)

	m.RecordsExtracted.Add(127)
	m.RecordsBySeverity.WithLabelValues("3").Set(42)
	m.StageDuration.WithLabelValues("extract").Observe(0.25)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	LogSummary(logger, registry)

	out := buf.String()
	assert.Contains(t, out, "samur_profile_records_extracted_total")
	assert.Contains(t, out, "value=127")
	assert.Contains(t, out, "severity=3")
	assert.Contains(t, out, "samur_profile_stage_duration_seconds")
}

func TestLogSummary_SkipsForeignFamilies(t *testing.T) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	LogSummary(logger, registry)
	assert.NotContains(t, buf.String(), "go_goroutines")
}

func TestNewLogger_Formats(t *testing.T) {
	for _, format := range []string{"text", "json"} {
		cfg := &config.Config{LogFormat: format, LogLevel: "debug"}
		logger := NewLogger(cfg)
		require.NotNil(t, logger)
		assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
	}
}
