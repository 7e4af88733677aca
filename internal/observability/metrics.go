package observability

import (
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, gauges, and histograms for one
// profiling run. There is no exposition endpoint — the job has no network
// surface — so main logs a gathered summary after the run instead.
type Metrics struct {
	RecordsExtracted  prometheus.Counter
	DeriveFailures    prometheus.Counter
	RecordsBySeverity *prometheus.GaugeVec     // label: severity=1..5
	StageDuration     *prometheus.HistogramVec // label: stage={extract,derive,aggregate,write}
}

// NewMetrics creates and registers all job metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RecordsExtracted,
		m.DeriveFailures,
		m.RecordsBySeverity,
		m.StageDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RecordsExtracted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "samur_profile",
			Name:      "records_extracted_total",
			Help:      "Total call records read from the activations file.",
		}),
		DeriveFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "samur_profile",
			Name:      "derive_failures_total",
			Help:      "Rows that failed feature derivation. Any failure aborts the run.",
		}),
		RecordsBySeverity: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "samur_profile",
			Name:      "records_by_severity",
			Help:      "Derived records per severity class in the last run.",
		}, []string{"severity"}),
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "samur_profile",
			Name:      "stage_duration_seconds",
			Help:      "Duration of each pipeline stage.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"stage"}),
	}
}

// LogSummary gathers the samur_profile metric families and logs their values,
// giving the batch run a closing account of what it processed.
func LogSummary(logger *slog.Logger, gatherer prometheus.Gatherer) {
	families, err := gatherer.Gather()
	if err != nil {
		logger.Warn("gather metrics failed", "error", err)
		return
	}

	for _, family := range families {
		if !strings.HasPrefix(family.GetName(), "samur_profile_") {
			continue
		}
		for _, metric := range family.GetMetric() {
			args := []any{"metric", family.GetName()}
			for _, label := range metric.GetLabel() {
				args = append(args, label.GetName(), label.GetValue())
			}
			switch {
			case metric.GetCounter() != nil:
				args = append(args, "value", metric.GetCounter().GetValue())
			case metric.GetGauge() != nil:
				args = append(args, "value", metric.GetGauge().GetValue())
			case metric.GetHistogram() != nil:
				args = append(args,
					"count", metric.GetHistogram().GetSampleCount(),
					"sum_seconds", metric.GetHistogram().GetSampleSum(),
				)
			default:
				continue
			}
			logger.Info("run summary", args...)
		}
	}
}
