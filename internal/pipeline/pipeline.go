// Package pipeline orchestrates the four-stage batch run: extract raw call
// records, derive per-call features, aggregate the severity profile table,
// and write the contract document.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/madridsim/samur-data-profile/internal/domain"
	"github.com/madridsim/samur-data-profile/internal/observability"
)

// Extractor reads the whole raw dataset.
type Extractor interface {
	Extract(ctx context.Context) ([]domain.CallRecord, error)
}

// Loader persists the aggregated profile table.
type Loader interface {
	Write(ctx context.Context, table domain.ProfileTable) error
}

// Pipeline runs the extract-derive-aggregate-write sequence once.
// Any stage error aborts the run; no output is written on failure.
type Pipeline struct {
	extractor Extractor
	loader    Loader
	logger    *slog.Logger
	metrics   *observability.Metrics
	clock     clockwork.Clock
}

// New creates a Pipeline with the given stages and observability. Pass a nil
// clock to use real time.
func New(e Extractor, l Loader, logger *slog.Logger, metrics *observability.Metrics, clock clockwork.Clock) *Pipeline {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Pipeline{
		extractor: e,
		loader:    l,
		logger:    logger,
		metrics:   metrics,
		clock:     clock,
	}
}

// Run executes one batch analysis. Reruns over the same input produce the
// same output file.
func (p *Pipeline) Run(ctx context.Context) error {
	start := p.clock.Now()

	records, err := p.extract(ctx)
	if err != nil {
		return err
	}

	emergencies, err := p.derive(records)
	if err != nil {
		return err
	}

	table, err := p.aggregate(emergencies)
	if err != nil {
		return err
	}

	if err := p.write(ctx, table); err != nil {
		return err
	}

	p.logger.Info("profiling run complete",
		"records", len(records),
		"duration", p.clock.Since(start),
	)
	return nil
}

func (p *Pipeline) extract(ctx context.Context) ([]domain.CallRecord, error) {
	stage := p.startStage("extract")
	records, err := p.extractor.Extract(ctx)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	stage.done()

	p.metrics.RecordsExtracted.Add(float64(len(records)))
	return records, nil
}

// derive is fatal on the first malformed row: a silently skipped row would
// bias every distribution the run emits.
func (p *Pipeline) derive(records []domain.CallRecord) ([]domain.Emergency, error) {
	stage := p.startStage("derive")

	emergencies := make([]domain.Emergency, 0, len(records))
	bySeverity := make(map[int]int, domain.MaxSeverity)
	for i, rec := range records {
		e, err := domain.DeriveEmergency(rec)
		if err != nil {
			p.metrics.DeriveFailures.Inc()
			p.logger.Error("derive failed", "row", i+1, "district", rec.District, "error", err)
			return nil, fmt.Errorf("derive row %d: %w", i+1, err)
		}
		emergencies = append(emergencies, e)
		bySeverity[e.Severity]++
	}
	stage.done()

	for severity, count := range bySeverity {
		p.metrics.RecordsBySeverity.
			WithLabelValues(strconv.Itoa(severity)).
			Set(float64(count))
	}
	return emergencies, nil
}

func (p *Pipeline) aggregate(emergencies []domain.Emergency) (domain.ProfileTable, error) {
	stage := p.startStage("aggregate")
	table, err := domain.Aggregate(emergencies)
	if err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}
	stage.done()
	return table, nil
}

func (p *Pipeline) write(ctx context.Context, table domain.ProfileTable) error {
	stage := p.startStage("write")
	if err := p.loader.Write(ctx, table); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	stage.done()
	return nil
}

type runningStage struct {
	p     *Pipeline
	name  string
	start time.Time
}

func (p *Pipeline) startStage(name string) *runningStage {
	p.logger.Debug("stage started", "stage", name)
	return &runningStage{p: p, name: name, start: p.clock.Now()}
}

func (s *runningStage) done() {
	elapsed := s.p.clock.Since(s.start)
	s.p.metrics.StageDuration.WithLabelValues(s.name).Observe(elapsed.Seconds())
	s.p.logger.Debug("stage finished", "stage", s.name, "duration", elapsed)
}
