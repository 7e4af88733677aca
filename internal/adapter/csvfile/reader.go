// Package csvfile reads SAMUR activation records from the open-data CSV
// export. It implements pipeline.Extractor.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/madridsim/samur-data-profile/internal/config"
	"github.com/madridsim/samur-data-profile/internal/domain"
)

// Reader loads the activations CSV into raw call records.
type Reader struct {
	path      string
	separator rune
	columns   config.Columns
	logger    *slog.Logger
}

// NewReader creates a reader for the configured input file.
func NewReader(cfg *config.Config, logger *slog.Logger) *Reader {
	return &Reader{
		path:      cfg.InputPath,
		separator: cfg.CSVSeparator,
		columns:   cfg.Columns,
		logger:    logger,
	}
}

// Extract reads the whole file. The header row must contain the configured
// district, severity, and request-time columns; any row with a different
// field count is an error. Extra columns are ignored.
func (r *Reader) Extract(ctx context.Context) ([]domain.CallRecord, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open activations file: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.Comma = r.separator
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", r.path, err)
	}

	idx, err := columnIndexes(header, r.columns)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.path, err)
	}

	var records []domain.CallRecord
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", r.path, err)
		}
		records = append(records, domain.CallRecord{
			RequestTime: row[idx.requestTime],
			District:    row[idx.district],
			Severity:    row[idx.severity],
		})
	}

	r.logger.Info("activations loaded", "path", r.path, "records", len(records))
	return records, nil
}

type indexes struct {
	district    int
	severity    int
	requestTime int
}

func columnIndexes(header []string, cols config.Columns) (indexes, error) {
	idx := indexes{district: -1, severity: -1, requestTime: -1}
	for i, name := range header {
		switch name {
		case cols.District:
			idx.district = i
		case cols.Severity:
			idx.severity = i
		case cols.RequestTime:
			idx.requestTime = i
		}
	}
	for _, missing := range []struct {
		name string
		pos  int
	}{
		{cols.District, idx.district},
		{cols.Severity, idx.severity},
		{cols.RequestTime, idx.requestTime},
	} {
		if missing.pos < 0 {
			return indexes{}, fmt.Errorf("column %q not found in header", missing.name)
		}
	}
	return idx, nil
}
