// Package yamlfile persists the severity profile table as the YAML document
// consumed by the downstream emergency generator. It implements
// pipeline.Loader.
package yamlfile

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/madridsim/samur-data-profile/internal/config"
	"github.com/madridsim/samur-data-profile/internal/domain"
)

// Writer encodes a profile table to the configured output path.
type Writer struct {
	path   string
	logger *slog.Logger
}

// NewWriter creates a writer for the configured output file.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	return &Writer{path: cfg.OutputPath, logger: logger}
}

// Write serializes the table, verifies the document decodes back to an equal
// structure, and only then renames it into place. A failed run never leaves a
// partial or unverified file at the target path.
func (w *Writer) Write(ctx context.Context, table domain.ProfileTable) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := yaml.Marshal(table)
	if err != nil {
		return fmt.Errorf("encode profile table: %w", err)
	}

	if err := verifyRoundTrip(data, table); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(w.path), filepath.Base(w.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), w.path); err != nil {
		return fmt.Errorf("rename into %s: %w", w.path, err)
	}

	w.logger.Info("profile table written", "path", w.path, "bytes", len(data))
	return nil
}

// verifyRoundTrip decodes the encoded document and compares it against the
// source table. Values are rounded before encoding, so exact equality is the
// expected outcome; any difference means the document would lie to its
// consumer.
func verifyRoundTrip(data []byte, table domain.ProfileTable) error {
	var decoded domain.ProfileTable
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("round-trip decode: %w", err)
	}
	if !reflect.DeepEqual(decoded, table) {
		return fmt.Errorf("round-trip mismatch: decoded table differs from source")
	}
	return nil
}
