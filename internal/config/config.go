// Package config holds the batch-run settings, populated from environment
// variables with defaults matching the fixed contract paths. A run with an
// empty environment reads and writes the paths the downstream generator
// expects.
package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// Columns names the CSV header columns the loader needs.
type Columns struct {
	District    string
	Severity    string
	RequestTime string
}

// Config holds all job settings.
type Config struct {
	InputPath    string
	OutputPath   string
	CSVSeparator rune
	Columns      Columns
	LogLevel     string
	LogFormat    string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	sep, err := parseSeparator(envOrDefault("CSV_SEPARATOR", ";"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		InputPath:    envOrDefault("INPUT_PATH", "data/samur_activations.csv"),
		OutputPath:   envOrDefault("OUTPUT_PATH", "data/severity_distributions.yaml"),
		CSVSeparator: sep,
		Columns: Columns{
			District:    envOrDefault("DISTRICT_COLUMN", "Distrito"),
			Severity:    envOrDefault("SEVERITY_COLUMN", "Gravedad"),
			RequestTime: envOrDefault("REQUEST_TIME_COLUMN", "Solicitud"),
		},
		LogLevel:  envOrDefault("LOG_LEVEL", "info"),
		LogFormat: envOrDefault("LOG_FORMAT", "text"),
	}

	if cfg.InputPath == "" {
		return nil, errors.New("INPUT_PATH is required")
	}
	if cfg.OutputPath == "" {
		return nil, errors.New("OUTPUT_PATH is required")
	}
	if cfg.Columns.District == "" || cfg.Columns.Severity == "" || cfg.Columns.RequestTime == "" {
		return nil, errors.New("column names must not be empty")
	}

	return cfg, nil
}

func parseSeparator(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("CSV_SEPARATOR must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
