// Command validate checks a written severity distribution table against the
// properties its consumer relies on: five severity classes, district
// probabilities summing to 1, buckets inside their legal ranges, and —
// when the source CSV is given — exact agreement with a recomputation.
//
// Usage:
//
//	go run ./cmd/validate -table data/severity_distributions.yaml \
//	  -input data/samur_activations.csv
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/madridsim/samur-data-profile/internal/adapter/csvfile"
	"github.com/madridsim/samur-data-profile/internal/config"
	"github.com/madridsim/samur-data-profile/internal/domain"
)

func main() {
	tablePath := flag.String("table", "", "path to the severity distribution YAML")
	inputPath := flag.String("input", "", "optional activations CSV to recompute from")
	flag.Parse()

	if *tablePath == "" {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(*tablePath, *inputPath); err != nil {
		fmt.Fprintln(os.Stderr, "FAIL:", err)
		os.Exit(1)
	}
	fmt.Println("OK")
}

func run(tablePath, inputPath string) error {
	data, err := os.ReadFile(tablePath)
	if err != nil {
		return err
	}

	var table domain.ProfileTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return fmt.Errorf("decode %s: %w", tablePath, err)
	}

	if err := checkTable(table); err != nil {
		return err
	}

	if inputPath != "" {
		if err := checkAgainstInput(table, inputPath); err != nil {
			return err
		}
	}
	return nil
}

func checkTable(table domain.ProfileTable) error {
	for severity := domain.MinSeverity; severity <= domain.MaxSeverity; severity++ {
		profile, ok := table[severity]
		if !ok {
			return fmt.Errorf("severity %d missing from table", severity)
		}
		if profile.Frequency <= 0 {
			return fmt.Errorf("severity %d: non-positive frequency %g", severity, profile.Frequency)
		}

		sum := 0.0
		for code, p := range profile.DistrictProb {
			if code < 1 || code > domain.NumDistricts {
				return fmt.Errorf("severity %d: district code %d out of range", severity, code)
			}
			sum += p
		}
		tolerance := 5e-5 * float64(len(profile.DistrictProb))
		if math.Abs(sum-1.0) > tolerance {
			return fmt.Errorf("severity %d: district_prob sums to %g", severity, sum)
		}

		for _, check := range []struct {
			name     string
			dist     map[int]float64
			min, max int
		}{
			{"hourly_dist", profile.HourlyDist, 0, 23},
			{"daily_dist", profile.DailyDist, 1, 7},
			{"monthly_dist", profile.MonthlyDist, 1, 12},
		} {
			for bucket, factor := range check.dist {
				if bucket < check.min || bucket > check.max {
					return fmt.Errorf("severity %d: %s bucket %d out of range", severity, check.name, bucket)
				}
				if factor <= 0 {
					return fmt.Errorf("severity %d: %s[%d] is non-positive", severity, check.name, bucket)
				}
			}
		}
	}

	if len(table) != domain.MaxSeverity {
		return fmt.Errorf("table has %d severities, want %d", len(table), domain.MaxSeverity)
	}
	return nil
}

func checkAgainstInput(table domain.ProfileTable, inputPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.InputPath = inputPath

	records, err := csvfile.NewReader(cfg, slog.Default()).Extract(context.Background())
	if err != nil {
		return err
	}

	emergencies := make([]domain.Emergency, 0, len(records))
	for i, rec := range records {
		e, err := domain.DeriveEmergency(rec)
		if err != nil {
			return fmt.Errorf("derive row %d: %w", i+1, err)
		}
		emergencies = append(emergencies, e)
	}

	recomputed, err := domain.Aggregate(emergencies)
	if err != nil {
		return err
	}

	if !reflect.DeepEqual(recomputed, table) {
		return fmt.Errorf("table does not match recomputation from %s", inputPath)
	}
	return nil
}
