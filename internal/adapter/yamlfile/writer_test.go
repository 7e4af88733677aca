package yamlfile

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/madridsim/samur-data-profile/internal/config"
	"github.com/madridsim/samur-data-profile/internal/domain"
)

func sampleTable() domain.ProfileTable {
	table := make(domain.ProfileTable, 5)
	for severity := 1; severity <= 5; severity++ {
		table[severity] = domain.SeverityProfile{
			Frequency:    0.00212635 / float64(severity),
			HourlyDist:   map[int]float64{0: 0.70497, 12: 1.43201, 23: 0.88012},
			DailyDist:    map[int]float64{1: 0.9562, 5: 1.10982, 7: 1.01535},
			MonthlyDist:  map[int]float64{1: 1.05361, 8: 0.84691},
			DistrictProb: map[int]float64{1: 0.12505, 11: 0.08912, 21: 0.01473},
		}
	}
	return table
}

func newTestWriter(t *testing.T) (*Writer, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "severity_distributions.yaml")

	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.OutputPath = path

	return NewWriter(cfg, slog.Default()), path
}

func TestWriter_Write_RoundTrip(t *testing.T) {
	w, path := newTestWriter(t)
	table := sampleTable()

	require.NoError(t, w.Write(context.Background(), table))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded domain.ProfileTable
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Empty(t, cmp.Diff(table, decoded))
}

func TestWriter_Write_ContractKeys(t *testing.T) {
	w, path := newTestWriter(t)
	require.NoError(t, w.Write(context.Background(), sampleTable()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	for _, key := range []string{"frequency:", "hourly_dist:", "daily_dist:", "monthly_dist:", "district_prob:"} {
		assert.Contains(t, content, key)
	}
}

func TestWriter_Write_BadDirectory(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.OutputPath = filepath.Join(t.TempDir(), "no", "such", "dir", "out.yaml")

	err = NewWriter(cfg, slog.Default()).Write(context.Background(), sampleTable())
	require.Error(t, err)
}

func TestWriter_Write_CancelledContext(t *testing.T) {
	w, path := newTestWriter(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := w.Write(ctx, sampleTable())
	require.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, path)
}

func TestVerifyRoundTrip_Mismatch(t *testing.T) {
	table := sampleTable()
	err := verifyRoundTrip([]byte("1:\n  frequency: 0.5\n"), table)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "round-trip mismatch")
}
