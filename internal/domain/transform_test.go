package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveEmergency(t *testing.T) {
	t.Run("reference row", func(t *testing.T) {
		// First row of the 2017 export: a Sunday just after midnight.
		rec := CallRecord{
			RequestTime: "2017-01-01 00:23:19",
			District:    "Centro",
			Severity:    "2",
		}

		e, err := DeriveEmergency(rec)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2017, time.January, 1, 0, 23, 19, 0, time.UTC), e.Time)
		assert.Equal(t, 2, e.Severity)
		assert.Equal(t, 1, e.DistrictCode)
		assert.Equal(t, 0, e.Hour)
		assert.Equal(t, 7, e.Weekday)
		assert.Equal(t, 1, e.Month)
	})

	t.Run("monday is weekday 1", func(t *testing.T) {
		rec := CallRecord{RequestTime: "2017-01-02 13:05:00", District: "Retiro", Severity: "4"}
		e, err := DeriveEmergency(rec)
		require.NoError(t, err)
		assert.Equal(t, 1, e.Weekday)
		assert.Equal(t, 13, e.Hour)
	})

	t.Run("trims request time", func(t *testing.T) {
		rec := CallRecord{RequestTime: " 2017-06-15 08:00:00 ", District: "Usera", Severity: "1"}
		e, err := DeriveEmergency(rec)
		require.NoError(t, err)
		assert.Equal(t, 6, e.Month)
		assert.Equal(t, 12, e.DistrictCode)
	})

	t.Run("unparsable timestamp", func(t *testing.T) {
		rec := CallRecord{RequestTime: "01/01/2017 00:23", District: "Centro", Severity: "2"}
		_, err := DeriveEmergency(rec)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse request time")
	})

	t.Run("unknown district", func(t *testing.T) {
		rec := CallRecord{RequestTime: "2017-01-01 00:23:19", District: "Nowhere", Severity: "2"}
		_, err := DeriveEmergency(rec)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown district")
	})
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"lowest", "1", 1, false},
		{"highest", "5", 5, false},
		{"padded", " 3 ", 3, false},
		{"zero", "0", 0, true},
		{"above range", "6", 0, true},
		{"not a number", "alta", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := parseSeverity(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestIsoWeekday(t *testing.T) {
	// 2024-04-22 is a Monday; walk the whole week.
	monday := time.Date(2024, time.April, 22, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		assert.Equal(t, i+1, isoWeekday(monday.AddDate(0, 0, i)))
	}
}
