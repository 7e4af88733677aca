package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistrictCode(t *testing.T) {
	tests := []struct {
		name     string
		district string
		expected int
	}{
		{"canonical", "Centro", 1},
		{"upper case export", "CENTRO", 1},
		{"accented", "Chamartín", 5},
		{"accent stripped", "CHAMARTIN", 5},
		{"accented chamberi", "Chamberí", 7},
		{"hyphenated", "Fuencarral-El Pardo", 8},
		{"short form alias", "Fuencarral", 8},
		{"moncloa alias", "MONCLOA", 9},
		{"simulator short form", "Vallecas Pte.", 13},
		{"surrounding whitespace", "  Barajas ", 21},
		{"internal whitespace", "Puente  de Vallecas", 13},
		{"vicalvaro accented", "Vicálvaro", 19},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := DistrictCode(tt.district)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, code)
		})
	}
}

func TestDistrictCode_Unknown(t *testing.T) {
	for _, name := range []string{"Nowhere", "", "Centros"} {
		_, err := DistrictCode(name)
		require.Error(t, err, "district %q", name)
		assert.Contains(t, err.Error(), "unknown district")
	}
}

func TestDistrictTable_Complete(t *testing.T) {
	require.Len(t, districtCodes, NumDistricts)

	seen := make(map[int]string, NumDistricts)
	for name, code := range districtCodes {
		assert.GreaterOrEqual(t, code, 1)
		assert.LessOrEqual(t, code, NumDistricts)
		if prev, dup := seen[code]; dup {
			t.Errorf("code %d assigned to both %q and %q", code, prev, name)
		}
		seen[code] = name
	}

	// Aliases must point at codes the canonical table already owns.
	for name, code := range districtAliases {
		_, ok := seen[code]
		assert.True(t, ok, "alias %q points at unassigned code %d", name, code)
	}
}
