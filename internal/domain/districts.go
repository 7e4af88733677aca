package domain

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NumDistricts is the number of administrative districts of Madrid.
const NumDistricts = 21

// districtCodes maps each district to its official code. Keys are stored in
// normalized form (upper case, no diacritics, collapsed spaces); see
// normalizeDistrict.
var districtCodes = map[string]int{
	"CENTRO":              1,
	"ARGANZUELA":          2,
	"RETIRO":              3,
	"SALAMANCA":           4,
	"CHAMARTIN":           5,
	"TETUAN":              6,
	"CHAMBERI":            7,
	"FUENCARRAL-EL PARDO": 8,
	"MONCLOA-ARAVACA":     9,
	"LATINA":              10,
	"CARABANCHEL":         11,
	"USERA":               12,
	"PUENTE DE VALLECAS":  13,
	"MORATALAZ":           14,
	"CIUDAD LINEAL":       15,
	"HORTALEZA":           16,
	"VILLAVERDE":          17,
	"VILLA DE VALLECAS":   18,
	"VICALVARO":           19,
	"SAN BLAS-CANILLEJAS": 20,
	"BARAJAS":             21,
}

// districtAliases covers short forms seen in older exports and in the city
// simulator's own district list.
var districtAliases = map[string]int{
	"FUENCARRAL":    8,
	"MONCLOA":       9,
	"VALLECAS PTE.": 13,
	"SAN BLAS":      20,
}

// districtNormalizer strips combining diacritical marks after NFD
// decomposition, so "Chamartín" and "CHAMARTIN" normalize identically.
// Chained transformers carry state, so each lookup builds its own.
func districtNormalizer() transform.Transformer {
	return transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
}

// DistrictCode resolves a district name to its official 1–21 code.
// Matching ignores case, diacritics, and surrounding whitespace. An unknown
// name is an error: the caller must treat it as a data-quality failure, not
// skip the row.
func DistrictCode(name string) (int, error) {
	key, err := normalizeDistrict(name)
	if err != nil {
		return 0, fmt.Errorf("normalize district %q: %w", name, err)
	}
	if code, ok := districtCodes[key]; ok {
		return code, nil
	}
	if code, ok := districtAliases[key]; ok {
		return code, nil
	}
	return 0, fmt.Errorf("unknown district %q", name)
}

func normalizeDistrict(name string) (string, error) {
	stripped, _, err := transform.String(districtNormalizer(), name)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(strings.Join(strings.Fields(stripped), " ")), nil
}
