// Package statement reconstructs balance-sheet figures from the flattened
// text of a financial statement: unit-scale normalization, keyword-based
// value location and a fixed chain of fallback derivations.
package statement

import "strings"

// Unit scales detected from document-wide phrasing.
const (
	ScaleUnits     = 1.0
	ScaleThousands = 1_000.0
	ScaleMillions  = 1_000_000.0
)

// currencyTokens are removed verbatim (case-sensitive) from the raw text.
var currencyTokens = []string{"Ksh", "KES", "Shs"}

// Normalize strips thousands separators and currency markers from raw and
// detects the unit scale of the document.
func Normalize(raw string) (string, float64) {
	clean := strings.ReplaceAll(raw, ",", "")
	for _, token := range currencyTokens {
		clean = strings.ReplaceAll(clean, token, "")
	}
	return clean, DetectScale(raw)
}

// DetectScale returns ScaleThousands when the text mentions "in thousands",
// ScaleMillions for "in millions" and ScaleUnits otherwise. Thousands is
// checked first, so it wins when both phrases are present.
func DetectScale(text string) float64 {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "in thousands"):
		return ScaleThousands
	case strings.Contains(lower, "in millions"):
		return ScaleMillions
	default:
		return ScaleUnits
	}
}
