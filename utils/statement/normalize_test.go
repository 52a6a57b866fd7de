package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStripsSeparatorsAndCurrency(t *testing.T) {
	raw := "Share Capital Ksh 1,250,000.50\nTotal Assets KES 3,000\nCash in Hand Shs 12.75"

	clean, scale := Normalize(raw)

	assert.Equal(t, "Share Capital  1250000.50\nTotal Assets  3000\nCash in Hand  12.75", clean)
	assert.Equal(t, ScaleUnits, scale)
}

func TestNormalizeCurrencyTokensAreCaseSensitive(t *testing.T) {
	clean, _ := Normalize("ksh 10 kes 20 SHS 30")

	assert.Equal(t, "ksh 10 kes 20 SHS 30", clean)
}

func TestDetectScale(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"thousands", "Amounts are In Thousands of shillings", ScaleThousands},
		{"millions", "(all figures IN MILLIONS)", ScaleMillions},
		{"units", "Statement of financial position", ScaleUnits},
		{"thousands wins over millions", "in millions ... restated in thousands", ScaleThousands},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectScale(tt.text))
		})
	}
}

func TestNormalizeDetectsScaleWithSeparators(t *testing.T) {
	_, scale := Normalize("Figures in thousands, Share Capital 1,000")

	assert.Equal(t, ScaleThousands, scale)
}
