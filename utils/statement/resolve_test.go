package statement

import (
	"testing"

	"github.com/Aashish23092/financial-statement-review/dto"
	"github.com/stretchr/testify/assert"
)

func TestResolveNetAssetsFromTotals(t *testing.T) {
	clean, scale := Normalize("Total Assets 500,000\nTotal Liabilities 200,000")

	result := Resolve(LocateAll(clean, scale, FieldSpecs()))

	assert.Equal(t, 300000.0, result.NetAssets)
}

func TestResolveKeepsLocatedNetAssets(t *testing.T) {
	result := Resolve(dto.ExtractionResult{
		NetAssets:        42,
		TotalAssets:      500,
		TotalLiabilities: 200,
	})

	assert.Equal(t, 42.0, result.NetAssets)
}

func TestResolveNetAssetsNeedsBothTotals(t *testing.T) {
	result := Resolve(dto.ExtractionResult{TotalAssets: 500})

	assert.Equal(t, 0.0, result.NetAssets)
}

func TestResolveCurrentAssetsThenLiquidCapital(t *testing.T) {
	result := Resolve(dto.ExtractionResult{
		Cash:        100,
		Inventories: 30,
	})

	assert.Equal(t, 130.0, result.CurrentAssets)
	assert.Equal(t, 100.0, result.LiquidCapital)
}

func TestResolveCurrentAssetsSumsAllComponents(t *testing.T) {
	result := Resolve(dto.ExtractionResult{
		Cash:                    1,
		CashEquivalents:         2,
		Inventories:             4,
		AccountsReceivable:      8,
		MarketableSecurities:    16,
		PrepaidExpenses:         32,
		OtherLiquidAssets:       64,
		BankBalances:            128,
		DueFromRelatedCompanies: 256,
	})

	assert.Equal(t, 511.0, result.CurrentAssets)
	assert.Equal(t, 507.0, result.LiquidCapital)
}

func TestResolveCurrentAssetsLeftAloneWithoutComponents(t *testing.T) {
	result := Resolve(dto.ExtractionResult{NonCurrentAssets: 900})

	assert.Equal(t, 0.0, result.CurrentAssets)
	assert.Equal(t, 0.0, result.TotalAssets)
}

func TestResolveLiquidCapitalNeedsInventories(t *testing.T) {
	result := Resolve(dto.ExtractionResult{CurrentAssets: 500})

	assert.Equal(t, 0.0, result.LiquidCapital)
}

func TestResolveTotalLiabilities(t *testing.T) {
	result := Resolve(dto.ExtractionResult{
		NonCurrentLiabilities: 70,
		CurrentLiabilities:    30,
	})

	assert.Equal(t, 100.0, result.TotalLiabilities)
}

func TestResolveTotalAssetsUsesDerivedCurrentAssets(t *testing.T) {
	result := Resolve(dto.ExtractionResult{
		NonCurrentAssets: 1000,
		BankBalances:     250,
	})

	assert.Equal(t, 250.0, result.CurrentAssets)
	assert.Equal(t, 1250.0, result.TotalAssets)
}

func TestResolveIsSinglePass(t *testing.T) {
	// Rules 4 and 5 run after rule 1, so their output does not feed net assets.
	result := Resolve(dto.ExtractionResult{
		NonCurrentAssets:      1000,
		CurrentAssets:         500,
		NonCurrentLiabilities: 300,
		CurrentLiabilities:    200,
	})

	assert.Equal(t, 1500.0, result.TotalAssets)
	assert.Equal(t, 500.0, result.TotalLiabilities)
	assert.Equal(t, 0.0, result.NetAssets)
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	partial := dto.ExtractionResult{TotalAssets: 10, TotalLiabilities: 4}

	_ = Resolve(partial)

	assert.Equal(t, 0.0, partial.NetAssets)
}

func TestResolveFullyResolvedIsNoop(t *testing.T) {
	var full dto.ExtractionResult
	i := 1.0
	for name := range full.AsMap() {
		full.Set(name, i)
		i++
	}

	assert.Equal(t, full, Resolve(full))
	assert.Equal(t, Resolve(full), Resolve(Resolve(full)))
}
