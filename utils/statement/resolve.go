package statement

import "github.com/Aashish23092/financial-statement-review/dto"

// unresolved reports whether v still holds the 0.0 "not found" sentinel.
func unresolved(v float64) bool {
	return v == 0.0
}

func resolved(v float64) bool {
	return !unresolved(v)
}

// Resolve fills fields that could not be located directly from other
// fields, in one forward pass over a fixed rule order:
//
//  1. net_assets        = total_assets - total_liabilities
//  2. current_assets    = sum of the liquid current-asset components
//  3. liquid_capital    = current_assets - inventories
//  4. total_liabilities = non_current_liabilities + current_liabilities
//  5. total_assets      = non_current_assets + current_assets
//
// A rule only fires when its target is unresolved and its inputs are
// resolved. Later rules see values derived by earlier ones; earlier rules
// are not re-run, so net_assets is not derived from a total_assets or
// total_liabilities produced by rules 4 and 5.
func Resolve(partial dto.ExtractionResult) dto.ExtractionResult {
	r := partial

	if unresolved(r.NetAssets) && resolved(r.TotalAssets) && resolved(r.TotalLiabilities) {
		r.NetAssets = r.TotalAssets - r.TotalLiabilities
	}

	if unresolved(r.CurrentAssets) {
		components := currentAssetComponents(r)
		found := false
		sum := 0.0
		for _, v := range components {
			if resolved(v) {
				found = true
			}
			sum += v
		}
		if found {
			r.CurrentAssets = sum
		}
	}

	if unresolved(r.LiquidCapital) && resolved(r.CurrentAssets) && resolved(r.Inventories) {
		r.LiquidCapital = r.CurrentAssets - r.Inventories
	}

	if unresolved(r.TotalLiabilities) && resolved(r.NonCurrentLiabilities) && resolved(r.CurrentLiabilities) {
		r.TotalLiabilities = r.NonCurrentLiabilities + r.CurrentLiabilities
	}

	if unresolved(r.TotalAssets) && resolved(r.NonCurrentAssets) && resolved(r.CurrentAssets) {
		r.TotalAssets = r.NonCurrentAssets + r.CurrentAssets
	}

	return r
}

func currentAssetComponents(r dto.ExtractionResult) []float64 {
	return []float64{
		r.Cash,
		r.CashEquivalents,
		r.Inventories,
		r.AccountsReceivable,
		r.MarketableSecurities,
		r.PrepaidExpenses,
		r.OtherLiquidAssets,
		r.BankBalances,
		r.DueFromRelatedCompanies,
	}
}
