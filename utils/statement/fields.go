package statement

import "github.com/Aashish23092/financial-statement-review/dto"

// FieldSpec pairs a logical field with the keywords searched for it,
// most specific first.
type FieldSpec struct {
	Name     string
	Keywords []string
}

// Bare headings such as "Current Assets" are not keywords: a heading is
// followed by its first line item, and "Current Assets" also occurs inside
// "Non-Current Assets".
var fieldSpecs = []FieldSpec{
	{Name: dto.FieldShareCapital, Keywords: []string{"Share Capital", "Paid Up Capital"}},
	{Name: dto.FieldLiquidCapital, Keywords: []string{"Liquid Capital", "Working Capital"}},
	{Name: dto.FieldNetAssets, Keywords: []string{"Net Assets", "Total Net Assets"}},
	{Name: dto.FieldTotalAssets, Keywords: []string{"Total Assets", "Assets Total"}},
	{Name: dto.FieldTotalLiabilities, Keywords: []string{"Total Liabilities", "Liabilities Total"}},
	{Name: dto.FieldCurrentAssets, Keywords: []string{"Total Current Assets", "Current Assets Total"}},
	{Name: dto.FieldCurrentLiabilities, Keywords: []string{"Total Current Liabilities", "Current Liabilities Total"}},
	{Name: dto.FieldNonCurrentAssets, Keywords: []string{
		"Total Non-Current Assets", "Total Non Current Assets", "Non-Current Assets Total",
	}},
	{Name: dto.FieldNonCurrentLiabilities, Keywords: []string{
		"Total Non-Current Liabilities", "Total Non Current Liabilities", "Non-Current Liabilities Total",
	}},
	{Name: dto.FieldInventories, Keywords: []string{"Inventories", "Inventory", "Stock in Trade"}},
	{Name: dto.FieldCash, Keywords: []string{"Cash in Hand", "Cash on Hand"}},
	{Name: dto.FieldCashEquivalents, Keywords: []string{"Cash and Cash Equivalents", "Cash Equivalents"}},
	{Name: dto.FieldBankBalances, Keywords: []string{"Bank Balances", "Balances at Bank", "Cash at Bank"}},
	{Name: dto.FieldAccountsReceivable, Keywords: []string{
		"Trade and Other Receivables", "Accounts Receivable", "Trade Receivables", "Receivables",
	}},
	{Name: dto.FieldMarketableSecurities, Keywords: []string{
		"Marketable Securities", "Quoted Investments", "Investments in Securities",
	}},
	{Name: dto.FieldPrepaidExpenses, Keywords: []string{"Prepaid Expenses", "Prepayments"}},
	{Name: dto.FieldOtherLiquidAssets, Keywords: []string{"Other Liquid Assets", "Other Current Assets"}},
	{Name: dto.FieldDueFromRelatedCompanies, Keywords: []string{
		"Due from Related Companies", "Due from Related Parties", "Amounts Due from Related Parties",
	}},
}

// FieldSpecs returns a copy of the built-in field configuration.
func FieldSpecs() []FieldSpec {
	out := make([]FieldSpec, len(fieldSpecs))
	for i, spec := range fieldSpecs {
		out[i] = FieldSpec{
			Name:     spec.Name,
			Keywords: append([]string(nil), spec.Keywords...),
		}
	}
	return out
}

// LocateAll runs Locate once per FieldSpec and collects the values.
// Specs naming an unknown field are ignored.
func LocateAll(text string, scale float64, specs []FieldSpec) dto.ExtractionResult {
	var result dto.ExtractionResult
	for _, spec := range specs {
		result.Set(spec.Name, Locate(text, spec.Keywords, scale))
	}
	return result
}
