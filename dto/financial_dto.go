package dto

// Logical field names of an extraction result. These are also the JSON keys.
const (
	FieldShareCapital            = "share_capital"
	FieldLiquidCapital           = "liquid_capital"
	FieldNetAssets               = "net_assets"
	FieldTotalAssets             = "total_assets"
	FieldTotalLiabilities        = "total_liabilities"
	FieldCurrentAssets           = "current_assets"
	FieldCurrentLiabilities      = "current_liabilities"
	FieldNonCurrentAssets        = "non_current_assets"
	FieldNonCurrentLiabilities   = "non_current_liabilities"
	FieldInventories             = "inventories"
	FieldCash                    = "cash"
	FieldCashEquivalents         = "cash_equivalents"
	FieldBankBalances            = "bank_balances"
	FieldAccountsReceivable      = "accounts_receivable"
	FieldMarketableSecurities    = "marketable_securities"
	FieldPrepaidExpenses         = "prepaid_expenses"
	FieldOtherLiquidAssets       = "other_liquid_assets"
	FieldDueFromRelatedCompanies = "due_from_related_companies"
)

// ExtractionResult holds the numeric fields reconstructed from one
// financial statement. A value of 0.0 means "not located and not derivable";
// it cannot be told apart from a genuine zero balance.
type ExtractionResult struct {
	ShareCapital     float64 `json:"share_capital"`
	LiquidCapital    float64 `json:"liquid_capital"`
	NetAssets        float64 `json:"net_assets"`
	TotalAssets      float64 `json:"total_assets"`
	TotalLiabilities float64 `json:"total_liabilities"`

	CurrentAssets           float64 `json:"current_assets"`
	CurrentLiabilities      float64 `json:"current_liabilities"`
	NonCurrentAssets        float64 `json:"non_current_assets"`
	NonCurrentLiabilities   float64 `json:"non_current_liabilities"`
	Inventories             float64 `json:"inventories"`
	Cash                    float64 `json:"cash"`
	CashEquivalents         float64 `json:"cash_equivalents"`
	BankBalances            float64 `json:"bank_balances"`
	AccountsReceivable      float64 `json:"accounts_receivable"`
	MarketableSecurities    float64 `json:"marketable_securities"`
	PrepaidExpenses         float64 `json:"prepaid_expenses"`
	OtherLiquidAssets       float64 `json:"other_liquid_assets"`
	DueFromRelatedCompanies float64 `json:"due_from_related_companies"`
}

// Set assigns value to the field with the given logical name.
// It reports false when the name is unknown.
func (r *ExtractionResult) Set(name string, value float64) bool {
	ref := r.ref(name)
	if ref == nil {
		return false
	}
	*ref = value
	return true
}

// Get returns the value of the field with the given logical name.
func (r *ExtractionResult) Get(name string) (float64, bool) {
	ref := r.ref(name)
	if ref == nil {
		return 0, false
	}
	return *ref, true
}

// AsMap returns every field keyed by logical name.
func (r ExtractionResult) AsMap() map[string]float64 {
	return map[string]float64{
		FieldShareCapital:            r.ShareCapital,
		FieldLiquidCapital:           r.LiquidCapital,
		FieldNetAssets:               r.NetAssets,
		FieldTotalAssets:             r.TotalAssets,
		FieldTotalLiabilities:        r.TotalLiabilities,
		FieldCurrentAssets:           r.CurrentAssets,
		FieldCurrentLiabilities:      r.CurrentLiabilities,
		FieldNonCurrentAssets:        r.NonCurrentAssets,
		FieldNonCurrentLiabilities:   r.NonCurrentLiabilities,
		FieldInventories:             r.Inventories,
		FieldCash:                    r.Cash,
		FieldCashEquivalents:         r.CashEquivalents,
		FieldBankBalances:            r.BankBalances,
		FieldAccountsReceivable:      r.AccountsReceivable,
		FieldMarketableSecurities:    r.MarketableSecurities,
		FieldPrepaidExpenses:         r.PrepaidExpenses,
		FieldOtherLiquidAssets:       r.OtherLiquidAssets,
		FieldDueFromRelatedCompanies: r.DueFromRelatedCompanies,
	}
}

func (r *ExtractionResult) ref(name string) *float64 {
	switch name {
	case FieldShareCapital:
		return &r.ShareCapital
	case FieldLiquidCapital:
		return &r.LiquidCapital
	case FieldNetAssets:
		return &r.NetAssets
	case FieldTotalAssets:
		return &r.TotalAssets
	case FieldTotalLiabilities:
		return &r.TotalLiabilities
	case FieldCurrentAssets:
		return &r.CurrentAssets
	case FieldCurrentLiabilities:
		return &r.CurrentLiabilities
	case FieldNonCurrentAssets:
		return &r.NonCurrentAssets
	case FieldNonCurrentLiabilities:
		return &r.NonCurrentLiabilities
	case FieldInventories:
		return &r.Inventories
	case FieldCash:
		return &r.Cash
	case FieldCashEquivalents:
		return &r.CashEquivalents
	case FieldBankBalances:
		return &r.BankBalances
	case FieldAccountsReceivable:
		return &r.AccountsReceivable
	case FieldMarketableSecurities:
		return &r.MarketableSecurities
	case FieldPrepaidExpenses:
		return &r.PrepaidExpenses
	case FieldOtherLiquidAssets:
		return &r.OtherLiquidAssets
	case FieldDueFromRelatedCompanies:
		return &r.DueFromRelatedCompanies
	}
	return nil
}
