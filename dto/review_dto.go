package dto

// ThresholdCheck compares one reported figure against its regulatory minimum
type ThresholdCheck struct {
	Name     string  `json:"name"`
	Field    string  `json:"field"`
	Required float64 `json:"required"`
	Actual   float64 `json:"actual"`
	Met      bool    `json:"met"`
}

// ReviewResponse is the compliance review of one company's report for a year
type ReviewResponse struct {
	Company       Company          `json:"company"`
	Report        FinancialReport  `json:"report"`
	Checks        []ThresholdCheck `json:"checks"`
	SolvencyRatio *float64         `json:"solvency_ratio"`
	AllThresholds bool             `json:"all_thresholds_met"`
	ReviewedAt    string           `json:"reviewed_at"`
}
