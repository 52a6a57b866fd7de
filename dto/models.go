package dto

import (
	"strings"
	"time"
)

type CompanyType string

const (
	CompanyTypeStockbroker    CompanyType = "stockbroker"
	CompanyTypeFundManager    CompanyType = "fund manager"
	CompanyTypeInvestmentBank CompanyType = "investment bank"
	CompanyTypeIssuer         CompanyType = "issuer"
)

type MarketSegment string

const (
	SegmentMIMS MarketSegment = "MIMS"
	SegmentAIMS MarketSegment = "AIMS"
	SegmentGEMS MarketSegment = "GEMS"
)

// ParseCompanyType matches s case-insensitively against the known types.
func ParseCompanyType(s string) (CompanyType, error) {
	switch CompanyType(strings.ToLower(strings.TrimSpace(s))) {
	case CompanyTypeStockbroker:
		return CompanyTypeStockbroker, nil
	case CompanyTypeFundManager:
		return CompanyTypeFundManager, nil
	case CompanyTypeInvestmentBank:
		return CompanyTypeInvestmentBank, nil
	case CompanyTypeIssuer:
		return CompanyTypeIssuer, nil
	}
	return "", ErrInvalidCompanyType
}

// ParseMarketSegment accepts an empty segment.
func ParseMarketSegment(s string) (MarketSegment, error) {
	switch MarketSegment(strings.ToUpper(strings.TrimSpace(s))) {
	case "":
		return "", nil
	case SegmentMIMS:
		return SegmentMIMS, nil
	case SegmentAIMS:
		return SegmentAIMS, nil
	case SegmentGEMS:
		return SegmentGEMS, nil
	}
	return "", ErrInvalidMarketSegment
}

type Company struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	CompanyType   CompanyType   `json:"company_type"`
	MarketSegment MarketSegment `json:"market_segment,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

type FinancialReport struct {
	ID                         int64     `json:"id"`
	CompanyID                  int64     `json:"company_id"`
	Year                       int       `json:"year"`
	ShareCapital               float64   `json:"share_capital"`
	LiquidCapital              float64   `json:"liquid_capital"`
	NetAssets                  float64   `json:"net_assets"`
	TotalAssets                float64   `json:"total_assets"`
	TotalLiabilities           float64   `json:"total_liabilities"`
	SubmissionRequirementsMet  bool      `json:"submission_requirements_met"`
	PublicationRequirementsMet bool      `json:"publication_requirements_met"`
	FilePath                   string    `json:"file_path,omitempty"`
	CreatedAt                  time.Time `json:"created_at"`
}
