package service

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/Aashish23092/financial-statement-review/dto"
	"github.com/Aashish23092/financial-statement-review/repository"
	"go.uber.org/zap"
)

// liquidCapitalLiabilityRatio is the share of total liabilities that
// liquid capital must cover when it exceeds the flat minimum.
const liquidCapitalLiabilityRatio = 0.08

type ReviewService struct {
	store  repository.Store
	logger *zap.Logger
	now    func() time.Time
}

func NewReviewService(store repository.Store, logger *zap.Logger) *ReviewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReviewService{store: store, logger: logger, now: time.Now}
}

// Review checks a company's report for year against the thresholds of its type
func (s *ReviewService) Review(ctx context.Context, companyID int64, year int) (*dto.ReviewResponse, error) {
	company, err := s.store.GetCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	report, err := s.store.GetReportByYear(ctx, companyID, year)
	if err != nil {
		return nil, err
	}

	checks := ThresholdChecks(*company, *report)
	allMet := true
	for _, c := range checks {
		allMet = allMet && c.Met
	}

	review := &dto.ReviewResponse{
		Company:       *company,
		Report:        *report,
		Checks:        checks,
		SolvencyRatio: SolvencyRatio(*report),
		AllThresholds: allMet,
		ReviewedAt:    s.now().Format(time.RFC3339),
	}
	s.logger.Debug("review computed",
		zap.Int64("company_id", companyID),
		zap.Int("year", year),
		zap.Bool("all_thresholds_met", allMet))
	return review, nil
}

// ThresholdChecks returns the regulatory minimums for the company type.
// Companies of an unknown type, and issuers without a market segment, have none.
func ThresholdChecks(company dto.Company, report dto.FinancialReport) []dto.ThresholdCheck {
	checks := make([]dto.ThresholdCheck, 0, 2)
	add := func(name, field string, required, actual float64) {
		checks = append(checks, dto.ThresholdCheck{
			Name:     name,
			Field:    field,
			Required: required,
			Actual:   actual,
			Met:      actual >= required,
		})
	}
	shareCapital := func(required float64) {
		add("share_capital_req", dto.FieldShareCapital, required, report.ShareCapital)
	}
	liquidCapital := func(floor float64) {
		required := math.Max(floor, liquidCapitalLiabilityRatio*report.TotalLiabilities)
		add("liquid_capital_req", dto.FieldLiquidCapital, required, report.LiquidCapital)
	}
	netAssets := func(required float64) {
		add("net_assets_req", dto.FieldNetAssets, required, report.NetAssets)
	}

	switch dto.CompanyType(strings.ToLower(string(company.CompanyType))) {
	case dto.CompanyTypeStockbroker:
		shareCapital(50_000_000)
		liquidCapital(30_000_000)
	case dto.CompanyTypeFundManager:
		shareCapital(10_000_000)
		liquidCapital(5_000_000)
	case dto.CompanyTypeInvestmentBank:
		shareCapital(250_000_000)
		liquidCapital(30_000_000)
	case dto.CompanyTypeIssuer:
		switch company.MarketSegment {
		case dto.SegmentMIMS:
			shareCapital(50_000_000)
			netAssets(100_000_000)
		case dto.SegmentAIMS:
			shareCapital(20_000_000)
			netAssets(20_000_000)
		case dto.SegmentGEMS:
			shareCapital(10_000_000)
			netAssets(100_000)
		}
	}
	return checks
}

// SolvencyRatio is net assets over total liabilities, or nil when the
// report has no liabilities.
func SolvencyRatio(report dto.FinancialReport) *float64 {
	if report.TotalLiabilities == 0 {
		return nil
	}
	ratio := report.NetAssets / report.TotalLiabilities
	return &ratio
}
