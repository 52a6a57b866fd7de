package service

import (
	"context"
	"testing"
	"time"

	"github.com/Aashish23092/financial-statement-review/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkByName(checks []dto.ThresholdCheck, name string) (dto.ThresholdCheck, bool) {
	for _, c := range checks {
		if c.Name == name {
			return c, true
		}
	}
	return dto.ThresholdCheck{}, false
}

func TestThresholdChecksStockbroker(t *testing.T) {
	company := dto.Company{CompanyType: dto.CompanyTypeStockbroker}
	report := dto.FinancialReport{
		ShareCapital:     50_000_000,
		LiquidCapital:    35_000_000,
		TotalLiabilities: 500_000_000,
	}

	checks := ThresholdChecks(company, report)

	require.Len(t, checks, 2)
	share, ok := checkByName(checks, "share_capital_req")
	require.True(t, ok)
	assert.True(t, share.Met)

	// 8% of liabilities exceeds the 30m floor
	liquid, ok := checkByName(checks, "liquid_capital_req")
	require.True(t, ok)
	assert.Equal(t, 40_000_000.0, liquid.Required)
	assert.False(t, liquid.Met)
}

func TestThresholdChecksLiquidCapitalFloor(t *testing.T) {
	company := dto.Company{CompanyType: dto.CompanyTypeFundManager}
	report := dto.FinancialReport{LiquidCapital: 5_000_000, TotalLiabilities: 1_000_000}

	liquid, ok := checkByName(ThresholdChecks(company, report), "liquid_capital_req")

	require.True(t, ok)
	assert.Equal(t, 5_000_000.0, liquid.Required)
	assert.True(t, liquid.Met)
}

func TestThresholdChecksByCompanyType(t *testing.T) {
	tests := []struct {
		name      string
		company   dto.Company
		wantShare float64
		wantNet   float64
		wantCount int
	}{
		{"investment bank", dto.Company{CompanyType: dto.CompanyTypeInvestmentBank}, 250_000_000, 0, 2},
		{"issuer MIMS", dto.Company{CompanyType: dto.CompanyTypeIssuer, MarketSegment: dto.SegmentMIMS}, 50_000_000, 100_000_000, 2},
		{"issuer AIMS", dto.Company{CompanyType: dto.CompanyTypeIssuer, MarketSegment: dto.SegmentAIMS}, 20_000_000, 20_000_000, 2},
		{"issuer GEMS", dto.Company{CompanyType: dto.CompanyTypeIssuer, MarketSegment: dto.SegmentGEMS}, 10_000_000, 100_000, 2},
		{"issuer without segment", dto.Company{CompanyType: dto.CompanyTypeIssuer}, 0, 0, 0},
		{"unknown type", dto.Company{CompanyType: "bakery"}, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checks := ThresholdChecks(tt.company, dto.FinancialReport{})

			assert.Len(t, checks, tt.wantCount)
			if share, ok := checkByName(checks, "share_capital_req"); ok {
				assert.Equal(t, tt.wantShare, share.Required)
			}
			if net, ok := checkByName(checks, "net_assets_req"); ok {
				assert.Equal(t, tt.wantNet, net.Required)
			}
		})
	}
}

func TestSolvencyRatio(t *testing.T) {
	ratio := SolvencyRatio(dto.FinancialReport{NetAssets: 300, TotalLiabilities: 200})
	require.NotNil(t, ratio)
	assert.Equal(t, 1.5, *ratio)

	assert.Nil(t, SolvencyRatio(dto.FinancialReport{NetAssets: 300}))
}

func TestReviewServiceReview(t *testing.T) {
	env := newTestEnv(t)
	company := env.company(t, "Mto Issuer", dto.CompanyTypeIssuer, dto.SegmentGEMS)
	report := &dto.FinancialReport{
		CompanyID:        company.ID,
		Year:             2024,
		ShareCapital:     12_000_000,
		NetAssets:        400_000,
		TotalLiabilities: 200_000,
	}
	require.NoError(t, env.store.CreateReport(context.Background(), report))

	svc := NewReviewService(env.store, nil)
	svc.now = func() time.Time { return time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC) }

	review, err := svc.Review(context.Background(), company.ID, 2024)

	require.NoError(t, err)
	assert.True(t, review.AllThresholds)
	assert.Len(t, review.Checks, 2)
	require.NotNil(t, review.SolvencyRatio)
	assert.Equal(t, 2.0, *review.SolvencyRatio)
	assert.Equal(t, "2024-07-01T12:00:00Z", review.ReviewedAt)

	_, err = svc.Review(context.Background(), company.ID, 2020)
	assert.ErrorIs(t, err, dto.ErrReportNotFound)

	_, err = svc.Review(context.Background(), 404, 2024)
	assert.ErrorIs(t, err, dto.ErrCompanyNotFound)
}
