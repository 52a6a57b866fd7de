package service

import (
	"bytes"
	"testing"

	"github.com/Aashish23092/financial-statement-review/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleReview() *dto.ReviewResponse {
	ratio := 1.5
	return &dto.ReviewResponse{
		Company: dto.Company{ID: 7, Name: "Kilimo Brokers", CompanyType: dto.CompanyTypeStockbroker},
		Report: dto.FinancialReport{
			Year:                      2024,
			ShareCapital:              60_000_000,
			LiquidCapital:             35_000_000,
			NetAssets:                 90_000_000,
			TotalLiabilities:          60_000_000,
			SubmissionRequirementsMet: true,
		},
		Checks: []dto.ThresholdCheck{
			{Name: "share_capital_req", Field: dto.FieldShareCapital, Required: 50_000_000, Actual: 60_000_000, Met: true},
			{Name: "liquid_capital_req", Field: dto.FieldLiquidCapital, Required: 30_000_000, Actual: 35_000_000, Met: true},
		},
		SolvencyRatio: &ratio,
		AllThresholds: true,
	}
}

func TestReviewWorkbook(t *testing.T) {
	data, err := NewExportService(nil).ReviewWorkbook(sampleReview())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{reviewSheet}, f.GetSheetList())

	title, err := f.GetCellValue(reviewSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Kilimo Brokers - 2024 Financial Review", title)

	ctype, err := f.GetCellValue(reviewSheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "Stockbroker", ctype)

	rows, err := f.GetRows(reviewSheet)
	require.NoError(t, err)
	labels := make(map[string][]string)
	for _, row := range rows {
		if len(row) > 0 {
			labels[row[0]] = row
		}
	}
	assert.Equal(t, "Yes", labels["Share Capital Req"][3])
	assert.Contains(t, labels, "Net Assets")
	assert.Equal(t, "Yes", labels["Submission Requirements Met"][1])
	assert.Equal(t, "No", labels["Publication Requirements Met"][1])
}

func TestReviewWorkbookWithoutSolvencyRatio(t *testing.T) {
	review := sampleReview()
	review.SolvencyRatio = nil

	data, err := NewExportService(nil).ReviewWorkbook(review)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(reviewSheet)
	require.NoError(t, err)
	found := false
	for _, row := range rows {
		if len(row) > 1 && row[0] == "Solvency Ratio" {
			found = true
			assert.Equal(t, "n/a", row[1])
		}
	}
	assert.True(t, found)
}

func TestTrendWorkbook(t *testing.T) {
	detail := &dto.CompanyDetailResponse{
		Company: dto.Company{ID: 7, Name: "Kilimo Brokers"},
		Reports: []dto.FinancialReport{
			{Year: 2022, ShareCapital: 50, NetAssets: 70},
			{Year: 2023, ShareCapital: 55, NetAssets: 80},
		},
	}

	data, err := NewExportService(nil).TrendWorkbook(detail)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(trendSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Year", "Share Capital", "Net Assets"}, rows[0])
	assert.Equal(t, "2023", rows[2][0])
}

func TestTrendWorkbookWithoutReports(t *testing.T) {
	detail := &dto.CompanyDetailResponse{Company: dto.Company{Name: "Empty"}}

	data, err := NewExportService(nil).TrendWorkbook(detail)

	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Liquid Capital Req", titleCase("liquid_capital_req"))
	assert.Equal(t, "Fund Manager", titleCase("fund manager"))
	assert.Equal(t, "", titleCase(""))
}
