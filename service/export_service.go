package service

import (
	"fmt"
	"strings"

	"github.com/Aashish23092/financial-statement-review/dto"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	reviewSheet = "Review"
	trendSheet  = "Trend"
)

// ExportService renders reviews and filing histories as XLSX workbooks
type ExportService struct {
	logger *zap.Logger
}

func NewExportService(logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{logger: logger}
}

// ReviewWorkbook returns the review as an XLSX workbook with a column chart
// of the key reported figures.
func (s *ExportService) ReviewWorkbook(review *dto.ReviewResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reviewSheet); err != nil {
		return nil, err
	}
	styles, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	w := &sheetWriter{f: f, sheet: reviewSheet, row: 1}
	w.title(fmt.Sprintf("%s - %d Financial Review", review.Company.Name, review.Report.Year), styles.bold)
	w.row++
	w.pair("Company Type", titleCase(string(review.Company.CompanyType)), 0)
	if review.Company.CompanyType == dto.CompanyTypeIssuer && review.Company.MarketSegment != "" {
		w.pair("Market Segment", string(review.Company.MarketSegment), 0)
	}
	w.row++

	w.title("Regulatory Thresholds", styles.bold)
	w.values([]any{"Requirement", "Required", "Actual", "Met"}, styles.bold)
	for _, c := range review.Checks {
		w.values([]any{titleCase(c.Name), c.Required, c.Actual, yesNo(c.Met)}, 0)
		w.style("B", "C", styles.amount)
	}
	w.row++

	w.title("Reported Figures", styles.bold)
	figuresStart := w.row
	figures := []struct {
		label string
		value float64
	}{
		{"Share Capital", review.Report.ShareCapital},
		{"Liquid Capital", review.Report.LiquidCapital},
		{"Net Assets", review.Report.NetAssets},
		{"Total Liabilities", review.Report.TotalLiabilities},
	}
	for _, fig := range figures {
		w.pair(fig.label, fig.value, styles.amount)
	}
	figuresEnd := w.row - 1
	w.row++

	if review.SolvencyRatio != nil {
		w.pair("Solvency Ratio", *review.SolvencyRatio, styles.ratio)
	} else {
		w.pair("Solvency Ratio", "n/a", 0)
	}
	w.pair("Submission Requirements Met", yesNo(review.Report.SubmissionRequirementsMet), 0)
	w.pair("Publication Requirements Met", yesNo(review.Report.PublicationRequirementsMet), 0)
	if w.err != nil {
		return nil, w.err
	}

	if err := f.SetColWidth(reviewSheet, "A", "A", 32); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(reviewSheet, "B", "C", 20); err != nil {
		return nil, err
	}

	chart := &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("'%s'!$A$%d", reviewSheet, figuresStart-1),
			Categories: fmt.Sprintf("'%s'!$A$%d:$A$%d", reviewSheet, figuresStart, figuresEnd),
			Values:     fmt.Sprintf("'%s'!$B$%d:$B$%d", reviewSheet, figuresStart, figuresEnd),
		}},
		Title: []excelize.RichTextRun{{Text: fmt.Sprintf("Financials for %d", review.Report.Year)}},
	}
	if err := f.AddChart(reviewSheet, "F2", chart); err != nil {
		return nil, fmt.Errorf("adding figures chart: %w", err)
	}

	return s.write(f, "review", zap.Int64("company_id", review.Company.ID), zap.Int("year", review.Report.Year))
}

// TrendWorkbook lists share capital and net assets per year with a line chart.
func (s *ExportService) TrendWorkbook(detail *dto.CompanyDetailResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", trendSheet); err != nil {
		return nil, err
	}
	styles, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	w := &sheetWriter{f: f, sheet: trendSheet, row: 1}
	w.values([]any{"Year", "Share Capital", "Net Assets"}, styles.bold)
	for _, r := range detail.Reports {
		w.values([]any{r.Year, r.ShareCapital, r.NetAssets}, 0)
		w.style("B", "C", styles.amount)
	}
	if w.err != nil {
		return nil, w.err
	}
	if err := f.SetColWidth(trendSheet, "A", "C", 18); err != nil {
		return nil, err
	}

	if last := w.row - 1; last >= 2 {
		series := func(col string) excelize.ChartSeries {
			return excelize.ChartSeries{
				Name:       fmt.Sprintf("'%s'!$%s$1", trendSheet, col),
				Categories: fmt.Sprintf("'%s'!$A$2:$A$%d", trendSheet, last),
				Values:     fmt.Sprintf("'%s'!$%s$2:$%s$%d", trendSheet, col, col, last),
			}
		}
		chart := &excelize.Chart{
			Type:   excelize.Line,
			Series: []excelize.ChartSeries{series("B"), series("C")},
			Title:  []excelize.RichTextRun{{Text: detail.Company.Name + " Financial Trends"}},
		}
		if err := f.AddChart(trendSheet, "E2", chart); err != nil {
			return nil, fmt.Errorf("adding trend chart: %w", err)
		}
	}

	return s.write(f, "trend", zap.Int64("company_id", detail.Company.ID), zap.Int("years", len(detail.Reports)))
}

func (s *ExportService) write(f *excelize.File, kind string, fields ...zap.Field) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing %s workbook: %w", kind, err)
	}
	s.logger.Debug("workbook exported", append(fields, zap.String("kind", kind), zap.Int("bytes", buf.Len()))...)
	return buf.Bytes(), nil
}

type workbookStyles struct {
	bold   int
	amount int
	ratio  int
}

func newStyles(f *excelize.File) (workbookStyles, error) {
	var st workbookStyles
	var err error
	if st.bold, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err != nil {
		return st, err
	}
	// 3 = "#,##0", 2 = "0.00"
	if st.amount, err = f.NewStyle(&excelize.Style{NumFmt: 3}); err != nil {
		return st, err
	}
	if st.ratio, err = f.NewStyle(&excelize.Style{NumFmt: 2}); err != nil {
		return st, err
	}
	return st, nil
}

// sheetWriter appends rows to a sheet and remembers the first error.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	row   int
	err   error
}

func (w *sheetWriter) cell(col int) string {
	name, err := excelize.CoordinatesToCellName(col, w.row)
	if err != nil && w.err == nil {
		w.err = err
	}
	return name
}

func (w *sheetWriter) values(values []any, style int) {
	if w.err != nil {
		return
	}
	for i, v := range values {
		if err := w.f.SetCellValue(w.sheet, w.cell(i+1), v); err != nil {
			w.err = err
			return
		}
	}
	if style != 0 {
		w.err = w.f.SetCellStyle(w.sheet, w.cell(1), w.cell(len(values)), style)
	}
	w.row++
}

func (w *sheetWriter) title(text string, style int) {
	w.values([]any{text}, style)
}

func (w *sheetWriter) pair(label string, value any, valueStyle int) {
	w.values([]any{label, value}, 0)
	if valueStyle != 0 {
		w.style("B", "B", valueStyle)
	}
}

// style applies a style to columns from..to of the last written row.
func (w *sheetWriter) style(from, to string, style int) {
	if w.err != nil {
		return
	}
	row := w.row - 1
	w.err = w.f.SetCellStyle(w.sheet, fmt.Sprintf("%s%d", from, row), fmt.Sprintf("%s%d", to, row), style)
}

func titleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == ' ' })
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
