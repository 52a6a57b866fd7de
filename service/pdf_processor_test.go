package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTextPDF assembles a PDF with one page per content stream, all pages
// sharing a Helvetica font resource named /F1, and a correct xref table.
func buildTextPDF(pageStreams ...string) []byte {
	const fontObj = 3
	pageCount := len(pageStreams)
	objCount := fontObj + 2*pageCount

	pageObj := func(i int) int { return fontObj + 1 + 2*i }

	var b strings.Builder
	offsets := make([]int, objCount+1)
	b.WriteString("%PDF-1.4\n")

	offsets[1] = b.Len()
	b.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	kids := make([]string, pageCount)
	for i := range pageStreams {
		kids[i] = fmt.Sprintf("%d 0 R", pageObj(i))
	}
	offsets[2] = b.Len()
	fmt.Fprintf(&b, "2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n", strings.Join(kids, " "), pageCount)

	offsets[fontObj] = b.Len()
	fmt.Fprintf(&b, "%d 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n", fontObj)

	for i, stream := range pageStreams {
		page, contents := pageObj(i), pageObj(i)+1
		offsets[page] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents %d 0 R /Resources << /Font << /F1 %d 0 R >> >> >>\nendobj\n",
			page, contents, fontObj)

		offsets[contents] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", contents, len(stream), stream)
	}

	xref := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n0000000000 65535 f \n", objCount+1)
	for i := 1; i <= objCount; i++ {
		fmt.Fprintf(&b, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", objCount+1, xref)

	return []byte(b.String())
}

// textLine draws one single-run line with a relative Td move.
func textLine(text string) string {
	return "BT\n/F1 12 Tf\n72 720 Td\n(" + text + ") Tj\nET"
}

// textRuns places each run at its own absolute x on baseline y.
func textRuns(y int, runs map[int]string) string {
	var b strings.Builder
	b.WriteString("BT\n/F1 12 Tf\n")
	for x, s := range runs {
		fmt.Fprintf(&b, "1 0 0 1 %d %d Tm\n(%s) Tj\n", x, y, s)
	}
	b.WriteString("ET")
	return b.String()
}

func TestExtractTextSingleLine(t *testing.T) {
	text, err := NewPDFProcessor().ExtractText(buildTextPDF(textLine("Share Capital 50,000")))

	require.NoError(t, err)
	assert.Equal(t, "Share Capital 50,000\n", text)
}

func TestExtractTextJoinsSeparateRunsWithSpaces(t *testing.T) {
	page := textRuns(720, map[int]string{72: "Total", 110: "Assets", 300: "500"}) + "\n" +
		textRuns(700, map[int]string{72: "Total", 110: "Liabilities", 300: "200"})

	text, err := NewPDFProcessor().ExtractText(buildTextPDF(page))

	require.NoError(t, err)
	assert.Equal(t, "Total Assets 500\nTotal Liabilities 200\n", text)
}

func TestExtractTextConcatenatesPages(t *testing.T) {
	data := buildTextPDF(textLine("Share Capital 10"), textLine("Total Assets 20"))

	text, err := NewPDFProcessor().ExtractText(data)

	require.NoError(t, err)
	assert.Equal(t, "Share Capital 10\nTotal Assets 20\n", text)
}

func TestExtractRealStatementPDF(t *testing.T) {
	first := textRuns(760, map[int]string{72: "Figures", 120: "in", 140: "thousands"}) + "\n" +
		textRuns(720, map[int]string{72: "Share Capital", 300: "Ksh 50,000"})
	second := textRuns(720, map[int]string{72: "Total Assets", 300: "500,000"}) + "\n" +
		textRuns(700, map[int]string{72: "Total Liabilities", 300: "200,000"})
	svc := NewExtractionService(NewPDFProcessor(), nil, nil)

	result, err := svc.Extract(context.Background(), buildTextPDF(first, second))

	require.NoError(t, err)
	assert.Equal(t, 50_000_000.0, result.ShareCapital)
	assert.Equal(t, 500_000_000.0, result.TotalAssets)
	assert.Equal(t, 300_000_000.0, result.NetAssets)
}

func TestJoinRowGapHeuristic(t *testing.T) {
	runs := pdf.TextHorizontal{
		{S: "Sha", X: 72, W: 20, FontSize: 10},
		{S: "re", X: 92.5, W: 12, FontSize: 10},
		{S: "Capital", X: 120, W: 40, FontSize: 10},
		{S: " 50", X: 170, W: 15, FontSize: 10},
	}

	assert.Equal(t, "Share Capital 50", joinRow(runs))
}

func TestJoinRowEmpty(t *testing.T) {
	assert.Equal(t, "", joinRow(nil))
}
