package service

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // pdfcpu writes DCT streams as .jpg
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/Aashish23092/financial-statement-review/dto"
	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

type PDFProcessor interface {
	ExtractText(pdfData []byte) (string, error)
	ExtractImages(pdfData []byte) ([]image.Image, error)
}

type pdfProcessor struct{}

func NewPDFProcessor() PDFProcessor {
	return &pdfProcessor{}
}

// ExtractText concatenates the plain text of every page in reading order.
// Bytes that cannot be parsed as a PDF yield an error wrapping
// dto.ErrDocumentUnreadable.
func (p *pdfProcessor) ExtractText(pdfData []byte) (text string, err error) {
	// ledongthuc/pdf panics on some malformed xref tables.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %v", dto.ErrDocumentUnreadable, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", dto.ErrDocumentUnreadable, err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", dto.ErrDocumentUnreadable, pageIndex, err)
		}
		for _, row := range rows {
			textBuilder.WriteString(joinRow(row.Content))
			textBuilder.WriteString("\n")
		}
	}
	return textBuilder.String(), nil
}

// joinRow glues the text runs of one row, inserting a space only where the
// runs are visibly apart. Runs are frequently single glyphs.
func joinRow(runs pdf.TextHorizontal) string {
	var sb strings.Builder
	for i, run := range runs {
		if i > 0 {
			prev := runs[i-1]
			gap := run.X - (prev.X + prev.W)
			if gap > prev.FontSize*0.15 && !strings.HasSuffix(prev.S, " ") && !strings.HasPrefix(run.S, " ") {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(run.S)
	}
	return sb.String()
}

// ExtractImages pulls the embedded page images of a scanned statement.
func (p *pdfProcessor) ExtractImages(pdfData []byte) ([]image.Image, error) {
	tempDir, err := os.MkdirTemp("", "statement_images")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	tempFile, err := os.CreateTemp("", "statement-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tempFile.Name())

	if _, err := tempFile.Write(pdfData); err != nil {
		tempFile.Close()
		return nil, fmt.Errorf("failed to write pdf data: %w", err)
	}
	tempFile.Close()

	conf := model.NewDefaultConfiguration()

	if err := api.ExtractImagesFile(tempFile.Name(), tempDir, nil, conf); err != nil {
		return nil, fmt.Errorf("%w: failed to extract images: %v", dto.ErrDocumentUnreadable, err)
	}

	files, err := os.ReadDir(tempDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read temp dir: %w", err)
	}

	var images []image.Image
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		imgFile, err := os.Open(filepath.Join(tempDir, file.Name()))
		if err != nil {
			continue
		}

		img, _, err := image.Decode(imgFile)
		imgFile.Close()
		if err != nil {
			continue
		}
		images = append(images, img)
	}

	return images, nil
}
