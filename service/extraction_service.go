package service

import (
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/Aashish23092/financial-statement-review/dto"
	"github.com/Aashish23092/financial-statement-review/utils/statement"
	"go.uber.org/zap"
)

// minTextLength is the amount of non-space text below which a PDF is
// treated as scanned.
const minTextLength = 20

// PageOCR turns a scanned page image into text
type PageOCR interface {
	ExtractTextFromImage(img image.Image) (string, float64, error)
}

// ExtractionService turns statement PDFs into ExtractionResults.
// It holds no per-call state and may be shared between goroutines.
type ExtractionService struct {
	pdfProcessor PDFProcessor
	ocr          PageOCR
	specs        []statement.FieldSpec
	logger       *zap.Logger
}

// NewExtractionService builds the extraction pipeline. ocr may be nil, in
// which case scanned PDFs simply yield no text.
func NewExtractionService(pdfProcessor PDFProcessor, ocr PageOCR, logger *zap.Logger) *ExtractionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExtractionService{
		pdfProcessor: pdfProcessor,
		ocr:          ocr,
		specs:        statement.FieldSpecs(),
		logger:       logger,
	}
}

// Extract reads the text of a statement PDF and reconstructs its figures.
// Fields that can neither be located nor derived stay at 0.0. The only
// error is an unreadable document (dto.ErrDocumentUnreadable) or a
// cancelled context.
func (s *ExtractionService) Extract(ctx context.Context, data []byte) (*dto.ExtractionResult, error) {
	text, err := s.documentText(ctx, data)
	if err != nil {
		return nil, err
	}

	result := s.ExtractFromText(text)
	return &result, nil
}

// ExtractFromText runs normalization, field location and derivation over
// already extracted text.
func (s *ExtractionService) ExtractFromText(text string) dto.ExtractionResult {
	clean, scale := statement.Normalize(text)
	located := statement.LocateAll(clean, scale, s.specs)
	result := statement.Resolve(located)

	s.logger.Debug("statement extracted",
		zap.Float64("scale", scale),
		zap.Strings("unresolved", UnresolvedFields(result)),
	)
	return result
}

func (s *ExtractionService) documentText(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text, err := s.pdfProcessor.ExtractText(data)
	if err != nil {
		return "", fmt.Errorf("failed to extract statement text: %w", err)
	}

	if len(strings.TrimSpace(text)) >= minTextLength || s.ocr == nil {
		return text, nil
	}

	s.logger.Info("statement has minimal text, attempting image-based OCR",
		zap.Int("text_length", len(strings.TrimSpace(text))))

	images, err := s.pdfProcessor.ExtractImages(data)
	if err != nil {
		s.logger.Warn("failed to extract page images", zap.Error(err))
		return text, nil
	}

	var combined strings.Builder
	combined.WriteString(text)
	for i, img := range images {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		pageText, conf, err := s.ocr.ExtractTextFromImage(img)
		if err != nil {
			s.logger.Warn("OCR failed for page image", zap.Int("image", i), zap.Error(err))
			continue
		}
		s.logger.Debug("page image OCR done", zap.Int("image", i), zap.Float64("confidence", conf))
		combined.WriteString(pageText)
		combined.WriteString("\n")
	}

	return combined.String(), nil
}

// UnresolvedFields lists the fields still at the 0.0 sentinel, in JSON key order.
func UnresolvedFields(result dto.ExtractionResult) []string {
	names := make([]string, 0)
	for _, spec := range statement.FieldSpecs() {
		if v, _ := result.Get(spec.Name); v == 0.0 {
			names = append(names, spec.Name)
		}
	}
	return names
}
