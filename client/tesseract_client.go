package client

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/otiai10/gosseract/v2"
	"go.uber.org/zap"
)

// TesseractClient runs Tesseract OCR over rendered statement pages. Each
// call opens and closes its own gosseract client, so there is nothing to
// release between calls.
type TesseractClient struct {
	dataPath string
	language string
	logger   *zap.Logger
}

func NewTesseractClient(dataPath string, logger *zap.Logger) *TesseractClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TesseractClient{
		dataPath: dataPath,
		language: "eng",
		logger:   logger,
	}
}

// ExtractTextFromImage OCRs a page image and returns its text together with
// the mean word confidence (0-100).
func (tc *TesseractClient) ExtractTextFromImage(img image.Image) (string, float64, error) {
	tempFile, err := saveTempImage(img)
	if err != nil {
		return "", 0, fmt.Errorf("failed to save temp image: %w", err)
	}
	defer os.Remove(tempFile)

	return tc.ExtractTextAndQuality(tempFile)
}

// ExtractTextAndQuality OCRs the image stored at filePath
func (tc *TesseractClient) ExtractTextAndQuality(filePath string) (string, float64, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if tc.dataPath != "" {
		client.SetTessdataPrefix(tc.dataPath)
	}
	if err := client.SetLanguage(tc.language); err != nil {
		return "", 0, fmt.Errorf("failed to set language: %w", err)
	}

	if err := client.SetImage(filePath); err != nil {
		return "", 0, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", 0, fmt.Errorf("failed to extract text: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		tc.logger.Warn("bounding boxes unavailable, confidence unknown", zap.Error(err))
		return text, 0, nil
	}

	var totalConf float64
	for _, box := range boxes {
		totalConf += box.Confidence
	}

	avgConf := 0.0
	if len(boxes) > 0 {
		avgConf = totalConf / float64(len(boxes))
	}

	return text, avgConf, nil
}

func saveTempImage(img image.Image) (string, error) {
	tempFile, err := os.CreateTemp("", "statement-page-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer tempFile.Close()

	if err := png.Encode(tempFile, img); err != nil {
		os.Remove(tempFile.Name())
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	return tempFile.Name(), nil
}
