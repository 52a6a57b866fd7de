package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "DATABASE_PATH", "UPLOAD_DIR", "OCR_FALLBACK", "MAX_FILE_SIZE", "GIN_MODE"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "financial-review.db", cfg.DatabasePath)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.False(t, cfg.OCRFallback)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxFileSize)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_PATH", "/tmp/review.db")
	t.Setenv("OCR_FALLBACK", "true")
	t.Setenv("MAX_FILE_SIZE", "2048")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "/tmp/review.db", cfg.DatabasePath)
	assert.True(t, cfg.OCRFallback)
	assert.Equal(t, int64(2048), cfg.MaxFileSize)
}

func TestLoadConfigIgnoresBadNumbers(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE", "lots")
	t.Setenv("OCR_FALLBACK", "maybe")

	cfg := LoadConfig()

	assert.Equal(t, int64(10*1024*1024), cfg.MaxFileSize)
	assert.False(t, cfg.OCRFallback)
}
