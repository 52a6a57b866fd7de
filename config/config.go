package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	ServerPort        string
	GinMode           string
	DatabasePath      string
	UploadDir         string
	TesseractDataPath string
	OCRFallback       bool
	MaxFileSize       int64
}

func LoadConfig() *Config {
	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		GinMode:           getEnv("GIN_MODE", "release"),
		DatabasePath:      getEnv("DATABASE_PATH", "financial-review.db"),
		UploadDir:         getEnv("UPLOAD_DIR", "uploads"),
		TesseractDataPath: getEnv("TESSDATA_PREFIX", "/usr/share/tesseract-ocr/5/tessdata/"),
		OCRFallback:       getEnvAsBool("OCR_FALLBACK", false),
		MaxFileSize:       getEnvAsInt64("MAX_FILE_SIZE", 10*1024*1024), // 10 MB
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
