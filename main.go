package main

import (
	"os"

	"github.com/Aashish23092/financial-statement-review/client"
	"github.com/Aashish23092/financial-statement-review/config"
	"github.com/Aashish23092/financial-statement-review/handler"
	"github.com/Aashish23092/financial-statement-review/repository"
	"github.com/Aashish23092/financial-statement-review/service"
	"github.com/Aashish23092/financial-statement-review/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Initialize configuration
	cfg := config.LoadConfig()
	gin.SetMode(cfg.GinMode)

	// Initialize persistence
	store, err := repository.Open(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("Failed to open database", zap.String("path", cfg.DatabasePath), zap.Error(err))
	}
	defer store.Close()

	files, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		logger.Fatal("Failed to prepare upload directory", zap.String("dir", cfg.UploadDir), zap.Error(err))
	}

	// Scanned statements are OCRed only when enabled; Tesseract needs the
	// v5 tessdata prefix in the environment.
	var ocr service.PageOCR
	if cfg.OCRFallback {
		os.Setenv("TESSDATA_PREFIX", cfg.TesseractDataPath)
		ocr = client.NewTesseractClient(cfg.TesseractDataPath, logger)
		logger.Info("OCR fallback enabled", zap.String("tessdata", cfg.TesseractDataPath))
	}

	// Initialize service layer
	extractionService := service.NewExtractionService(service.NewPDFProcessor(), ocr, logger)
	companyService := service.NewCompanyService(store, logger)
	reportService := service.NewReportService(store, files, extractionService, logger)
	reviewService := service.NewReviewService(store, logger)
	exportService := service.NewExportService(logger)

	// Initialize handler layer
	router := handler.NewRouter(handler.Handlers{
		Companies: handler.NewCompanyHandler(companyService, exportService, logger),
		Reports:   handler.NewReportHandler(reportService, extractionService, cfg.MaxFileSize, logger),
		Reviews:   handler.NewReviewHandler(reviewService, reportService, exportService, logger),
	}, logger, 32<<20)

	// Start server
	logger.Info("Starting Financial Statement Review Service", zap.String("port", cfg.ServerPort))
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
