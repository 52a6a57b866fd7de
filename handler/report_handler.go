package handler

import (
	"net/http"
	"time"

	"github.com/Aashish23092/financial-statement-review/dto"
	"github.com/Aashish23092/financial-statement-review/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReportHandler struct {
	reportService *service.ReportService
	extractor     service.StatementExtractor
	maxFileSize   int64
	logger        *zap.Logger
}

func NewReportHandler(reportService *service.ReportService, extractor service.StatementExtractor, maxFileSize int64, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		extractor:     extractor,
		maxFileSize:   maxFileSize,
		logger:        logger,
	}
}

// UploadReport handles POST /companies/:id/reports
func (h *ReportHandler) UploadReport(c *gin.Context) {
	companyID, err := int64Param(c, "id")
	if err != nil {
		sendError(c, h.logger, "Invalid company id", err)
		return
	}

	req := dto.UploadReportRequest{CompanyID: companyID}
	if err := c.ShouldBind(&req); err != nil {
		sendError(c, h.logger, "Invalid upload form", badRequest("%v", err))
		return
	}
	if err := req.Validate(); err != nil {
		sendError(c, h.logger, "Invalid upload", err)
		return
	}

	data, err := readUpload(req.File, h.maxFileSize)
	if err != nil {
		sendError(c, h.logger, "Failed to read statement", err)
		return
	}

	h.logger.Info("processing statement upload",
		zap.Int64("company_id", companyID),
		zap.Int("year", req.Year),
		zap.String("filename", req.File.Filename),
		zap.Int("bytes", len(data)))

	report, err := h.reportService.UploadReport(c.Request.Context(), companyID, req.Year, data)
	if err != nil {
		sendError(c, h.logger, "Failed to file report", err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

// DeleteReport handles DELETE /reports/:id
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	id, err := int64Param(c, "id")
	if err != nil {
		sendError(c, h.logger, "Invalid report id", err)
		return
	}

	report, err := h.reportService.DeleteReport(c.Request.Context(), id)
	if err != nil {
		sendError(c, h.logger, "Failed to delete report", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"deleted":    report.ID,
		"company_id": report.CompanyID,
		"year":       report.Year,
	})
}

// Extract handles POST /extract, returning the figures of a statement
// without storing anything.
func (h *ReportHandler) Extract(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		sendError(c, h.logger, "No file provided", badRequest("%v", err))
		return
	}

	data, err := readUpload(fh, h.maxFileSize)
	if err != nil {
		sendError(c, h.logger, "Failed to read statement", err)
		return
	}

	result, err := h.extractor.Extract(c.Request.Context(), data)
	if err != nil {
		sendError(c, h.logger, "Failed to extract statement", err)
		return
	}

	c.JSON(http.StatusOK, dto.ExtractResponse{
		Filename:    fh.Filename,
		Result:      *result,
		Unresolved:  service.UnresolvedFields(*result),
		ProcessedAt: time.Now().UTC().Format(time.RFC3339),
	})
}
