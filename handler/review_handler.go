package handler

import (
	"fmt"
	"net/http"

	"github.com/Aashish23092/financial-statement-review/dto"
	"github.com/Aashish23092/financial-statement-review/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	reviewService *service.ReviewService
	reportService *service.ReportService
	exportService *service.ExportService
	logger        *zap.Logger
}

func NewReviewHandler(reviewService *service.ReviewService, reportService *service.ReportService, exportService *service.ExportService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		reportService: reportService,
		exportService: exportService,
		logger:        logger,
	}
}

func (h *ReviewHandler) review(c *gin.Context) (*dto.ReviewResponse, bool) {
	companyID, err := int64Param(c, "id")
	if err != nil {
		sendError(c, h.logger, "Invalid company id", err)
		return nil, false
	}
	year, err := yearParam(c)
	if err != nil {
		sendError(c, h.logger, "Invalid year", err)
		return nil, false
	}

	review, err := h.reviewService.Review(c.Request.Context(), companyID, year)
	if err != nil {
		sendError(c, h.logger, "Failed to review report", err)
		return nil, false
	}
	return review, true
}

// GetReview handles GET /companies/:id/reviews/:year
func (h *ReviewHandler) GetReview(c *gin.Context) {
	review, ok := h.review(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, review)
}

// DownloadReview handles GET /companies/:id/reviews/:year/download
func (h *ReviewHandler) DownloadReview(c *gin.Context) {
	review, ok := h.review(c)
	if !ok {
		return
	}

	data, err := h.exportService.ReviewWorkbook(review)
	if err != nil {
		sendError(c, h.logger, "Failed to build review workbook", err)
		return
	}

	filename := fmt.Sprintf("%s_%d_review.xlsx", review.Company.Name, review.Report.Year)
	sendAttachment(c, filename, xlsxContentType, data)
}

// CompleteReview handles POST /companies/:id/reviews/:year/complete
func (h *ReviewHandler) CompleteReview(c *gin.Context) {
	companyID, err := int64Param(c, "id")
	if err != nil {
		sendError(c, h.logger, "Invalid company id", err)
		return
	}
	year, err := yearParam(c)
	if err != nil {
		sendError(c, h.logger, "Invalid year", err)
		return
	}

	var req dto.CompleteReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, h.logger, "Invalid review payload", badRequest("%v", err))
		return
	}

	if err := h.reportService.CompleteReview(c.Request.Context(), companyID, year, &req); err != nil {
		sendError(c, h.logger, "Failed to complete review", err)
		return
	}

	review, ok := h.review(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, review)
}
