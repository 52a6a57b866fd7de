package handler

import (
	"fmt"
	"net/http"

	"github.com/Aashish23092/financial-statement-review/dto"
	"github.com/Aashish23092/financial-statement-review/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CompanyHandler struct {
	companyService *service.CompanyService
	exportService  *service.ExportService
	logger         *zap.Logger
}

func NewCompanyHandler(companyService *service.CompanyService, exportService *service.ExportService, logger *zap.Logger) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
		exportService:  exportService,
		logger:         logger,
	}
}

// CreateCompany handles POST /companies
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, h.logger, "Invalid company payload", badRequest("%v", err))
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), &req)
	if err != nil {
		sendError(c, h.logger, "Failed to create company", err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

// ListCompanies handles GET /companies
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies, err := h.companyService.ListCompanies(c.Request.Context())
	if err != nil {
		sendError(c, h.logger, "Failed to list companies", err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

// PendingReviews handles GET /companies/pending
func (h *CompanyHandler) PendingReviews(c *gin.Context) {
	companies, err := h.companyService.PendingReviews(c.Request.Context())
	if err != nil {
		sendError(c, h.logger, "Failed to list pending reviews", err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

// ReviewedCompanies handles GET /companies/reviewed
func (h *CompanyHandler) ReviewedCompanies(c *gin.Context) {
	companies, err := h.companyService.ReviewedCompanies(c.Request.Context())
	if err != nil {
		sendError(c, h.logger, "Failed to list reviewed companies", err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

// GetCompany handles GET /companies/:id
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id, err := int64Param(c, "id")
	if err != nil {
		sendError(c, h.logger, "Invalid company id", err)
		return
	}

	detail, err := h.companyService.CompanyDetail(c.Request.Context(), id)
	if err != nil {
		sendError(c, h.logger, "Failed to load company", err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// DownloadTrend handles GET /companies/:id/trend.xlsx
func (h *CompanyHandler) DownloadTrend(c *gin.Context) {
	id, err := int64Param(c, "id")
	if err != nil {
		sendError(c, h.logger, "Invalid company id", err)
		return
	}

	detail, err := h.companyService.CompanyDetail(c.Request.Context(), id)
	if err != nil {
		sendError(c, h.logger, "Failed to load company", err)
		return
	}
	data, err := h.exportService.TrendWorkbook(detail)
	if err != nil {
		sendError(c, h.logger, "Failed to build trend workbook", err)
		return
	}

	sendAttachment(c, fmt.Sprintf("company_%d_trend.xlsx", id), xlsxContentType, data)
}
