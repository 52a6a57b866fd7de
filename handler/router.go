package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers groups the route handlers served by the API
type Handlers struct {
	Companies *CompanyHandler
	Reports   *ReportHandler
	Reviews   *ReviewHandler
}

// NewRouter wires the API routes onto a gin engine
func NewRouter(h Handlers, logger *zap.Logger, maxMultipartMemory int64) *gin.Engine {
	router := gin.New()
	router.Use(requestLogger(logger), gin.Recovery())
	router.MaxMultipartMemory = maxMultipartMemory

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Financial Statement Review",
		})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/extract", h.Reports.Extract)

		companies := api.Group("/companies")
		{
			companies.POST("", h.Companies.CreateCompany)
			companies.GET("", h.Companies.ListCompanies)
			companies.GET("/pending", h.Companies.PendingReviews)
			companies.GET("/reviewed", h.Companies.ReviewedCompanies)
			companies.GET("/:id", h.Companies.GetCompany)
			companies.GET("/:id/trend.xlsx", h.Companies.DownloadTrend)
			companies.POST("/:id/reports", h.Reports.UploadReport)
			companies.GET("/:id/reviews/:year", h.Reviews.GetReview)
			companies.GET("/:id/reviews/:year/download", h.Reviews.DownloadReview)
			companies.POST("/:id/reviews/:year/complete", h.Reviews.CompleteReview)
		}

		api.DELETE("/reports/:id", h.Reports.DeleteReport)
	}

	return router
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
