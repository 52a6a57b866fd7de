package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/Aashish23092/financial-statement-review/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// errorStatus maps service errors to an HTTP status and error code
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, dto.ErrCompanyNotFound), errors.Is(err, dto.ErrReportNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, dto.ErrCompanyExists), errors.Is(err, dto.ErrReportExists):
		return http.StatusConflict, "ALREADY_EXISTS"
	case errors.Is(err, dto.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"
	case errors.Is(err, dto.ErrShareCapitalMissing), errors.Is(err, dto.ErrDocumentUnreadable):
		return http.StatusUnprocessableEntity, "EXTRACTION_FAILED"
	case errors.Is(err, dto.ErrInvalidRequest),
		errors.Is(err, dto.ErrInvalidCompanyType),
		errors.Is(err, dto.ErrInvalidMarketSegment),
		errors.Is(err, dto.ErrInvalidYear):
		return http.StatusBadRequest, "INVALID_REQUEST"
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR"
}

// sendError sends a structured error response
func sendError(c *gin.Context, logger *zap.Logger, message string, err error) {
	status, code := errorStatus(err)
	errorMsg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error(message, zap.String("path", c.FullPath()), zap.Error(err))
		errorMsg = message
	} else {
		logger.Info(message, zap.String("path", c.FullPath()), zap.Int("status", status), zap.Error(err))
	}

	c.JSON(status, dto.ErrorResponse{
		Error:   code,
		Message: errorMsg,
		Code:    status,
	})
}

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{dto.ErrInvalidRequest}, args...)...)
}

func int64Param(c *gin.Context, name string) (int64, error) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || v <= 0 {
		return 0, badRequest("invalid %s %q", name, c.Param(name))
	}
	return v, nil
}

func yearParam(c *gin.Context) (int, error) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return 0, badRequest("invalid year %q", c.Param("year"))
	}
	return year, dto.ValidateYear(year)
}

// readUpload reads an uploaded file, refusing anything over maxSize bytes
func readUpload(fh *multipart.FileHeader, maxSize int64) ([]byte, error) {
	if maxSize > 0 && fh.Size > maxSize {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit %d", dto.ErrFileTooLarge, fh.Filename, fh.Size, maxSize)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	return data, nil
}
