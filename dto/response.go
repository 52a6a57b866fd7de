package dto

import "errors"

// Custom errors
var (
	ErrDocumentUnreadable   = errors.New("document is not a readable PDF")
	ErrShareCapitalMissing  = errors.New("could not extract financial data, please check the PDF")
	ErrCompanyNotFound      = errors.New("company not found")
	ErrCompanyExists        = errors.New("company already exists")
	ErrReportNotFound       = errors.New("report not found")
	ErrReportExists         = errors.New("report already exists for this year")
	ErrInvalidCompanyType   = errors.New("invalid company type")
	ErrInvalidMarketSegment = errors.New("invalid market segment")
	ErrInvalidYear          = errors.New("invalid year")
	ErrFileTooLarge         = errors.New("file exceeds maximum size")
	ErrInvalidRequest       = errors.New("invalid request")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// CompanyDetailResponse is a company together with its filed reports
type CompanyDetailResponse struct {
	Company Company           `json:"company"`
	Reports []FinancialReport `json:"reports"`
}

// ExtractResponse is returned by the stateless extraction endpoint
type ExtractResponse struct {
	Filename    string           `json:"filename"`
	Result      ExtractionResult `json:"result"`
	Unresolved  []string         `json:"unresolved"`
	ProcessedAt string           `json:"processed_at"`
}
