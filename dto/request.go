package dto

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

const (
	MinReportYear = 1900
	MaxReportYear = 2100
)

// CreateCompanyRequest represents the incoming company registration
type CreateCompanyRequest struct {
	Name          string `json:"name" binding:"required"`
	CompanyType   string `json:"company_type" binding:"required"`
	MarketSegment string `json:"market_segment"`
}

// Validate checks the request and returns the normalized company.
// The market segment is dropped for anything but issuers.
func (r *CreateCompanyRequest) Validate() (Company, error) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return Company{}, fmt.Errorf("%w: name is required", ErrInvalidRequest)
	}

	companyType, err := ParseCompanyType(r.CompanyType)
	if err != nil {
		return Company{}, fmt.Errorf("%w: %q", err, r.CompanyType)
	}

	segment, err := ParseMarketSegment(r.MarketSegment)
	if err != nil {
		return Company{}, fmt.Errorf("%w: %q", err, r.MarketSegment)
	}
	if companyType != CompanyTypeIssuer {
		segment = ""
	}

	return Company{
		Name:          name,
		CompanyType:   companyType,
		MarketSegment: segment,
	}, nil
}

// UploadReportRequest represents a statement upload for one company and year
type UploadReportRequest struct {
	CompanyID int64                 `form:"-"`
	Year      int                   `form:"year" binding:"required"`
	File      *multipart.FileHeader `form:"file" binding:"required"`
}

// Validate performs basic validation on the request
func (r *UploadReportRequest) Validate() error {
	if r.File == nil {
		return fmt.Errorf("%w: file is required", ErrInvalidRequest)
	}
	if !strings.EqualFold(filepath.Ext(r.File.Filename), ".pdf") {
		return fmt.Errorf("%w: invalid file type. Supported: PDF", ErrInvalidRequest)
	}
	return ValidateYear(r.Year)
}

// ValidateYear rejects years outside the supported reporting range.
func ValidateYear(year int) error {
	if year < MinReportYear || year > MaxReportYear {
		return fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}
	return nil
}

// CompleteReviewRequest carries the reviewer's requirement checks
type CompleteReviewRequest struct {
	SubmissionRequirementsMet  bool `json:"submission_requirements_met"`
	PublicationRequirementsMet bool `json:"publication_requirements_met"`
}
