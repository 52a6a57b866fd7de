package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Aashish23092/financial-statement-review/dto"
	"github.com/Aashish23092/financial-statement-review/repository"
	"go.uber.org/zap"
)

type CompanyService struct {
	store  repository.Store
	logger *zap.Logger
	now    func() time.Time
}

func NewCompanyService(store repository.Store, logger *zap.Logger) *CompanyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CompanyService{store: store, logger: logger, now: time.Now}
}

// CreateCompany validates and registers a company
func (s *CompanyService) CreateCompany(ctx context.Context, req *dto.CreateCompanyRequest) (*dto.Company, error) {
	company, err := req.Validate()
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateCompany(ctx, &company); err != nil {
		return nil, err
	}
	s.logger.Info("company created",
		zap.Int64("company_id", company.ID),
		zap.String("company_type", string(company.CompanyType)))
	return &company, nil
}

func (s *CompanyService) ListCompanies(ctx context.Context) ([]dto.Company, error) {
	return s.store.ListCompanies(ctx)
}

// PendingReviews lists companies with no report filed for the current year
func (s *CompanyService) PendingReviews(ctx context.Context) ([]dto.Company, error) {
	return s.store.ListCompaniesByReportYear(ctx, s.now().Year(), false)
}

// ReviewedCompanies lists companies with a report filed for the current year
func (s *CompanyService) ReviewedCompanies(ctx context.Context) ([]dto.Company, error) {
	return s.store.ListCompaniesByReportYear(ctx, s.now().Year(), true)
}

// CompanyDetail returns the company with all its reports, oldest year first
func (s *CompanyService) CompanyDetail(ctx context.Context, id int64) (*dto.CompanyDetailResponse, error) {
	company, err := s.store.GetCompany(ctx, id)
	if err != nil {
		return nil, err
	}
	reports, err := s.store.ListReports(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	return &dto.CompanyDetailResponse{Company: *company, Reports: reports}, nil
}
