package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Aashish23092/financial-statement-review/dto"
	"github.com/Aashish23092/financial-statement-review/repository"
	"github.com/Aashish23092/financial-statement-review/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StatementExtractor reconstructs financial figures from statement bytes
type StatementExtractor interface {
	Extract(ctx context.Context, data []byte) (*dto.ExtractionResult, error)
}

type ReportService struct {
	store     repository.Store
	files     storage.Storage
	extractor StatementExtractor
	logger    *zap.Logger
}

func NewReportService(store repository.Store, files storage.Storage, extractor StatementExtractor, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		store:     store,
		files:     files,
		extractor: extractor,
		logger:    logger,
	}
}

// UploadReport stores the statement, extracts its figures and files the
// report. A statement whose share capital cannot be found is rejected with
// dto.ErrShareCapitalMissing and its stored copy removed. The statement is
// only stored as <companyID>_<year>.pdf once its report row exists.
func (s *ReportService) UploadReport(ctx context.Context, companyID int64, year int, data []byte) (*dto.FinancialReport, error) {
	if err := dto.ValidateYear(year); err != nil {
		return nil, err
	}
	if _, err := s.store.GetCompany(ctx, companyID); err != nil {
		return nil, err
	}

	_, err := s.store.GetReportByYear(ctx, companyID, year)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: company %d, year %d", dto.ErrReportExists, companyID, year)
	case !errors.Is(err, dto.ErrReportNotFound):
		return nil, err
	}

	// Concurrent uploads for the same company and year each stage their own
	// file; only the upload whose row insert wins moves into place.
	staged, err := s.files.Save(stagingFileName(companyID, year), data)
	if err != nil {
		return nil, fmt.Errorf("failed to store statement: %w", err)
	}

	report, err := s.fileReport(ctx, companyID, year, reportFileName(companyID, year), data)
	if err != nil {
		s.removeFile(staged)
		return nil, err
	}

	if err := s.files.Rename(staged, report.FilePath); err != nil {
		s.removeFile(staged)
		if delErr := s.store.DeleteReport(context.WithoutCancel(ctx), report.ID); delErr != nil {
			s.logger.Error("failed to roll back report", zap.Int64("report_id", report.ID), zap.Error(delErr))
		}
		return nil, fmt.Errorf("failed to store statement: %w", err)
	}
	return report, nil
}

func (s *ReportService) removeFile(name string) {
	if err := s.files.Delete(name); err != nil {
		s.logger.Warn("failed to remove statement file", zap.String("file", name), zap.Error(err))
	}
}

func (s *ReportService) fileReport(ctx context.Context, companyID int64, year int, fileName string, data []byte) (*dto.FinancialReport, error) {
	extracted, err := s.extractor.Extract(ctx, data)
	if err != nil {
		return nil, err
	}

	if extracted.ShareCapital == 0.0 {
		s.logger.Info("statement rejected, share capital not found",
			zap.Int64("company_id", companyID),
			zap.Int("year", year),
			zap.Strings("unresolved", UnresolvedFields(*extracted)))
		return nil, dto.ErrShareCapitalMissing
	}

	report := &dto.FinancialReport{
		CompanyID:                  companyID,
		Year:                       year,
		ShareCapital:               extracted.ShareCapital,
		LiquidCapital:              extracted.LiquidCapital,
		NetAssets:                  extracted.NetAssets,
		TotalAssets:                extracted.TotalAssets,
		TotalLiabilities:           extracted.TotalLiabilities,
		SubmissionRequirementsMet:  true,
		PublicationRequirementsMet: true,
		FilePath:                   fileName,
	}
	if err := s.store.CreateReport(ctx, report); err != nil {
		return nil, err
	}

	s.logger.Info("report filed",
		zap.Int64("report_id", report.ID),
		zap.Int64("company_id", companyID),
		zap.Int("year", year))
	return report, nil
}

// DeleteReport removes the report and its stored statement
func (s *ReportService) DeleteReport(ctx context.Context, id int64) (*dto.FinancialReport, error) {
	report, err := s.store.GetReport(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.store.DeleteReport(ctx, id); err != nil {
		return nil, err
	}
	name := report.FilePath
	if name == "" {
		name = reportFileName(report.CompanyID, report.Year)
	}
	s.removeFile(name)
	return report, nil
}

// CompleteReview records the reviewer's submission and publication checks
func (s *ReportService) CompleteReview(ctx context.Context, companyID int64, year int, req *dto.CompleteReviewRequest) error {
	return s.store.UpdateRequirements(ctx, companyID, year,
		req.SubmissionRequirementsMet, req.PublicationRequirementsMet)
}

func reportFileName(companyID int64, year int) string {
	return fmt.Sprintf("%d_%d.pdf", companyID, year)
}

func stagingFileName(companyID int64, year int) string {
	return fmt.Sprintf("%d_%d.%s.upload", companyID, year, uuid.NewString())
}
