// Package repository persists companies and their financial reports in SQLite.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Aashish23092/financial-statement-review/dto"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const schema = `
CREATE TABLE IF NOT EXISTS companies (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	name           TEXT    NOT NULL UNIQUE,
	company_type   TEXT    NOT NULL,
	market_segment TEXT    NOT NULL DEFAULT '',
	created_at     INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS financial_reports (
	id                           INTEGER PRIMARY KEY AUTOINCREMENT,
	company_id                   INTEGER NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
	year                         INTEGER NOT NULL,
	share_capital                REAL    NOT NULL DEFAULT 0,
	liquid_capital               REAL    NOT NULL DEFAULT 0,
	net_assets                   REAL    NOT NULL DEFAULT 0,
	total_assets                 REAL    NOT NULL DEFAULT 0,
	total_liabilities            REAL    NOT NULL DEFAULT 0,
	submission_requirements_met  INTEGER NOT NULL DEFAULT 0,
	publication_requirements_met INTEGER NOT NULL DEFAULT 0,
	file_path                    TEXT    NOT NULL DEFAULT '',
	created_at                   INTEGER NOT NULL,
	UNIQUE (company_id, year)
);

CREATE INDEX IF NOT EXISTS idx_financial_reports_year ON financial_reports(year);
`

// Store defines the persistence operations used by the services
type Store interface {
	CreateCompany(ctx context.Context, company *dto.Company) error
	GetCompany(ctx context.Context, id int64) (*dto.Company, error)
	ListCompanies(ctx context.Context) ([]dto.Company, error)
	// ListCompaniesByReportYear returns companies that have (filed=true) or
	// lack (filed=false) a report for year.
	ListCompaniesByReportYear(ctx context.Context, year int, filed bool) ([]dto.Company, error)

	CreateReport(ctx context.Context, report *dto.FinancialReport) error
	GetReport(ctx context.Context, id int64) (*dto.FinancialReport, error)
	GetReportByYear(ctx context.Context, companyID int64, year int) (*dto.FinancialReport, error)
	ListReports(ctx context.Context, companyID int64) ([]dto.FinancialReport, error)
	UpdateRequirements(ctx context.Context, companyID int64, year int, submission, publication bool) error
	DeleteReport(ctx context.Context, id int64) error

	Close() error
}

// SQLiteStore implements Store on modernc.org/sqlite
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the schema.
func Open(path string) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}
	// A single connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) CreateCompany(ctx context.Context, company *dto.Company) error {
	if company.CreatedAt.IsZero() {
		company.CreatedAt = time.Now().UTC()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO companies (name, company_type, market_segment, created_at) VALUES (?, ?, ?, ?)`,
		company.Name, string(company.CompanyType), string(company.MarketSegment), company.CreatedAt.Unix(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", dto.ErrCompanyExists, company.Name)
		}
		return fmt.Errorf("inserting company: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading company id: %w", err)
	}
	company.ID = id
	return nil
}

func (s *SQLiteStore) GetCompany(ctx context.Context, id int64) (*dto.Company, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, company_type, market_segment, created_at FROM companies WHERE id = ?`, id)
	company, err := scanCompany(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", dto.ErrCompanyNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying company: %w", err)
	}
	return company, nil
}

func (s *SQLiteStore) ListCompanies(ctx context.Context) ([]dto.Company, error) {
	return s.queryCompanies(ctx,
		`SELECT id, name, company_type, market_segment, created_at FROM companies ORDER BY name`)
}

func (s *SQLiteStore) ListCompaniesByReportYear(ctx context.Context, year int, filed bool) ([]dto.Company, error) {
	op := "NOT EXISTS"
	if filed {
		op = "EXISTS"
	}
	query := `SELECT c.id, c.name, c.company_type, c.market_segment, c.created_at FROM companies c
		WHERE ` + op + ` (SELECT 1 FROM financial_reports r WHERE r.company_id = c.id AND r.year = ?)
		ORDER BY c.name`
	return s.queryCompanies(ctx, query, year)
}

func (s *SQLiteStore) queryCompanies(ctx context.Context, query string, args ...any) ([]dto.Company, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying companies: %w", err)
	}
	defer rows.Close()

	companies := make([]dto.Company, 0)
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning company: %w", err)
		}
		companies = append(companies, *company)
	}
	return companies, rows.Err()
}

func (s *SQLiteStore) CreateReport(ctx context.Context, report *dto.FinancialReport) error {
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO financial_reports (
			company_id, year, share_capital, liquid_capital, net_assets, total_assets, total_liabilities,
			submission_requirements_met, publication_requirements_met, file_path, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		report.CompanyID, report.Year, report.ShareCapital, report.LiquidCapital, report.NetAssets,
		report.TotalAssets, report.TotalLiabilities, report.SubmissionRequirementsMet,
		report.PublicationRequirementsMet, report.FilePath, report.CreatedAt.Unix(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: company %d, year %d", dto.ErrReportExists, report.CompanyID, report.Year)
		}
		return fmt.Errorf("inserting report: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading report id: %w", err)
	}
	report.ID = id
	return nil
}

const reportColumns = `id, company_id, year, share_capital, liquid_capital, net_assets, total_assets,
	total_liabilities, submission_requirements_met, publication_requirements_met, file_path, created_at`

func (s *SQLiteStore) GetReport(ctx context.Context, id int64) (*dto.FinancialReport, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+reportColumns+` FROM financial_reports WHERE id = ?`, id)
	report, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", dto.ErrReportNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying report: %w", err)
	}
	return report, nil
}

func (s *SQLiteStore) GetReportByYear(ctx context.Context, companyID int64, year int) (*dto.FinancialReport, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+reportColumns+` FROM financial_reports WHERE company_id = ? AND year = ?`, companyID, year)
	report, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: company %d, year %d", dto.ErrReportNotFound, companyID, year)
	}
	if err != nil {
		return nil, fmt.Errorf("querying report: %w", err)
	}
	return report, nil
}

func (s *SQLiteStore) ListReports(ctx context.Context, companyID int64) ([]dto.FinancialReport, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+reportColumns+` FROM financial_reports WHERE company_id = ? ORDER BY year`, companyID)
	if err != nil {
		return nil, fmt.Errorf("querying reports: %w", err)
	}
	defer rows.Close()

	reports := make([]dto.FinancialReport, 0)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning report: %w", err)
		}
		reports = append(reports, *report)
	}
	return reports, rows.Err()
}

func (s *SQLiteStore) UpdateRequirements(ctx context.Context, companyID int64, year int, submission, publication bool) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE financial_reports SET submission_requirements_met = ?, publication_requirements_met = ?
		WHERE company_id = ? AND year = ?`,
		submission, publication, companyID, year,
	)
	if err != nil {
		return fmt.Errorf("updating report: %w", err)
	}
	return requireAffected(res, fmt.Errorf("%w: company %d, year %d", dto.ErrReportNotFound, companyID, year))
}

func (s *SQLiteStore) DeleteReport(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM financial_reports WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting report: %w", err)
	}
	return requireAffected(res, fmt.Errorf("%w: %d", dto.ErrReportNotFound, id))
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCompany(row scanner) (*dto.Company, error) {
	var (
		c         dto.Company
		ctype     string
		segment   string
		createdAt int64
	)
	if err := row.Scan(&c.ID, &c.Name, &ctype, &segment, &createdAt); err != nil {
		return nil, err
	}
	c.CompanyType = dto.CompanyType(ctype)
	c.MarketSegment = dto.MarketSegment(segment)
	c.CreatedAt = time.Unix(createdAt, 0).UTC()
	return &c, nil
}

func scanReport(row scanner) (*dto.FinancialReport, error) {
	var (
		r         dto.FinancialReport
		createdAt int64
	)
	err := row.Scan(&r.ID, &r.CompanyID, &r.Year, &r.ShareCapital, &r.LiquidCapital, &r.NetAssets,
		&r.TotalAssets, &r.TotalLiabilities, &r.SubmissionRequirementsMet, &r.PublicationRequirementsMet,
		&r.FilePath, &createdAt)
	if err != nil {
		return nil, err
	}
	r.CreatedAt = time.Unix(createdAt, 0).UTC()
	return &r, nil
}

func requireAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}
