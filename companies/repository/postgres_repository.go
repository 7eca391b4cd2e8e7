package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/joblyhq/jobly/companies/models"
	"github.com/joblyhq/jobly/internal/apperrors"
	"github.com/joblyhq/jobly/internal/database/postgres"
	"github.com/joblyhq/jobly/internal/database/sqlquery"
)

const companyColumns = `handle, name, num_employees, description, logo_url`

// companyColumnMap translates logical field names to physical columns for
// partial updates. Unlisted fields map to themselves.
var companyColumnMap = map[string]string{
	"numEmployees": "num_employees",
	"logoUrl":      "logo_url",
}

// companyFilterSpec is the declarative table of recognized filter parameters.
// Built once, read concurrently, never mutated.
var companyFilterSpec = sqlquery.FilterSpec{
	{Param: "nameLike", Op: sqlquery.OpContains, Column: "name"},
	{Param: "minEmployees", Op: sqlquery.OpGTE, Column: "num_employees"},
	{Param: "maxEmployees", Op: sqlquery.OpLTE, Column: "num_employees"},
}

// postgresRepository implements CompanyRepository using raw SQL queries.
type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a new PostgreSQL repository for companies.
func NewPostgresRepository(client *postgres.Client) CompanyRepository {
	return &postgresRepository{client: client}
}

func (r *postgresRepository) Create(ctx context.Context, company *models.Company) (*models.Company, error) {
	query := `
		INSERT INTO companies (handle, name, num_employees, description, logo_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + companyColumns

	var created models.Company
	err := sqlx.GetContext(ctx, r.client.DB(), &created, query,
		company.Handle, company.Name, company.NumEmployees, company.Description, company.LogoURL)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: company with handle %q", apperrors.ErrAlreadyExists, company.Handle)
		}
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) FindMany(ctx context.Context, params map[string]string) ([]models.Company, error) {
	where, err := companyFilterSpec.BuildWhereClause(params)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + companyColumns + ` FROM companies`
	var args []interface{}
	if where != nil {
		query += " WHERE " + where.Clause
		args = where.Args
	}
	query += " ORDER BY handle"

	var companies []models.Company
	if err := sqlx.SelectContext(ctx, r.client.DB(), &companies, query, args...); err != nil {
		return nil, fmt.Errorf("failed to find companies: %w", err)
	}

	if len(companies) == 0 {
		return nil, fmt.Errorf("%w: no companies found", apperrors.ErrEmptyResult)
	}

	return companies, nil
}

func (r *postgresRepository) FindByHandle(ctx context.Context, handle string) (*models.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE handle = $1`

	var company models.Company
	err := sqlx.GetContext(ctx, r.client.DB(), &company, query, handle)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: company %q", apperrors.ErrNotFound, handle)
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}

	return &company, nil
}

func (r *postgresRepository) Update(ctx context.Context, handle string, fields sqlquery.Fields) (*models.Company, error) {
	set, err := sqlquery.BuildSetClause(fields, companyColumnMap, 1)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE companies SET %s WHERE handle = $%d RETURNING %s`,
		set.Clause, len(set.Args)+1, companyColumns)
	args := append(set.Args, handle)

	var updated models.Company
	err = sqlx.GetContext(ctx, r.client.DB(), &updated, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: company %q", apperrors.ErrNotFound, handle)
		}
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	return &updated, nil
}

func (r *postgresRepository) FindJobs(ctx context.Context, handle string) ([]models.JobSummary, error) {
	query := `
		SELECT id, title, salary, equity
		FROM jobs
		WHERE company_handle = $1
		ORDER BY date_posted DESC, id DESC`

	jobs := []models.JobSummary{}
	if err := sqlx.SelectContext(ctx, r.client.DB(), &jobs, query, handle); err != nil {
		return nil, fmt.Errorf("failed to find jobs for company: %w", err)
	}

	return jobs, nil
}

func (r *postgresRepository) Delete(ctx context.Context, handle string) error {
	result, err := r.client.DB().ExecContext(ctx, `DELETE FROM companies WHERE handle = $1`, handle)
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: company %q", apperrors.ErrNotFound, handle)
	}

	return nil
}
