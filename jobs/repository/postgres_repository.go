package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/joblyhq/jobly/internal/apperrors"
	"github.com/joblyhq/jobly/internal/database/postgres"
	"github.com/joblyhq/jobly/internal/database/sqlquery"
	"github.com/joblyhq/jobly/jobs/models"
)

const jobColumns = `id, title, salary, equity, company_handle, date_posted`

// jobColumnMap translates logical field names to physical columns for
// partial updates. Unlisted fields map to themselves.
var jobColumnMap = map[string]string{
	"companyHandle": "company_handle",
	"datePosted":    "date_posted",
}

// jobFilterSpec is the declarative table of recognized filter parameters.
// hasEquity is presence-only: any value, or none, activates the predicate.
var jobFilterSpec = sqlquery.FilterSpec{
	{Param: "titleLike", Op: sqlquery.OpContains, Column: "title"},
	{Param: "minSalary", Op: sqlquery.OpGTE, Column: "salary"},
	{Param: "hasEquity", Op: sqlquery.OpPresence, Predicate: "equity > 0"},
}

// postgresRepository implements JobRepository using raw SQL queries.
type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a new PostgreSQL repository for jobs.
func NewPostgresRepository(client *postgres.Client) JobRepository {
	return &postgresRepository{client: client}
}

func (r *postgresRepository) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	query := `
		INSERT INTO jobs (title, salary, equity, company_handle)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + jobColumns

	var created models.Job
	err := sqlx.GetContext(ctx, r.client.DB(), &created, query,
		job.Title, job.Salary, job.Equity, job.CompanyHandle)
	if err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: company %q", apperrors.ErrReferenceNotFound, job.CompanyHandle)
		}
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) FindMany(ctx context.Context, params map[string]string) ([]models.Job, error) {
	where, err := jobFilterSpec.BuildWhereClause(params)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + jobColumns + ` FROM jobs`
	var args []interface{}
	if where != nil {
		query += " WHERE " + where.Clause
		args = where.Args
	}
	query += " ORDER BY date_posted DESC, id DESC"

	var jobs []models.Job
	if err := sqlx.SelectContext(ctx, r.client.DB(), &jobs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to find jobs: %w", err)
	}

	if len(jobs) == 0 {
		return nil, fmt.Errorf("%w: no jobs found", apperrors.ErrEmptyResult)
	}

	return jobs, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	var job models.Job
	err := sqlx.GetContext(ctx, r.client.DB(), &job, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: job %d", apperrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}

	return &job, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, fields sqlquery.Fields) (*models.Job, error) {
	set, err := sqlquery.BuildSetClause(fields, jobColumnMap, 1)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE jobs SET %s WHERE id = $%d RETURNING %s`,
		set.Clause, len(set.Args)+1, jobColumns)
	args := append(set.Args, id)

	var updated models.Job
	err = sqlx.GetContext(ctx, r.client.DB(), &updated, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: job %d", apperrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.client.DB().ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: job %d", apperrors.ErrNotFound, id)
	}

	return nil
}
