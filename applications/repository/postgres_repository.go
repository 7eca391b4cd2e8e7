package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/joblyhq/jobly/applications/models"
	"github.com/joblyhq/jobly/internal/apperrors"
	"github.com/joblyhq/jobly/internal/database/postgres"
	"github.com/joblyhq/jobly/internal/database/sqlquery"
)

const applicationColumns = `username, job_id, state, created_at`

var applicationFilterSpec = sqlquery.FilterSpec{
	{Param: "stateLike", Op: sqlquery.OpContains, Column: "state"},
}

// postgresRepository implements ApplicationRepository using raw SQL queries.
type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a new PostgreSQL repository for applications.
func NewPostgresRepository(client *postgres.Client) ApplicationRepository {
	return &postgresRepository{client: client}
}

func (r *postgresRepository) Create(ctx context.Context, application *models.Application) (*models.Application, error) {
	query := `
		INSERT INTO applications (username, job_id, state)
		VALUES ($1, $2, $3)
		RETURNING ` + applicationColumns

	var created models.Application
	err := sqlx.GetContext(ctx, r.client.DB(), &created, query,
		application.Username, application.JobID, application.State)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: user %q already applied to job %d",
				apperrors.ErrAlreadyExists, application.Username, application.JobID)
		}
		if postgres.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: user %q or job %d does not exist",
				apperrors.ErrReferenceNotFound, application.Username, application.JobID)
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) FindMany(ctx context.Context, params map[string]string) ([]models.Application, error) {
	where, err := applicationFilterSpec.BuildWhereClause(params)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + applicationColumns + ` FROM applications`
	var args []interface{}
	if where != nil {
		query += " WHERE " + where.Clause
		args = where.Args
	}
	query += " ORDER BY created_at DESC, username, job_id"

	var applications []models.Application
	if err := sqlx.SelectContext(ctx, r.client.DB(), &applications, query, args...); err != nil {
		return nil, fmt.Errorf("failed to find applications: %w", err)
	}

	if len(applications) == 0 {
		return nil, fmt.Errorf("%w: no applications found", apperrors.ErrEmptyResult)
	}

	return applications, nil
}

func (r *postgresRepository) FindByUser(ctx context.Context, username string) ([]models.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE username = $1
		ORDER BY created_at DESC, job_id DESC`

	applications := []models.Application{}
	if err := sqlx.SelectContext(ctx, r.client.DB(), &applications, query, username); err != nil {
		return nil, fmt.Errorf("failed to find applications for user: %w", err)
	}

	return applications, nil
}

func (r *postgresRepository) Delete(ctx context.Context, username string, jobID int64) error {
	result, err := r.client.DB().ExecContext(ctx,
		`DELETE FROM applications WHERE username = $1 AND job_id = $2`, username, jobID)
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: application by %q for job %d", apperrors.ErrNotFound, username, jobID)
	}

	return nil
}
