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
	"github.com/joblyhq/jobly/users/models"
)

const userColumns = `username, password, first_name, last_name, email, photo_url, is_admin`

// userColumnMap translates logical field names to physical columns for
// partial updates.
var userColumnMap = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
	"photoUrl":  "photo_url",
	"isAdmin":   "is_admin",
}

var userFilterSpec = sqlquery.FilterSpec{
	{Param: "usernameLike", Op: sqlquery.OpContains, Column: "username"},
	{Param: "emailLike", Op: sqlquery.OpContains, Column: "email"},
}

// postgresRepository implements UserRepository using raw SQL queries.
type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a new PostgreSQL repository for users.
func NewPostgresRepository(client *postgres.Client) UserRepository {
	return &postgresRepository{client: client}
}

func (r *postgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (username, password, first_name, last_name, email, photo_url, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns

	var created models.User
	err := sqlx.GetContext(ctx, r.client.DB(), &created, query,
		user.Username, user.Password, user.FirstName, user.LastName,
		user.Email, user.PhotoURL, user.IsAdmin)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: user %q", apperrors.ErrAlreadyExists, user.Username)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) FindMany(ctx context.Context, params map[string]string) ([]models.User, error) {
	where, err := userFilterSpec.BuildWhereClause(params)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + userColumns + ` FROM users`
	var args []interface{}
	if where != nil {
		query += " WHERE " + where.Clause
		args = where.Args
	}
	query += " ORDER BY username"

	var users []models.User
	if err := sqlx.SelectContext(ctx, r.client.DB(), &users, query, args...); err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}

	if len(users) == 0 {
		return nil, fmt.Errorf("%w: no users found", apperrors.ErrEmptyResult)
	}

	return users, nil
}

func (r *postgresRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	var user models.User
	err := sqlx.GetContext(ctx, r.client.DB(), &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: user %q", apperrors.ErrNotFound, username)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

func (r *postgresRepository) Update(ctx context.Context, username string, fields sqlquery.Fields) (*models.User, error) {
	set, err := sqlquery.BuildSetClause(fields, userColumnMap, 1)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE users SET %s WHERE username = $%d RETURNING %s`,
		set.Clause, len(set.Args)+1, userColumns)
	args := append(set.Args, username)

	var updated models.User
	err = sqlx.GetContext(ctx, r.client.DB(), &updated, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: user %q", apperrors.ErrNotFound, username)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, username string) error {
	result, err := r.client.DB().ExecContext(ctx, `DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: user %q", apperrors.ErrNotFound, username)
	}

	return nil
}

func (r *postgresRepository) FindAppliedJobIDs(ctx context.Context, username string) ([]int64, error) {
	query := `
		SELECT job_id
		FROM applications
		WHERE username = $1
		ORDER BY created_at DESC, job_id DESC`

	jobIDs := []int64{}
	if err := sqlx.SelectContext(ctx, r.client.DB(), &jobIDs, query, username); err != nil {
		return nil, fmt.Errorf("failed to find applications for user: %w", err)
	}

	return jobIDs, nil
}
