package repository

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joblyhq/jobly/companies/models"
	"github.com/joblyhq/jobly/internal/apperrors"
	"github.com/joblyhq/jobly/internal/database/postgres"
	"github.com/joblyhq/jobly/internal/database/sqlquery"
	platformconfig "github.com/joblyhq/jobly/internal/platform/config"
)

// TestPostgresRepository_Integration exercises the repository layer against a
// real database, bypassing the service layer. It runs in an isolated schema
// so repeated runs do not interfere with each other or with real data.
func TestPostgresRepository_Integration(t *testing.T) {
	if os.Getenv("RUN_DB_TESTS") != "1" {
		t.Skip("set RUN_DB_TESTS=1 to run database tests")
	}

	ctx := context.Background()

	client, err := postgres.NewClient(ctx, testDBConfig())
	require.NoError(t, err, "Failed to create postgres client")
	defer client.Close()

	const schema = "companies_repository_test"
	_, err = client.DB().ExecContext(ctx, fmt.Sprintf(`DROP SCHEMA IF EXISTS %s CASCADE`, schema))
	require.NoError(t, err, "Failed to drop leftover schema")
	_, err = client.DB().ExecContext(ctx, fmt.Sprintf(`CREATE SCHEMA %s`, schema))
	require.NoError(t, err, "Failed to create schema")
	defer client.DB().ExecContext(ctx, fmt.Sprintf(`DROP SCHEMA %s CASCADE`, schema))

	// The single pooled connection keeps the search_path session setting in
	// effect for every statement the test issues.
	_, err = client.DB().ExecContext(ctx, fmt.Sprintf(`SET search_path TO %s`, schema))
	require.NoError(t, err, "Failed to set search_path")

	_, err = client.DB().ExecContext(ctx, `
		CREATE TABLE companies (
			handle        TEXT PRIMARY KEY,
			name          TEXT NOT NULL UNIQUE,
			num_employees INTEGER,
			description   TEXT NOT NULL DEFAULT '',
			logo_url      TEXT NOT NULL DEFAULT ''
		);
		CREATE TABLE jobs (
			id             SERIAL PRIMARY KEY,
			title          TEXT NOT NULL,
			salary         DOUBLE PRECISION,
			equity         DOUBLE PRECISION,
			company_handle TEXT NOT NULL REFERENCES companies (handle) ON DELETE CASCADE,
			date_posted    TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	require.NoError(t, err, "Failed to apply schema")

	repo := NewPostgresRepository(client)

	employees := func(n int64) *int64 { return &n }
	description := func(s string) *string { return &s }

	t.Run("Create", func(t *testing.T) {
		created, err := repo.Create(ctx, &models.Company{
			Handle:       "acme",
			Name:         "Acme Corp",
			NumEmployees: employees(120),
			Description:  description("Anvils and rockets"),
		})
		require.NoError(t, err, "Failed to create company")
		require.Equal(t, "acme", created.Handle)
		require.NotNil(t, created.NumEmployees)
		require.Equal(t, int64(120), *created.NumEmployees)
	})

	t.Run("Create_DuplicateHandle", func(t *testing.T) {
		_, err := repo.Create(ctx, &models.Company{Handle: "acme", Name: "Other Name"})
		require.ErrorIs(t, err, apperrors.ErrAlreadyExists)
	})

	t.Run("FindMany_Filtered", func(t *testing.T) {
		_, err := repo.Create(ctx, &models.Company{
			Handle:       "tinyco",
			Name:         "Tiny Co",
			NumEmployees: employees(3),
		})
		require.NoError(t, err)

		companies, err := repo.FindMany(ctx, map[string]string{"minEmployees": "100"})
		require.NoError(t, err, "Failed to find companies")
		require.Len(t, companies, 1)
		require.Equal(t, "acme", companies[0].Handle)
	})

	t.Run("FindMany_ZeroMatchesIsEmptyResult", func(t *testing.T) {
		_, err := repo.FindMany(ctx, map[string]string{"nameLike": "no-such-company"})
		require.ErrorIs(t, err, apperrors.ErrEmptyResult)
	})

	t.Run("FindByHandle_NotFound", func(t *testing.T) {
		_, err := repo.FindByHandle(ctx, "ghost")
		require.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Update", func(t *testing.T) {
		updated, err := repo.Update(ctx, "acme", sqlquery.Fields{
			{Name: "description", Value: "Rockets only now"},
			{Name: "numEmployees", Value: float64(90)},
		})
		require.NoError(t, err, "Failed to update company")
		require.Equal(t, "Rockets only now", updated.Description)
		require.NotNil(t, updated.NumEmployees)
		require.Equal(t, int64(90), *updated.NumEmployees)
	})

	t.Run("Update_MissingRowIsNotFound", func(t *testing.T) {
		_, err := repo.Update(ctx, "ghost", sqlquery.Fields{
			{Name: "name", Value: "Ghost Inc"},
		})
		require.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("FindJobs", func(t *testing.T) {
		_, err := client.DB().ExecContext(ctx,
			`INSERT INTO jobs (title, salary, equity, company_handle) VALUES ($1, $2, $3, $4)`,
			"Engineer", 90000.0, 0.01, "acme")
		require.NoError(t, err)

		jobs, err := repo.FindJobs(ctx, "acme")
		require.NoError(t, err, "Failed to find jobs for company")
		require.Len(t, jobs, 1)
		require.Equal(t, "Engineer", jobs[0].Title)

		// A company with no postings yields an empty list, not an error.
		jobs, err = repo.FindJobs(ctx, "tinyco")
		require.NoError(t, err)
		require.Empty(t, jobs)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "tinyco"))
		_, err := repo.FindByHandle(ctx, "tinyco")
		require.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Delete_MissingRowIsNotFound", func(t *testing.T) {
		err := repo.Delete(ctx, "tinyco")
		require.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

// testDBConfig builds the connection settings from the same environment
// variables the server uses, pinned to a single pooled connection so session
// settings stick.
func testDBConfig() *platformconfig.PostgreSQLConfig {
	port := 5432
	if v := os.Getenv("DB_PORT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			port = parsed
		}
	}

	return &platformconfig.PostgreSQLConfig{
		Host:         envOrDefault("DB_HOST", "localhost"),
		Port:         port,
		Username:     envOrDefault("DB_USER", "postgres"),
		Password:     os.Getenv("DB_PASSWORD"),
		Database:     envOrDefault("DB_NAME", "jobly_test"),
		SSLMode:      envOrDefault("DB_SSL_MODE", "disable"),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
