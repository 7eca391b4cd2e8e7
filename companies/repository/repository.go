package repository

import (
	"context"

	"github.com/joblyhq/jobly/companies/models"
	"github.com/joblyhq/jobly/internal/database/sqlquery"
)

// CompanyRepository defines company-specific database operations. Filter
// parameters arrive as the raw query mapping; the repository owns the
// FilterSpec that interprets them.
type CompanyRepository interface {
	// Create inserts a new company and returns the persisted row.
	Create(ctx context.Context, company *models.Company) (*models.Company, error)

	// FindMany retrieves companies matching the supplied filter parameters.
	// Zero matching rows is an error, filtered or not.
	FindMany(ctx context.Context, params map[string]string) ([]models.Company, error)

	// FindByHandle retrieves a single company.
	FindByHandle(ctx context.Context, handle string) (*models.Company, error)

	// Update applies a partial update and returns the updated row.
	Update(ctx context.Context, handle string, fields sqlquery.Fields) (*models.Company, error)

	// Delete removes a company by handle.
	Delete(ctx context.Context, handle string) error

	// FindJobs retrieves the job postings belonging to a company, newest
	// first. An empty slice is fine here; the aggregate exists either way.
	FindJobs(ctx context.Context, handle string) ([]models.JobSummary, error)
}
