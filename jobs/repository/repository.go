package repository

import (
	"context"

	"github.com/joblyhq/jobly/internal/database/sqlquery"
	"github.com/joblyhq/jobly/jobs/models"
)

// JobRepository defines job-specific database operations.
type JobRepository interface {
	// Create inserts a new job and returns the persisted row including its
	// generated id. A missing company reference is ReferenceNotFound.
	Create(ctx context.Context, job *models.Job) (*models.Job, error)

	// FindMany retrieves jobs matching the supplied filter parameters.
	// Zero matching rows is an error, filtered or not.
	FindMany(ctx context.Context, params map[string]string) ([]models.Job, error)

	// FindByID retrieves a single job.
	FindByID(ctx context.Context, id int64) (*models.Job, error)

	// Update applies a partial update and returns the updated row.
	Update(ctx context.Context, id int64, fields sqlquery.Fields) (*models.Job, error)

	// Delete removes a job by id.
	Delete(ctx context.Context, id int64) error
}
