package services

import (
	"context"

	"github.com/joblyhq/jobly/internal/database/sqlquery"
	"github.com/joblyhq/jobly/jobs/models"
)

// JobService defines the business operations for jobs.
type JobService interface {
	CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error)
	ListJobs(ctx context.Context, params map[string]string) ([]models.Job, error)
	GetJob(ctx context.Context, id int64) (*models.Job, error)
	UpdateJob(ctx context.Context, id int64, fields sqlquery.Fields) (*models.Job, error)
	DeleteJob(ctx context.Context, id int64) error
}
