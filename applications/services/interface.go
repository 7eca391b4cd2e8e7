package services

import (
	"context"

	"github.com/joblyhq/jobly/applications/models"
)

// ApplicationService defines the business logic interface for job applications.
type ApplicationService interface {
	Apply(ctx context.Context, username string, jobID int64) (*models.Application, error)
	ListApplications(ctx context.Context, params map[string]string) ([]models.Application, error)
	ListUserApplications(ctx context.Context, username string) ([]models.Application, error)
	Withdraw(ctx context.Context, username string, jobID int64) error
}
