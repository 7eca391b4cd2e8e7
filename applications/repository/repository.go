package repository

import (
	"context"

	"github.com/joblyhq/jobly/applications/models"
)

// ApplicationRepository defines the interface for application data access.
type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) (*models.Application, error)
	FindMany(ctx context.Context, params map[string]string) ([]models.Application, error)
	FindByUser(ctx context.Context, username string) ([]models.Application, error)
	Delete(ctx context.Context, username string, jobID int64) error
}
