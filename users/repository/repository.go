package repository

import (
	"context"

	"github.com/joblyhq/jobly/internal/database/sqlquery"
	"github.com/joblyhq/jobly/users/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindMany(ctx context.Context, params map[string]string) ([]models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, username string, fields sqlquery.Fields) (*models.User, error)
	Delete(ctx context.Context, username string) error
	FindAppliedJobIDs(ctx context.Context, username string) ([]int64, error)
}
