package services

import (
	"context"

	"github.com/joblyhq/jobly/internal/database/sqlquery"
	"github.com/joblyhq/jobly/users/models"
)

// UserService defines the business logic interface for user operations.
type UserService interface {
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	ListUsers(ctx context.Context, params map[string]string) ([]models.User, error)
	GetUser(ctx context.Context, username string) (*models.UserDetail, error)
	UpdateUser(ctx context.Context, username string, fields sqlquery.Fields) (*models.User, error)
	DeleteUser(ctx context.Context, username string) error
}
