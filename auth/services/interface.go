package services

import (
	"context"

	"github.com/joblyhq/jobly/auth/models"
	usermodels "github.com/joblyhq/jobly/users/models"
)

// AuthService defines the business logic interface for authentication.
type AuthService interface {
	Register(ctx context.Context, req *usermodels.CreateUserRequest) (*models.TokenResponse, error)
	Login(ctx context.Context, username, password string) (*models.TokenResponse, error)
}
