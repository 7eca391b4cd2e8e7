package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/joblyhq/jobly/auth/models"
	"github.com/joblyhq/jobly/internal/apperrors"
	platformconfig "github.com/joblyhq/jobly/internal/platform/config"
	usermodels "github.com/joblyhq/jobly/users/models"
	userrepository "github.com/joblyhq/jobly/users/repository"
)

// authService implements the AuthService interface on top of the user store.
type authService struct {
	users     userrepository.UserRepository
	secret    string
	expiresIn time.Duration
}

// NewAuthService creates a new instance of the auth service.
func NewAuthService(users userrepository.UserRepository, cfg *platformconfig.Config) AuthService {
	return &authService{
		users:     users,
		secret:    cfg.JWT.Secret,
		expiresIn: cfg.JWT.ExpiresIn,
	}
}

func (s *authService) Register(ctx context.Context, req *usermodels.CreateUserRequest) (*models.TokenResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Self-registration never grants admin, whatever the payload claims.
	user := &usermodels.User{
		Username:  req.Username,
		Password:  string(hashed),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		PhotoURL:  req.PhotoURL,
		IsAdmin:   false,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return s.signToken(created)
}

func (s *authService) Login(ctx context.Context, username, password string) (*models.TokenResponse, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		// An unknown username and a wrong password are indistinguishable to
		// the caller.
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	return s.signToken(user)
}

func (s *authService) signToken(user *usermodels.User) (*models.TokenResponse, error) {
	claims := jwt.MapClaims{
		"username": user.Username,
		"isAdmin":  user.IsAdmin,
		"exp":      time.Now().Add(s.expiresIn).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &models.TokenResponse{Token: signed}, nil
}
