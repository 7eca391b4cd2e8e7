package services

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/joblyhq/jobly/internal/database/sqlquery"
	"github.com/joblyhq/jobly/users/models"
	"github.com/joblyhq/jobly/users/repository"
)

// userService implements the UserService interface.
type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a new instance of the user service.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:  req.Username,
		Password:  string(hashed),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		PhotoURL:  req.PhotoURL,
		IsAdmin:   req.IsAdmin,
	}
	return s.repo.Create(ctx, user)
}

func (s *userService) ListUsers(ctx context.Context, params map[string]string) ([]models.User, error) {
	return s.repo.FindMany(ctx, params)
}

func (s *userService) GetUser(ctx context.Context, username string) (*models.UserDetail, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	jobs, err := s.repo.FindAppliedJobIDs(ctx, username)
	if err != nil {
		return nil, err
	}

	return &models.UserDetail{User: *user, Jobs: jobs}, nil
}

func (s *userService) UpdateUser(ctx context.Context, username string, fields sqlquery.Fields) (*models.User, error) {
	// A plaintext password in the payload is replaced by its hash in place,
	// keeping the field's position so placeholders still align.
	if v, ok := fields.Get("password"); ok {
		plain, isString := v.(string)
		if !isString {
			plain = fmt.Sprintf("%v", v)
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		for i := range fields {
			if fields[i].Name == "password" {
				fields[i].Value = string(hashed)
			}
		}
	}

	return s.repo.Update(ctx, username, fields)
}

func (s *userService) DeleteUser(ctx context.Context, username string) error {
	return s.repo.Delete(ctx, username)
}
