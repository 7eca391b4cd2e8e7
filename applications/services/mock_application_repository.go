package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/joblyhq/jobly/applications/models"
)

// MockApplicationRepository is a mock implementation of ApplicationRepository
// for testing.
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, application *models.Application) (*models.Application, error) {
	args := m.Called(ctx, application)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationRepository) FindMany(ctx context.Context, params map[string]string) ([]models.Application, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Application), args.Error(1)
}

func (m *MockApplicationRepository) FindByUser(ctx context.Context, username string) ([]models.Application, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Application), args.Error(1)
}

func (m *MockApplicationRepository) Delete(ctx context.Context, username string, jobID int64) error {
	args := m.Called(ctx, username, jobID)
	return args.Error(0)
}
