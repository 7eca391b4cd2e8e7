package services

import (
	"context"

	"github.com/joblyhq/jobly/applications/models"
	"github.com/joblyhq/jobly/applications/repository"
)

// applicationService implements the ApplicationService interface.
type applicationService struct {
	repo repository.ApplicationRepository
}

// NewApplicationService creates a new instance of the application service.
func NewApplicationService(repo repository.ApplicationRepository) ApplicationService {
	return &applicationService{repo: repo}
}

func (s *applicationService) Apply(ctx context.Context, username string, jobID int64) (*models.Application, error) {
	application := &models.Application{
		Username: username,
		JobID:    jobID,
		State:    models.StateApplied,
	}
	return s.repo.Create(ctx, application)
}

func (s *applicationService) ListApplications(ctx context.Context, params map[string]string) ([]models.Application, error) {
	return s.repo.FindMany(ctx, params)
}

func (s *applicationService) ListUserApplications(ctx context.Context, username string) ([]models.Application, error) {
	return s.repo.FindByUser(ctx, username)
}

func (s *applicationService) Withdraw(ctx context.Context, username string, jobID int64) error {
	return s.repo.Delete(ctx, username, jobID)
}
