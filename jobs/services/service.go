package services

import (
	"context"

	"github.com/joblyhq/jobly/internal/database/sqlquery"
	"github.com/joblyhq/jobly/jobs/models"
	"github.com/joblyhq/jobly/jobs/repository"
)

// jobService implements the JobService interface.
type jobService struct {
	repo repository.JobRepository
}

// NewJobService creates a new instance of the job service.
func NewJobService(repo repository.JobRepository) JobService {
	return &jobService{repo: repo}
}

func (s *jobService) CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{
		Title:         req.Title,
		Salary:        req.Salary,
		Equity:        req.Equity,
		CompanyHandle: req.CompanyHandle,
	}
	return s.repo.Create(ctx, job)
}

func (s *jobService) ListJobs(ctx context.Context, params map[string]string) ([]models.Job, error) {
	return s.repo.FindMany(ctx, params)
}

func (s *jobService) GetJob(ctx context.Context, id int64) (*models.Job, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *jobService) UpdateJob(ctx context.Context, id int64, fields sqlquery.Fields) (*models.Job, error) {
	return s.repo.Update(ctx, id, fields)
}

func (s *jobService) DeleteJob(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
