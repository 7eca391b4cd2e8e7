package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/joblyhq/jobly/companies/models"
	"github.com/joblyhq/jobly/companies/repository"
	"github.com/joblyhq/jobly/internal/apperrors"
	"github.com/joblyhq/jobly/internal/database/sqlquery"
)

// companyService implements the CompanyService interface.
type companyService struct {
	repo repository.CompanyRepository
}

// NewCompanyService creates a new instance of the company service.
func NewCompanyService(repo repository.CompanyRepository) CompanyService {
	return &companyService{repo: repo}
}

func (s *companyService) CreateCompany(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error) {
	company := &models.Company{
		Handle:       req.Handle,
		Name:         req.Name,
		NumEmployees: req.NumEmployees,
		Description:  req.Description,
		LogoURL:      req.LogoURL,
	}
	return s.repo.Create(ctx, company)
}

func (s *companyService) ListCompanies(ctx context.Context, params map[string]string) ([]models.Company, error) {
	// Cross-field validation happens here, before the filter compiler runs:
	// the compiler has no notion of which parameter pairs are related.
	if err := validateEmployeeRange(params); err != nil {
		return nil, err
	}
	return s.repo.FindMany(ctx, params)
}

func (s *companyService) GetCompany(ctx context.Context, handle string) (*models.CompanyDetail, error) {
	company, err := s.repo.FindByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}

	jobs, err := s.repo.FindJobs(ctx, handle)
	if err != nil {
		return nil, err
	}

	return &models.CompanyDetail{Company: *company, Jobs: jobs}, nil
}

func (s *companyService) UpdateCompany(ctx context.Context, handle string, fields sqlquery.Fields) (*models.Company, error) {
	return s.repo.Update(ctx, handle, fields)
}

func (s *companyService) DeleteCompany(ctx context.Context, handle string) error {
	return s.repo.Delete(ctx, handle)
}

// validateEmployeeRange rejects a lower employee bound that exceeds the
// upper bound. Non-numeric values are left for the filter compiler, which
// owns the coercion rule and its error message.
func validateEmployeeRange(params map[string]string) error {
	minRaw, hasMin := params["minEmployees"]
	maxRaw, hasMax := params["maxEmployees"]
	if !hasMin || !hasMax {
		return nil
	}

	minVal, errMin := strconv.ParseFloat(minRaw, 64)
	maxVal, errMax := strconv.ParseFloat(maxRaw, 64)
	if errMin != nil || errMax != nil {
		return nil
	}

	if minVal > maxVal {
		return fmt.Errorf("%w: minEmployees cannot exceed maxEmployees", apperrors.ErrInvalidInput)
	}
	return nil
}
