package services

import (
	"context"

	"github.com/joblyhq/jobly/companies/models"
	"github.com/joblyhq/jobly/internal/database/sqlquery"
)

// CompanyService defines the business operations for companies.
type CompanyService interface {
	CreateCompany(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error)
	ListCompanies(ctx context.Context, params map[string]string) ([]models.Company, error)
	GetCompany(ctx context.Context, handle string) (*models.CompanyDetail, error)
	UpdateCompany(ctx context.Context, handle string, fields sqlquery.Fields) (*models.Company, error)
	DeleteCompany(ctx context.Context, handle string) error
}
