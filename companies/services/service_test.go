package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/joblyhq/jobly/companies/models"
	"github.com/joblyhq/jobly/internal/apperrors"
	"github.com/joblyhq/jobly/internal/database/sqlquery"
)

func TestCreateCompany(t *testing.T) {
	repo := new(MockCompanyRepository)
	svc := NewCompanyService(repo)

	req := &models.CreateCompanyRequest{Handle: "acme", Name: "Acme Corp"}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Company) bool {
		return c.Handle == "acme" && c.Name == "Acme Corp"
	})).Return(&models.Company{Handle: "acme", Name: "Acme Corp"}, nil)

	company, err := svc.CreateCompany(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "acme", company.Handle)
	repo.AssertExpectations(t)
}

func TestListCompanies_RangeValidationRunsBeforeRepository(t *testing.T) {
	repo := new(MockCompanyRepository)
	svc := NewCompanyService(repo)

	_, err := svc.ListCompanies(context.Background(), map[string]string{
		"minEmployees": "500",
		"maxEmployees": "10",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	repo.AssertNotCalled(t, "FindMany", mock.Anything, mock.Anything)
}

func TestListCompanies_ValidRangePassesThrough(t *testing.T) {
	repo := new(MockCompanyRepository)
	svc := NewCompanyService(repo)

	params := map[string]string{"minEmployees": "10", "maxEmployees": "500"}
	repo.On("FindMany", mock.Anything, params).
		Return([]models.Company{{Handle: "acme"}}, nil)

	companies, err := svc.ListCompanies(context.Background(), params)
	require.NoError(t, err)
	assert.Len(t, companies, 1)
}

func TestGetCompany_AggregatesJobs(t *testing.T) {
	repo := new(MockCompanyRepository)
	svc := NewCompanyService(repo)

	repo.On("FindByHandle", mock.Anything, "acme").
		Return(&models.Company{Handle: "acme", Name: "Acme Corp"}, nil)
	repo.On("FindJobs", mock.Anything, "acme").
		Return([]models.JobSummary{{ID: 1, Title: "Engineer"}}, nil)

	detail, err := svc.GetCompany(context.Background(), "acme")
	require.NoError(t, err)
	assert.Equal(t, "acme", detail.Handle)
	require.Len(t, detail.Jobs, 1)
	assert.Equal(t, "Engineer", detail.Jobs[0].Title)
}

func TestGetCompany_NotFoundPropagates(t *testing.T) {
	repo := new(MockCompanyRepository)
	svc := NewCompanyService(repo)

	repo.On("FindByHandle", mock.Anything, "nope").
		Return(nil, apperrors.ErrNotFound)

	_, err := svc.GetCompany(context.Background(), "nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	repo.AssertNotCalled(t, "FindJobs", mock.Anything, mock.Anything)
}

func TestUpdateCompany_PassesFieldsThrough(t *testing.T) {
	repo := new(MockCompanyRepository)
	svc := NewCompanyService(repo)

	fields := sqlquery.Fields{{Name: "name", Value: "New Name"}}
	repo.On("Update", mock.Anything, "acme", fields).
		Return(&models.Company{Handle: "acme", Name: "New Name"}, nil)

	company, err := svc.UpdateCompany(context.Background(), "acme", fields)
	require.NoError(t, err)
	assert.Equal(t, "New Name", company.Name)
}
