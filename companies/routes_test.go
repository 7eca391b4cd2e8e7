package companies

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joblyhq/jobly/companies/handlers"
	"github.com/joblyhq/jobly/companies/models"
	"github.com/joblyhq/jobly/internal/database/sqlquery"
	platformconfig "github.com/joblyhq/jobly/internal/platform/config"
)

const routesTestSecret = "routes-test-secret"

// stubCompanyService returns canned data so the tests exercise only the
// route gates in front of it.
type stubCompanyService struct{}

func (stubCompanyService) CreateCompany(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error) {
	return &models.Company{Handle: req.Handle, Name: req.Name}, nil
}

func (stubCompanyService) ListCompanies(ctx context.Context, params map[string]string) ([]models.Company, error) {
	return []models.Company{{Handle: "acme", Name: "Acme"}}, nil
}

func (stubCompanyService) GetCompany(ctx context.Context, handle string) (*models.CompanyDetail, error) {
	return &models.CompanyDetail{Company: models.Company{Handle: handle, Name: "Acme"}}, nil
}

func (stubCompanyService) UpdateCompany(ctx context.Context, handle string, fields sqlquery.Fields) (*models.Company, error) {
	return &models.Company{Handle: handle}, nil
}

func (stubCompanyService) DeleteCompany(ctx context.Context, handle string) error {
	return nil
}

func setupRoutes(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	cfg := &platformconfig.Config{
		JWT: platformconfig.JWTConfig{Secret: routesTestSecret},
	}
	RegisterRoutes(app, handlers.NewCompanyHandler(stubCompanyService{}), cfg)
	return app
}

func signToken(t *testing.T, username string, isAdmin bool) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"isAdmin":  isAdmin,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(routesTestSecret))
	require.NoError(t, err)
	return signed
}

func TestCompanyRoutes_AnonymousReadIs401(t *testing.T) {
	app := setupRoutes(t)

	req := httptest.NewRequest("GET", "/companies/acme", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest("GET", "/companies", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCompanyRoutes_AuthenticatedReadPasses(t *testing.T) {
	app := setupRoutes(t)
	token := signToken(t, "hueter", false)

	req := httptest.NewRequest("GET", "/companies/acme", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestCompanyRoutes_NonAdminMutationIs403(t *testing.T) {
	app := setupRoutes(t)
	token := signToken(t, "hueter", false)

	req := httptest.NewRequest("DELETE", "/companies/acme", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestCompanyRoutes_AdminMutationPasses(t *testing.T) {
	app := setupRoutes(t)
	token := signToken(t, "admin", true)

	req := httptest.NewRequest("DELETE", "/companies/acme", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
