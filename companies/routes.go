package companies

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joblyhq/jobly/companies/handlers"
	"github.com/joblyhq/jobly/internal/middleware/authjwt"
	"github.com/joblyhq/jobly/internal/middleware/authrole"
	platformconfig "github.com/joblyhq/jobly/internal/platform/config"
)

// RegisterRoutes is the single entry point for setting up company routes.
// Reads require an authenticated caller; mutations require admin. The gates
// run strictly before the handlers, so a rejected caller never reaches a
// repository.
func RegisterRoutes(app *fiber.App, h *handlers.CompanyHandler, cfg *platformconfig.Config) {
	jwtMiddleware := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret})

	group := app.Group("/companies", jwtMiddleware)

	group.Get("/", h.ListCompanies)
	group.Get("/:handle", h.GetCompany)

	group.Post("/", authrole.RequireAdmin(), h.CreateCompany)
	group.Patch("/:handle", authrole.RequireAdmin(), h.UpdateCompany)
	group.Delete("/:handle", authrole.RequireAdmin(), h.DeleteCompany)
}
