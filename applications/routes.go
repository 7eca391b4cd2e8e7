package applications

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joblyhq/jobly/applications/handlers"
	"github.com/joblyhq/jobly/internal/middleware/authjwt"
	"github.com/joblyhq/jobly/internal/middleware/authrole"
	platformconfig "github.com/joblyhq/jobly/internal/platform/config"
)

// RegisterRoutes is the single entry point for setting up application routes.
// Applying and withdrawing are scoped to the admin or the account owner;
// the flat listing is admin only.
func RegisterRoutes(app *fiber.App, h *handlers.ApplicationHandler, cfg *platformconfig.Config) {
	jwtMiddleware := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret})
	adminOrSelf := authrole.RequireAdminOrSelf("username")

	app.Post("/users/:username/jobs/:id", jwtMiddleware, adminOrSelf, h.Apply)
	app.Delete("/users/:username/jobs/:id", jwtMiddleware, adminOrSelf, h.Withdraw)
	app.Get("/users/:username/applications", jwtMiddleware, adminOrSelf, h.ListUserApplications)

	app.Get("/applications", jwtMiddleware, authrole.RequireAdmin(), h.ListApplications)
}
