package users

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joblyhq/jobly/internal/middleware/authjwt"
	"github.com/joblyhq/jobly/internal/middleware/authrole"
	platformconfig "github.com/joblyhq/jobly/internal/platform/config"
	"github.com/joblyhq/jobly/users/handlers"
)

// RegisterRoutes is the single entry point for setting up user routes.
// Creation and listing require admin; the per-user routes allow the admin or
// the account owner.
func RegisterRoutes(app *fiber.App, h *handlers.UserHandler, cfg *platformconfig.Config) {
	jwtMiddleware := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret})
	adminOrSelf := authrole.RequireAdminOrSelf("username")

	group := app.Group("/users", jwtMiddleware)

	group.Post("/", authrole.RequireAdmin(), h.CreateUser)
	group.Get("/", authrole.RequireAdmin(), h.ListUsers)

	group.Get("/:username", adminOrSelf, h.GetUser)
	group.Patch("/:username", adminOrSelf, h.UpdateUser)
	group.Delete("/:username", adminOrSelf, h.DeleteUser)
}
