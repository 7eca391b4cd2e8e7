package jobs

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joblyhq/jobly/internal/middleware/authjwt"
	"github.com/joblyhq/jobly/internal/middleware/authrole"
	platformconfig "github.com/joblyhq/jobly/internal/platform/config"
	"github.com/joblyhq/jobly/jobs/handlers"
)

// RegisterRoutes is the single entry point for setting up job routes.
// Reads require an authenticated caller; mutations require admin.
func RegisterRoutes(app *fiber.App, h *handlers.JobHandler, cfg *platformconfig.Config) {
	jwtMiddleware := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret})

	group := app.Group("/jobs", jwtMiddleware)

	group.Get("/", h.ListJobs)
	group.Get("/:id", h.GetJob)

	group.Post("/", authrole.RequireAdmin(), h.CreateJob)
	group.Patch("/:id", authrole.RequireAdmin(), h.UpdateJob)
	group.Delete("/:id", authrole.RequireAdmin(), h.DeleteJob)
}
