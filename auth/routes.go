package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joblyhq/jobly/auth/handlers"
)

// RegisterRoutes is the single entry point for setting up auth routes.
// Both routes are public.
func RegisterRoutes(app *fiber.App, h *handlers.AuthHandler) {
	group := app.Group("/auth")

	group.Post("/register", h.Register)
	group.Post("/token", h.Login)
}
