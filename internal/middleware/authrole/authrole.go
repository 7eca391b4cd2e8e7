package authrole

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/joblyhq/jobly/internal/apperrors"
	"github.com/joblyhq/jobly/internal/types"
)

// Config defines the config for the role gate middleware.
type Config struct {
	// UserCtxName is the Locals key the UserContext is stored under.
	// Defaults to types.UserCtxName.
	UserCtxName string
	// SelfParam names a route parameter; when set, a caller whose username
	// equals that parameter passes the gate even without the admin role.
	SelfParam string
}

// RequireAdmin gates a route so only admin callers reach the handler.
func RequireAdmin() fiber.Handler {
	return New(Config{})
}

// RequireAdminOrSelf gates a route so only admins or the user named by the
// route parameter reach the handler.
func RequireAdminOrSelf(param string) fiber.Handler {
	return New(Config{SelfParam: param})
}

// New creates a role gate. It runs after the JWT middleware and evaluates
// strictly before the handler, so a failed gate never reaches a repository.
func New(cfg Config) fiber.Handler {
	userKey := cfg.UserCtxName
	if userKey == "" {
		userKey = types.UserCtxName
	}

	return func(c *fiber.Ctx) error {
		user, ok := c.Locals(userKey).(types.UserContext)
		if !ok {
			return apperrors.HandleServiceError(c,
				fmt.Errorf("%w: missing user context", apperrors.ErrUnauthorized))
		}

		if user.IsAdmin {
			return c.Next()
		}

		if cfg.SelfParam != "" && c.Params(cfg.SelfParam) == user.Username {
			return c.Next()
		}

		return apperrors.HandleServiceError(c,
			fmt.Errorf("%w: admin access required", apperrors.ErrForbidden))
	}
}
