package requestid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofrs/uuid"
)

const (
	// HeaderRequestID is the HTTP header name for the request ID.
	HeaderRequestID = "X-Request-ID"
	// ContextKeyRequestID is the Locals key the request ID is stored under.
	ContextKeyRequestID = "request_id"
)

// New creates a middleware that reuses an inbound X-Request-ID header or
// generates a new one.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			id, err := uuid.NewV4()
			if err != nil {
				id, _ = uuid.NewV4()
			}
			requestID = id.String()
		}

		c.Locals(ContextKeyRequestID, requestID)
		c.Set(HeaderRequestID, requestID)
		return c.Next()
	}
}

// GetRequestID retrieves the request ID from the fiber context.
func GetRequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(ContextKeyRequestID).(string); ok {
		return id
	}
	return ""
}
