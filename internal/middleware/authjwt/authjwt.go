package authjwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/joblyhq/jobly/internal/apperrors"
	"github.com/joblyhq/jobly/internal/types"
)

// Config defines the config for the JWT middleware.
type Config struct {
	// Secret is the HMAC key tokens are signed with.
	Secret string
	// UserCtxName is the Locals key to store the UserContext under.
	// Defaults to types.UserCtxName.
	UserCtxName string
}

// New creates the middleware that requires an authenticated caller. It reads
// a bearer token from the Authorization header, validates it, and stores the
// resulting UserContext in Locals. A missing or invalid token short-circuits
// with 401 before any handler runs.
func New(cfg Config) fiber.Handler {
	userKey := cfg.UserCtxName
	if userKey == "" {
		userKey = types.UserCtxName
	}

	return func(c *fiber.Ctx) error {
		tokenString := tokenFromHeader(c)
		if tokenString == "" {
			return apperrors.HandleServiceError(c,
				fmt.Errorf("%w: missing or invalid bearer token", apperrors.ErrUnauthorized))
		}

		userCtx, err := ValidateToken(tokenString, cfg.Secret)
		if err != nil {
			return apperrors.HandleServiceError(c,
				fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err))
		}

		c.Locals(userKey, userCtx)
		return c.Next()
	}
}

func tokenFromHeader(c *fiber.Ctx) string {
	authHeader := c.Get(types.HeaderAuthorization)
	if authHeader == "" || !strings.HasPrefix(authHeader, types.BearerPrefix) {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}

// ValidateToken validates a JWT and returns the UserContext if valid. It is
// a pure validation function that does not write to the response, so the
// auth service tests can exercise it directly.
func ValidateToken(tokenString, secret string) (types.UserContext, error) {
	var userCtx types.UserContext

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Enforce the expected signing algorithm.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return userCtx, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return userCtx, errors.New("invalid token")
	}

	if exp, ok := claims["exp"].(float64); ok {
		if int64(exp) < time.Now().Unix() {
			return userCtx, errors.New("token has expired")
		}
	}

	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return userCtx, errors.New("missing or invalid username in claim")
	}
	userCtx.Username = username

	// A caller is admin only if the credential explicitly carries the claim.
	if isAdmin, ok := claims["isAdmin"].(bool); ok {
		userCtx.IsAdmin = isAdmin
	}

	return userCtx, nil
}
