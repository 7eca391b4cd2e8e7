package authjwt

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joblyhq/jobly/internal/types"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func testApp() *fiber.App {
	app := fiber.New()
	app.Get("/", New(Config{Secret: testSecret}), func(c *fiber.Ctx) error {
		user := c.Locals(types.UserCtxName).(types.UserContext)
		return c.JSON(fiber.Map{"username": user.Username, "isAdmin": user.IsAdmin})
	})
	return app
}

func TestMiddleware_MissingTokenIs401(t *testing.T) {
	app := testApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddleware_ValidTokenStoresUserContext(t *testing.T) {
	app := testApp()
	token := signToken(t, testSecret, jwt.MapClaims{
		"username": "u1",
		"isAdmin":  true,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(types.HeaderAuthorization, types.BearerPrefix+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddleware_WrongSecretIs401(t *testing.T) {
	app := testApp()
	token := signToken(t, "other-secret", jwt.MapClaims{
		"username": "u1",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(types.HeaderAuthorization, types.BearerPrefix+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestValidateToken_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"username": "u1",
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})

	_, err := ValidateToken(token, testSecret)
	assert.Error(t, err)
}

func TestValidateToken_MissingUsernameClaim(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := ValidateToken(token, testSecret)
	assert.Error(t, err)
}

func TestValidateToken_AdminOnlyWithExplicitClaim(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"username": "u1",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	user, err := ValidateToken(token, testSecret)
	require.NoError(t, err)
	assert.False(t, user.IsAdmin)
	assert.Equal(t, types.UserRole, user.SystemRole())
}
