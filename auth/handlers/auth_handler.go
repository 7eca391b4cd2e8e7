package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/joblyhq/jobly/auth/models"
	"github.com/joblyhq/jobly/auth/services"
	"github.com/joblyhq/jobly/auth/validation"
	"github.com/joblyhq/jobly/internal/apperrors"
	usermodels "github.com/joblyhq/jobly/users/models"
)

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	authService      services.AuthService
	minPasswordScore int
}

// NewAuthHandler creates a new AuthHandler with injected dependencies.
func NewAuthHandler(authService services.AuthService, minPasswordScore int) *AuthHandler {
	return &AuthHandler{authService: authService, minPasswordScore: minPasswordScore}
}

// Register handles self-service account creation and returns a token.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req usermodels.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.HandleValidationError(c, "Invalid request body")
	}

	if err := validation.ValidateRegisterRequest(&req, h.minPasswordScore); err != nil {
		return apperrors.HandleValidationError(c, err.Error())
	}

	token, err := h.authService.Register(c.Context(), &req)
	if err != nil {
		return apperrors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(token)
}

// Login handles credential exchange for a token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.HandleValidationError(c, "Invalid request body")
	}

	if err := validation.ValidateLoginRequest(&req); err != nil {
		return apperrors.HandleValidationError(c, err.Error())
	}

	token, err := h.authService.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return apperrors.HandleServiceError(c, err)
	}

	return c.JSON(token)
}
