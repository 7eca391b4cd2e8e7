package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/joblyhq/jobly/internal/apperrors"
	"github.com/joblyhq/jobly/internal/database/sqlquery"
	"github.com/joblyhq/jobly/users/models"
	"github.com/joblyhq/jobly/users/services"
	"github.com/joblyhq/jobly/users/validation"
)

// UserHandler handles all user-related HTTP requests.
type UserHandler struct {
	userService services.UserService
}

// NewUserHandler creates a new UserHandler with injected dependencies.
func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUser handles admin-side user creation.
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req models.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.HandleValidationError(c, "Invalid request body")
	}

	if err := validation.ValidateCreateUserRequest(&req); err != nil {
		return apperrors.HandleValidationError(c, err.Error())
	}

	user, err := h.userService.CreateUser(c.Context(), &req)
	if err != nil {
		return apperrors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"user": user})
}

// ListUsers handles user queries with filters.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers(c.Context(), c.Queries())
	if err != nil {
		return apperrors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"users": users})
}

// GetUser handles retrieving a single user with their applied job ids.
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.userService.GetUser(c.Context(), c.Params("username"))
	if err != nil {
		return apperrors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"user": user})
}

// UpdateUser handles partial updates. The body is decoded order-preserving so
// the compiled SET clause aligns placeholders with supplied order.
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	fields, err := sqlquery.FieldsFromJSON(c.Body())
	if err != nil {
		return apperrors.HandleServiceError(c, err)
	}
	if err := validation.ValidateUpdateFields(fields); err != nil {
		return apperrors.HandleValidationError(c, err.Error())
	}

	user, err := h.userService.UpdateUser(c.Context(), c.Params("username"), fields)
	if err != nil {
		return apperrors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"user": user})
}

// DeleteUser handles user deletion.
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.userService.DeleteUser(c.Context(), c.Params("username")); err != nil {
		return apperrors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "User deleted"})
}
