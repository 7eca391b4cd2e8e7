package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/joblyhq/jobly/applications/services"
	"github.com/joblyhq/jobly/internal/apperrors"
)

// ApplicationHandler handles job application HTTP requests.
type ApplicationHandler struct {
	applicationService services.ApplicationService
}

// NewApplicationHandler creates a new ApplicationHandler with injected
// dependencies.
func NewApplicationHandler(applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// Apply handles a user applying to a job.
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	id, err := jobID(c)
	if err != nil {
		return apperrors.HandleServiceError(c, err)
	}

	application, err := h.applicationService.Apply(c.Context(), c.Params("username"), id)
	if err != nil {
		return apperrors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"application": application})
}

// ListUserApplications handles listing one user's applications with their
// states, the richer companion to the job-id fold on the user detail.
func (h *ApplicationHandler) ListUserApplications(c *fiber.Ctx) error {
	applications, err := h.applicationService.ListUserApplications(c.Context(), c.Params("username"))
	if err != nil {
		return apperrors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"applications": applications})
}

// ListApplications handles admin-side application queries with filters.
func (h *ApplicationHandler) ListApplications(c *fiber.Ctx) error {
	applications, err := h.applicationService.ListApplications(c.Context(), c.Queries())
	if err != nil {
		return apperrors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"applications": applications})
}

// Withdraw handles a user withdrawing a job application.
func (h *ApplicationHandler) Withdraw(c *fiber.Ctx) error {
	id, err := jobID(c)
	if err != nil {
		return apperrors.HandleServiceError(c, err)
	}

	if err := h.applicationService.Withdraw(c.Context(), c.Params("username"), id); err != nil {
		return apperrors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Application withdrawn"})
}

func jobID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: job id must be a positive integer", apperrors.ErrInvalidInput)
	}
	return int64(id), nil
}
