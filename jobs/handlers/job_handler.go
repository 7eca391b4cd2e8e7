package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/joblyhq/jobly/internal/apperrors"
	"github.com/joblyhq/jobly/internal/database/sqlquery"
	"github.com/joblyhq/jobly/jobs/models"
	"github.com/joblyhq/jobly/jobs/services"
	"github.com/joblyhq/jobly/jobs/validation"
)

// JobHandler handles all job-related HTTP requests.
type JobHandler struct {
	jobService services.JobService
}

// NewJobHandler creates a new JobHandler with injected dependencies.
func NewJobHandler(jobService services.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// CreateJob handles job creation.
func (h *JobHandler) CreateJob(c *fiber.Ctx) error {
	var req models.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.HandleValidationError(c, "Invalid request body")
	}

	if err := validation.ValidateCreateJobRequest(&req); err != nil {
		return apperrors.HandleValidationError(c, err.Error())
	}

	job, err := h.jobService.CreateJob(c.Context(), &req)
	if err != nil {
		return apperrors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"job": job})
}

// ListJobs handles job queries with filters.
func (h *JobHandler) ListJobs(c *fiber.Ctx) error {
	jobs, err := h.jobService.ListJobs(c.Context(), c.Queries())
	if err != nil {
		return apperrors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"jobs": jobs})
}

// GetJob handles retrieving a single job.
func (h *JobHandler) GetJob(c *fiber.Ctx) error {
	id, err := jobID(c)
	if err != nil {
		return apperrors.HandleServiceError(c, err)
	}

	job, err := h.jobService.GetJob(c.Context(), id)
	if err != nil {
		return apperrors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"job": job})
}

// UpdateJob handles partial updates. The body is decoded order-preserving so
// the compiled SET clause aligns placeholders with supplied order.
func (h *JobHandler) UpdateJob(c *fiber.Ctx) error {
	id, err := jobID(c)
	if err != nil {
		return apperrors.HandleServiceError(c, err)
	}

	fields, err := sqlquery.FieldsFromJSON(c.Body())
	if err != nil {
		return apperrors.HandleServiceError(c, err)
	}
	if err := validation.ValidateUpdateFields(fields); err != nil {
		return apperrors.HandleValidationError(c, err.Error())
	}

	job, err := h.jobService.UpdateJob(c.Context(), id, fields)
	if err != nil {
		return apperrors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"job": job})
}

// DeleteJob handles job deletion.
func (h *JobHandler) DeleteJob(c *fiber.Ctx) error {
	id, err := jobID(c)
	if err != nil {
		return apperrors.HandleServiceError(c, err)
	}

	if err := h.jobService.DeleteJob(c.Context(), id); err != nil {
		return apperrors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Job deleted"})
}

func jobID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: job id must be a positive integer", apperrors.ErrInvalidInput)
	}
	return int64(id), nil
}
