package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/joblyhq/jobly/companies/models"
	"github.com/joblyhq/jobly/companies/services"
	"github.com/joblyhq/jobly/companies/validation"
	"github.com/joblyhq/jobly/internal/apperrors"
	"github.com/joblyhq/jobly/internal/database/sqlquery"
)

// CompanyHandler handles all company-related HTTP requests.
type CompanyHandler struct {
	companyService services.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler with injected dependencies.
func NewCompanyHandler(companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// CreateCompany handles company creation.
func (h *CompanyHandler) CreateCompany(c *fiber.Ctx) error {
	var req models.CreateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.HandleValidationError(c, "Invalid request body")
	}

	if err := validation.ValidateCreateCompanyRequest(&req); err != nil {
		return apperrors.HandleValidationError(c, err.Error())
	}

	company, err := h.companyService.CreateCompany(c.Context(), &req)
	if err != nil {
		return apperrors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"company": company})
}

// ListCompanies handles company queries with filters.
func (h *CompanyHandler) ListCompanies(c *fiber.Ctx) error {
	companies, err := h.companyService.ListCompanies(c.Context(), c.Queries())
	if err != nil {
		return apperrors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"companies": companies})
}

// GetCompany handles retrieving a single company with its job postings.
func (h *CompanyHandler) GetCompany(c *fiber.Ctx) error {
	company, err := h.companyService.GetCompany(c.Context(), c.Params("handle"))
	if err != nil {
		return apperrors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"company": company})
}

// UpdateCompany handles partial updates. The body is decoded order-preserving
// so the compiled SET clause aligns placeholders with supplied order.
func (h *CompanyHandler) UpdateCompany(c *fiber.Ctx) error {
	fields, err := sqlquery.FieldsFromJSON(c.Body())
	if err != nil {
		return apperrors.HandleServiceError(c, err)
	}
	if err := validation.ValidateUpdateFields(fields); err != nil {
		return apperrors.HandleValidationError(c, err.Error())
	}

	company, err := h.companyService.UpdateCompany(c.Context(), c.Params("handle"), fields)
	if err != nil {
		return apperrors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"company": company})
}

// DeleteCompany handles company deletion.
func (h *CompanyHandler) DeleteCompany(c *fiber.Ctx) error {
	if err := h.companyService.DeleteCompany(c.Context(), c.Params("handle")); err != nil {
		return apperrors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Company deleted"})
}
