package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/joblyhq/jobly/internal/middleware/requestid"
	"github.com/joblyhq/jobly/internal/pkg/log"
)

// Sentinel errors shared by every resource module. Services and repositories
// wrap these with fmt.Errorf("%w: ...") so handlers can branch on errors.Is
// while the message keeps the offending field or identifier.
var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidFilterParameter = errors.New("invalid filter parameter")
	ErrMissingFilterValue     = errors.New("missing filter value")
	ErrReferenceNotFound      = errors.New("referenced resource not found")
	ErrNotFound               = errors.New("not found")
	ErrEmptyResult            = errors.New("no results matched the query")
	ErrAlreadyExists          = errors.New("resource already exists")
	ErrUnauthorized           = errors.New("authentication required")
	ErrForbidden              = errors.New("insufficient permissions")
	ErrInternal               = errors.New("internal error")
)

// Error codes
const (
	CodeInvalidInput           = "INVALID_INPUT"
	CodeInvalidFilterParameter = "INVALID_FILTER_PARAMETER"
	CodeMissingFilterValue     = "MISSING_FILTER_VALUE"
	CodeReferenceNotFound      = "REFERENCE_NOT_FOUND"
	CodeNotFound               = "NOT_FOUND"
	CodeEmptyResult            = "EMPTY_RESULT"
	CodeDuplicateKey           = "DUPLICATE_KEY"
	CodeUnauthorized           = "UNAUTHORIZED"
	CodeForbidden              = "FORBIDDEN"
	CodeInternalError          = "INTERNAL_ERROR"
)

// ErrorResponse is the standardized error body returned to clients.
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// InvalidFilterParameter reports an unrecognized filter key by name.
func InvalidFilterParameter(key string) error {
	return fmt.Errorf("%w: %q", ErrInvalidFilterParameter, key)
}

// MissingFilterValue reports a recognized filter key supplied without a value.
func MissingFilterValue(key string) error {
	return fmt.Errorf("%w: %q", ErrMissingFilterValue, key)
}

// HandleServiceError translates the error taxonomy into HTTP responses.
// Anything not in the taxonomy is a server fault and stays opaque.
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrInvalidInput):
		return respond(c, http.StatusBadRequest, CodeInvalidInput, err)
	case errors.Is(err, ErrInvalidFilterParameter):
		return respond(c, http.StatusBadRequest, CodeInvalidFilterParameter, err)
	case errors.Is(err, ErrMissingFilterValue):
		return respond(c, http.StatusBadRequest, CodeMissingFilterValue, err)
	case errors.Is(err, ErrReferenceNotFound):
		return respond(c, http.StatusBadRequest, CodeReferenceNotFound, err)
	case errors.Is(err, ErrNotFound):
		return respond(c, http.StatusNotFound, CodeNotFound, err)
	case errors.Is(err, ErrEmptyResult):
		return respond(c, http.StatusNotFound, CodeEmptyResult, err)
	case errors.Is(err, ErrAlreadyExists):
		return respond(c, http.StatusConflict, CodeDuplicateKey, err)
	case errors.Is(err, ErrUnauthorized):
		return respond(c, http.StatusUnauthorized, CodeUnauthorized, err)
	case errors.Is(err, ErrForbidden):
		return respond(c, http.StatusForbidden, CodeForbidden, err)
	default:
		// The cause is logged server-side; the client only learns that
		// something went wrong.
		ctx := log.WithRequestID(c.Context(), requestid.GetRequestID(c))
		log.ErrorWithContext(ctx, "%s %s: %v", c.Method(), c.Path(), err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    CodeInternalError,
			Message: "An unexpected error occurred",
		})
	}
}

// HandleValidationError responds with 400 Bad Request for payload-level
// validation failures detected before a service runs.
func HandleValidationError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Code:    CodeInvalidInput,
		Message: message,
	})
}

func respond(c *fiber.Ctx, status int, code string, err error) error {
	return c.Status(status).JSON(ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
