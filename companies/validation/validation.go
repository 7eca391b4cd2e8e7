package validation

import (
	"fmt"
	"regexp"

	"github.com/joblyhq/jobly/companies/models"
	"github.com/joblyhq/jobly/internal/database/sqlquery"
)

var handlePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,38}$`)

// updatableFields are the logical field names a PATCH may touch. The handle
// is identity and never updatable.
var updatableFields = map[string]bool{
	"name":         true,
	"numEmployees": true,
	"description":  true,
	"logoUrl":      true,
}

// ValidateCreateCompanyRequest checks business-level constraints on company
// creation. Primitive type shape is the transport layer's problem.
func ValidateCreateCompanyRequest(req *models.CreateCompanyRequest) error {
	if req.Handle == "" {
		return fmt.Errorf("handle is required")
	}
	if !handlePattern.MatchString(req.Handle) {
		return fmt.Errorf("handle must be lowercase letters, digits, and dashes")
	}
	if req.Name == "" {
		return fmt.Errorf("name is required")
	}
	if req.NumEmployees != nil && *req.NumEmployees < 0 {
		return fmt.Errorf("numEmployees cannot be negative")
	}
	return nil
}

// ValidateUpdateFields rejects update payloads touching fields a PATCH may
// not change, naming the first offender.
func ValidateUpdateFields(fields sqlquery.Fields) error {
	for _, f := range fields {
		if !updatableFields[f.Name] {
			return fmt.Errorf("field %q cannot be updated", f.Name)
		}
	}
	return nil
}
