package validation

import (
	"fmt"

	"github.com/joblyhq/jobly/internal/database/sqlquery"
	"github.com/joblyhq/jobly/jobs/models"
)

// updatableFields are the logical field names a PATCH may touch. Id and the
// company reference are identity and never updatable.
var updatableFields = map[string]bool{
	"title":  true,
	"salary": true,
	"equity": true,
}

// ValidateCreateJobRequest checks business-level constraints on job creation.
func ValidateCreateJobRequest(req *models.CreateJobRequest) error {
	if req.Title == "" {
		return fmt.Errorf("title is required")
	}
	if req.CompanyHandle == "" {
		return fmt.Errorf("companyHandle is required")
	}
	if req.Salary != nil && *req.Salary < 0 {
		return fmt.Errorf("salary cannot be negative")
	}
	if req.Equity != nil && (*req.Equity < 0 || *req.Equity > 1) {
		return fmt.Errorf("equity must be between 0 and 1")
	}
	return nil
}

// ValidateUpdateFields rejects update payloads touching fields a PATCH may
// not change, naming the first offender. Value-level constraints are checked
// for the fields that carry them.
func ValidateUpdateFields(fields sqlquery.Fields) error {
	for _, f := range fields {
		if !updatableFields[f.Name] {
			return fmt.Errorf("field %q cannot be updated", f.Name)
		}
	}

	if v, ok := fields.Get("equity"); ok && v != nil {
		if equity, ok := v.(float64); ok && (equity < 0 || equity > 1) {
			return fmt.Errorf("equity must be between 0 and 1")
		}
	}
	if v, ok := fields.Get("salary"); ok && v != nil {
		if salary, ok := v.(float64); ok && salary < 0 {
			return fmt.Errorf("salary cannot be negative")
		}
	}
	return nil
}
