package validation

import (
	"fmt"
	"regexp"

	"github.com/joblyhq/jobly/internal/database/sqlquery"
	"github.com/joblyhq/jobly/users/models"
)

var (
	usernamePattern = regexp.MustCompile(`^[a-z0-9_]{1,55}$`)
	emailPattern    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// updatableFields are the logical field names a PATCH may touch. Username is
// identity and isAdmin can only be granted at creation time by an admin.
var updatableFields = map[string]bool{
	"firstName": true,
	"lastName":  true,
	"password":  true,
	"email":     true,
	"photoUrl":  true,
}

// ValidateCreateUserRequest checks business-level constraints on user creation.
func ValidateCreateUserRequest(req *models.CreateUserRequest) error {
	if req.Username == "" {
		return fmt.Errorf("username is required")
	}
	if !usernamePattern.MatchString(req.Username) {
		return fmt.Errorf("username must be lowercase letters, digits or underscores")
	}
	if req.Password == "" {
		return fmt.Errorf("password is required")
	}
	if req.Email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailPattern.MatchString(req.Email) {
		return fmt.Errorf("email is not a valid address")
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

	if v, ok := fields.Get("email"); ok {
		if email, isString := v.(string); !isString || !emailPattern.MatchString(email) {
			return fmt.Errorf("email is not a valid address")
		}
	}
	if v, ok := fields.Get("password"); ok {
		if password, isString := v.(string); !isString || password == "" {
			return fmt.Errorf("password cannot be empty")
		}
	}
	return nil
}
