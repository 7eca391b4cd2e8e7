package validation

import (
	"fmt"

	"github.com/nbutton23/zxcvbn-go"

	"github.com/joblyhq/jobly/auth/models"
	usermodels "github.com/joblyhq/jobly/users/models"
	uservalidation "github.com/joblyhq/jobly/users/validation"
)

// ValidateRegisterRequest checks the registration payload. On top of the
// common user constraints, the password must clear the configured zxcvbn
// strength score; the username and email are fed in as related words so
// they cannot prop up the score.
func ValidateRegisterRequest(req *usermodels.CreateUserRequest, minScore int) error {
	if err := uservalidation.ValidateCreateUserRequest(req); err != nil {
		return err
	}

	strength := zxcvbn.PasswordStrength(req.Password, []string{req.Username, req.Email})
	if strength.Score < minScore {
		return fmt.Errorf("password is too weak, score %d of required %d", strength.Score, minScore)
	}
	return nil
}

// ValidateLoginRequest checks the login payload.
func ValidateLoginRequest(req *models.LoginRequest) error {
	if req.Username == "" {
		return fmt.Errorf("username is required")
	}
	if req.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}
