package auth

import "github.com/heartmarshall/mojam-curator/internal/domain"

// LoginInput holds the editor password.
type LoginInput struct {
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs domain.FieldErrors

	if i.Password == "" {
		errs.Add("password", "required")
	} else if len(i.Password) > 72 {
		errs.Add("password", "max 72 bytes")
	}

	return errs.Err()
}
