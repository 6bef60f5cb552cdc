package providers

import (
	"strings"
	"unicode"

	apperrors "github.com/volunteerconnect/server/pkg/errors"
)

// Password policy names accepted in configuration.
const (
	PolicyBasic  = "basic"
	PolicyStrict = "strict"
)

// PasswordPolicy checks candidate passwords at registration time.
// The basic policy requires 8+ characters with at least one letter and one
// digit; the strict variant additionally demands upper and lower case and a
// special character.
type PasswordPolicy struct {
	name string
}

// NewPasswordPolicy resolves the named policy, defaulting to basic.
func NewPasswordPolicy(name string) PasswordPolicy {
	if strings.EqualFold(strings.TrimSpace(name), PolicyStrict) {
		return PasswordPolicy{name: PolicyStrict}
	}
	return PasswordPolicy{name: PolicyBasic}
}

// Name returns the resolved policy name.
func (p PasswordPolicy) Name() string {
	return p.name
}

// Validate returns a 400 AppError describing the first failed requirement.
func (p PasswordPolicy) Validate(password string) error {
	if len(password) < 8 {
		return apperrors.NewBadRequest("Password must be at least 8 characters long")
	}

	var hasLetter, hasDigit, hasUpper, hasLower, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasLetter = true
			hasUpper = true
		case unicode.IsLower(r):
			hasLetter = true
			hasLower = true
		default:
			hasSpecial = true
		}
	}

	if p.name == PolicyStrict {
		if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
			return apperrors.NewBadRequest("Password must include upper and lower case letters, a number, and a special character")
		}
		return nil
	}

	if !hasLetter || !hasDigit {
		return apperrors.NewBadRequest("Password must contain at least one letter and one number")
	}
	return nil
}
