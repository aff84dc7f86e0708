package auth

import (
	"unicode"

	"secdesk/internal/shared/errors"
)

// ValidateUsername requires at least 3 characters, letters and digits only.
func ValidateUsername(username string) error {
	if len(username) < 3 {
		return errors.NewValidationError("username must be at least 3 characters long")
	}
	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return errors.NewValidationError("username must contain only letters and numbers")
		}
	}
	return nil
}

// ValidatePassword requires at least 8 characters with a digit and an
// uppercase letter.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.NewValidationError("password must be at least 8 characters long")
	}
	var hasDigit, hasUpper bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}
	if !hasDigit {
		return errors.NewValidationError("password must contain at least one number")
	}
	if !hasUpper {
		return errors.NewValidationError("password must contain at least one uppercase letter")
	}
	return nil
}
