// Package validation holds the input checks that run before any I/O.
package validation

import (
	"strings"

	"aicoach/internal/apperrors"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 4

// IsEmail reports whether s looks like an email address. This is a shape
// check, not RFC validation.
func IsEmail(s string) bool {
	e := strings.TrimSpace(s)
	return strings.Contains(e, "@") && strings.Contains(e, ".") && len(e) >= 6
}

// Credentials validates an email/password pair and returns a validation
// error on the first failed check.
func Credentials(email, password string) error {
	if !IsEmail(email) {
		return apperrors.NewValidationError("invalid email address")
	}
	if len(password) < MinPasswordLength {
		return apperrors.NewValidationError("password must be at least 4 characters")
	}
	return nil
}
