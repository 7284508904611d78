package security

import (
	"regexp"
	"strings"

	apperrors "land-marketplace-service/pkg/errors"
)

// Messages returned to the mobile client; they are shown verbatim on the sign-up screen.
const (
	MsgPasswordMismatch = "Passwords do not match"
	MsgInvalidUsername  = "Username should contain only letters and spaces"
	MsgInvalidEmail     = "Invalid email address"
	MsgWeakPassword     = "Password should contain at least one lowercase letter, one uppercase letter, one number, one special character (@$!%*?&#), and be at least 8 characters long"
)

// PasswordSpecialChars is the set of accepted password symbols.
const PasswordSpecialChars = "@$!%*?&#"

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

// space matches the whitespace set of the mobile client's patterns, including
// vertical tab, no-break and other Unicode separators and BOM.
const space = `\s\v\p{Z}\x{FEFF}`

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z` + space + `]+$`)
	emailPattern    = regexp.MustCompile(`[^` + space + `]+@[^` + space + `]+\.[^` + space + `]+`)
)

// SignUpInput carries the raw sign-up form fields.
type SignUpInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// ValidateSignUp applies the sign-up rules in form order and returns the first failure.
func ValidateSignUp(in SignUpInput) error {
	if in.Password != in.ConfirmPassword {
		return apperrors.NewValidationError("confirmPassword", MsgPasswordMismatch)
	}
	if !IsValidUsername(in.Username) {
		return apperrors.NewValidationError("name", MsgInvalidUsername)
	}
	if !IsValidEmail(in.Email) {
		return apperrors.NewValidationError("email", MsgInvalidEmail)
	}
	if !IsStrongPassword(in.Password) {
		return apperrors.NewValidationError("password", MsgWeakPassword)
	}
	return nil
}

// IsValidUsername reports whether name consists only of ASCII letters and whitespace.
func IsValidUsername(name string) bool {
	return usernamePattern.MatchString(name)
}

// IsValidEmail is a loose shape check: something@something.something with no whitespace runs.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsStrongPassword requires at least MinPasswordLength characters drawn from letters,
// digits and PasswordSpecialChars, including one of each class.
func IsStrongPassword(password string) bool {
	if len(password) < MinPasswordLength {
		return false
	}

	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(PasswordSpecialChars, r):
			special = true
		default:
			return false
		}
	}

	return lower && upper && digit && special
}
