// Package validation contains input validation helpers shared by the
// service layer.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

const (
	// MaxUsernameLength is the maximum allowed username length.
	MaxUsernameLength = 20
	// MaxNameLength is the maximum allowed first or last name length.
	MaxNameLength = 20
	// MaxEmailLength is the maximum allowed email length.
	MaxEmailLength = 50
	// MaxTextLength is the maximum allowed post or comment text length.
	MaxTextLength = 280
	// MaxBioLength is the maximum allowed profile bio length.
	MaxBioLength = 500
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
	emailRegex    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidateUsername checks that a username is non-empty, within length
// limits and contains only allowed characters.
func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("username is required")
	}
	if len(username) > MaxUsernameLength {
		return fmt.Errorf("username must be at most %d characters", MaxUsernameLength)
	}
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("username may only contain letters, numbers, underscores, dots and hyphens")
	}
	return nil
}

// ValidateName checks a first or last name.
func ValidateName(field, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%s is required", field)
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("%s must be at most %d characters", field, MaxNameLength)
	}
	return nil
}

// ValidateEmail checks that an email address is plausible and within
// length limits.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if len(email) > MaxEmailLength {
		return fmt.Errorf("email must be at most %d characters", MaxEmailLength)
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("email is not a valid address")
	}
	return nil
}

// ValidatePassword enforces the password policy: at least 8 characters
// with at least one letter and one digit.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return fmt.Errorf("password must contain at least one letter and one digit")
	}
	return nil
}

// ValidateText checks post or comment text: non-blank and at most 280
// characters.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text is required")
	}
	if len(text) > MaxTextLength {
		return fmt.Errorf("text must be at most %d characters", MaxTextLength)
	}
	return nil
}

// ValidateBio checks a profile bio against the length limit. Empty bios
// are allowed.
func ValidateBio(bio string) error {
	if len(bio) > MaxBioLength {
		return fmt.Errorf("bio must be at most %d characters", MaxBioLength)
	}
	return nil
}
