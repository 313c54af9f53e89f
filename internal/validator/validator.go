package validator

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"unicode/utf8"
)

var (
	hasDigit     = regexp.MustCompile(`[0-9]`)
	hasLower     = regexp.MustCompile(`[a-z]`)
	hasUpper     = regexp.MustCompile(`[A-Z]`)
	hasSpecial   = regexp.MustCompile(`[\W_]`)
	isValidLogin = regexp.MustCompile(`^[a-z0-9_]+$`).MatchString
)

// ValidateString checks the length of value in characters, not bytes.
func ValidateString(value string, minLength int, maxLength int) error {
	n := utf8.RuneCountInString(value)
	if n < minLength || n > maxLength {
		return fmt.Errorf("must contain from %d to %d characters", minLength, maxLength)
	}

	return nil
}

func ValidateUsername(value string) error {
	if err := ValidateString(value, 3, 30); err != nil {
		return err
	}

	if !isValidLogin(value) {
		return fmt.Errorf("must contain only lowercase letters, digits, or underscore")
	}

	return nil
}

func ValidateDisplayName(value string) error {
	return ValidateString(value, 2, 50)
}

func ValidatePassword(value string) (err error) {
	// Define a general value rule that covers all conditions
	err = errors.New("value must be between 8 and 72 characters long, contain at least one digit, one lowercase letter, one uppercase letter, and one special character")

	// bcrypt ignores everything past 72 bytes
	if len(value) < 8 || len(value) > 72 {
		return
	}

	if !hasDigit.MatchString(value) {
		return
	}

	if !hasLower.MatchString(value) {
		return
	}

	if !hasUpper.MatchString(value) {
		return
	}

	if !hasSpecial.MatchString(value) {
		return
	}

	return nil
}

func ValidateEmail(value string) error {
	if err := ValidateString(value, 6, 200); err != nil {
		return err
	}

	if _, err := mail.ParseAddress(value); err != nil {
		return fmt.Errorf("is not a valid email address")
	}

	return nil
}
