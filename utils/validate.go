package utils

import (
	"fmt"
	"regexp"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateRegistration applies the field rules for new accounts:
// username 3-30 chars, syntactically valid email, contact 10-15
// chars, password at least 6. Returns a user-facing message.
func ValidateRegistration(username, email, contact, password string) error {
	if len(username) < 3 || len(username) > 30 {
		return fmt.Errorf("username must be between 3 and 30 characters")
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("invalid email address")
	}
	if len(contact) < 10 || len(contact) > 15 {
		return fmt.Errorf("contact number must be between 10 and 15 characters")
	}
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	return nil
}
