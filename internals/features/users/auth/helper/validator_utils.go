package helper

import (
	"errors"
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func IsValidEmail(email string) bool {
	return emailRe.MatchString(strings.TrimSpace(email))
}

// ValidateRegisterInput guards the signup form: every field is required.
func ValidateRegisterInput(name, email, phone, password string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(email) == "" {
		return errors.New("email is required")
	}
	if !IsValidEmail(email) {
		return errors.New("email format is invalid")
	}
	if strings.TrimSpace(phone) == "" {
		return errors.New("phone is required")
	}
	if strings.TrimSpace(password) == "" {
		return errors.New("password is required")
	}
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

func ValidateLoginInput(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return errors.New("email is required")
	}
	if !IsValidEmail(email) {
		return errors.New("email format is invalid")
	}
	if strings.TrimSpace(password) == "" {
		return errors.New("password is required")
	}
	return nil
}
