// Package validation checks submitted registration forms before they reach
// the admission path. All violations are collected, not just the first one,
// so the form can highlight every bad field at once.
package validation

import (
	"net/mail"
	"regexp"
	"strings"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Errors []FieldError

func (e Errors) Error() string {
	fields := make([]string, len(e))
	for i, fe := range e {
		fields[i] = fe.Field
	}
	return "invalid fields: " + strings.Join(fields, ", ")
}

type RegistrationInput struct {
	Name         string
	Email        string
	Phone        string
	Organization string
	SeminarID    string
}

var phonePattern = regexp.MustCompile(`^[0-9+\-\s()]+$`)

// ValidateRegistration returns a trimmed, email-lowercased copy of the input
// or the list of every violated field.
func ValidateRegistration(in RegistrationInput) (RegistrationInput, Errors) {
	var errs Errors

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Organization = strings.TrimSpace(in.Organization)
	in.SeminarID = strings.TrimSpace(in.SeminarID)

	if n := len([]rune(in.Name)); n < 2 || n > 100 {
		errs = append(errs, FieldError{Field: "name", Message: "name must be 2-100 characters"})
	}

	if addr, err := mail.ParseAddress(in.Email); err != nil || addr.Address != in.Email {
		errs = append(errs, FieldError{Field: "email", Message: "email address is not valid"})
	}

	if n := len(in.Phone); n < 9 || n > 15 || !phonePattern.MatchString(in.Phone) {
		errs = append(errs, FieldError{Field: "phone", Message: "phone number is not valid"})
	}

	if n := len([]rune(in.Organization)); n < 2 || n > 200 {
		errs = append(errs, FieldError{Field: "organization", Message: "organization must be 2-200 characters"})
	}

	if in.SeminarID == "" {
		errs = append(errs, FieldError{Field: "seminar_id", Message: "seminar id is required"})
	}

	if len(errs) > 0 {
		return in, errs
	}
	return in, nil
}
