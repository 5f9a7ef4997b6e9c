package utils

import (
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[0-9\s()+-]+$`)
	digitRegex = regexp.MustCompile(`[^0-9]`)
)

// IsValidEmail reports whether s looks like local@domain.tld.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsValidPhone accepts digits, spaces, hyphens, parentheses and "+", and
// requires at least 10 digits once everything else is stripped.
func IsValidPhone(s string) bool {
	if !phoneRegex.MatchString(s) {
		return false
	}
	return len(digitRegex.ReplaceAllString(s, "")) >= 10
}

// IsValidName requires at least 2 characters after trimming.
func IsValidName(s string) bool {
	return len(strings.TrimSpace(s)) >= 2
}

// BookingFormInput is the contact portion of a booking submission.
type BookingFormInput struct {
	Name           string
	Email          string
	Phone          string
	NumberOfPeople int
}

// ValidateBookingForm returns a field→message map for every failing field.
// An empty map signals a valid form.
func ValidateBookingForm(in BookingFormInput) map[string]string {
	errors := make(map[string]string)

	if !IsValidName(in.Name) {
		errors["name"] = "Please enter a valid name (at least 2 characters)"
	}
	if !IsValidEmail(in.Email) {
		errors["email"] = "Please enter a valid email address"
	}
	if !IsValidPhone(in.Phone) {
		errors["phone"] = "Please enter a valid phone number"
	}
	if in.NumberOfPeople < 1 {
		errors["number_of_people"] = "Number of people must be at least 1"
	}

	return errors
}
