package utils

import "testing"

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@test.com", "john.doe@example.co.in"}
	for _, s := range valid {
		if !IsValidEmail(s) {
			t.Errorf("IsValidEmail(%q) = false", s)
		}
	}
	invalid := []string{"test@test", "plainstring", "a b@c.com", "a@b@c.com", ""}
	for _, s := range invalid {
		if IsValidEmail(s) {
			t.Errorf("IsValidEmail(%q) = true", s)
		}
	}
}

func TestIsValidPhone(t *testing.T) {
	if !IsValidPhone("+91 8291828855") {
		t.Error("IsValidPhone(+91 8291828855) = false")
	}
	if !IsValidPhone("(987) 654-3210") {
		t.Error("IsValidPhone((987) 654-3210) = false")
	}
	if IsValidPhone("12345") {
		t.Error("IsValidPhone(12345) = true: fewer than 10 digits")
	}
	if IsValidPhone("98765abc43210") {
		t.Error("IsValidPhone with letters = true")
	}
}

func TestIsValidName(t *testing.T) {
	if IsValidName("A") || IsValidName(" a ") {
		t.Error("single-character names must be invalid")
	}
	if !IsValidName("Jo") {
		t.Error("IsValidName(Jo) = false")
	}
}

func TestValidateBookingForm(t *testing.T) {
	errs := ValidateBookingForm(BookingFormInput{
		Name: "A", Email: "bad", Phone: "123", NumberOfPeople: 0,
	})
	for _, field := range []string{"name", "email", "phone", "number_of_people"} {
		if errs[field] == "" {
			t.Errorf("expected error for %q, got none", field)
		}
	}
	if len(errs) != 4 {
		t.Errorf("expected 4 errors, got %d", len(errs))
	}

	errs = ValidateBookingForm(BookingFormInput{
		Name: "John Doe", Email: "john@x.com", Phone: "9876543210", NumberOfPeople: 1,
	})
	if len(errs) != 0 {
		t.Errorf("expected no errors for a valid form, got %v", errs)
	}
}
