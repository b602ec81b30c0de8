package validator

import (
	"testing"
)

type loginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()

	in := loginInput{Email: "lina@example.com", Password: "s3cr3tpass"}
	if err := cv.Validate(in); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	in := loginInput{Email: "not-an-email", Password: "short"}
	err := cv.Validate(in)
	if err == nil {
		t.Fatal("expected validation error")
	}

	fields := cv.FormatValidationErrors(err)
	if got := fields["Email"]; got != "Email must be a valid email address" {
		t.Errorf("Email message = %q", got)
	}
	if got := fields["Password"]; got != "Password must be at least 8 characters" {
		t.Errorf("Password message = %q", got)
	}
}

func TestFormatValidationErrorsNonValidationError(t *testing.T) {
	cv := NewValidator()

	fields := cv.FormatValidationErrors(errNotValidation{})
	if len(fields) != 0 {
		t.Errorf("expected empty map, got %v", fields)
	}
}

type errNotValidation struct{}

func (errNotValidation) Error() string { return "boom" }
