package models

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// emailPattern accepts a local part, an "@" and a domain containing a dot.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("blogemail", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidationError is returned when caller input fails validation. Message is
// safe to show to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// IsValidationError reports whether err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// checkStruct runs the struct validator over v. Missing required fields take
// precedence over malformed emails so that callers see the same message no
// matter how many fields are wrong.
func checkStruct(v interface{}, requiredMessage string) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	message := ""
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			return NewValidationError(requiredMessage)
		case "blogemail":
			message = "Invalid email format"
		default:
			if message == "" {
				message = "Invalid value for " + fe.Field()
			}
		}
	}
	return NewValidationError(message)
}
