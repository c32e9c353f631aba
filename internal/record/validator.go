package record

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError describes one field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Validate checks the validate struct tags on v. A failure is reported as an
// error wrapping ErrInvalid.
func Validate(v interface{}) error {
	errs := ValidateStruct(v)
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Message
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// ValidateStruct returns one ValidationError per failing field, in declaration order.
func ValidateStruct(s interface{}) []ValidationError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{Message: err.Error()}}
	}

	var out []ValidationError
	for _, fe := range fieldErrs {
		field := fe.Field()

		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", lowerFirst(field))
		default:
			message = fmt.Sprintf("%s is invalid", lowerFirst(field))
		}

		out = append(out, ValidationError{
			Field:   lowerFirst(field),
			Message: message,
		})
	}
	return out
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	if s == strings.ToUpper(s) {
		return strings.ToLower(s)
	}
	return strings.ToLower(s[:1]) + s[1:]
}
