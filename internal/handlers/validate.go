package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validationMessage turns the first field violation into a client-facing
// message string.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", strings.ToLower(fe.Field()))
		case "email":
			return "invalid email"
		case "min":
			return fmt.Sprintf("%s too short", strings.ToLower(fe.Field()))
		case "max":
			return fmt.Sprintf("%s too long", strings.ToLower(fe.Field()))
		case "len", "numeric":
			return fmt.Sprintf("invalid %s", strings.ToLower(fe.Field()))
		default:
			return fmt.Sprintf("invalid %s", strings.ToLower(fe.Field()))
		}
	}
	return "invalid request"
}

// fishFieldErrors maps every violation to its form field for re-rendering
// admin forms with per-field messages.
func fishFieldErrors(err error) map[string]string {
	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return out
	}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = title(field) + " is required"
		case "max":
			out[field] = title(field) + " is too long"
		case "gte":
			out[field] = title(field) + " cannot be negative"
		default:
			out[field] = "Invalid " + field
		}
	}
	return out
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
