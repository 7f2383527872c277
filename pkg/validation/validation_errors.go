package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels.
var FieldLabels = map[string]string{
	"Title":       "Title",
	"Description": "Description",
	"URL":         "URL",
	"Type":        "Type",
	"Skills":      "Skills",
	"Tags":        "Tags",
	"Difficulty":  "Difficulty",
	"Duration":    "Duration",
	"Email":       "Email",
	"Username":    "Username",
	"Password":    "Password",
	"IsPublic":    "Visibility",
}

// Message turns a binding error into a human-readable message. Non-validator
// errors (malformed JSON and such) fall through as-is.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	label := FieldLabels[fe.Field()]
	if label == "" {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
		}
		return fmt.Sprintf("%s must have at least %s entries", label, fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
		}
		return fmt.Sprintf("%s must have at most %s entries", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", label, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
