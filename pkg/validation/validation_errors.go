package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// FieldMessages maps a json field name and failing tag to the message shown
// beside that field. The "*" entry is the fallback for any other tag.
var FieldMessages = map[string]map[string]string{
	"name": {
		"*": "Please provide your full name.",
	},
	"email": {
		"required": "Please provide your email address.",
		"*":        "Please provide a valid email address.",
	},
	"phone": {
		"*": "Phone number looks too short.",
	},
	"message": {
		"*": "Please include a short message.",
	},
}

// FieldErrors converts validator.ValidationErrors into one message per field.
// It returns nil for a nil error and false when err is not a validation error.
func FieldErrors(err error) (map[string]string, bool) {
	if err == nil {
		return nil, true
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}

	fields := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		if _, seen := fields[e.Field()]; seen {
			continue
		}
		fields[e.Field()] = formatSingleError(e)
	}
	return fields, true
}

func formatSingleError(e validator.FieldError) string {
	messages, ok := FieldMessages[e.Field()]
	if !ok {
		return "This field is invalid."
	}
	if msg, ok := messages[e.Tag()]; ok {
		return msg
	}
	return messages["*"]
}
