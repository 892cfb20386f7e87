package contactclient

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

var emailPattern = regexp.MustCompile(`[^\s@]+@[^\s@]+\.[^\s@]+`)

// Rule returns an error message for an invalid value, or "" when it is fine.
type Rule func(value string) string

// Rules holds the client side checks by field name. Fields with no rule are
// accepted as they are.
var Rules = map[string]Rule{
	"name": func(v string) string {
		if utf8.RuneCountInString(strings.TrimSpace(v)) >= 2 {
			return ""
		}
		return "Please enter your full name."
	},
	"email": func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return "Email is required."
		}
		if emailPattern.MatchString(v) {
			return ""
		}
		return "Enter a valid email address."
	},
	"phone": func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" || utf8.RuneCountInString(v) >= 6 {
			return ""
		}
		return "Phone number looks too short."
	},
	"message": func(v string) string {
		if utf8.RuneCountInString(strings.TrimSpace(v)) >= 10 {
			return ""
		}
		return "Let us know how we can help."
	},
}

// FieldErrors maps field names to messages.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)
	return "invalid fields: " + strings.Join(names, ", ")
}

// Validate runs every rule over the active controls of the form.
func Validate(form *Form) FieldErrors {
	errs := FieldErrors{}
	for _, field := range form.Active() {
		rule, ok := Rules[field.Name]
		if !ok {
			continue
		}
		if msg := rule(field.Value); msg != "" {
			errs[field.Name] = msg
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
