package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrMailerNotConfigured means the provider credentials, sending domain or
	// recipients are absent; nothing can be sent until an operator fixes it.
	ErrMailerNotConfigured = errors.New("email service is not configured")

	// ErrSendFailed wraps any failure reported by the email provider.
	ErrSendFailed = errors.New("failed to send contact email")
)

// Enquiry is a single contact form submission. It is never stored.
type Enquiry struct {
	Name    string `json:"name" form:"name" validate:"min=2" example:"Jo Bloggs"`
	Email   string `json:"email" form:"email" validate:"required,contact_email" example:"jo@example.com"`
	Phone   string `json:"phone,omitempty" form:"phone" validate:"omitempty,min=6" example:"0400 000 000"`
	Message string `json:"message" form:"message" validate:"min=10" example:"Hello there, need a quote"`
}

// UnmarshalJSON accepts any JSON value. Missing or non-string fields become
// empty text, numbers and booleans keep their literal form, and a body that
// is not an object yields an empty enquiry. Syntax errors are still reported.
func (e *Enquiry) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	*e = Enquiry{}
	fields, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	e.Name = coerce(fields["name"])
	e.Email = coerce(fields["email"])
	e.Phone = coerce(fields["phone"])
	e.Message = coerce(fields["message"])
	return nil
}

func coerce(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return fmt.Sprint(val)
	default:
		return ""
	}
}

// Normalized returns a copy with every field trimmed.
func (e Enquiry) Normalized() Enquiry {
	return Enquiry{
		Name:    strings.TrimSpace(e.Name),
		Email:   strings.TrimSpace(e.Email),
		Phone:   strings.TrimSpace(e.Phone),
		Message: strings.TrimSpace(e.Message),
	}
}

// ValidationError holds one message per failing field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "invalid enquiry: " + strings.Join(names, ", ")
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendEnquiry validates the enquiry and relays it to the configured recipients
	SendEnquiry(ctx context.Context, enquiry *Enquiry) error
}
