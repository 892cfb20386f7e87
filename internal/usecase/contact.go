package usecase

import (
	"context"
	"enquiry-relay/internal/domain"
	"enquiry-relay/pkg/email"
	"enquiry-relay/pkg/metrics"
	"enquiry-relay/pkg/validation"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ContactSettings is the immutable part of the configuration the contact
// usecase needs.
type ContactSettings struct {
	BrandName   string
	Domain      string
	Recipients  []string
	From        string // optional override
	SendTimeout time.Duration
}

type contactUsecase struct {
	sender   email.Sender
	settings ContactSettings
	validate *validator.Validate
}

// NewContactUsecase creates a new contact usecase. A nil sender means the
// email provider is not configured and every enquiry is refused.
func NewContactUsecase(sender email.Sender, settings ContactSettings, validate *validator.Validate) domain.ContactUsecase {
	if validate == nil {
		validate = validation.New()
	}
	return &contactUsecase{
		sender:   sender,
		settings: settings,
		validate: validate,
	}
}

// SendEnquiry validates the enquiry and sends the email
func (uc *contactUsecase) SendEnquiry(ctx context.Context, enquiry *domain.Enquiry) error {
	// Configuration is checked first so no validation work is done when
	// nothing could be sent anyway.
	if uc.sender == nil {
		metrics.Submission(metrics.OutcomeUnconfigured)
		return domain.ErrMailerNotConfigured
	}

	normalized := enquiry.Normalized()
	if err := uc.validate.Struct(normalized); err != nil {
		fields, ok := validation.FieldErrors(err)
		if !ok {
			return fmt.Errorf("validate enquiry: %w", err)
		}
		metrics.Submission(metrics.OutcomeInvalid)
		return &domain.ValidationError{Fields: fields}
	}

	msg := BuildMessage(normalized, uc.settings)

	if uc.settings.SendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.settings.SendTimeout)
		defer cancel()
	}

	if err := uc.sender.Send(ctx, msg); err != nil {
		metrics.Submission(metrics.OutcomeSendFailed)
		return fmt.Errorf("%w: %w", domain.ErrSendFailed, err)
	}

	metrics.Submission(metrics.OutcomeSent)
	return nil
}

// BuildMessage renders the outbound email for a normalized enquiry.
func BuildMessage(e domain.Enquiry, s ContactSettings) email.Message {
	return email.Message{
		From:    senderAddress(s),
		To:      s.Recipients,
		ReplyTo: e.Email,
		Subject: fmt.Sprintf("%s enquiry from %s", s.BrandName, e.Name),
		Text:    textBody(e),
		HTML:    htmlBody(e),
	}
}

func senderAddress(s ContactSettings) string {
	if s.From != "" {
		return s.From
	}
	local := strings.ToLower(strings.Join(strings.Fields(s.BrandName), "_"))
	if local == "" {
		local = "contact"
	}
	return fmt.Sprintf("%s <%s@%s>", s.BrandName, local, s.Domain)
}
