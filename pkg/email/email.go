// Package email relays enquiry messages through a transactional email
// provider. Each provider adapter implements Sender.
package email

import (
	"context"
	"enquiry-relay/config"
	"errors"
	"fmt"
)

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNoContent indicates neither a text nor an HTML body was provided.
	ErrNoContent = errors.New("email must have a text or HTML body")
)

// Message is a fully prepared email.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// Validate performs the provider independent sanity checks.
func (m Message) Validate() error {
	if len(m.To) == 0 {
		return ErrNoRecipient
	}
	if m.Text == "" && m.HTML == "" {
		return ErrNoContent
	}
	return nil
}

// Sender delivers a message. Failure reasons are opaque to callers and only
// meant for logs.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NewSender builds the Sender selected by cfg.MailProvider. It returns
// (nil, nil) when the provider settings are incomplete so the caller can keep
// serving and answer 503 for submissions.
func NewSender(cfg *config.Config) (Sender, error) {
	if len(cfg.MailMissing()) > 0 {
		return nil, nil
	}

	switch cfg.MailProvider {
	case config.ProviderMailgun, "":
		return NewMailgunSender(MailgunConfig{
			Username: cfg.MailgunUsername,
			APIKey:   cfg.MailgunAPIKey,
			Domain:   cfg.MailgunDomain,
			APIBase:  cfg.MailgunAPIBase,
		}), nil
	case config.ProviderSMTP:
		return NewSMTPSender(SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			Timeout:  cfg.SendTimeout,
		}), nil
	case config.ProviderResend:
		return NewResendSender(ResendConfig{APIKey: cfg.ResendAPIKey}), nil
	default:
		return nil, fmt.Errorf("unknown MAIL_PROVIDER %q", cfg.MailProvider)
	}
}
