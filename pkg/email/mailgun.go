package email

import (
	"context"
	"enquiry-relay/pkg/logger"
	"fmt"
	"strings"

	"github.com/mailgun/mailgun-go/v4"
)

// MailgunConfig holds the Mailgun HTTP API settings.
type MailgunConfig struct {
	Username string
	APIKey   string
	Domain   string
	APIBase  string // e.g. https://api.eu.mailgun.net, with or without /v3
}

// MailgunSender sends through the Mailgun messages API.
type MailgunSender struct {
	client *mailgun.MailgunImpl
}

func NewMailgunSender(cfg MailgunConfig) *MailgunSender {
	mg := mailgun.NewMailgun(cfg.Domain, cfg.APIKey)
	if cfg.APIBase != "" {
		mg.SetAPIBase(mailgunAPIBase(cfg.APIBase))
	}
	// The SDK always authenticates as "api".
	if cfg.Username != "" && cfg.Username != "api" {
		logger.Log.Warn("Mailgun username is ignored by the API client", "username", cfg.Username)
	}
	return &MailgunSender{client: mg}
}

func (s *MailgunSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	m := s.client.NewMessage(msg.From, msg.Subject, msg.Text, msg.To...)
	if msg.HTML != "" {
		m.SetHtml(msg.HTML)
	}
	if msg.ReplyTo != "" {
		m.AddHeader("Reply-To", msg.ReplyTo)
	}

	_, id, err := s.client.Send(ctx, m)
	if err != nil {
		return fmt.Errorf("mailgun: failed to send email: %w", err)
	}
	logger.Log.Debug("Mailgun accepted message", "id", id)
	return nil
}

func mailgunAPIBase(base string) string {
	base = strings.TrimRight(base, "/")
	if strings.HasSuffix(base, "/v3") {
		return base
	}
	return base + "/v3"
}
