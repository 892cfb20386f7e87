package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "PAYLOAD_LIMIT", "MAILGUN_API_KEY", "MAILGUN_PASSWORD", "MAILGUN_DOMAIN", "MAILGUN_TO", "MAILGUN_USERNAME", "MAILGUN_USER", "MAIL_PROVIDER", "SEND_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, int64(1<<20), cfg.PayloadLimit)
	assert.Equal(t, "api", cfg.MailgunUsername)
	assert.Equal(t, ProviderMailgun, cfg.MailProvider)
	assert.Equal(t, "https://api.mailgun.net", cfg.MailgunAPIBase)
	assert.Equal(t, 15*time.Second, cfg.SendTimeout)
	assert.ElementsMatch(t, []string{"MAILGUN_API_KEY", "MAILGUN_DOMAIN", "MAILGUN_TO"}, cfg.MailMissing())
}

func TestLoadConfigMailgun(t *testing.T) {
	t.Setenv("MAIL_PROVIDER", "")
	t.Setenv("MAILGUN_API_KEY", "")
	t.Setenv("MAILGUN_PASSWORD", "key-123")
	t.Setenv("MAILGUN_DOMAIN", "mg.example.com")
	t.Setenv("MAILGUN_TO", " a@example.com, ,b@example.com ")
	t.Setenv("MAILGUN_API_BASE", "https://api.eu.mailgun.net/")
	t.Setenv("PAYLOAD_LIMIT", "512kb")
	t.Setenv("SEND_TIMEOUT", "5")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "key-123", cfg.MailgunAPIKey)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, cfg.MailgunTo)
	assert.Equal(t, "https://api.eu.mailgun.net", cfg.MailgunAPIBase)
	assert.Equal(t, int64(512*1024), cfg.PayloadLimit)
	assert.Equal(t, 5*time.Second, cfg.SendTimeout)
	assert.Empty(t, cfg.MailMissing())
}

func TestMailMissingPerProvider(t *testing.T) {
	smtp := &Config{MailProvider: ProviderSMTP, SMTPHost: "smtp.example.com", MailgunDomain: "example.com"}
	assert.Equal(t, []string{"SMTP_PASSWORD", "MAILGUN_TO"}, smtp.MailMissing())

	resend := &Config{MailProvider: ProviderResend, ResendAPIKey: "re_123", MailgunDomain: "example.com", MailgunTo: []string{"x@example.com"}}
	assert.Empty(t, resend.MailMissing())
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList(""))
	assert.Nil(t, SplitList(" , "))
	assert.Equal(t, []string{"a", "b"}, SplitList("a , b"))
}

func TestGetEnvBytes(t *testing.T) {
	t.Setenv("LIMIT", "2MB")
	assert.Equal(t, int64(2<<20), getEnvBytes("LIMIT", 1))

	t.Setenv("LIMIT", "1000")
	assert.Equal(t, int64(1000), getEnvBytes("LIMIT", 1))

	t.Setenv("LIMIT", "lots")
	assert.Equal(t, int64(1), getEnvBytes("LIMIT", 1))
}
