package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
)

// Mail providers understood by MAIL_PROVIDER.
const (
	ProviderMailgun = "mailgun"
	ProviderSMTP    = "smtp"
	ProviderResend  = "resend"
)

const defaultPayloadLimit int64 = 1 << 20

type Config struct {
	Port         string
	PayloadLimit int64 // bytes
	LogLevel     string
	GinMode      string
	CORSOrigins  []string
	BrandName    string
	SendTimeout  time.Duration

	MailProvider string
	// Mailgun
	MailgunUsername string
	MailgunAPIKey   string
	MailgunDomain   string
	MailgunTo       []string
	MailgunFrom     string
	MailgunAPIBase  string
	// SMTP
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	// Resend
	ResendAPIKey string
}

func LoadConfig() (*Config, error) {
	// A missing .env is fine outside local development.
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "3000"),
		PayloadLimit: getEnvBytes("PAYLOAD_LIMIT", defaultPayloadLimit),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		GinMode:      getEnv("GIN_MODE", "debug"),
		CORSOrigins:  SplitList(getEnv("CORS_ALLOWED_ORIGINS", "")),
		BrandName:    getEnv("BRAND_NAME", "Inbuilt Atelier"),
		SendTimeout:  getEnvDuration("SEND_TIMEOUT", 15*time.Second),

		MailProvider: strings.ToLower(getEnv("MAIL_PROVIDER", ProviderMailgun)),

		MailgunUsername: getEnv("MAILGUN_USERNAME", getEnv("MAILGUN_USER", "api")),
		MailgunAPIKey:   getEnv("MAILGUN_API_KEY", getEnv("MAILGUN_PASSWORD", "")),
		MailgunDomain:   getEnv("MAILGUN_DOMAIN", ""),
		MailgunTo:       SplitList(getEnv("MAILGUN_TO", "")),
		MailgunFrom:     getEnv("MAILGUN_FROM", ""),
		MailgunAPIBase:  strings.TrimRight(getEnv("MAILGUN_API_BASE", "https://api.mailgun.net"), "/"),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
	}

	if cfg.PayloadLimit <= 0 {
		log.Printf("WARNING: PAYLOAD_LIMIT must be positive, using %d bytes", defaultPayloadLimit)
		cfg.PayloadLimit = defaultPayloadLimit
	}

	return cfg, nil
}

// MailMissing lists the required environment variables of the selected
// provider that are absent. An empty result means sending is enabled.
func (c *Config) MailMissing() []string {
	var missing []string
	add := func(ok bool, name string) {
		if !ok {
			missing = append(missing, name)
		}
	}

	switch c.MailProvider {
	case ProviderSMTP:
		add(c.SMTPHost != "", "SMTP_HOST")
		add(c.SMTPPassword != "", "SMTP_PASSWORD")
	case ProviderResend:
		add(c.ResendAPIKey != "", "RESEND_API_KEY")
	default:
		add(c.MailgunAPIKey != "", "MAILGUN_API_KEY")
	}
	// Domain and recipients are shared by every provider.
	add(c.MailgunDomain != "", "MAILGUN_DOMAIN")
	add(len(c.MailgunTo) > 0, "MAILGUN_TO")

	return missing
}

// SplitList splits a comma separated value, trimming entries and dropping empties.
func SplitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvDuration accepts Go durations ("15s") or plain seconds ("15").
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

// getEnvBytes parses sizes like "1mb", "512kb" or "1048576".
// Units are binary so "1mb" means 1 MiB.
func getEnvBytes(key string, fallback int64) int64 {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return fallback
	}
	n, err := humanize.ParseBytes(binaryUnits(value))
	if err != nil {
		log.Printf("WARNING: invalid %s %q: %v", key, value, err)
		return fallback
	}
	return int64(n)
}

// binaryUnits rewrites "kb"/"mb"/"gb" suffixes into their IEC form so
// humanize treats them as powers of 1024.
func binaryUnits(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, unit := range []string{"kb", "mb", "gb"} {
		if strings.HasSuffix(v, unit) {
			return strings.TrimSuffix(v, unit) + string(unit[0]) + "ib"
		}
	}
	return v
}
