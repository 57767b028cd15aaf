// Package config reads the server configuration from the environment.
// A .env file in the working directory is loaded by the main package.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/emailrelay"
	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/theme"
)

const (
	TransportEmailJS = "emailjs"
	TransportSMTP    = "smtp"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string

	MailTransport string
	OwnerEmail    string
	EmailJS       emailrelay.EmailJSConfig
	SMTP          emailrelay.SMTPConfig

	DefaultTheme theme.Mode

	ResumePath     string
	ResumeFilename string

	AnalyticsDB   string
	AdminUsername string
	AdminPassword string

	ContactRate  rate.Limit
	ContactBurst int
	SessionTTL   time.Duration
}

// Load builds a Config from environment variables. EmailJS identifiers
// default to empty strings; a missing identifier fails the send at
// runtime, not here.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	get := func(key, def string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		Port:          get("PORT", "8080"),
		GinMode:       getenv("GIN_MODE"),
		LogLevel:      get("LOG_LEVEL", "info"),
		MailTransport: get("MAIL_TRANSPORT", TransportEmailJS),
		OwnerEmail:    get("OWNER_EMAIL", "aaqilpro99@gmail.com"),
		EmailJS: emailrelay.EmailJSConfig{
			ServiceID:         getenv("EMAILJS_SERVICE_ID"),
			TemplateID:        getenv("EMAILJS_TEMPLATE_ID"),
			WelcomeTemplateID: getenv("EMAILJS_WELCOME_TEMPLATE_ID"),
			PublicKey:         getenv("EMAILJS_PUBLIC_KEY"),
			PrivateKey:        getenv("EMAILJS_PRIVATE_KEY"),
			Endpoint:          get("EMAILJS_ENDPOINT", emailrelay.DefaultEndpoint),
		},
		SMTP: emailrelay.SMTPConfig{
			Host: get("SMTP_HOST", "smtp.gmail.com"),
			Port: get("SMTP_PORT", "587"),
			User: getenv("SMTP_USER"),
			Pass: getenv("SMTP_PASS"),
		},
		ResumePath:     get("RESUME_PATH", "./resume/Aaqil-khan-Resume.pdf"),
		ResumeFilename: get("RESUME_FILENAME", "Aaqil_Khan_Resume.pdf"),
		AnalyticsDB:    getenv("ANALYTICS_DB"),
		AdminUsername:  get("ADMIN_USERNAME", "admin"),
		AdminPassword:  getenv("ADMIN_PASSWORD"),
	}

	switch cfg.MailTransport {
	case TransportEmailJS, TransportSMTP:
	default:
		return cfg, errors.Errorf("MAIL_TRANSPORT: unknown transport %q", cfg.MailTransport)
	}

	var err error
	if cfg.DefaultTheme, err = theme.ParseMode(get("DEFAULT_THEME", string(theme.Dark))); err != nil {
		return cfg, errors.Wrap(err, "DEFAULT_THEME")
	}
	if cfg.EmailJS.Timeout, err = duration(get("MAIL_TIMEOUT", "20s")); err != nil {
		return cfg, errors.Wrap(err, "MAIL_TIMEOUT")
	}
	cfg.SMTP.Timeout = cfg.EmailJS.Timeout
	if cfg.SessionTTL, err = duration(get("SESSION_TTL", "30m")); err != nil {
		return cfg, errors.Wrap(err, "SESSION_TTL")
	}

	every, err := duration(get("CONTACT_RATE", "1m"))
	if err != nil {
		return cfg, errors.Wrap(err, "CONTACT_RATE")
	}
	cfg.ContactRate = rate.Every(every)
	if cfg.ContactBurst, err = strconv.Atoi(get("CONTACT_BURST", "5")); err != nil || cfg.ContactBurst < 1 {
		return cfg, errors.Errorf("CONTACT_BURST: want a positive integer, got %q", getenv("CONTACT_BURST"))
	}
	return cfg, nil
}

func duration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	if d < 0 {
		return 0, errors.Errorf("negative duration %s", s)
	}
	return d, nil
}

// AdminEnabled reports whether the admin pages can be logged into.
func (c Config) AdminEnabled() bool { return c.AdminPassword != "" }
