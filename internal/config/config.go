// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Email transports.
const (
	TransportAPI  = "api"
	TransportSMTP = "smtp"
)

// Config is the full set of settings for the site server.
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	DBPath   string `env:"DB_PATH" envDefault:"portfolio.db"`
	Variant  string `env:"DESIGN_VARIANT" envDefault:"brutalist"`

	Email Email

	AdminUsername string `env:"ADMIN_USERNAME"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	ContactRatePerMinute float64       `env:"CONTACT_RATE_PER_MINUTE" envDefault:"3"`
	ContactBurst         int           `env:"CONTACT_BURST" envDefault:"5"`
	VisitorRetention     time.Duration `env:"VISITOR_RETENTION" envDefault:"8760h"`
}

// Email holds the delivery settings for the contact form. Nothing here is
// required at load time; an incomplete block only fails when a message is sent.
type Email struct {
	Transport string `env:"EMAIL_TRANSPORT" envDefault:"api"`
	To        string `env:"EMAIL_TO"`

	APIURL      string `env:"EMAIL_API_URL" envDefault:"https://api.emailjs.com/api/v1.0/email/send"`
	ServiceID   string `env:"EMAIL_SERVICE_ID"`
	TemplateID  string `env:"EMAIL_TEMPLATE_ID"`
	PublicKey   string `env:"EMAIL_PUBLIC_KEY"`
	AccessToken string `env:"EMAIL_ACCESS_TOKEN"`

	SMTPHost string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort string `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser string `env:"SMTP_USER"`
	SMTPPass string `env:"SMTP_PASS"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	c.Variant = strings.ToLower(strings.TrimSpace(c.Variant))
	switch c.Variant {
	case "soft", "brutalist":
	default:
		return fmt.Errorf("config: DESIGN_VARIANT %q: want soft or brutalist", c.Variant)
	}

	c.Email.Transport = strings.ToLower(strings.TrimSpace(c.Email.Transport))
	switch c.Email.Transport {
	case TransportAPI, TransportSMTP:
	default:
		return fmt.Errorf("config: EMAIL_TRANSPORT %q: want api or smtp", c.Email.Transport)
	}

	if c.ContactRatePerMinute <= 0 {
		return fmt.Errorf("config: CONTACT_RATE_PER_MINUTE must be positive")
	}
	if c.ContactBurst < 1 {
		return fmt.Errorf("config: CONTACT_BURST must be at least 1")
	}
	if c.VisitorRetention <= 0 {
		return fmt.Errorf("config: VISITOR_RETENTION must be positive, got %s", c.VisitorRetention)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}
