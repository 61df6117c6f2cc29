// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

// Mail transports accepted in MAIL_TRANSPORT.
const (
	TransportLog      = "log"
	TransportSendGrid = "sendgrid"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"8080"`

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// LogLevel controls the minimum log level.
	// Valid values: debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to the Vite dev server.
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"http://localhost:5173" envSeparator:","`

	// APIBaseURL prefixes the confirmation links put in emails.
	APIBaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8080"`

	// WebBaseURL is where confirmation endpoints redirect the browser.
	WebBaseURL string `env:"WEB_BASE_URL" envDefault:"http://localhost:5173"`

	MailFromName    string `env:"MAIL_FROM_NAME"    envDefault:"Trip Planner"`
	MailFromAddress string `env:"MAIL_FROM_ADDRESS" envDefault:"hello@tripplanner.local"`

	// MailLocale is a BCP 47 tag selecting the email language.
	MailLocale string `env:"MAIL_LOCALE" envDefault:"en"`

	// MailTransport selects the mail.Sender: "log" or "sendgrid".
	MailTransport string `env:"MAIL_TRANSPORT" envDefault:"log"`

	// SendGridAPIKey is required when MailTransport is "sendgrid".
	SendGridAPIKey  string `env:"SENDGRID_API_KEY"`
	SendGridBaseURL string `env:"SENDGRID_BASE_URL" envDefault:"https://api.sendgrid.com"`

	// MailTimeout bounds a single send on the HTTP transport.
	MailTimeout time.Duration `env:"MAIL_TIMEOUT" envDefault:"30s"`

	// TimeZone is the IANA zone calendar days are evaluated in.
	TimeZone string `env:"TIME_ZONE" envDefault:"UTC"`

	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"1048576"`

	// MigrateOnStart applies pending goose migrations before serving.
	MigrateOnStart bool `env:"MIGRATE_ON_START" envDefault:"false"`
}

// Load reads configuration from the process environment and returns a Config.
// Returns an error naming any required variable that is not set, or any
// value that cannot be used.
func Load() (Config, error) {
	return LoadFrom(env.ToMap(os.Environ()))
}

// LoadFrom is Load over an explicit environment instead of the process one.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	cfg.CORSOrigins = trimAll(cfg.CORSOrigins)
	cfg.MailTransport = strings.ToLower(strings.TrimSpace(cfg.MailTransport))

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error

	switch c.MailTransport {
	case TransportLog:
	case TransportSendGrid:
		if c.SendGridAPIKey == "" {
			errs = append(errs, errors.New("SENDGRID_API_KEY is required when MAIL_TRANSPORT=sendgrid"))
		}
	default:
		errs = append(errs, fmt.Errorf("MAIL_TRANSPORT must be %q or %q, got %q", TransportLog, TransportSendGrid, c.MailTransport))
	}
	if c.MailTimeout <= 0 {
		errs = append(errs, errors.New("MAIL_TIMEOUT must be positive"))
	}
	if c.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("MAX_BODY_BYTES must be positive"))
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Locale(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Location resolves TimeZone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("TIME_ZONE: %w", err)
	}
	return loc, nil
}

// Locale parses MailLocale.
func (c Config) Locale() (language.Tag, error) {
	tag, err := language.Parse(c.MailLocale)
	if err != nil {
		return language.Und, fmt.Errorf("MAIL_LOCALE: %w", err)
	}
	return tag, nil
}

// trimAll trims every entry and drops the empty ones.
func trimAll(in []string) []string {
	var out []string
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
