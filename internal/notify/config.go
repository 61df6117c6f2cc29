// Package notify composes and dispatches the trip emails: invitations sent to
// participants when a trip is confirmed or someone is invited, and the
// trip-confirmation email sent to the owner when a trip is created.
package notify

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/pkordes/trip-planner/backend/internal/mail"
)

// Config is everything the notifier needs besides its transport.
type Config struct {
	// APIBaseURL is the public base URL of this API; confirmation links are
	// built from it. Required, absolute.
	APIBaseURL string

	// From is the sender identity on every email. From.Email is required.
	From mail.Address

	// Locale selects the language of subjects, bodies and long dates.
	// Unsupported locales fall back to the closest supported one. Defaults
	// to English.
	Locale language.Tag

	// Location is the time zone dates are rendered in. Defaults to UTC.
	Location *time.Location
}

func (c Config) validate() (Config, error) {
	u, err := url.Parse(strings.TrimSpace(c.APIBaseURL))
	if err != nil || !u.IsAbs() || u.Host == "" {
		return Config{}, fmt.Errorf("notify: APIBaseURL must be an absolute URL, got %q", c.APIBaseURL)
	}
	c.APIBaseURL = strings.TrimRight(u.String(), "/")

	if strings.TrimSpace(c.From.Email) == "" {
		return Config{}, fmt.Errorf("notify: From.Email is required")
	}
	if c.Locale == language.Und {
		c.Locale = language.English
	}
	if c.Location == nil {
		c.Location = time.UTC
	}
	return c, nil
}
