package service

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pkordes/trip-planner/backend/internal/daterange"
	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// MinTextLength is the minimum length of destinations and titles, in runes.
const MinTextLength = 4

// ValidateTripDates enforces the date rules for creating or updating a trip:
//   - start must not be strictly before now.
//   - end must not be strictly before start.
//
// Both comparisons are on instants, not calendar days.
func ValidateTripDates(start, end, now time.Time) error {
	if start.Before(now) {
		return fmt.Errorf("%w: trip start date must not be in the past", domain.ErrInvalidDateRange)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: trip end date must not be before its start date", domain.ErrInvalidDateRange)
	}
	return nil
}

// ValidateActivityInstant enforces that an activity's calendar day, evaluated
// in loc, lies within the trip's [start day, end day] range, inclusive.
func ValidateActivityInstant(at, tripStart, tripEnd time.Time, loc *time.Location) error {
	if daterange.DayBefore(at, tripStart, loc) {
		return fmt.Errorf("%w: activity date is before the trip starts", domain.ErrActivityOutOfRange)
	}
	if daterange.DayAfter(at, tripEnd, loc) {
		return fmt.Errorf("%w: activity date is after the trip ends", domain.ErrActivityOutOfRange)
	}
	return nil
}

// validateText rejects values shorter than MinTextLength after trimming.
func validateText(field, value string) error {
	if utf8.RuneCountInString(strings.TrimSpace(value)) < MinTextLength {
		return fmt.Errorf("%w: %s must be at least %d characters", domain.ErrValidation, field, MinTextLength)
	}
	return nil
}

// validateURL accepts absolute http(s) URLs with a host.
func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%w: url must be an absolute URL", domain.ErrValidation)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: url scheme must be http or https", domain.ErrValidation)
	}
	return nil
}
