package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation.
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrInvalidDateRange is returned when a trip's start date is in the past or
// its end date precedes its start date. It wraps ErrValidation.
var ErrInvalidDateRange = fmt.Errorf("%w: invalid date range", ErrValidation)

// ErrActivityOutOfRange is returned when an activity's day falls outside its
// trip's date range. It wraps ErrValidation.
var ErrActivityOutOfRange = fmt.Errorf("%w: activity date outside trip range", ErrValidation)
