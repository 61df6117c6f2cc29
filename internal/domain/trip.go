// Package domain contains the core data types for the Trip Planner application.
// This package depends only on uuid and the standard library and is imported
// by every other internal package (repo, service, notify, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a planned journey with a destination and a date range.
// A trip is the top-level aggregate; participants, activities and links
// belong to a trip.
//
// IsConfirmed only ever moves from false to true.
type Trip struct {
	ID          uuid.UUID `json:"id"`
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	IsConfirmed bool      `json:"is_confirmed"`
	CreatedAt   time.Time `json:"created_at"`
}

// TripStatus is the confirmation state of a trip.
type TripStatus string

const (
	TripPending   TripStatus = "pending"
	TripConfirmed TripStatus = "confirmed"
)

// Status derives the state-machine state from the persisted flag.
func (t Trip) Status() TripStatus {
	if t.IsConfirmed {
		return TripConfirmed
	}
	return TripPending
}

// NewTrip carries everything needed to create a trip together with its owner
// and the people initially invited to it.
type NewTrip struct {
	Destination    string
	StartsAt       time.Time
	EndsAt         time.Time
	OwnerName      string
	OwnerEmail     string
	EmailsToInvite []string
}
