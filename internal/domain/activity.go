package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is something scheduled at a specific instant during a trip.
// Its calendar day must fall inside the trip's date range.
type Activity struct {
	ID        uuid.UUID `json:"id"`
	TripID    uuid.UUID `json:"trip_id"`
	Title     string    `json:"title"`
	OccursAt  time.Time `json:"occurs_at"`
	CreatedAt time.Time `json:"created_at"`
}

// ItineraryDay is one calendar day of a trip and the activities on it,
// in ascending OccursAt order.
type ItineraryDay struct {
	Date       time.Time  `json:"date"`
	Activities []Activity `json:"activities"`
}
