package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// CreateActivityRequest is the body of POST /trips/{tripId}/activities.
type CreateActivityRequest struct {
	Title    string    `json:"title"     validate:"required,min=4"`
	OccursAt time.Time `json:"occurs_at" validate:"required"`
}

// ActivityIDResponse is returned by POST /trips/{tripId}/activities.
type ActivityIDResponse struct {
	ActivityID uuid.UUID `json:"activityId"`
}

// Activity is the public view of an activity.
type Activity struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	OccursAt time.Time `json:"occurs_at"`
}

// ItineraryDay is one day of the itinerary.
type ItineraryDay struct {
	Date       time.Time  `json:"date"`
	Activities []Activity `json:"activities"`
}

// ItineraryResponse is the body of GET /trips/{tripId}/activities.
type ItineraryResponse struct {
	Activities []ItineraryDay `json:"activities"`
}

// CreateActivity handles POST /trips/{tripId}/activities.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, ok := bindPathUUID(w, r, "tripId")
	if !ok {
		return
	}
	var body CreateActivityRequest
	if !decodeBody(w, r, &body) {
		return
	}

	created, err := s.activities.Create(r.Context(), domain.Activity{
		TripID:   tripID,
		Title:    body.Title,
		OccursAt: body.OccursAt,
	})
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusCreated, ActivityIDResponse{ActivityID: created.ID})
}

// GetItinerary handles GET /trips/{tripId}/activities.
func (s *Server) GetItinerary(w http.ResponseWriter, r *http.Request) {
	tripID, ok := bindPathUUID(w, r, "tripId")
	if !ok {
		return
	}

	days, err := s.activities.Itinerary(r.Context(), tripID)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}

	out := make([]ItineraryDay, len(days))
	for i, d := range days {
		acts := make([]Activity, len(d.Activities))
		for j, a := range d.Activities {
			acts[j] = Activity{ID: a.ID, Title: a.Title, OccursAt: a.OccursAt}
		}
		out[i] = ItineraryDay{Date: d.Date, Activities: acts}
	}
	writeJSON(w, http.StatusOK, ItineraryResponse{Activities: out})
}
