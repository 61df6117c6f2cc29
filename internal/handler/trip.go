package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// CreateTripRequest is the body of POST /trips.
type CreateTripRequest struct {
	Destination    string    `json:"destination"      validate:"required,min=4"`
	StartsAt       time.Time `json:"starts_at"        validate:"required"`
	EndsAt         time.Time `json:"ends_at"          validate:"required"`
	OwnerName      string    `json:"owner_name"       validate:"required"`
	OwnerEmail     string    `json:"owner_email"      validate:"required,email"`
	EmailsToInvite []string  `json:"emails_to_invite" validate:"omitempty,dive,email"`
}

// UpdateTripRequest is the body of PUT /trips/{tripId}.
type UpdateTripRequest struct {
	Destination string    `json:"destination" validate:"required,min=4"`
	StartsAt    time.Time `json:"starts_at"   validate:"required"`
	EndsAt      time.Time `json:"ends_at"     validate:"required"`
}

// TripIDResponse is returned by the trip write endpoints.
type TripIDResponse struct {
	TripID uuid.UUID `json:"tripId"`
}

// Trip is the public view of a trip.
type Trip struct {
	ID          uuid.UUID `json:"id"`
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	IsConfirmed bool      `json:"is_confirmed"`
}

// TripResponse is the body of GET /trips/{tripId}.
type TripResponse struct {
	Trip Trip `json:"trip"`
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var body CreateTripRequest
	if !decodeBody(w, r, &body) {
		return
	}

	created, err := s.trips.Create(r.Context(), domain.NewTrip{
		Destination:    body.Destination,
		StartsAt:       body.StartsAt,
		EndsAt:         body.EndsAt,
		OwnerName:      body.OwnerName,
		OwnerEmail:     body.OwnerEmail,
		EmailsToInvite: body.EmailsToInvite,
	})
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusCreated, TripIDResponse{TripID: created.ID})
}

// GetTrip handles GET /trips/{tripId}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := bindPathUUID(w, r, "tripId")
	if !ok {
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, TripResponse{Trip: tripToResponse(trip)})
}

// UpdateTrip handles PUT /trips/{tripId}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := bindPathUUID(w, r, "tripId")
	if !ok {
		return
	}
	var body UpdateTripRequest
	if !decodeBody(w, r, &body) {
		return
	}

	updated, err := s.trips.Update(r.Context(), domain.Trip{
		ID:          id,
		Destination: body.Destination,
		StartsAt:    body.StartsAt,
		EndsAt:      body.EndsAt,
	})
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, TripIDResponse{TripID: updated.ID})
}

// ConfirmTrip handles GET /trips/{tripId}/confirm, the link emailed to the
// trip owner. It redirects to the trip page whether or not this request
// performed the confirmation.
func (s *Server) ConfirmTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := bindPathUUID(w, r, "tripId")
	if !ok {
		return
	}

	res, err := s.trips.Confirm(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}

	http.Redirect(w, r, s.tripViewURL(res.Trip.ID), http.StatusFound)
}

// tripToResponse converts a domain.Trip into its public view.
func tripToResponse(t domain.Trip) Trip {
	return Trip{
		ID:          t.ID,
		Destination: t.Destination,
		StartsAt:    t.StartsAt,
		EndsAt:      t.EndsAt,
		IsConfirmed: t.IsConfirmed,
	}
}
