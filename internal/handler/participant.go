package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// CreateInviteRequest is the body of POST /trips/{tripId}/invites.
type CreateInviteRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// InviteResponse is returned by POST /trips/{tripId}/invites.
type InviteResponse struct {
	ParticipantID uuid.UUID `json:"participantId"`
}

// Participant is the public view of a participant.
type Participant struct {
	ID          uuid.UUID `json:"id"`
	Name        *string   `json:"name"`
	Email       string    `json:"email"`
	IsConfirmed bool      `json:"is_confirmed"`
}

// ParticipantsResponse is the body of GET /trips/{tripId}/participants.
type ParticipantsResponse struct {
	Participants []Participant `json:"participants"`
}

// ParticipantDetail adds the owning trip to the participant view.
type ParticipantDetail struct {
	Participant
	TripID uuid.UUID `json:"trip_id"`
}

// ParticipantResponse is the body of GET /participants/{participantId}.
type ParticipantResponse struct {
	Participant ParticipantDetail `json:"participant"`
}

// CreateInvite handles POST /trips/{tripId}/invites.
func (s *Server) CreateInvite(w http.ResponseWriter, r *http.Request) {
	tripID, ok := bindPathUUID(w, r, "tripId")
	if !ok {
		return
	}
	var body CreateInviteRequest
	if !decodeBody(w, r, &body) {
		return
	}

	p, err := s.participants.Invite(r.Context(), tripID, body.Email)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusCreated, InviteResponse{ParticipantID: p.ID})
}

// ListParticipants handles GET /trips/{tripId}/participants.
func (s *Server) ListParticipants(w http.ResponseWriter, r *http.Request) {
	tripID, ok := bindPathUUID(w, r, "tripId")
	if !ok {
		return
	}

	ps, err := s.participants.ListByTrip(r.Context(), tripID)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}

	out := make([]Participant, len(ps))
	for i, p := range ps {
		out[i] = participantToResponse(p)
	}
	writeJSON(w, http.StatusOK, ParticipantsResponse{Participants: out})
}

// GetParticipant handles GET /participants/{participantId}.
func (s *Server) GetParticipant(w http.ResponseWriter, r *http.Request) {
	id, ok := bindPathUUID(w, r, "participantId")
	if !ok {
		return
	}

	p, err := s.participants.GetByID(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, "participant not found")
		return
	}

	writeJSON(w, http.StatusOK, ParticipantResponse{Participant: ParticipantDetail{
		Participant: participantToResponse(p),
		TripID:      p.TripID,
	}})
}

// ConfirmParticipant handles GET /participants/{participantId}/confirm, the
// link emailed to invitees. It is idempotent and redirects to the trip page.
func (s *Server) ConfirmParticipant(w http.ResponseWriter, r *http.Request) {
	id, ok := bindPathUUID(w, r, "participantId")
	if !ok {
		return
	}

	p, err := s.participants.Confirm(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, "participant not found")
		return
	}

	http.Redirect(w, r, s.tripViewURL(p.TripID), http.StatusFound)
}

func participantToResponse(p domain.Participant) Participant {
	return Participant{
		ID:          p.ID,
		Name:        p.Name,
		Email:       p.Email,
		IsConfirmed: p.IsConfirmed,
	}
}
