package domain

import (
	"time"

	"github.com/google/uuid"
)

// Participant is a person attached to a trip: either its owner or an invitee.
// Name stays nil until the participant fills it in.
type Participant struct {
	ID          uuid.UUID `json:"id"`
	TripID      uuid.UUID `json:"trip_id"`
	Name        *string   `json:"name"`
	Email       string    `json:"email"`
	IsOwner     bool      `json:"is_owner"`
	IsConfirmed bool      `json:"is_confirmed"`
	CreatedAt   time.Time `json:"created_at"`
}

// ParticipantStatus is the confirmation state of a non-owner participant.
type ParticipantStatus string

const (
	ParticipantInvited   ParticipantStatus = "invited"
	ParticipantConfirmed ParticipantStatus = "confirmed"
)

// Status derives the state-machine state from the persisted flag.
func (p Participant) Status() ParticipantStatus {
	if p.IsConfirmed {
		return ParticipantConfirmed
	}
	return ParticipantInvited
}
