package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/repo"
)

// ParticipantService implements invitations and participant confirmation.
type ParticipantService struct {
	trips        repo.TripRepo
	participants repo.ParticipantRepo
	notifier     Notifier
	log          *slog.Logger
}

// NewParticipantService constructs a ParticipantService.
func NewParticipantService(trips repo.TripRepo, participants repo.ParticipantRepo, n Notifier, log *slog.Logger) *ParticipantService {
	return &ParticipantService{trips: trips, participants: participants, notifier: n, log: log}
}

// Invite adds a participant to a trip and emails them an invitation.
// The trip's own confirmation state is not checked.
// Returns domain.ErrNotFound if the trip does not exist; nothing is written
// or sent in that case. A failed send is logged, not returned.
func (s *ParticipantService) Invite(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: %w", err)
	}

	email = strings.TrimSpace(email)
	if email == "" {
		return domain.Participant{}, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	p, err := s.participants.Create(ctx, domain.Participant{TripID: trip.ID, Email: email})
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: %w", err)
	}

	report := s.notifier.InviteAll(ctx, trip, []domain.Participant{p})
	if err := report.Err(); err != nil {
		s.log.WarnContext(ctx, "invitation not delivered",
			"trip_id", trip.ID,
			"participant_id", p.ID,
			"error", err,
		)
	}
	return p, nil
}

// ListByTrip returns every participant of a trip, owner included.
// Returns domain.ErrNotFound if the trip does not exist.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ParticipantService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.ParticipantService.ListByTrip: %w", err)
	}
	ps, err := s.participants.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ParticipantService.ListByTrip: %w", err)
	}
	if ps == nil {
		return []domain.Participant{}, nil
	}
	return ps, nil
}

// GetByID returns a single participant.
func (s *ParticipantService) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	p, err := s.participants.GetByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.GetByID: %w", err)
	}
	return p, nil
}

// Confirm records that an invitee accepted. Already confirmed participants
// are returned unchanged without a write.
// Returns domain.ErrNotFound if the participant does not exist.
func (s *ParticipantService) Confirm(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	p, err := s.participants.GetByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Confirm: %w", err)
	}
	if p.IsConfirmed {
		return p, nil
	}
	p, err = s.participants.Confirm(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Confirm: %w", err)
	}
	return p, nil
}
