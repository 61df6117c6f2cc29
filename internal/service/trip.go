package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/notify"
	"github.com/pkordes/trip-planner/backend/internal/repo"
)

// TripService implements the trip lifecycle: creation, updates and the
// Pending→Confirmed transition with its invitation fan-out.
type TripService struct {
	trips        repo.TripRepo
	participants repo.ParticipantRepo
	notifier     Notifier
	log          *slog.Logger
	now          func() time.Time
}

// NewTripService constructs a TripService.
func NewTripService(trips repo.TripRepo, participants repo.ParticipantRepo, n Notifier, log *slog.Logger) *TripService {
	return &TripService{
		trips:        trips,
		participants: participants,
		notifier:     n,
		log:          log,
		now:          time.Now,
	}
}

// ConfirmResult describes what Confirm did.
type ConfirmResult struct {
	Trip domain.Trip
	// AlreadyConfirmed is true when the trip was confirmed before this call;
	// nothing was written and nobody was notified.
	AlreadyConfirmed bool
	// Invitations holds the per-recipient outcome of the fan-out. It is empty
	// when AlreadyConfirmed is true.
	Invitations notify.Report
}

// Create validates and persists a new trip with its owner and invitees, then
// emails the owner the trip confirmation link. Invitees are only emailed when
// the trip is confirmed.
// Returns domain.ErrValidation (or a wrapping error) for invalid input.
func (s *TripService) Create(ctx context.Context, in domain.NewTrip) (domain.Trip, error) {
	if err := validateText("destination", in.Destination); err != nil {
		return domain.Trip{}, err
	}
	if err := ValidateTripDates(in.StartsAt, in.EndsAt, s.now()); err != nil {
		return domain.Trip{}, err
	}
	if strings.TrimSpace(in.OwnerEmail) == "" {
		return domain.Trip{}, fmt.Errorf("%w: owner email is required", domain.ErrValidation)
	}

	owner := domain.Participant{Email: in.OwnerEmail}
	if name := strings.TrimSpace(in.OwnerName); name != "" {
		owner.Name = &name
	}

	trip, participants, err := s.trips.Create(ctx, domain.Trip{
		Destination: strings.TrimSpace(in.Destination),
		StartsAt:    in.StartsAt,
		EndsAt:      in.EndsAt,
	}, owner, dedupeEmails(in.EmailsToInvite, in.OwnerEmail))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	for _, p := range participants {
		if !p.IsOwner {
			continue
		}
		if out := s.notifier.ConfirmTrip(ctx, trip, p); out.Err != nil {
			s.log.WarnContext(ctx, "trip confirmation email not delivered",
				"trip_id", trip.ID,
				"participant_id", p.ID,
				"error", out.Err,
			)
		}
	}
	return trip, nil
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// Update changes a trip's destination and dates.
// Returns domain.ErrNotFound if the trip does not exist, checked before any
// validation, and domain.ErrInvalidDateRange when the new dates break the
// trip date rules. Nothing is written on failure.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if _, err := s.trips.GetByID(ctx, trip.ID); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	if err := validateText("destination", trip.Destination); err != nil {
		return domain.Trip{}, err
	}
	if err := ValidateTripDates(trip.StartsAt, trip.EndsAt, s.now()); err != nil {
		return domain.Trip{}, err
	}

	trip.Destination = strings.TrimSpace(trip.Destination)
	updated, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return updated, nil
}

// Confirm moves a trip from Pending to Confirmed and invites every non-owner
// participant. Confirming an already confirmed trip is a successful no-op.
//
// Invitees are read before the transition so a failed read leaves the trip
// pending and a retry can still fan out. The repo's conditional update
// decides which caller wins a concurrent confirmation, so the fan-out fires
// at most once per trip. Individual send failures are logged and reported in
// the result; they do not fail the call, because the transition has already
// been committed.
func (s *TripService) Confirm(ctx context.Context, id uuid.UUID) (ConfirmResult, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return ConfirmResult{}, fmt.Errorf("service.TripService.Confirm: %w", err)
	}
	if trip.Status() == domain.TripConfirmed {
		return ConfirmResult{Trip: trip, AlreadyConfirmed: true}, nil
	}

	invitees, err := s.participants.ListInvitees(ctx, id)
	if err != nil {
		return ConfirmResult{}, fmt.Errorf("service.TripService.Confirm: list invitees: %w", err)
	}

	transitioned, err := s.trips.Confirm(ctx, id)
	if err != nil {
		return ConfirmResult{}, fmt.Errorf("service.TripService.Confirm: %w", err)
	}
	trip.IsConfirmed = true
	if !transitioned {
		return ConfirmResult{Trip: trip, AlreadyConfirmed: true}, nil
	}

	report := s.notifier.InviteAll(ctx, trip, invitees)
	if err := report.Err(); err != nil {
		s.log.WarnContext(ctx, "some trip invitations were not delivered",
			"trip_id", trip.ID,
			"failed", len(report.Failed()),
			"error", err,
		)
	}
	return ConfirmResult{Trip: trip, Invitations: report}, nil
}

// dedupeEmails drops blanks, case-insensitive duplicates and the owner's own
// address, keeping first-seen order.
func dedupeEmails(emails []string, owner string) []string {
	seen := map[string]bool{strings.ToLower(strings.TrimSpace(owner)): true}
	out := make([]string, 0, len(emails))
	for _, e := range emails {
		e = strings.TrimSpace(e)
		key := strings.ToLower(e)
		if e == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	return out
}
