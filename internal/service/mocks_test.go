package service_test

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/notify"
	"github.com/pkordes/trip-planner/backend/internal/repo"
	"github.com/pkordes/trip-planner/backend/internal/service"
)

// Hand-written test doubles. Each method is a function field; set only the
// ones your test needs. Calling an unset method panics, which doubles as an
// assertion that the code under test did not reach it.

type mockTripRepo struct {
	create  func(ctx context.Context, trip domain.Trip, owner domain.Participant, invitees []string) (domain.Trip, []domain.Participant, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	update  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	confirm func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip, owner domain.Participant, invitees []string) (domain.Trip, []domain.Participant, error) {
	return m.create(ctx, trip, owner, invitees)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Confirm(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.confirm(ctx, id)
}

var _ repo.TripRepo = (*mockTripRepo)(nil)

type mockParticipantRepo struct {
	create       func(ctx context.Context, p domain.Participant) (domain.Participant, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Participant, error)
	listByTrip   func(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
	listInvitees func(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
	confirm      func(ctx context.Context, id uuid.UUID) (domain.Participant, error)
}

func (m *mockParticipantRepo) Create(ctx context.Context, p domain.Participant) (domain.Participant, error) {
	return m.create(ctx, p)
}
func (m *mockParticipantRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	return m.getByID(ctx, id)
}
func (m *mockParticipantRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	return m.listByTrip(ctx, tripID)
}
func (m *mockParticipantRepo) ListInvitees(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	return m.listInvitees(ctx, tripID)
}
func (m *mockParticipantRepo) Confirm(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	return m.confirm(ctx, id)
}

var _ repo.ParticipantRepo = (*mockParticipantRepo)(nil)

type mockActivityRepo struct {
	create     func(ctx context.Context, a domain.Activity) (domain.Activity, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
}

func (m *mockActivityRepo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	return m.create(ctx, a)
}
func (m *mockActivityRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	return m.listByTrip(ctx, tripID)
}

var _ repo.ActivityRepo = (*mockActivityRepo)(nil)

type mockLinkRepo struct {
	create     func(ctx context.Context, l domain.Link) (domain.Link, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error)
}

func (m *mockLinkRepo) Create(ctx context.Context, l domain.Link) (domain.Link, error) {
	return m.create(ctx, l)
}
func (m *mockLinkRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error) {
	return m.listByTrip(ctx, tripID)
}

var _ repo.LinkRepo = (*mockLinkRepo)(nil)

// fakeNotifier records every recipient it is asked to notify.
type fakeNotifier struct {
	mu          sync.Mutex
	invited     []domain.Participant
	inviteCalls int
	owners      []domain.Participant
	failFor     map[string]error
}

func (f *fakeNotifier) InviteAll(_ context.Context, _ domain.Trip, ps []domain.Participant) notify.Report {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inviteCalls++
	var r notify.Report
	for _, p := range ps {
		f.invited = append(f.invited, p)
		r.Outcomes = append(r.Outcomes, notify.Outcome{ParticipantID: p.ID, Email: p.Email, Err: f.failFor[p.Email]})
	}
	return r
}

func (f *fakeNotifier) ConfirmTrip(_ context.Context, _ domain.Trip, owner domain.Participant) notify.Outcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.owners = append(f.owners, owner)
	return notify.Outcome{ParticipantID: owner.ID, Email: owner.Email, Err: f.failFor[owner.Email]}
}

var _ service.Notifier = (*fakeNotifier)(nil)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// tripGetter returns a getByID func that only knows trip.
func tripGetter(trip domain.Trip) func(context.Context, uuid.UUID) (domain.Trip, error) {
	return func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
		if id != trip.ID {
			return domain.Trip{}, domain.ErrNotFound
		}
		return trip, nil
	}
}

func notFoundTrip(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
	return domain.Trip{}, domain.ErrNotFound
}
