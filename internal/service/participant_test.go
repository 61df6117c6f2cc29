package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/service"
)

func newParticipantService(trips *mockTripRepo, participants *mockParticipantRepo, n *fakeNotifier) *service.ParticipantService {
	return service.NewParticipantService(trips, participants, n, discardLogger())
}

func TestParticipantService_Invite_CreatesAndEmails(t *testing.T) {
	trip := pendingTrip()
	n := &fakeNotifier{}
	participants := &mockParticipantRepo{
		create: func(_ context.Context, p domain.Participant) (domain.Participant, error) {
			p.ID = uuid.New()
			return p, nil
		},
	}
	svc := newParticipantService(&mockTripRepo{getByID: tripGetter(trip)}, participants, n)

	got, err := svc.Invite(context.Background(), trip.ID, " bruno@example.com ")

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, trip.ID, got.TripID)
	assert.Equal(t, "bruno@example.com", got.Email)
	assert.False(t, got.IsConfirmed)
	require.Len(t, n.invited, 1)
	assert.Equal(t, got.ID, n.invited[0].ID)
}

func TestParticipantService_Invite_WorksOnPendingTrip(t *testing.T) {
	trip := pendingTrip()
	require.False(t, trip.IsConfirmed)
	n := &fakeNotifier{}
	participants := &mockParticipantRepo{
		create: func(_ context.Context, p domain.Participant) (domain.Participant, error) { return p, nil },
	}
	svc := newParticipantService(&mockTripRepo{getByID: tripGetter(trip)}, participants, n)

	_, err := svc.Invite(context.Background(), trip.ID, "bruno@example.com")

	require.NoError(t, err)
	assert.Len(t, n.invited, 1)
}

func TestParticipantService_Invite_SendFailureStillReturnsParticipant(t *testing.T) {
	trip := pendingTrip()
	n := &fakeNotifier{failFor: map[string]error{"bruno@example.com": errors.New("rejected")}}
	participants := &mockParticipantRepo{
		create: func(_ context.Context, p domain.Participant) (domain.Participant, error) {
			p.ID = uuid.New()
			return p, nil
		},
	}
	svc := newParticipantService(&mockTripRepo{getByID: tripGetter(trip)}, participants, n)

	got, err := svc.Invite(context.Background(), trip.ID, "bruno@example.com")

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
}

func TestParticipantService_Invite_UnknownTripWritesAndSendsNothing(t *testing.T) {
	n := &fakeNotifier{}
	// create is unset: any write panics.
	svc := newParticipantService(&mockTripRepo{getByID: notFoundTrip}, &mockParticipantRepo{}, n)

	_, err := svc.Invite(context.Background(), uuid.New(), "bruno@example.com")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, n.inviteCalls)
}

func TestParticipantService_Invite_BlankEmail(t *testing.T) {
	trip := pendingTrip()
	svc := newParticipantService(&mockTripRepo{getByID: tripGetter(trip)}, &mockParticipantRepo{}, &fakeNotifier{})

	_, err := svc.Invite(context.Background(), trip.ID, "   ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestParticipantService_ListByTrip_EmptyIsNonNil(t *testing.T) {
	trip := pendingTrip()
	participants := &mockParticipantRepo{
		listByTrip: func(context.Context, uuid.UUID) ([]domain.Participant, error) { return nil, nil },
	}
	svc := newParticipantService(&mockTripRepo{getByID: tripGetter(trip)}, participants, &fakeNotifier{})

	got, err := svc.ListByTrip(context.Background(), trip.ID)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestParticipantService_ListByTrip_UnknownTrip(t *testing.T) {
	svc := newParticipantService(&mockTripRepo{getByID: notFoundTrip}, &mockParticipantRepo{}, &fakeNotifier{})

	_, err := svc.ListByTrip(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestParticipantService_Confirm(t *testing.T) {
	id := uuid.New()
	var writes int
	participants := &mockParticipantRepo{
		getByID: func(context.Context, uuid.UUID) (domain.Participant, error) {
			return domain.Participant{ID: id, Email: "bruno@example.com"}, nil
		},
		confirm: func(context.Context, uuid.UUID) (domain.Participant, error) {
			writes++
			return domain.Participant{ID: id, Email: "bruno@example.com", IsConfirmed: true}, nil
		},
	}
	svc := newParticipantService(&mockTripRepo{}, participants, &fakeNotifier{})

	got, err := svc.Confirm(context.Background(), id)

	require.NoError(t, err)
	assert.True(t, got.IsConfirmed)
	assert.Equal(t, domain.ParticipantConfirmed, got.Status())
	assert.Equal(t, 1, writes)
}

func TestParticipantService_Confirm_AlreadyConfirmedSkipsWrite(t *testing.T) {
	participants := &mockParticipantRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Participant, error) {
			return domain.Participant{ID: id, IsConfirmed: true}, nil
		},
	}
	svc := newParticipantService(&mockTripRepo{}, participants, &fakeNotifier{})

	got, err := svc.Confirm(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.True(t, got.IsConfirmed)
}

func TestParticipantService_Confirm_NotFound(t *testing.T) {
	participants := &mockParticipantRepo{
		getByID: func(context.Context, uuid.UUID) (domain.Participant, error) {
			return domain.Participant{}, domain.ErrNotFound
		},
	}
	svc := newParticipantService(&mockTripRepo{}, participants, &fakeNotifier{})

	_, err := svc.Confirm(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
