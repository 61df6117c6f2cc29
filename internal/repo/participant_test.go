package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/repo"
)

func TestParticipantRepo_CreateAndGet(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewParticipantRepo(tx)
	ctx := context.Background()
	trip, _ := seedTrip(t, tx)

	created, err := r.Create(ctx, domain.Participant{TripID: trip.ID, Email: "new@example.com"})
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", got.Email)
	assert.Equal(t, trip.ID, got.TripID)
	assert.False(t, got.IsOwner)
	assert.False(t, got.IsConfirmed)
}

func TestParticipantRepo_GetByID_NotFound(t *testing.T) {
	tx := newTestTx(t)

	_, err := repo.NewParticipantRepo(tx).GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestParticipantRepo_ListInvitees_ExcludesOwner(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewParticipantRepo(tx)
	ctx := context.Background()
	trip, _ := seedTrip(t, tx, "a@example.com", "b@example.com")

	all, err := r.ListByTrip(ctx, trip.ID)
	require.NoError(t, err)
	invitees, err := r.ListInvitees(ctx, trip.ID)
	require.NoError(t, err)

	assert.Len(t, all, 3)
	require.Len(t, invitees, 2)
	for _, p := range invitees {
		assert.False(t, p.IsOwner)
	}
}

func TestParticipantRepo_Confirm_IsIdempotent(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewParticipantRepo(tx)
	ctx := context.Background()
	_, participants := seedTrip(t, tx, "a@example.com")
	invitee := participants[1]

	first, err := r.Confirm(ctx, invitee.ID)
	require.NoError(t, err)
	second, err := r.Confirm(ctx, invitee.ID)
	require.NoError(t, err)

	assert.True(t, first.IsConfirmed)
	assert.True(t, second.IsConfirmed)
}

func TestParticipantRepo_Confirm_NotFound(t *testing.T) {
	tx := newTestTx(t)

	_, err := repo.NewParticipantRepo(tx).Confirm(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
