package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/repo"
	"github.com/pkordes/trip-planner/backend/testutil"
)

// newTestTx opens a transaction against the test database that is rolled
// back when the test finishes.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	return testutil.NewTx(t)
}

// tripFixture returns a domain.Trip with sensible defaults for use in tests.
func tripFixture() domain.Trip {
	return domain.Trip{
		Destination: "Lisbon",
		StartsAt:    time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC),
	}
}

func ownerFixture() domain.Participant {
	name := "Ana Owner"
	return domain.Participant{Name: &name, Email: "owner@example.com"}
}

// seedTrip creates a trip with an owner and the given invitees.
func seedTrip(t *testing.T, tx pgx.Tx, invitees ...string) (domain.Trip, []domain.Participant) {
	t.Helper()
	trip, participants, err := repo.NewTripRepo(tx).Create(context.Background(), tripFixture(), ownerFixture(), invitees)
	require.NoError(t, err)
	return trip, participants
}
