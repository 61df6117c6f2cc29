package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/service"
)

func TestLinkService_Create(t *testing.T) {
	trip := pendingTrip()
	links := &mockLinkRepo{
		create: func(_ context.Context, l domain.Link) (domain.Link, error) {
			l.ID = uuid.New()
			return l, nil
		},
	}
	svc := service.NewLinkService(&mockTripRepo{getByID: tripGetter(trip)}, links)

	got, err := svc.Create(context.Background(), domain.Link{TripID: trip.ID, Title: " Hotel booking ", URL: " https://example.com/booking/123 "})

	require.NoError(t, err)
	assert.Equal(t, "Hotel booking", got.Title)
	assert.Equal(t, "https://example.com/booking/123", got.URL)
}

func TestLinkService_Create_Invalid(t *testing.T) {
	trip := pendingTrip()
	tests := []struct {
		name  string
		title string
		url   string
	}{
		{"short title", "Map", "https://example.com"},
		{"relative url", "Hotel booking", "/booking/123"},
		{"ftp url", "Hotel booking", "ftp://example.com/file"},
		{"no host", "Hotel booking", "https://"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := service.NewLinkService(&mockTripRepo{getByID: tripGetter(trip)}, &mockLinkRepo{})

			_, err := svc.Create(context.Background(), domain.Link{TripID: trip.ID, Title: tt.title, URL: tt.url})

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestLinkService_Create_UnknownTrip(t *testing.T) {
	svc := service.NewLinkService(&mockTripRepo{getByID: notFoundTrip}, &mockLinkRepo{})

	_, err := svc.Create(context.Background(), domain.Link{TripID: uuid.New(), Title: "Hotel booking", URL: "https://example.com"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLinkService_ListByTrip_EmptyIsNonNil(t *testing.T) {
	trip := pendingTrip()
	links := &mockLinkRepo{
		listByTrip: func(context.Context, uuid.UUID) ([]domain.Link, error) { return nil, nil },
	}
	svc := service.NewLinkService(&mockTripRepo{getByID: tripGetter(trip)}, links)

	got, err := svc.ListByTrip(context.Background(), trip.ID)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
