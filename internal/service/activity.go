package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/repo"
)

// ActivityService schedules activities and builds the day-by-day itinerary.
type ActivityService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
	loc        *time.Location
}

// NewActivityService constructs an ActivityService. Calendar days are
// evaluated in loc; nil means UTC.
func NewActivityService(trips repo.TripRepo, activities repo.ActivityRepo, loc *time.Location) *ActivityService {
	if loc == nil {
		loc = time.UTC
	}
	return &ActivityService{trips: trips, activities: activities, loc: loc}
}

// Create schedules an activity on a trip.
// Returns domain.ErrNotFound if the trip does not exist and
// domain.ErrActivityOutOfRange if the activity's day is outside the trip.
func (s *ActivityService) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	trip, err := s.trips.GetByID(ctx, a.TripID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	if err := validateText("title", a.Title); err != nil {
		return domain.Activity{}, err
	}
	if err := ValidateActivityInstant(a.OccursAt, trip.StartsAt, trip.EndsAt, s.loc); err != nil {
		return domain.Activity{}, err
	}

	a.Title = strings.TrimSpace(a.Title)
	created, err := s.activities.Create(ctx, a)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return created, nil
}

// Itinerary returns one bucket per day of the trip with that day's activities.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *ActivityService) Itinerary(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryDay, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.Itinerary: %w", err)
	}
	activities, err := s.activities.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.Itinerary: %w", err)
	}
	return BuildItinerary(trip.StartsAt, trip.EndsAt, activities, s.loc), nil
}
