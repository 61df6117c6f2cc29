package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/repo"
)

// LinkService manages the reference links attached to a trip.
type LinkService struct {
	trips repo.TripRepo
	links repo.LinkRepo
}

// NewLinkService constructs a LinkService.
func NewLinkService(trips repo.TripRepo, links repo.LinkRepo) *LinkService {
	return &LinkService{trips: trips, links: links}
}

// Create attaches a link to a trip.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *LinkService) Create(ctx context.Context, l domain.Link) (domain.Link, error) {
	if _, err := s.trips.GetByID(ctx, l.TripID); err != nil {
		return domain.Link{}, fmt.Errorf("service.LinkService.Create: %w", err)
	}
	if err := validateText("title", l.Title); err != nil {
		return domain.Link{}, err
	}
	l.URL = strings.TrimSpace(l.URL)
	if err := validateURL(l.URL); err != nil {
		return domain.Link{}, err
	}

	l.Title = strings.TrimSpace(l.Title)
	created, err := s.links.Create(ctx, l)
	if err != nil {
		return domain.Link{}, fmt.Errorf("service.LinkService.Create: %w", err)
	}
	return created, nil
}

// ListByTrip returns a trip's links.
// Always returns a non-nil slice so callers can safely range over it.
func (s *LinkService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.LinkService.ListByTrip: %w", err)
	}
	links, err := s.links.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.LinkService.ListByTrip: %w", err)
	}
	if links == nil {
		return []domain.Link{}, nil
	}
	return links, nil
}
