package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// CreateLinkRequest is the body of POST /trips/{tripId}/links.
type CreateLinkRequest struct {
	Title string `json:"title" validate:"required,min=4"`
	URL   string `json:"url"   validate:"required,url"`
}

// LinkIDResponse is returned by POST /trips/{tripId}/links.
type LinkIDResponse struct {
	LinkID uuid.UUID `json:"linkId"`
}

// Link is the public view of a link.
type Link struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	URL   string    `json:"url"`
}

// LinksResponse is the body of GET /trips/{tripId}/links.
type LinksResponse struct {
	Links []Link `json:"links"`
}

// CreateLink handles POST /trips/{tripId}/links.
func (s *Server) CreateLink(w http.ResponseWriter, r *http.Request) {
	tripID, ok := bindPathUUID(w, r, "tripId")
	if !ok {
		return
	}
	var body CreateLinkRequest
	if !decodeBody(w, r, &body) {
		return
	}

	created, err := s.links.Create(r.Context(), domain.Link{TripID: tripID, Title: body.Title, URL: body.URL})
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusCreated, LinkIDResponse{LinkID: created.ID})
}

// ListLinks handles GET /trips/{tripId}/links.
func (s *Server) ListLinks(w http.ResponseWriter, r *http.Request) {
	tripID, ok := bindPathUUID(w, r, "tripId")
	if !ok {
		return
	}

	links, err := s.links.ListByTrip(r.Context(), tripID)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}

	out := make([]Link, len(links))
	for i, l := range links {
		out[i] = Link{ID: l.ID, Title: l.Title, URL: l.URL}
	}
	writeJSON(w, http.StatusOK, LinksResponse{Links: out})
}
