// Package httpapi exposes the entity services over HTTP: /locals/,
// /eventtypes/, /events/, plus /links/ for the location-event association.
// Create maps to POST, list/get to GET, partial update to PUT, delete to
// DELETE. Errors travel as {"detail": ...} bodies with 404 for missing
// records and 422 for rejected payloads.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/mesh-intelligence/eventbook/internal/service"
	"github.com/mesh-intelligence/eventbook/pkg/types"
)

// Server routes HTTP requests to the entity services.
type Server struct {
	services *service.Registry
	log      *slog.Logger
	mux      *http.ServeMux
}

// New builds a Server with all routes registered.
func New(services *service.Registry, log *slog.Logger) *Server {
	s := &Server{
		services: services,
		log:      log,
		mux:      http.NewServeMux(),
	}
	s.routes()
	return s
}

// Handler returns the full handler chain, including request logging.
func (s *Server) Handler() http.Handler {
	return s.requestLogger(s.mux)
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /locals/{$}", s.createLocation)
	s.mux.HandleFunc("GET /locals/{$}", s.listLocations)
	s.mux.HandleFunc("GET /locals/{id}", s.getLocation)
	s.mux.HandleFunc("PUT /locals/{id}", s.updateLocation)
	s.mux.HandleFunc("DELETE /locals/{id}", s.deleteLocation)

	s.mux.HandleFunc("POST /eventtypes/{$}", s.createEventType)
	s.mux.HandleFunc("GET /eventtypes/{$}", s.listEventTypes)
	s.mux.HandleFunc("GET /eventtypes/{id}", s.getEventType)
	s.mux.HandleFunc("PUT /eventtypes/{id}", s.updateEventType)
	s.mux.HandleFunc("DELETE /eventtypes/{id}", s.deleteEventType)

	s.mux.HandleFunc("POST /events/{$}", s.createEvent)
	s.mux.HandleFunc("GET /events/{$}", s.listEvents)
	s.mux.HandleFunc("GET /events/{id}", s.getEvent)
	s.mux.HandleFunc("PUT /events/{id}", s.updateEvent)
	s.mux.HandleFunc("DELETE /events/{id}", s.deleteEvent)

	s.mux.HandleFunc("POST /links/{$}", s.createLink)
	s.mux.HandleFunc("GET /links/{$}", s.listLinks)
	s.mux.HandleFunc("GET /links/{id}", s.getLink)
	s.mux.HandleFunc("DELETE /links/{id}", s.deleteLink)
}

// Location handlers.

func (s *Server) createLocation(w http.ResponseWriter, r *http.Request) {
	var loc types.Location
	if err := decodeJSON(r, &loc); err != nil {
		s.writeError(w, err)
		return
	}
	created, err := s.services.Locations.Create(loc)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (s *Server) listLocations(w http.ResponseWriter, r *http.Request) {
	locs, err := s.services.Locations.List()
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, locs)
}

func (s *Server) getLocation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	loc, err := s.services.Locations.Get(id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loc)
}

func (s *Server) updateLocation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	var patch types.LocationPatch
	if err := decodeJSON(r, &patch); err != nil {
		s.writeError(w, err)
		return
	}
	updated, err := s.services.Locations.Update(id, patch)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) deleteLocation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.services.Locations.Delete(id); err != nil {
		s.writeError(w, err)
		return
	}
	writeDetail(w, "Local deleted successfully")
}

// EventType handlers.

func (s *Server) createEventType(w http.ResponseWriter, r *http.Request) {
	var et types.EventType
	if err := decodeJSON(r, &et); err != nil {
		s.writeError(w, err)
		return
	}
	created, err := s.services.EventTypes.Create(et)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (s *Server) listEventTypes(w http.ResponseWriter, r *http.Request) {
	ets, err := s.services.EventTypes.List()
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ets)
}

func (s *Server) getEventType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	et, err := s.services.EventTypes.Get(id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, et)
}

func (s *Server) updateEventType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	var patch types.EventTypePatch
	if err := decodeJSON(r, &patch); err != nil {
		s.writeError(w, err)
		return
	}
	updated, err := s.services.EventTypes.Update(id, patch)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) deleteEventType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.services.EventTypes.Delete(id); err != nil {
		s.writeError(w, err)
		return
	}
	writeDetail(w, "Event Type deleted successfully")
}

// Event handlers.

func (s *Server) createEvent(w http.ResponseWriter, r *http.Request) {
	var ev types.Event
	if err := decodeJSON(r, &ev); err != nil {
		s.writeError(w, err)
		return
	}
	created, err := s.services.Events.Create(ev)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (s *Server) listEvents(w http.ResponseWriter, r *http.Request) {
	evs, err := s.services.Events.List()
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, evs)
}

func (s *Server) getEvent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	ev, err := s.services.Events.Get(id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ev)
}

func (s *Server) updateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	var patch types.EventPatch
	if err := decodeJSON(r, &patch); err != nil {
		s.writeError(w, err)
		return
	}
	updated, err := s.services.Events.Update(id, patch)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) deleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.services.Events.Delete(id); err != nil {
		s.writeError(w, err)
		return
	}
	writeDetail(w, "Event deleted successfully")
}

// Link handlers.

// linkRequest is the create-link payload.
type linkRequest struct {
	LocationID int64 `json:"location_id"`
	EventID    int64 `json:"event_id"`
}

func (s *Server) createLink(w http.ResponseWriter, r *http.Request) {
	var req linkRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	link, err := s.services.Links.Create(req.LocationID, req.EventID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, link)
}

func (s *Server) listLinks(w http.ResponseWriter, r *http.Request) {
	links, err := s.services.Links.List()
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, links)
}

func (s *Server) getLink(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	link, err := s.services.Links.Get(id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, link)
}

func (s *Server) deleteLink(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.services.Links.Delete(id); err != nil {
		s.writeError(w, err)
		return
	}
	writeDetail(w, "Link deleted successfully")
}
