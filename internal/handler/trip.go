package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/atlastrips/backend/internal/domain"
	"github.com/atlastrips/backend/internal/route"
)

// dateFormat is the wire format for trip start/end dates.
const dateFormat = "2006-01-02"

// createTripRequest is the POST /trips body. Every field is optional —
// a bare {} creates an untitled, ownerless trip.
type createTripRequest struct {
	Title     *string `json:"title"`
	CitySlug  *string `json:"city_slug"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	UserID    *string `json:"user_id"`
	SessionID *string `json:"session_id"`
}

// updateTripRequest is the PATCH /trips/{id} body. Absent fields are left
// unchanged; ownership is immutable after create.
type updateTripRequest struct {
	Title     *string `json:"title"`
	CitySlug  *string `json:"city_slug"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// optimizeTripRequest is the POST /trips/{id}/optimize body.
type optimizeTripRequest struct {
	Method string `json:"method"`
}

// listTripsResponse wraps the trip summaries with pagination echo.
type listTripsResponse struct {
	Trips []domain.TripSummary `json:"trips"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
}

// optimizeTripResponse carries the items in their new order.
type optimizeTripResponse struct {
	Items []domain.TripItem `json:"items"`
}

// createTrip handles POST /trips.
func (s *Server) createTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}

	trip := domain.Trip{
		CitySlug:  req.CitySlug,
		UserID:    req.UserID,
		SessionID: req.SessionID,
	}
	if req.Title != nil {
		trip.Title = *req.Title
	}

	var err error
	if trip.StartDate, err = parseDate(req.StartDate); err != nil {
		writeRequestError(w, "start_date must be formatted as YYYY-MM-DD")
		return
	}
	if trip.EndDate, err = parseDate(req.EndDate); err != nil {
		writeRequestError(w, "end_date must be formatted as YYYY-MM-DD")
		return
	}

	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		writeInternal(w)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// getTrip handles GET /trips/{tripID}.
func (s *Server) getTrip(w http.ResponseWriter, r *http.Request) {
	id, err := tripIDParam(r)
	if err != nil {
		writeNotFound(w, "trip not found")
		return
	}

	result, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "trip not found")
			return
		}
		writeInternal(w)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// listTrips handles GET /trips.
// Filters by ?user_id= or ?session_id= (user_id wins when both are given)
// and supports ?page= and ?limit= (defaults: page=1, limit=20, max=100).
func (s *Server) listTrips(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	owner := domain.OwnerFromIDs(q.Get("user_id"), q.Get("session_id"))
	page := domain.NewPaginationParams(queryInt(q.Get("page")), queryInt(q.Get("limit")))

	trips, err := s.trips.List(r.Context(), owner, page)
	if err != nil {
		writeInternal(w)
		return
	}

	writeJSON(w, http.StatusOK, listTripsResponse{Trips: trips, Page: page.Page, Limit: page.Limit})
}

// updateTrip handles PATCH /trips/{tripID}.
func (s *Server) updateTrip(w http.ResponseWriter, r *http.Request) {
	id, err := tripIDParam(r)
	if err != nil {
		writeNotFound(w, "trip not found")
		return
	}

	var req updateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}

	upd := domain.TripUpdate{
		Title:    req.Title,
		CitySlug: req.CitySlug,
	}
	if upd.StartDate, err = parseDate(req.StartDate); err != nil {
		writeRequestError(w, "start_date must be formatted as YYYY-MM-DD")
		return
	}
	if upd.EndDate, err = parseDate(req.EndDate); err != nil {
		writeRequestError(w, "end_date must be formatted as YYYY-MM-DD")
		return
	}

	updated, err := s.trips.Update(r.Context(), id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "trip not found")
			return
		}
		writeInternal(w)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// deleteTrip handles DELETE /trips/{tripID}.
func (s *Server) deleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := tripIDParam(r)
	if err != nil {
		writeNotFound(w, "trip not found")
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "trip not found")
			return
		}
		writeInternal(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// optimizeTrip handles POST /trips/{tripID}/optimize.
// An empty body defaults to the nearest-neighbor method.
func (s *Server) optimizeTrip(w http.ResponseWriter, r *http.Request) {
	id, err := tripIDParam(r)
	if err != nil {
		writeNotFound(w, "trip not found")
		return
	}

	var req optimizeTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeRequestError(w, "invalid request body")
		return
	}

	method, ok := route.ParseMethod(req.Method)
	if !ok {
		writeRequestError(w, "method must be one of: nearest, two_opt")
		return
	}

	items, err := s.trips.Optimize(r.Context(), id, method)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "trip not found")
			return
		}
		writeInternal(w)
		return
	}

	writeJSON(w, http.StatusOK, optimizeTripResponse{Items: items})
}

// --- mapping helpers --------------------------------------------------------

// parseDate converts an optional YYYY-MM-DD string into an optional time.
func parseDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(dateFormat, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// queryInt parses an optional integer query parameter. Malformed values are
// treated as absent rather than rejected — pagination has safe defaults.
func queryInt(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
