package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/atlastrips/backend/internal/domain"
)

// createItemRequest is the POST /trips/{id}/items body.
// Name, category, and both coordinates are required; everything else is
// optional with zero-value defaults.
type createItemRequest struct {
	Name       *string  `json:"name"`
	Category   *string  `json:"category"`
	Lat        *float64 `json:"lat"`
	Lon        *float64 `json:"lon"`
	DayIndex   *int     `json:"day_index"`
	OrderIndex *int     `json:"order_index"`
	PlaceID    *int64   `json:"place_id"`
	Notes      *string  `json:"notes"`
}

// updateItemRequest is the PATCH /trips/{id}/items/{itemID} body.
// Absent fields are left unchanged.
type updateItemRequest struct {
	Name       *string  `json:"name"`
	Category   *string  `json:"category"`
	Lat        *float64 `json:"lat"`
	Lon        *float64 `json:"lon"`
	DayIndex   *int     `json:"day_index"`
	OrderIndex *int     `json:"order_index"`
	PlaceID    *int64   `json:"place_id"`
	Notes      *string  `json:"notes"`
}

// createItem handles POST /trips/{tripID}/items.
func (s *Server) createItem(w http.ResponseWriter, r *http.Request) {
	tripID, err := tripIDParam(r)
	if err != nil {
		writeNotFound(w, "trip not found")
		return
	}

	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}

	// Required-field presence is checked here because absence and zero are
	// indistinguishable once mapped onto the domain struct.
	switch {
	case req.Name == nil:
		writeRequestError(w, "name is required")
		return
	case req.Category == nil:
		writeRequestError(w, "category is required")
		return
	case req.Lat == nil || req.Lon == nil:
		writeRequestError(w, "lat and lon are required")
		return
	}

	item := domain.TripItem{
		TripID:   tripID,
		Name:     *req.Name,
		Category: *req.Category,
		Lat:      *req.Lat,
		Lon:      *req.Lon,
		PlaceID:  req.PlaceID,
		Notes:    req.Notes,
	}
	if req.DayIndex != nil {
		item.DayIndex = *req.DayIndex
	}
	if req.OrderIndex != nil {
		item.OrderIndex = *req.OrderIndex
	}

	created, err := s.items.Create(r.Context(), item)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeNotFound(w, "trip not found")
		case errors.Is(err, domain.ErrValidation):
			writeValidation(w, err)
		default:
			writeInternal(w)
		}
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// updateItem handles PATCH /trips/{tripID}/items/{itemID}.
func (s *Server) updateItem(w http.ResponseWriter, r *http.Request) {
	tripID, itemID, err := itemParams(r)
	if err != nil {
		writeNotFound(w, "trip item not found")
		return
	}

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}

	upd := domain.TripItemUpdate{
		Name:       req.Name,
		Category:   req.Category,
		Lat:        req.Lat,
		Lon:        req.Lon,
		DayIndex:   req.DayIndex,
		OrderIndex: req.OrderIndex,
		PlaceID:    req.PlaceID,
		Notes:      req.Notes,
	}

	updated, err := s.items.Update(r.Context(), tripID, itemID, upd)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeNotFound(w, "trip item not found")
		case errors.Is(err, domain.ErrValidation):
			writeValidation(w, err)
		default:
			writeInternal(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// deleteItem handles DELETE /trips/{tripID}/items/{itemID}.
func (s *Server) deleteItem(w http.ResponseWriter, r *http.Request) {
	tripID, itemID, err := itemParams(r)
	if err != nil {
		writeNotFound(w, "trip item not found")
		return
	}

	if err := s.items.Delete(r.Context(), tripID, itemID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "trip item not found")
			return
		}
		writeInternal(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// itemParams parses the {tripID} and {itemID} URL parameters.
func itemParams(r *http.Request) (tripID, itemID uuid.UUID, err error) {
	if tripID, err = tripIDParam(r); err != nil {
		return uuid.UUID{}, uuid.UUID{}, err
	}
	if itemID, err = uuid.Parse(chi.URLParam(r, "itemID")); err != nil {
		return uuid.UUID{}, uuid.UUID{}, err
	}
	return tripID, itemID, nil
}
