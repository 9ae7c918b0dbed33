package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atlastrips/backend/internal/domain"
)

// listCitiesResponse wraps the catalog cities.
type listCitiesResponse struct {
	Cities []domain.City `json:"cities"`
}

// listPlacesResponse wraps a city's catalog places.
type listPlacesResponse struct {
	Places []domain.Place `json:"places"`
}

// listCities handles GET /cities.
func (s *Server) listCities(w http.ResponseWriter, r *http.Request) {
	cities, err := s.catalog.ListCities(r.Context())
	if err != nil {
		writeInternal(w)
		return
	}

	writeJSON(w, http.StatusOK, listCitiesResponse{Cities: cities})
}

// listPlaces handles GET /cities/{citySlug}/places?category=.
func (s *Server) listPlaces(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "citySlug")
	category := r.URL.Query().Get("category")

	places, err := s.catalog.ListPlaces(r.Context(), slug, category)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "city not found")
			return
		}
		writeInternal(w)
		return
	}

	writeJSON(w, http.StatusOK, listPlacesResponse{Places: places})
}
