package service

import (
	"context"
	"fmt"

	"github.com/atlastrips/backend/internal/domain"
	"github.com/atlastrips/backend/internal/repo"
)

// CatalogService exposes the read-only city/place reference data.
type CatalogService struct {
	places repo.PlaceRepo
}

// NewCatalogService constructs a CatalogService backed by the provided repo.
func NewCatalogService(places repo.PlaceRepo) *CatalogService {
	return &CatalogService{places: places}
}

// ListCities returns all catalog cities ordered by name.
// Always returns a non-nil slice so callers can safely range over it.
func (s *CatalogService) ListCities(ctx context.Context) ([]domain.City, error) {
	cities, err := s.places.ListCities(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogService.ListCities: %w", err)
	}
	if cities == nil {
		return []domain.City{}, nil
	}
	return cities, nil
}

// ListPlaces returns a city's places, optionally filtered by category.
// Returns domain.ErrNotFound for an unknown city slug.
func (s *CatalogService) ListPlaces(ctx context.Context, citySlug, category string) ([]domain.Place, error) {
	places, err := s.places.ListByCitySlug(ctx, citySlug, category)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogService.ListPlaces: %w", err)
	}
	if places == nil {
		return []domain.Place{}, nil
	}
	return places, nil
}
