// Package service contains the business logic for the trip itinerary API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/atlastrips/backend/internal/domain"
	"github.com/atlastrips/backend/internal/repo"
	"github.com/atlastrips/backend/internal/route"
)

// TripService implements business logic for Trip operations, including the
// route optimization that rewrites item order.
type TripService struct {
	trips repo.TripRepo
	items repo.ItemRepo
}

// NewTripService constructs a TripService backed by the provided repos.
func NewTripService(trips repo.TripRepo, items repo.ItemRepo) *TripService {
	return &TripService{trips: trips, items: items}
}

// Create persists a new trip. The ID is generated here and the slug derived
// from it; a missing title falls back to the default. A trip starts empty —
// items are added separately.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	trip.ID = uuid.New()
	trip.Slug = domain.TripSlug(trip.ID)
	if trip.Title == "" {
		trip.Title = domain.DefaultTripTitle
	}

	result, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a trip together with its items in display order.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.TripWithItems, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.TripWithItems{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}

	items, err := s.items.ListByTripID(ctx, id)
	if err != nil {
		return domain.TripWithItems{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	if items == nil {
		items = []domain.TripItem{}
	}
	// The repo already orders its query, but the display-order contract
	// belongs to the service, not to whichever store backs it.
	domain.SortItems(items)

	return domain.TripWithItems{Trip: trip, Items: items}, nil
}

// List returns trip summaries for the given owner filter, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context, owner domain.Owner, page domain.PaginationParams) ([]domain.TripSummary, error) {
	trips, err := s.trips.List(ctx, owner, page)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.TripSummary{}, nil
	}
	return trips, nil
}

// Update applies a partial update: only non-nil fields of upd are changed.
// updated_at is refreshed by the repo. There is no version column — two
// concurrent updates race and the last commit wins.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Update(ctx context.Context, id uuid.UUID, upd domain.TripUpdate) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}

	if upd.Title != nil {
		trip.Title = *upd.Title
	}
	if upd.CitySlug != nil {
		trip.CitySlug = upd.CitySlug
	}
	if upd.StartDate != nil {
		trip.StartDate = upd.StartDate
	}
	if upd.EndDate != nil {
		trip.EndDate = upd.EndDate
	}

	result, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip; its items go with it via the schema-level cascade.
// Deleting an already-deleted trip returns domain.ErrNotFound, not success.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// Optimize reorders a trip's items with the requested heuristic and persists
// dense order_index values 0..N-1 in a single atomic write, returning the
// items in their new order. Fewer than 2 items is a no-op.
//
// The whole item set is optimized in one pass regardless of day_index, so
// the resulting path can cross day boundaries. This matches the established
// behavior of the planner; a per-day pass would be a loop over day groups
// at this call site.
func (s *TripService) Optimize(ctx context.Context, tripID uuid.UUID, method route.Method) ([]domain.TripItem, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.TripService.Optimize: %w", err)
	}

	items, err := s.items.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.Optimize: %w", err)
	}
	if len(items) < 2 {
		if items == nil {
			items = []domain.TripItem{}
		}
		return items, nil
	}

	nodes := make([]route.Node, len(items))
	for i, it := range items {
		nodes[i] = route.Node{Lat: it.Lat, Lon: it.Lon}
	}

	order := route.Optimize(method, nodes)

	reordered := make([]domain.TripItem, len(items))
	ids := make([]uuid.UUID, len(items))
	for pos, idx := range order {
		it := items[idx]
		it.OrderIndex = pos
		reordered[pos] = it
		ids[pos] = it.ID
	}

	if err := s.items.Reorder(ctx, tripID, ids); err != nil {
		return nil, fmt.Errorf("service.TripService.Optimize: %w", err)
	}

	return reordered, nil
}
