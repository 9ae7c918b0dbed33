package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/atlastrips/backend/internal/domain"
	"github.com/atlastrips/backend/internal/repo"
)

// ItemService implements business logic for TripItem operations.
// It holds both repos because creating an item requires verifying the
// parent trip exists.
type ItemService struct {
	trips repo.TripRepo
	items repo.ItemRepo
}

// NewItemService constructs an ItemService backed by the provided repos.
func NewItemService(trips repo.TripRepo, items repo.ItemRepo) *ItemService {
	return &ItemService{trips: trips, items: items}
}

// Create validates the item, verifies the parent trip exists, then persists.
// The ID is generated here; day_index and order_index default to 0 and are
// not required to be unique within the day.
// Returns domain.ErrValidation if input violates business rules.
// Returns domain.ErrNotFound if the parent trip does not exist.
func (s *ItemService) Create(ctx context.Context, item domain.TripItem) (domain.TripItem, error) {
	if _, err := s.trips.GetByID(ctx, item.TripID); err != nil {
		return domain.TripItem{}, fmt.Errorf("service.ItemService.Create: %w", err)
	}
	if err := validateItem(item); err != nil {
		return domain.TripItem{}, err
	}

	item.ID = uuid.New()
	result, err := s.items.Create(ctx, item)
	if err != nil {
		return domain.TripItem{}, fmt.Errorf("service.ItemService.Create: %w", err)
	}
	return result, nil
}

// Update applies a partial update: only non-nil fields of upd are changed.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// item does not exist under the given trip.
func (s *ItemService) Update(ctx context.Context, tripID, itemID uuid.UUID, upd domain.TripItemUpdate) (domain.TripItem, error) {
	item, err := s.items.GetByID(ctx, tripID, itemID)
	if err != nil {
		return domain.TripItem{}, fmt.Errorf("service.ItemService.Update: %w", err)
	}

	if upd.Name != nil {
		item.Name = *upd.Name
	}
	if upd.Category != nil {
		item.Category = *upd.Category
	}
	if upd.Lat != nil {
		item.Lat = *upd.Lat
	}
	if upd.Lon != nil {
		item.Lon = *upd.Lon
	}
	if upd.DayIndex != nil {
		item.DayIndex = *upd.DayIndex
	}
	if upd.OrderIndex != nil {
		item.OrderIndex = *upd.OrderIndex
	}
	if upd.PlaceID != nil {
		item.PlaceID = upd.PlaceID
	}
	if upd.Notes != nil {
		item.Notes = upd.Notes
	}

	if err := validateItem(item); err != nil {
		return domain.TripItem{}, err
	}

	result, err := s.items.Update(ctx, item)
	if err != nil {
		return domain.TripItem{}, fmt.Errorf("service.ItemService.Update: %w", err)
	}
	return result, nil
}

// Delete removes an item by ID, scoped to the given tripID.
// Returns domain.ErrNotFound if the item does not exist under the given trip.
func (s *ItemService) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	if err := s.items.Delete(ctx, tripID, itemID); err != nil {
		return fmt.Errorf("service.ItemService.Delete: %w", err)
	}
	return nil
}

// validateItem enforces business rules common to both Create and Update.
//   - Name must be non-empty (whitespace-only names are rejected).
//   - Category must be non-empty.
//   - DayIndex and OrderIndex must be non-negative.
//
// Coordinate ranges are deliberately not checked: items inherit whatever the
// caller supplies, and the optimizer treats coordinates as plain numbers.
func validateItem(item domain.TripItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(item.Category) == "" {
		return fmt.Errorf("%w: category is required", domain.ErrValidation)
	}
	if item.DayIndex < 0 {
		return fmt.Errorf("%w: day_index must not be negative", domain.ErrValidation)
	}
	if item.OrderIndex < 0 {
		return fmt.Errorf("%w: order_index must not be negative", domain.ErrValidation)
	}
	return nil
}
