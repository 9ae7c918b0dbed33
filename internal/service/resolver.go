package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/atlastrips/backend/internal/domain"
	"github.com/atlastrips/backend/internal/repo"
)

// ResolverService maps caller-supplied identifiers to canonical points,
// drawing from a trip's items when a trip scope is given and from the
// points-of-interest catalog otherwise.
type ResolverService struct {
	items  repo.ItemRepo
	places repo.PlaceRepo
}

// NewResolverService constructs a ResolverService backed by the provided repos.
func NewResolverService(items repo.ItemRepo, places repo.PlaceRepo) *ResolverService {
	return &ResolverService{items: items, places: places}
}

// Resolve maps ids to resolved points. An empty id list yields an empty
// result, not an error.
//
// With a trip scope, each id is matched against that trip's items; ids that
// do not match (including ids that are not valid UUIDs) are silently dropped,
// and the result follows the backing lookup's order rather than the input
// order. Without a scope, every id must parse as an integer catalog key —
// any malformed id fails the whole request with domain.ErrInvalidIdentifier
// before any lookup happens — and valid-but-unknown keys are omitted.
func (s *ResolverService) Resolve(ctx context.Context, ids []string, tripID *uuid.UUID) ([]domain.ResolvedItem, error) {
	if len(ids) == 0 {
		return []domain.ResolvedItem{}, nil
	}

	if tripID != nil {
		return s.resolveFromTrip(ctx, ids, *tripID)
	}
	return s.resolveFromCatalog(ctx, ids)
}

func (s *ResolverService) resolveFromTrip(ctx context.Context, ids []string, tripID uuid.UUID) ([]domain.ResolvedItem, error) {
	itemIDs := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			// Not a UUID, so it cannot match any item — same outcome
			// as a well-formed but unknown id.
			continue
		}
		itemIDs = append(itemIDs, id)
	}

	items, err := s.items.ListByIDs(ctx, tripID, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("service.ResolverService.Resolve: %w", err)
	}

	resolved := make([]domain.ResolvedItem, len(items))
	for i, it := range items {
		resolved[i] = domain.ResolvedItem{
			ID:       it.ID.String(),
			Name:     it.Name,
			Lat:      it.Lat,
			Lon:      it.Lon,
			Category: it.Category,
		}
	}
	return resolved, nil
}

func (s *ResolverService) resolveFromCatalog(ctx context.Context, ids []string) ([]domain.ResolvedItem, error) {
	// Batch-or-nothing validation: reject the whole request on the first
	// malformed id, before any partial result is assembled.
	placeIDs := make([]int64, len(ids))
	for i, raw := range ids {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("service.ResolverService.Resolve: %w: %q", domain.ErrInvalidIdentifier, raw)
		}
		placeIDs[i] = id
	}

	places, err := s.places.GetByIDs(ctx, placeIDs)
	if err != nil {
		return nil, fmt.Errorf("service.ResolverService.Resolve: %w", err)
	}

	resolved := make([]domain.ResolvedItem, len(places))
	for i, p := range places {
		resolved[i] = domain.ResolvedItem{
			ID:       strconv.FormatInt(p.ID, 10),
			Name:     p.Name,
			Lat:      p.Lat,
			Lon:      p.Lon,
			Category: p.Category,
		}
	}
	return resolved, nil
}
