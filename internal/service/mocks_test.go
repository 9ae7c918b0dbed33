package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/atlastrips/backend/internal/domain"
	"github.com/atlastrips/backend/internal/repo"
)

// Hand-written test doubles for the repo interfaces.
// Each method is a function field — set only the ones your test needs.
// This is idiomatic Go: no mock generation library required for simple cases.

type mockTripRepo struct {
	create  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	list    func(ctx context.Context, owner domain.Owner, page domain.PaginationParams) ([]domain.TripSummary, error)
	update  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) List(ctx context.Context, owner domain.Owner, page domain.PaginationParams) ([]domain.TripSummary, error) {
	return m.list(ctx, owner, page)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.TripRepo = (*mockTripRepo)(nil)

type mockItemRepo struct {
	create       func(ctx context.Context, item domain.TripItem) (domain.TripItem, error)
	getByID      func(ctx context.Context, tripID, itemID uuid.UUID) (domain.TripItem, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.TripItem, error)
	listByIDs    func(ctx context.Context, tripID uuid.UUID, ids []uuid.UUID) ([]domain.TripItem, error)
	update       func(ctx context.Context, item domain.TripItem) (domain.TripItem, error)
	delete       func(ctx context.Context, tripID, itemID uuid.UUID) error
	reorder      func(ctx context.Context, tripID uuid.UUID, ids []uuid.UUID) error
}

func (m *mockItemRepo) Create(ctx context.Context, item domain.TripItem) (domain.TripItem, error) {
	return m.create(ctx, item)
}
func (m *mockItemRepo) GetByID(ctx context.Context, tripID, itemID uuid.UUID) (domain.TripItem, error) {
	return m.getByID(ctx, tripID, itemID)
}
func (m *mockItemRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.TripItem, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockItemRepo) ListByIDs(ctx context.Context, tripID uuid.UUID, ids []uuid.UUID) ([]domain.TripItem, error) {
	return m.listByIDs(ctx, tripID, ids)
}
func (m *mockItemRepo) Update(ctx context.Context, item domain.TripItem) (domain.TripItem, error) {
	return m.update(ctx, item)
}
func (m *mockItemRepo) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	return m.delete(ctx, tripID, itemID)
}
func (m *mockItemRepo) Reorder(ctx context.Context, tripID uuid.UUID, ids []uuid.UUID) error {
	return m.reorder(ctx, tripID, ids)
}

var _ repo.ItemRepo = (*mockItemRepo)(nil)

type mockPlaceRepo struct {
	getByIDs       func(ctx context.Context, ids []int64) ([]domain.Place, error)
	listCities     func(ctx context.Context) ([]domain.City, error)
	listByCitySlug func(ctx context.Context, slug, category string) ([]domain.Place, error)
}

func (m *mockPlaceRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Place, error) {
	return m.getByIDs(ctx, ids)
}
func (m *mockPlaceRepo) ListCities(ctx context.Context) ([]domain.City, error) {
	return m.listCities(ctx)
}
func (m *mockPlaceRepo) ListByCitySlug(ctx context.Context, slug, category string) ([]domain.Place, error) {
	return m.listByCitySlug(ctx, slug, category)
}

var _ repo.PlaceRepo = (*mockPlaceRepo)(nil)
