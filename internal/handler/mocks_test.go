package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/atlastrips/backend/internal/domain"
	"github.com/atlastrips/backend/internal/handler"
	"github.com/atlastrips/backend/internal/route"
)

// Hand-written test doubles for the handler's servicer interfaces.
// Set only the method fields your test needs.

type mockTripServicer struct {
	create   func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID  func(ctx context.Context, id uuid.UUID) (domain.TripWithItems, error)
	list     func(ctx context.Context, owner domain.Owner, page domain.PaginationParams) ([]domain.TripSummary, error)
	update   func(ctx context.Context, id uuid.UUID, upd domain.TripUpdate) (domain.Trip, error)
	delete   func(ctx context.Context, id uuid.UUID) error
	optimize func(ctx context.Context, tripID uuid.UUID, method route.Method) ([]domain.TripItem, error)
}

func (m *mockTripServicer) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.TripWithItems, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) List(ctx context.Context, owner domain.Owner, page domain.PaginationParams) ([]domain.TripSummary, error) {
	return m.list(ctx, owner, page)
}
func (m *mockTripServicer) Update(ctx context.Context, id uuid.UUID, upd domain.TripUpdate) (domain.Trip, error) {
	return m.update(ctx, id, upd)
}
func (m *mockTripServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockTripServicer) Optimize(ctx context.Context, tripID uuid.UUID, method route.Method) ([]domain.TripItem, error) {
	return m.optimize(ctx, tripID, method)
}

var _ handler.TripServicer = (*mockTripServicer)(nil)

type mockItemServicer struct {
	create func(ctx context.Context, item domain.TripItem) (domain.TripItem, error)
	update func(ctx context.Context, tripID, itemID uuid.UUID, upd domain.TripItemUpdate) (domain.TripItem, error)
	delete func(ctx context.Context, tripID, itemID uuid.UUID) error
}

func (m *mockItemServicer) Create(ctx context.Context, item domain.TripItem) (domain.TripItem, error) {
	return m.create(ctx, item)
}
func (m *mockItemServicer) Update(ctx context.Context, tripID, itemID uuid.UUID, upd domain.TripItemUpdate) (domain.TripItem, error) {
	return m.update(ctx, tripID, itemID, upd)
}
func (m *mockItemServicer) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	return m.delete(ctx, tripID, itemID)
}

var _ handler.ItemServicer = (*mockItemServicer)(nil)

type mockResolver struct {
	resolve func(ctx context.Context, ids []string, tripID *uuid.UUID) ([]domain.ResolvedItem, error)
}

func (m *mockResolver) Resolve(ctx context.Context, ids []string, tripID *uuid.UUID) ([]domain.ResolvedItem, error) {
	return m.resolve(ctx, ids, tripID)
}

var _ handler.Resolver = (*mockResolver)(nil)

type mockCatalogServicer struct {
	listCities func(ctx context.Context) ([]domain.City, error)
	listPlaces func(ctx context.Context, citySlug, category string) ([]domain.Place, error)
}

func (m *mockCatalogServicer) ListCities(ctx context.Context) ([]domain.City, error) {
	return m.listCities(ctx)
}
func (m *mockCatalogServicer) ListPlaces(ctx context.Context, citySlug, category string) ([]domain.Place, error) {
	return m.listPlaces(ctx, citySlug, category)
}

var _ handler.CatalogServicer = (*mockCatalogServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mocks into its chi router,
// mirroring exactly how main.go mounts it in production. Nil mocks are fine
// for routes a test never hits.
func newHTTPHandler(trips handler.TripServicer, items handler.ItemServicer, resolver handler.Resolver, catalog handler.CatalogServicer) http.Handler {
	return handler.NewServer(trips, items, resolver, catalog).Routes()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}
