// Package handler implements the HTTP handlers for the trip itinerary API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, trip.go, item.go, ...) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/atlastrips/backend/internal/domain"
	"github.com/atlastrips/backend/internal/route"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.TripWithItems, error)
	List(ctx context.Context, owner domain.Owner, page domain.PaginationParams) ([]domain.TripSummary, error)
	Update(ctx context.Context, id uuid.UUID, upd domain.TripUpdate) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Optimize(ctx context.Context, tripID uuid.UUID, method route.Method) ([]domain.TripItem, error)
}

// ItemServicer defines the business operations the item handlers depend on.
type ItemServicer interface {
	Create(ctx context.Context, item domain.TripItem) (domain.TripItem, error)
	Update(ctx context.Context, tripID, itemID uuid.UUID, upd domain.TripItemUpdate) (domain.TripItem, error)
	Delete(ctx context.Context, tripID, itemID uuid.UUID) error
}

// Resolver defines the identifier-resolution operation.
type Resolver interface {
	Resolve(ctx context.Context, ids []string, tripID *uuid.UUID) ([]domain.ResolvedItem, error)
}

// CatalogServicer defines the read-only catalog operations.
type CatalogServicer interface {
	ListCities(ctx context.Context) ([]domain.City, error)
	ListPlaces(ctx context.Context, citySlug, category string) ([]domain.Place, error)
}

// Server holds the handler dependencies for all API endpoints.
type Server struct {
	trips    TripServicer
	items    ItemServicer
	resolver Resolver
	catalog  CatalogServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, items ItemServicer, resolver Resolver, catalog CatalogServicer) *Server {
	return &Server{trips: trips, items: items, resolver: resolver, catalog: catalog}
}

// Routes returns the chi router for the full API surface.
// Middleware is mounted by the caller (cmd/api), not here.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.getHealth)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.createTrip)
		r.Get("/", s.listTrips)

		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.getTrip)
			r.Patch("/", s.updateTrip)
			r.Delete("/", s.deleteTrip)
			r.Post("/optimize", s.optimizeTrip)

			r.Post("/items", s.createItem)
			r.Patch("/items/{itemID}", s.updateItem)
			r.Delete("/items/{itemID}", s.deleteItem)
		})
	})

	r.Get("/resolve", s.resolveItems)

	r.Get("/cities", s.listCities)
	r.Get("/cities/{citySlug}/places", s.listPlaces)

	return r
}

// tripIDParam parses the {tripID} URL parameter.
func tripIDParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "tripID"))
}
