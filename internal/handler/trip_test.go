package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlastrips/backend/internal/domain"
	"github.com/atlastrips/backend/internal/route"
)

func tripFixture() domain.Trip {
	id := uuid.New()
	return domain.Trip{
		ID:        id,
		Slug:      domain.TripSlug(id),
		Title:     "Test Trip",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

// ---- POST /trips -----------------------------------------------------------

func TestCreateTrip_201(t *testing.T) {
	fixture := tripFixture()
	trips := &mockTripServicer{
		create: func(_ context.Context, trip domain.Trip) (domain.Trip, error) {
			assert.Equal(t, "Test Trip", trip.Title)
			return fixture, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/trips", jsonBody(t, map[string]any{"title": "Test Trip"}))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(trips, nil, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp domain.Trip
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fixture.ID, resp.ID)
	assert.Equal(t, "Test Trip", resp.Title)
	assert.Nil(t, resp.CitySlug)
}

func TestCreateTrip_422_BadDate(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/trips", jsonBody(t, map[string]any{"start_date": "June 1st"}))
	rec := httptest.NewRecorder()

	newHTTPHandler(&mockTripServicer{}, nil, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ---- GET /trips/{id} -------------------------------------------------------

func TestGetTrip_200_WithItems(t *testing.T) {
	fixture := tripFixture()
	item := domain.TripItem{ID: uuid.New(), TripID: fixture.ID, Name: "Test Place", Category: "monument"}
	trips := &mockTripServicer{
		getByID: func(_ context.Context, id uuid.UUID) (domain.TripWithItems, error) {
			assert.Equal(t, fixture.ID, id)
			return domain.TripWithItems{Trip: fixture, Items: []domain.TripItem{item}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+fixture.ID.String(), nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(trips, nil, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.TripWithItems
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fixture.ID, resp.Trip.ID)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Test Place", resp.Items[0].Name)
}

func TestGetTrip_404(t *testing.T) {
	trips := &mockTripServicer{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.TripWithItems, error) {
			return domain.TripWithItems{}, fmt.Errorf("service: %w", domain.ErrNotFound)
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(trips, nil, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_found")
}

func TestGetTrip_404_MalformedID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/trips/not-a-uuid", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(&mockTripServicer{}, nil, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- GET /trips ------------------------------------------------------------

func TestListTrips_OwnerPrecedence(t *testing.T) {
	var gotOwner domain.Owner
	trips := &mockTripServicer{
		list: func(_ context.Context, owner domain.Owner, _ domain.PaginationParams) ([]domain.TripSummary, error) {
			gotOwner = owner
			return []domain.TripSummary{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips?user_id=u1&session_id=s1", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(trips, nil, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.Owner{Kind: domain.OwnerUser, ID: "u1"}, gotOwner)
}

func TestListTrips_ItemsCountInBody(t *testing.T) {
	summary := domain.TripSummary{Trip: tripFixture(), ItemsCount: 3}
	trips := &mockTripServicer{
		list: func(_ context.Context, _ domain.Owner, _ domain.PaginationParams) ([]domain.TripSummary, error) {
			return []domain.TripSummary{summary}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(trips, nil, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Trips []domain.TripSummary `json:"trips"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Trips, 1)
	assert.Equal(t, 3, resp.Trips[0].ItemsCount)
}

// ---- PATCH /trips/{id} -----------------------------------------------------

func TestUpdateTrip_200_PartialBody(t *testing.T) {
	fixture := tripFixture()
	trips := &mockTripServicer{
		update: func(_ context.Context, id uuid.UUID, upd domain.TripUpdate) (domain.Trip, error) {
			require.NotNil(t, upd.Title)
			assert.Equal(t, "Renamed", *upd.Title)
			assert.Nil(t, upd.CitySlug, "absent fields must stay nil")
			fixture.Title = *upd.Title
			return fixture, nil
		},
	}

	req := httptest.NewRequest(http.MethodPatch, "/trips/"+fixture.ID.String(), jsonBody(t, map[string]any{"title": "Renamed"}))
	rec := httptest.NewRecorder()

	newHTTPHandler(trips, nil, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateTrip_404(t *testing.T) {
	trips := &mockTripServicer{
		update: func(_ context.Context, _ uuid.UUID, _ domain.TripUpdate) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodPatch, "/trips/"+uuid.NewString(), jsonBody(t, map[string]any{"title": "x"}))
	rec := httptest.NewRecorder()

	newHTTPHandler(trips, nil, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- DELETE /trips/{id} ----------------------------------------------------

func TestDeleteTrip_204(t *testing.T) {
	trips := &mockTripServicer{
		delete: func(_ context.Context, _ uuid.UUID) error { return nil },
	}

	req := httptest.NewRequest(http.MethodDelete, "/trips/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(trips, nil, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteTrip_404_Repeated(t *testing.T) {
	trips := &mockTripServicer{
		delete: func(_ context.Context, _ uuid.UUID) error {
			return fmt.Errorf("service: %w", domain.ErrNotFound)
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/trips/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(trips, nil, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code, "repeated delete is NotFound, not silent success")
}

// ---- POST /trips/{id}/optimize ---------------------------------------------

func TestOptimizeTrip_200_DefaultsToNearest(t *testing.T) {
	tripID := uuid.New()
	trips := &mockTripServicer{
		optimize: func(_ context.Context, id uuid.UUID, method route.Method) ([]domain.TripItem, error) {
			assert.Equal(t, tripID, id)
			assert.Equal(t, route.MethodNearest, method)
			return []domain.TripItem{}, nil
		},
	}

	// No body at all — method defaults to nearest.
	req := httptest.NewRequest(http.MethodPost, "/trips/"+tripID.String()+"/optimize", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(trips, nil, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOptimizeTrip_422_UnknownMethod(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/trips/"+uuid.NewString()+"/optimize", jsonBody(t, map[string]any{"method": "simulated_annealing"}))
	rec := httptest.NewRecorder()

	newHTTPHandler(&mockTripServicer{}, nil, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
