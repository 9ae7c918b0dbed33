// Package domain contains the core data types for the trip itinerary service.
// This package has zero dependencies beyond uuid and is imported by every
// other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTripTitle is used when a trip is created without a title.
const DefaultTripTitle = "Untitled Trip"

// Trip is the top-level itinerary container; items belong to a trip.
// CitySlug is a soft reference into the cities catalog and is never checked
// for existence. UserID and SessionID are both optional — the data model
// permits dual-owner and ownerless rows (see Owner for the precedence rule).
type Trip struct {
	ID        uuid.UUID  `json:"id"`
	Slug      string     `json:"slug"`
	Title     string     `json:"title"`
	CitySlug  *string    `json:"city_slug"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	UserID    *string    `json:"user_id"`
	SessionID *string    `json:"session_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TripSlug derives the human-shareable slug for a trip:
// "trip-" plus the first 8 hex characters of the trip's UUID.
func TripSlug(id uuid.UUID) string {
	return "trip-" + id.String()[:8]
}

// TripUpdate carries a partial trip update. Nil fields are left unchanged.
type TripUpdate struct {
	Title     *string
	CitySlug  *string
	StartDate *time.Time
	EndDate   *time.Time
}

// TripSummary is the list_trips read model: a trip annotated with its item
// count. ItemsCount is derived at query time, never stored.
type TripSummary struct {
	Trip
	ItemsCount int `json:"items_count"`
}

// TripWithItems is the get_trip read model: the trip plus all of its items
// in display order (see SortItems).
type TripWithItems struct {
	Trip  Trip       `json:"trip"`
	Items []TripItem `json:"items"`
}
