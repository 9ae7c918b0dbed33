package domain

import (
	"time"

	"github.com/google/uuid"
)

// TripItem is one visit entry within a trip, placed on a day at a position.
// DayIndex groups items into itinerary days (zero-based); OrderIndex is the
// position within that day. Neither is required to be contiguous or unique —
// read paths sort by (DayIndex, OrderIndex, Seq) so display order is always
// well-defined. PlaceID is a soft reference into the points-of-interest
// catalog; dangling references are tolerated.
type TripItem struct {
	ID         uuid.UUID `json:"id"`
	TripID     uuid.UUID `json:"trip_id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Lat        float64   `json:"lat"`
	Lon        float64   `json:"lon"`
	DayIndex   int       `json:"day_index"`
	OrderIndex int       `json:"order_index"`
	PlaceID    *int64    `json:"place_id"`
	Notes      *string   `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Seq is the DB-assigned insertion sequence, used only as the ordering
	// tie-break. It is not part of the API surface.
	Seq int64 `json:"-"`
}

// TripItemUpdate carries a partial item update. Nil fields are left unchanged.
// PlaceID and Notes use double pointers nowhere — a present-but-nil clear is
// not supported, matching the reference behavior of exclude-unset patches.
type TripItemUpdate struct {
	Name       *string
	Category   *string
	Lat        *float64
	Lon        *float64
	DayIndex   *int
	OrderIndex *int
	PlaceID    *int64
	Notes      *string
}

// ResolvedItem is the resolver's output: the canonical point data for one
// identifier, drawn from either a trip's items or the places catalog.
type ResolvedItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Category string  `json:"category"`
}
