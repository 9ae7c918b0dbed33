package domain

// City is one entry in the read-only cities catalog.
type City struct {
	ID   int64   `json:"id"`
	Slug string  `json:"slug"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Place is one entry in the read-only points-of-interest catalog.
// Places are seeded by migration and never written at runtime; trips
// reference them only through the soft TripItem.PlaceID.
type Place struct {
	ID       int64   `json:"id"`
	CityID   int64   `json:"city_id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}
