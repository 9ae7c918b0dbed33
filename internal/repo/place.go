package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/atlastrips/backend/internal/domain"
)

// PlaceRepo defines read access to the points-of-interest catalog.
// The catalog is seeded by migration and never written at runtime.
type PlaceRepo interface {
	// GetByIDs returns the places whose IDs appear in ids.
	// Missing IDs are simply absent from the result.
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Place, error)

	// ListCities returns all catalog cities ordered by name.
	ListCities(ctx context.Context) ([]domain.City, error)

	// ListByCitySlug returns a city's places ordered by name, optionally
	// filtered by category (empty string means all categories).
	// Returns domain.ErrNotFound if the city slug does not exist.
	ListByCitySlug(ctx context.Context, slug, category string) ([]domain.Place, error)
}

// pgPlaceRepo is the Postgres implementation of PlaceRepo.
type pgPlaceRepo struct {
	db db
}

// NewPlaceRepo constructs a PlaceRepo backed by the provided db connection.
func NewPlaceRepo(db db) PlaceRepo {
	return &pgPlaceRepo{db: db}
}

func (r *pgPlaceRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Place, error) {
	const q = `
		SELECT id, city_id, name, category, lat, lon
		FROM places
		WHERE id = ANY(@ids)
		ORDER BY id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"ids": ids})
	if err != nil {
		return nil, fmt.Errorf("repo.PlaceRepo.GetByIDs: %w", err)
	}
	defer rows.Close()

	places, err := collectPlaces(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.PlaceRepo.GetByIDs: %w", err)
	}
	return places, nil
}

func (r *pgPlaceRepo) ListCities(ctx context.Context) ([]domain.City, error) {
	const q = `
		SELECT id, slug, name, lat, lon
		FROM cities
		ORDER BY name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.PlaceRepo.ListCities: %w", err)
	}
	defer rows.Close()

	var cities []domain.City
	for rows.Next() {
		var c domain.City
		if err := rows.Scan(&c.ID, &c.Slug, &c.Name, &c.Lat, &c.Lon); err != nil {
			return nil, fmt.Errorf("repo.PlaceRepo.ListCities: scan: %w", err)
		}
		cities = append(cities, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PlaceRepo.ListCities: rows: %w", err)
	}

	return cities, nil
}

func (r *pgPlaceRepo) ListByCitySlug(ctx context.Context, slug, category string) ([]domain.Place, error) {
	// Resolve the city first so an unknown slug is a NotFound, not an
	// empty list — an empty city and a nonexistent one are different answers.
	var cityID int64
	err := r.db.QueryRow(ctx, `SELECT id FROM cities WHERE slug = @slug`, pgx.NamedArgs{"slug": slug}).Scan(&cityID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("repo.PlaceRepo.ListByCitySlug: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("repo.PlaceRepo.ListByCitySlug: %w", err)
	}

	q := `
		SELECT id, city_id, name, category, lat, lon
		FROM places
		WHERE city_id = @city_id`
	args := pgx.NamedArgs{"city_id": cityID}

	if category != "" {
		q += ` AND category = @category`
		args["category"] = category
	}
	q += `
		ORDER BY name`

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.PlaceRepo.ListByCitySlug: %w", err)
	}
	defer rows.Close()

	places, err := collectPlaces(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.PlaceRepo.ListByCitySlug: %w", err)
	}
	return places, nil
}

// collectPlaces drains rows into a slice, checking rows.Err afterwards.
func collectPlaces(rows pgx.Rows) ([]domain.Place, error) {
	var places []domain.Place
	for rows.Next() {
		var p domain.Place
		if err := rows.Scan(&p.ID, &p.CityID, &p.Name, &p.Category, &p.Lat, &p.Lon); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		places = append(places, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return places, nil
}
