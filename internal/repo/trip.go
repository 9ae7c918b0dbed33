package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/atlastrips/backend/internal/domain"
)

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record (with
	// DB-generated created_at and updated_at populated). ID and Slug are
	// assigned by the caller before insert.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// List returns trips matching the owner filter, newest first, each
	// annotated with its item count. OwnerNone matches everything.
	List(ctx context.Context, owner domain.Owner, page domain.PaginationParams) ([]domain.TripSummary, error)

	// Update overwrites the mutable fields of an existing trip, refreshes
	// updated_at, and returns the updated record.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip by ID; trip_items cascade at the schema level.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, slug, title, city_slug, start_date, end_date, user_id, session_id, created_at, updated_at`

// Create inserts a new trip row and returns the full persisted record.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (id, slug, title, city_slug, start_date, end_date, user_id, session_id)
		VALUES (@id, @slug, @title, @city_slug, @start_date, @end_date, @user_id, @session_id)
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"id":         trip.ID,
		"slug":       trip.Slug,
		"title":      trip.Title,
		"city_slug":  trip.CitySlug, // nil becomes NULL
		"start_date": trip.StartDate,
		"end_date":   trip.EndDate,
		"user_id":    trip.UserID,
		"session_id": trip.SessionID,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a trip by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns trips matching the owner filter, ordered by created_at
// descending, with a derived items_count per trip.
func (r *pgTripRepo) List(ctx context.Context, owner domain.Owner, page domain.PaginationParams) ([]domain.TripSummary, error) {
	q := `
		SELECT t.id, t.slug, t.title, t.city_slug, t.start_date, t.end_date,
		       t.user_id, t.session_id, t.created_at, t.updated_at,
		       count(i.id) AS items_count
		FROM trips t
		LEFT JOIN trip_items i ON i.trip_id = t.id`

	args := pgx.NamedArgs{
		"limit":  page.Limit,
		"offset": page.Offset(),
	}

	switch owner.Kind {
	case domain.OwnerUser:
		q += `
		WHERE t.user_id = @owner_id`
		args["owner_id"] = owner.ID
	case domain.OwnerSession:
		q += `
		WHERE t.session_id = @owner_id`
		args["owner_id"] = owner.ID
	}

	q += `
		GROUP BY t.id
		ORDER BY t.created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	var trips []domain.TripSummary
	for rows.Next() {
		s, err := scanTripSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.List: scan: %w", err)
		}
		trips = append(trips, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: rows: %w", err)
	}

	return trips, nil
}

// Update overwrites the mutable fields of a trip and returns the updated record.
func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET title      = @title,
		    city_slug  = @city_slug,
		    start_date = @start_date,
		    end_date   = @end_date,
		    updated_at = now()
		WHERE id = @id
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"id":         trip.ID,
		"title":      trip.Title,
		"city_slug":  trip.CitySlug,
		"start_date": trip.StartDate,
		"end_date":   trip.EndDate,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by primary key. trip_items rows are removed by the
// ON DELETE CASCADE constraint.
func (r *pgTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanTrip maps a single database row into a domain.Trip.
// It handles the UUID and nullable date conversions.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t         domain.Trip
		id        pgtype.UUID
		startDate pgtype.Date
		endDate   pgtype.Date
	)

	err := s.Scan(&id, &t.Slug, &t.Title, &t.CitySlug, &startDate, &endDate,
		&t.UserID, &t.SessionID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	if startDate.Valid {
		sd := startDate.Time
		t.StartDate = &sd
	}
	if endDate.Valid {
		ed := endDate.Time
		t.EndDate = &ed
	}

	return t, nil
}

// scanTripSummary maps a list row (trip columns plus items_count).
func scanTripSummary(s scanner) (domain.TripSummary, error) {
	var (
		out       domain.TripSummary
		id        pgtype.UUID
		startDate pgtype.Date
		endDate   pgtype.Date
	)

	err := s.Scan(&id, &out.Slug, &out.Title, &out.CitySlug, &startDate, &endDate,
		&out.UserID, &out.SessionID, &out.CreatedAt, &out.UpdatedAt, &out.ItemsCount)
	if err != nil {
		return domain.TripSummary{}, err
	}

	out.ID = uuid.UUID(id.Bytes)
	if startDate.Valid {
		sd := startDate.Time
		out.StartDate = &sd
	}
	if endDate.Valid {
		ed := endDate.Time
		out.EndDate = &ed
	}

	return out, nil
}
