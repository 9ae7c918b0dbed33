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

// ItemRepo defines the persistence operations for TripItems.
// All write and single-read operations are scoped by tripID to enforce ownership.
type ItemRepo interface {
	// Create inserts a new item and returns the persisted record.
	// ID is assigned by the caller; seq and timestamps come from the DB.
	Create(ctx context.Context, item domain.TripItem) (domain.TripItem, error)

	// GetByID retrieves a single item by its UUID, scoped to the given tripID.
	// Returns domain.ErrNotFound if no item with that ID exists under that trip.
	GetByID(ctx context.Context, tripID, itemID uuid.UUID) (domain.TripItem, error)

	// ListByTripID returns all items for a trip in display order
	// (day_index, order_index, insertion sequence — all ascending).
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.TripItem, error)

	// ListByIDs returns the trip's items whose IDs appear in ids.
	// Unknown IDs are simply absent from the result; order follows the
	// backing query, not the input.
	ListByIDs(ctx context.Context, tripID uuid.UUID, ids []uuid.UUID) ([]domain.TripItem, error)

	// Update overwrites the mutable fields of an item, scoped to the given tripID.
	// Returns domain.ErrNotFound if no item with that ID exists under that trip.
	Update(ctx context.Context, item domain.TripItem) (domain.TripItem, error)

	// Delete removes an item by ID, scoped to the given tripID.
	// Returns domain.ErrNotFound if no item with that ID exists under that trip.
	Delete(ctx context.Context, tripID, itemID uuid.UUID) error

	// Reorder assigns order_index 0..len(ids)-1 to the trip's items in the
	// given sequence. A single UPDATE statement, so the rewrite is atomic
	// with respect to concurrent readers.
	Reorder(ctx context.Context, tripID uuid.UUID, ids []uuid.UUID) error
}

// pgItemRepo is the Postgres implementation of ItemRepo.
type pgItemRepo struct {
	db db
}

// NewItemRepo constructs an ItemRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewItemRepo(db db) ItemRepo {
	return &pgItemRepo{db: db}
}

const itemColumns = `id, trip_id, name, category, lat, lon, day_index, order_index, place_id, notes, created_at, updated_at, seq`

func (r *pgItemRepo) Create(ctx context.Context, item domain.TripItem) (domain.TripItem, error) {
	const q = `
		INSERT INTO trip_items (id, trip_id, name, category, lat, lon, day_index, order_index, place_id, notes)
		VALUES (@id, @trip_id, @name, @category, @lat, @lon, @day_index, @order_index, @place_id, @notes)
		RETURNING ` + itemColumns

	args := pgx.NamedArgs{
		"id":          item.ID,
		"trip_id":     item.TripID,
		"name":        item.Name,
		"category":    item.Category,
		"lat":         item.Lat,
		"lon":         item.Lon,
		"day_index":   item.DayIndex,
		"order_index": item.OrderIndex,
		"place_id":    item.PlaceID, // nil becomes NULL
		"notes":       item.Notes,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanItem(row)
	if err != nil {
		return domain.TripItem{}, fmt.Errorf("repo.ItemRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgItemRepo) GetByID(ctx context.Context, tripID, itemID uuid.UUID) (domain.TripItem, error) {
	const q = `
		SELECT ` + itemColumns + `
		FROM trip_items
		WHERE id = @id AND trip_id = @trip_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": itemID, "trip_id": tripID})
	result, err := scanItem(row)
	if err != nil {
		return domain.TripItem{}, fmt.Errorf("repo.ItemRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgItemRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.TripItem, error) {
	const q = `
		SELECT ` + itemColumns + `
		FROM trip_items
		WHERE trip_id = @trip_id
		ORDER BY day_index, order_index, seq`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ItemRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	items, err := collectItems(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.ItemRepo.ListByTripID: %w", err)
	}
	return items, nil
}

func (r *pgItemRepo) ListByIDs(ctx context.Context, tripID uuid.UUID, ids []uuid.UUID) ([]domain.TripItem, error) {
	const q = `
		SELECT ` + itemColumns + `
		FROM trip_items
		WHERE trip_id = @trip_id AND id = ANY(@ids)
		ORDER BY day_index, order_index, seq`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID, "ids": ids})
	if err != nil {
		return nil, fmt.Errorf("repo.ItemRepo.ListByIDs: %w", err)
	}
	defer rows.Close()

	items, err := collectItems(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.ItemRepo.ListByIDs: %w", err)
	}
	return items, nil
}

func (r *pgItemRepo) Update(ctx context.Context, item domain.TripItem) (domain.TripItem, error) {
	const q = `
		UPDATE trip_items
		SET name        = @name,
		    category    = @category,
		    lat         = @lat,
		    lon         = @lon,
		    day_index   = @day_index,
		    order_index = @order_index,
		    place_id    = @place_id,
		    notes       = @notes,
		    updated_at  = now()
		WHERE id = @id AND trip_id = @trip_id
		RETURNING ` + itemColumns

	args := pgx.NamedArgs{
		"id":          item.ID,
		"trip_id":     item.TripID,
		"name":        item.Name,
		"category":    item.Category,
		"lat":         item.Lat,
		"lon":         item.Lon,
		"day_index":   item.DayIndex,
		"order_index": item.OrderIndex,
		"place_id":    item.PlaceID,
		"notes":       item.Notes,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanItem(row)
	if err != nil {
		return domain.TripItem{}, fmt.Errorf("repo.ItemRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgItemRepo) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	const q = `DELETE FROM trip_items WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": itemID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.ItemRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ItemRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// Reorder rewrites order_index for the given item sequence in one statement.
// unnest WITH ORDINALITY pairs each ID with its zero-based position.
func (r *pgItemRepo) Reorder(ctx context.Context, tripID uuid.UUID, ids []uuid.UUID) error {
	const q = `
		UPDATE trip_items AS ti
		SET order_index = u.ord - 1,
		    updated_at  = now()
		FROM unnest(@ids::uuid[]) WITH ORDINALITY AS u(id, ord)
		WHERE ti.id = u.id AND ti.trip_id = @trip_id`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"ids": ids, "trip_id": tripID}); err != nil {
		return fmt.Errorf("repo.ItemRepo.Reorder: %w", err)
	}
	return nil
}

// collectItems drains rows into a slice, checking rows.Err afterwards.
func collectItems(rows pgx.Rows) ([]domain.TripItem, error) {
	var items []domain.TripItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return items, nil
}

// scanItem maps a single database row into a domain.TripItem.
func scanItem(s scanner) (domain.TripItem, error) {
	var (
		it     domain.TripItem
		id     pgtype.UUID
		tripID pgtype.UUID
	)

	err := s.Scan(&id, &tripID, &it.Name, &it.Category, &it.Lat, &it.Lon,
		&it.DayIndex, &it.OrderIndex, &it.PlaceID, &it.Notes,
		&it.CreatedAt, &it.UpdatedAt, &it.Seq)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TripItem{}, domain.ErrNotFound
		}
		return domain.TripItem{}, err
	}

	it.ID = uuid.UUID(id.Bytes)
	it.TripID = uuid.UUID(tripID.Bytes)

	return it, nil
}
