package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlastrips/backend/internal/domain"
	"github.com/atlastrips/backend/internal/repo"
	"github.com/atlastrips/backend/testutil"
)

// newTestTx opens a transaction against the test database. The transaction is
// automatically rolled back when the test finishes, giving free per-test
// isolation — no cleanup SQL needed.
//
// Requires TEST_DATABASE_URL to be set; migrations are applied by TestMain.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return tx
}

// tripFixture returns a domain.Trip with sensible defaults for use in tests.
// Callers can override individual fields after calling this function.
func tripFixture() domain.Trip {
	id := uuid.New()
	city := "marrakech"
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC)
	return domain.Trip{
		ID:        id,
		Slug:      domain.TripSlug(id),
		Title:     "Summer in Morocco",
		CitySlug:  &city,
		StartDate: &start,
		EndDate:   &end,
	}
}

func TestTripRepo_Create(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	input := tripFixture()
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.ID, got.ID)
	assert.Equal(t, input.Slug, got.Slug)
	assert.Equal(t, input.Title, got.Title)
	require.NotNil(t, got.CitySlug)
	assert.Equal(t, "marrakech", *got.CitySlug)
	require.NotNil(t, got.StartDate)
	assert.True(t, got.StartDate.Equal(*input.StartDate), "StartDate mismatch")
	require.NotNil(t, got.EndDate)
	assert.True(t, got.EndDate.Equal(*input.EndDate), "EndDate mismatch")
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
	assert.False(t, got.UpdatedAt.IsZero(), "UpdatedAt should be set by DB")
}

func TestTripRepo_Create_NilOptionals(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	input := tripFixture()
	input.CitySlug = nil
	input.StartDate = nil
	input.EndDate = nil

	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.Nil(t, got.CitySlug)
	assert.Nil(t, got.StartDate)
	assert.Nil(t, got.EndDate)
}

func TestTripRepo_GetByID(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture())
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Title, got.Title)
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	_, err := r.GetByID(ctx, uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_List_OwnerFilter(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewTripRepo(tx)
	ctx := context.Background()

	user := "user-42"
	session := "sess-99"

	mine := tripFixture()
	mine.Title = "My Trip"
	mine.UserID = &user

	anon := tripFixture()
	anon.Title = "Anonymous Trip"
	anon.SessionID = &session

	_, err := r.Create(ctx, mine)
	require.NoError(t, err)
	_, err = r.Create(ctx, anon)
	require.NoError(t, err)

	page := domain.NewPaginationParams(nil, nil)

	byUser, err := r.List(ctx, domain.Owner{Kind: domain.OwnerUser, ID: user}, page)
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, "My Trip", byUser[0].Title)

	bySession, err := r.List(ctx, domain.Owner{Kind: domain.OwnerSession, ID: session}, page)
	require.NoError(t, err)
	require.Len(t, bySession, 1)
	assert.Equal(t, "Anonymous Trip", bySession[0].Title)

	all, err := r.List(ctx, domain.Owner{}, page)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(all), 2)
}

func TestTripRepo_List_ItemsCount(t *testing.T) {
	tx := newTestTx(t)
	trips := repo.NewTripRepo(tx)
	items := repo.NewItemRepo(tx)
	ctx := context.Background()

	user := "counter"
	trip := tripFixture()
	trip.UserID = &user
	created, err := trips.Create(ctx, trip)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := items.Create(ctx, itemFixture(created.ID, 0, i))
		require.NoError(t, err)
	}

	got, err := trips.List(ctx, domain.Owner{Kind: domain.OwnerUser, ID: user}, domain.NewPaginationParams(nil, nil))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ItemsCount)
}

func TestTripRepo_Update(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture())
	require.NoError(t, err)

	created.Title = "Renamed Trip"
	created.EndDate = nil // clear end date

	updated, err := r.Update(ctx, created)

	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Renamed Trip", updated.Title)
	assert.Nil(t, updated.EndDate)
	// updated_at should be refreshed — may be equal to created_at in fast tests,
	// but must not be zero.
	assert.False(t, updated.UpdatedAt.IsZero())
}

func TestTripRepo_Update_NotFound(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	ghost := tripFixture() // never inserted

	_, err := r.Update(ctx, ghost)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Delete_CascadesItems(t *testing.T) {
	tx := newTestTx(t)
	trips := repo.NewTripRepo(tx)
	items := repo.NewItemRepo(tx)
	ctx := context.Background()

	created, err := trips.Create(ctx, tripFixture())
	require.NoError(t, err)
	item, err := items.Create(ctx, itemFixture(created.ID, 0, 0))
	require.NoError(t, err)

	require.NoError(t, trips.Delete(ctx, created.ID))

	_, err = trips.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "trip should be gone after delete")

	_, err = items.GetByID(ctx, created.ID, item.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "items should cascade with the trip")
}

func TestTripRepo_Delete_NotFound(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	err := r.Delete(ctx, uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
