package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/eventbook/pkg/types"
)

// openBackend creates a Backend with a fresh database file.
func openBackend(t *testing.T) *Backend {
	t.Helper()
	b, err := Open(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })
	return b
}

func TestListEmptyTables(t *testing.T) {
	b := openBackend(t)

	locs, err := b.Locations().List()
	require.NoError(t, err)
	assert.Empty(t, locs)

	links, err := b.Links().List()
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestInsertGetRoundTrip(t *testing.T) {
	b := openBackend(t)

	loc := types.Location{ID: 1, Name: "Hall", City: "X", Address: "Y", Capacity: 100, Phone: "555"}
	created, err := b.Locations().Insert(loc)
	require.NoError(t, err)
	assert.Equal(t, loc, created)

	got, err := b.Locations().Get(1)
	require.NoError(t, err)
	assert.Equal(t, loc, got)
}

func TestInsertAssignsIDs(t *testing.T) {
	b := openBackend(t)

	first, err := b.EventTypes().Insert(types.EventType{Category: "Tech"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)

	second, err := b.EventTypes().Insert(types.EventType{Category: "Music"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
}

func TestInsertDuplicateID(t *testing.T) {
	b := openBackend(t)

	_, err := b.Locations().Insert(types.Location{ID: 5, Name: "A"})
	require.NoError(t, err)
	_, err = b.Locations().Insert(types.Location{ID: 5, Name: "B"})
	assert.ErrorIs(t, err, types.ErrDuplicateID)
}

func TestGetAndDeleteMissing(t *testing.T) {
	b := openBackend(t)

	_, err := b.Events().Get(42)
	assert.ErrorIs(t, err, types.ErrNotFound)
	var nf *types.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, types.EntityEvent, nf.Entity)

	err = b.Events().Delete(42)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestUpdate(t *testing.T) {
	b := openBackend(t)

	loc := types.Location{ID: 1, Name: "Hall", City: "X", Address: "Y", Capacity: 100, Phone: "555"}
	_, err := b.Locations().Insert(loc)
	require.NoError(t, err)

	t.Run("empty patch leaves the row unchanged", func(t *testing.T) {
		got, err := b.Locations().Update(1, types.LocationPatch{})
		require.NoError(t, err)
		assert.Equal(t, loc, got)
	})

	t.Run("partial patch merges only present columns", func(t *testing.T) {
		capacity := int64(200)
		got, err := b.Locations().Update(1, types.LocationPatch{Capacity: &capacity})
		require.NoError(t, err)
		assert.Equal(t, int64(200), got.Capacity)
		assert.Equal(t, "Hall", got.Name)

		stored, err := b.Locations().Get(1)
		require.NoError(t, err)
		assert.Equal(t, got, stored)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := b.Locations().Update(99, types.LocationPatch{})
		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}

func TestEventDateTimeRoundTrip(t *testing.T) {
	b := openBackend(t)

	start, err := types.ParseDate("2024-11-15")
	require.NoError(t, err)
	end, err := types.ParseDate("2024-11-17")
	require.NoError(t, err)
	opens, err := types.ParseTimeOfDay("09:00")
	require.NoError(t, err)
	ends, err := types.ParseTimeOfDay("18:00")
	require.NoError(t, err)

	ev := types.Event{
		Name: "Conf", Description: "D",
		StartDate: start, EndDate: end,
		StartTime: opens, EndTime: ends,
		LocationID: 1, EventTypeID: 1,
	}
	created, err := b.Events().Insert(ev)
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := b.Events().Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-11-15", got.StartDate.String())
	assert.Equal(t, "2024-11-17", got.EndDate.String())
	assert.Equal(t, "09:00", got.StartTime.String())
	assert.Equal(t, "18:00", got.EndTime.String())
	assert.Equal(t, int64(1), got.LocationID)
	assert.Equal(t, int64(1), got.EventTypeID)
}

func TestPersistenceAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dir}

	b, err := Open(cfg)
	require.NoError(t, err)
	_, err = b.Locations().Insert(types.Location{ID: 1, Name: "Hall", Capacity: 100})
	require.NoError(t, err)
	require.NoError(t, b.Close())

	reopened, err := Open(cfg)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Locations().Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Hall", got.Name)
}
