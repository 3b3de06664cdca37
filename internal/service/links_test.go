package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/eventbook/internal/jsonfile"
	"github.com/mesh-intelligence/eventbook/pkg/types"
)

// openStore creates a jsonfile-backed store in a temp directory.
func openStore(t *testing.T) types.Store {
	t.Helper()
	store, err := jsonfile.Open(types.Config{Backend: types.BackendJSONFile, DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// getRecorder wraps a collection and records every Get lookup so tests can
// observe the order of existence checks.
type getRecorder[T types.Record[T]] struct {
	types.Collection[T]
	name  string
	calls *[]string
}

func (g getRecorder[T]) Get(id int64) (T, error) {
	*g.calls = append(*g.calls, g.name)
	return g.Collection.Get(id)
}

func TestLinkCreate(t *testing.T) {
	store := openStore(t)
	reg := NewRegistry(store, false)

	loc, err := reg.Locations.Create(types.Location{ID: 1, Name: "Hall", City: "X", Address: "Y", Capacity: 100, Phone: "555"})
	require.NoError(t, err)
	ev, err := reg.Events.Create(types.Event{ID: 1, Name: "Conf", StartDate: mustDate(t, "2024-11-15"), EndDate: mustDate(t, "2024-11-17")})
	require.NoError(t, err)

	link, err := reg.Links.Create(loc.ID, ev.ID)
	require.NoError(t, err)
	assert.NotZero(t, link.ID, "link id is store-assigned")
	assert.Equal(t, loc.ID, link.LocationID)
	assert.Equal(t, ev.ID, link.EventID)

	got, err := reg.Links.Get(link.ID)
	require.NoError(t, err)
	assert.Equal(t, link, got)
}

func TestLinkCreateMissingLocation(t *testing.T) {
	store := openStore(t)
	reg := NewRegistry(store, false)

	// The event exists; only the location is missing.
	_, err := reg.Events.Create(types.Event{ID: 1, Name: "Conf", StartDate: mustDate(t, "2024-11-15"), EndDate: mustDate(t, "2024-11-17")})
	require.NoError(t, err)

	_, err = reg.Links.Create(7, 1)
	var nf *types.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, types.EntityLocation, nf.Entity)

	links, err := reg.Links.List()
	require.NoError(t, err)
	assert.Empty(t, links, "no link may be inserted when a check fails")
}

func TestLinkCreateMissingEvent(t *testing.T) {
	store := openStore(t)
	reg := NewRegistry(store, false)

	_, err := reg.Locations.Create(types.Location{ID: 1, Name: "Hall"})
	require.NoError(t, err)

	_, err = reg.Links.Create(1, 7)
	var nf *types.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, types.EntityEvent, nf.Entity)

	links, err := reg.Links.List()
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestLinkCreateCheckOrdering(t *testing.T) {
	store := openStore(t)

	var calls []string
	links := NewLinks(
		store.Links(),
		getRecorder[types.Location]{Collection: store.Locations(), name: "location", calls: &calls},
		getRecorder[types.Event]{Collection: store.Events(), name: "event", calls: &calls},
	)

	// Both lookups miss; only the location one may happen.
	_, err := links.Create(1, 1)
	require.Error(t, err)
	assert.Equal(t, []string{"location"}, calls, "location is checked first and the failure short-circuits")
}

func mustDate(t *testing.T, s string) types.Date {
	t.Helper()
	d, err := types.ParseDate(s)
	require.NoError(t, err)
	return d
}
