package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/eventbook/pkg/types"
)

func TestCreateValidation(t *testing.T) {
	reg := NewRegistry(openStore(t), false)

	t.Run("location requires a name", func(t *testing.T) {
		_, err := reg.Locations.Create(types.Location{City: "X"})
		var ve *types.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "name", ve.Field)
	})

	t.Run("event type requires a category", func(t *testing.T) {
		_, err := reg.EventTypes.Create(types.EventType{Description: "D"})
		var ve *types.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "category", ve.Field)
	})

	t.Run("event requires name and dates", func(t *testing.T) {
		_, err := reg.Events.Create(types.Event{Name: "Conf"})
		assert.ErrorIs(t, err, types.ErrInvalid)
	})

	t.Run("baseline mode does not check business rules", func(t *testing.T) {
		// Zero capacity and reversed dates pass; only strict mode
		// rejects them.
		_, err := reg.Locations.Create(types.Location{Name: "Hall", Capacity: 0})
		require.NoError(t, err)
		_, err = reg.Events.Create(types.Event{
			Name:      "Backwards",
			StartDate: mustDate(t, "2024-11-17"),
			EndDate:   mustDate(t, "2024-11-15"),
		})
		require.NoError(t, err)
	})
}

func TestStrictValidation(t *testing.T) {
	reg := NewRegistry(openStore(t), true)

	t.Run("capacity must be positive", func(t *testing.T) {
		_, err := reg.Locations.Create(types.Location{Name: "Hall", Capacity: 0})
		var ve *types.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "capacity", ve.Field)
	})

	t.Run("end date must not precede start date", func(t *testing.T) {
		_, err := reg.Events.Create(types.Event{
			Name:      "Backwards",
			StartDate: mustDate(t, "2024-11-17"),
			EndDate:   mustDate(t, "2024-11-15"),
		})
		var ve *types.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "end_date", ve.Field)
	})

	t.Run("event foreign keys must exist", func(t *testing.T) {
		_, err := reg.Events.Create(types.Event{
			Name:       "Dangling",
			StartDate:  mustDate(t, "2024-11-15"),
			EndDate:    mustDate(t, "2024-11-17"),
			LocationID: 99,
		})
		var nf *types.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, types.EntityLocation, nf.Entity)
	})

	t.Run("zero foreign keys stay unchecked", func(t *testing.T) {
		_, err := reg.Events.Create(types.Event{
			Name:      "Standalone",
			StartDate: mustDate(t, "2024-11-15"),
			EndDate:   mustDate(t, "2024-11-17"),
		})
		require.NoError(t, err)
	})

	t.Run("patches are validated against the merged record", func(t *testing.T) {
		ev, err := reg.Events.Create(types.Event{
			ID:        10,
			Name:      "Conf",
			StartDate: mustDate(t, "2024-11-15"),
			EndDate:   mustDate(t, "2024-11-17"),
		})
		require.NoError(t, err)

		bad := mustDate(t, "2024-11-01")
		_, err = reg.Events.Update(ev.ID, types.EventPatch{EndDate: &bad})
		assert.ErrorIs(t, err, types.ErrInvalid)
	})
}

// The full flow from the original system: a location, an event type, an
// event referencing both, a link tying location and event together, then a
// partial capacity update.
func TestEndToEndScenario(t *testing.T) {
	reg := NewRegistry(openStore(t), false)

	loc, err := reg.Locations.Create(types.Location{ID: 1, Name: "Hall", City: "X", Address: "Y", Capacity: 100, Phone: "555"})
	require.NoError(t, err)

	_, err = reg.EventTypes.Create(types.EventType{ID: 1, Category: "Tech", Description: "D", TargetAudience: "A"})
	require.NoError(t, err)

	ev, err := reg.Events.Create(types.Event{
		ID: 1, Name: "Conf", Description: "D",
		StartDate: mustDate(t, "2024-11-15"),
		EndDate:   mustDate(t, "2024-11-17"),
		StartTime: mustClock(t, "09:00"),
		EndTime:   mustClock(t, "18:00"),
		LocationID: 1, EventTypeID: 1,
	})
	require.NoError(t, err)

	link, err := reg.Links.Create(loc.ID, ev.ID)
	require.NoError(t, err)
	assert.NotZero(t, link.ID)

	capacity := int64(200)
	updated, err := reg.Locations.Update(1, types.LocationPatch{Capacity: &capacity})
	require.NoError(t, err)
	assert.Equal(t, int64(200), updated.Capacity)

	got, err := reg.Locations.Get(1)
	require.NoError(t, err)
	assert.Equal(t, int64(200), got.Capacity)
	assert.Equal(t, "Hall", got.Name)
	assert.Equal(t, "X", got.City)
	assert.Equal(t, "Y", got.Address)
	assert.Equal(t, "555", got.Phone)
}

func mustClock(t *testing.T, s string) types.TimeOfDay {
	t.Helper()
	c, err := types.ParseTimeOfDay(s)
	require.NoError(t, err)
	return c
}
