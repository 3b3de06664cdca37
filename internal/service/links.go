package service

import (
	"github.com/mesh-intelligence/eventbook/pkg/types"
)

// Links manages LocalEventLink records, the many-to-many association
// between locations and events.
type Links struct {
	store     types.Collection[types.LocalEventLink]
	locations types.Collection[types.Location]
	events    types.Collection[types.Event]
}

func NewLinks(
	store types.Collection[types.LocalEventLink],
	locations types.Collection[types.Location],
	events types.Collection[types.Event],
) *Links {
	return &Links{store: store, locations: locations, events: events}
}

// Create links a location to an event. The location is checked first and a
// missing location short-circuits before the event is ever looked up; the
// first failure aborts and nothing is inserted. The link id is always
// store-assigned.
func (s *Links) Create(locationID, eventID int64) (types.LocalEventLink, error) {
	if _, err := s.locations.Get(locationID); err != nil {
		return types.LocalEventLink{}, err
	}
	if _, err := s.events.Get(eventID); err != nil {
		return types.LocalEventLink{}, err
	}
	return s.store.Insert(types.LocalEventLink{
		LocationID: locationID,
		EventID:    eventID,
	})
}

func (s *Links) List() ([]types.LocalEventLink, error) {
	return s.store.List()
}

func (s *Links) Get(id int64) (types.LocalEventLink, error) {
	return s.store.Get(id)
}

func (s *Links) Delete(id int64) error {
	return s.store.Delete(id)
}
