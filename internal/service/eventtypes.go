package service

import (
	"github.com/mesh-intelligence/eventbook/pkg/types"
)

// EventTypes implements CRUD for EventType records.
type EventTypes struct {
	store types.Collection[types.EventType]
}

func NewEventTypes(store types.Collection[types.EventType]) *EventTypes {
	return &EventTypes{store: store}
}

func (s *EventTypes) Create(et types.EventType) (types.EventType, error) {
	if err := et.Validate(); err != nil {
		return types.EventType{}, err
	}
	return s.store.Insert(et)
}

func (s *EventTypes) List() ([]types.EventType, error) {
	return s.store.List()
}

func (s *EventTypes) Get(id int64) (types.EventType, error) {
	return s.store.Get(id)
}

func (s *EventTypes) Update(id int64, patch types.EventTypePatch) (types.EventType, error) {
	return s.store.Update(id, patch)
}

func (s *EventTypes) Delete(id int64) error {
	return s.store.Delete(id)
}
