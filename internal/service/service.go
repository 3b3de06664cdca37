// Package service implements the entity services: create/list/get/update/
// delete per entity on top of the storage port, create-time validation, and
// the ordered referential check for link creation. Services hold no state
// beyond their collections; every call re-reads current durable state.
package service

import (
	"github.com/mesh-intelligence/eventbook/pkg/types"
)

// Registry bundles the four entity services built over one Store.
type Registry struct {
	Locations  *Locations
	EventTypes *EventTypes
	Events     *Events
	Links      *Links
}

// NewRegistry wires the services to the given store. strict enables the
// stricter validation mode: positive capacity, end date not before start
// date, and existence checks for Event foreign keys at creation time.
func NewRegistry(store types.Store, strict bool) *Registry {
	return &Registry{
		Locations:  NewLocations(store.Locations(), strict),
		EventTypes: NewEventTypes(store.EventTypes()),
		Events:     NewEvents(store.Events(), store.Locations(), store.EventTypes(), strict),
		Links:      NewLinks(store.Links(), store.Locations(), store.Events()),
	}
}
