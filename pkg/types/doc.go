// Package types defines the entity schemas, partial-update patches, typed
// errors, and the storage port for the eventbook record store.
//
// The four entities (Location, EventType, Event, LocalEventLink) are plain
// structs with integer primary keys. Each entity has a companion Patch type
// whose fields are all pointers; a nil field means "leave unchanged" and a
// patch can never modify the record ID. Backends implement the Collection
// interface per entity and the Store interface for lifecycle.
package types
