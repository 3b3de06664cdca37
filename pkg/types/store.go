package types

// Record constrains the entity types a Collection can hold. WithRecordID
// returns a copy with the ID replaced; backends use it to assign generated
// ids and to pin the ID across partial updates.
type Record[T any] interface {
	RecordID() int64
	WithRecordID(id int64) T
}

// Patch applies a partial update to an existing record and returns the
// merged result. Apply is a pure function: absent (nil) fields leave the
// existing value untouched, and the record ID is never modified.
type Patch[T any] interface {
	Apply(existing T) T
}

// Collection is the persistence port for a single entity type. Both the
// flat-file and the SQLite backend satisfy it with the same semantics:
//
//   - List returns every record; an empty or absent underlying store yields
//     an empty slice, never an error.
//   - Get returns a NotFoundError when no record has the given id.
//   - Insert persists a new record. A nonzero id is used as given; id 0 asks
//     the store to assign one. Inserting an id that already exists fails
//     with ErrDuplicateID.
//   - Update loads the record, applies the patch, and persists the merged
//     record under the same id. Returns a NotFoundError when absent.
//   - Delete removes the record, returning a NotFoundError when absent.
//
// Every mutation is durable before the call returns.
type Collection[T Record[T]] interface {
	List() ([]T, error)
	Get(id int64) (T, error)
	Insert(rec T) (T, error)
	Update(id int64, patch Patch[T]) (T, error)
	Delete(id int64) error
}

// Store bundles the four entity collections behind a single lifecycle. A
// Store is opened once at process start and closed at shutdown; it is the
// only shared mutable resource, and nothing above it caches records.
type Store interface {
	Locations() Collection[Location]
	EventTypes() Collection[EventType]
	Events() Collection[Event]
	Links() Collection[LocalEventLink]
	Close() error
}

// User-facing entity names used in NotFoundError and adapter messages.
const (
	EntityLocation  = "Location"
	EntityEventType = "EventType"
	EntityEvent     = "Event"
	EntityLink      = "Link"
)
