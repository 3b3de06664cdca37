package service

import (
	"github.com/mesh-intelligence/eventbook/pkg/types"
)

// Events implements CRUD for Event records. The default mode does not
// check that EndDate follows StartDate, nor that LocationID/EventTypeID
// point at existing rows; strict mode adds both checks at creation and
// wherever a patch supplies the affected fields.
type Events struct {
	store      types.Collection[types.Event]
	locations  types.Collection[types.Location]
	eventTypes types.Collection[types.EventType]
	strict     bool
}

func NewEvents(
	store types.Collection[types.Event],
	locations types.Collection[types.Location],
	eventTypes types.Collection[types.EventType],
	strict bool,
) *Events {
	return &Events{store: store, locations: locations, eventTypes: eventTypes, strict: strict}
}

func (s *Events) Create(ev types.Event) (types.Event, error) {
	if err := ev.Validate(); err != nil {
		return types.Event{}, err
	}
	if s.strict {
		if err := s.checkStrict(ev); err != nil {
			return types.Event{}, err
		}
	}
	return s.store.Insert(ev)
}

func (s *Events) List() ([]types.Event, error) {
	return s.store.List()
}

func (s *Events) Get(id int64) (types.Event, error) {
	return s.store.Get(id)
}

func (s *Events) Update(id int64, patch types.EventPatch) (types.Event, error) {
	if s.strict {
		existing, err := s.store.Get(id)
		if err != nil {
			return types.Event{}, err
		}
		if err := s.checkStrict(patch.Apply(existing)); err != nil {
			return types.Event{}, err
		}
	}
	return s.store.Update(id, patch)
}

func (s *Events) Delete(id int64) error {
	return s.store.Delete(id)
}

// checkStrict enforces the stricter-validation rules on a fully merged
// event: date ordering and foreign-key existence.
func (s *Events) checkStrict(ev types.Event) error {
	if !ev.EndDate.IsZero() && ev.EndDate.Before(ev.StartDate.Time) {
		return &types.ValidationError{Field: "end_date", Reason: "must not precede start_date"}
	}
	if ev.LocationID != 0 {
		if _, err := s.locations.Get(ev.LocationID); err != nil {
			return err
		}
	}
	if ev.EventTypeID != 0 {
		if _, err := s.eventTypes.Get(ev.EventTypeID); err != nil {
			return err
		}
	}
	return nil
}
