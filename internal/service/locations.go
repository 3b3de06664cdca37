package service

import (
	"github.com/mesh-intelligence/eventbook/pkg/types"
)

// Locations implements CRUD for Location records.
type Locations struct {
	store  types.Collection[types.Location]
	strict bool
}

func NewLocations(store types.Collection[types.Location], strict bool) *Locations {
	return &Locations{store: store, strict: strict}
}

// Create validates the payload and persists it. A nonzero ID is honored as
// the primary key; ID 0 lets the store assign one.
func (s *Locations) Create(loc types.Location) (types.Location, error) {
	if err := loc.Validate(); err != nil {
		return types.Location{}, err
	}
	if s.strict && loc.Capacity <= 0 {
		return types.Location{}, &types.ValidationError{Field: "capacity", Reason: "must be positive"}
	}
	return s.store.Insert(loc)
}

func (s *Locations) List() ([]types.Location, error) {
	return s.store.List()
}

func (s *Locations) Get(id int64) (types.Location, error) {
	return s.store.Get(id)
}

func (s *Locations) Update(id int64, patch types.LocationPatch) (types.Location, error) {
	if s.strict && patch.Capacity != nil && *patch.Capacity <= 0 {
		return types.Location{}, &types.ValidationError{Field: "capacity", Reason: "must be positive"}
	}
	return s.store.Update(id, patch)
}

func (s *Locations) Delete(id int64) error {
	return s.store.Delete(id)
}
