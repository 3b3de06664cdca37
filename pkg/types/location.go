package types

// Location is a venue where events can take place.
type Location struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	City     string `json:"city" db:"city"`
	Address  string `json:"address" db:"address"`
	Capacity int64  `json:"capacity" db:"capacity"`
	Phone    string `json:"phone" db:"phone"`
}

func (l Location) RecordID() int64 { return l.ID }

func (l Location) WithRecordID(id int64) Location {
	l.ID = id
	return l
}

// Validate checks the fields required on creation.
func (l Location) Validate() error {
	if l.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	return nil
}

// LocationPatch carries the subset of Location fields to overwrite.
type LocationPatch struct {
	Name     *string `json:"name,omitempty"`
	City     *string `json:"city,omitempty"`
	Address  *string `json:"address,omitempty"`
	Capacity *int64  `json:"capacity,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

// Apply merges the patch onto loc. Nil fields are left unchanged; the ID is
// not part of the patch and cannot be modified.
func (p LocationPatch) Apply(loc Location) Location {
	if p.Name != nil {
		loc.Name = *p.Name
	}
	if p.City != nil {
		loc.City = *p.City
	}
	if p.Address != nil {
		loc.Address = *p.Address
	}
	if p.Capacity != nil {
		loc.Capacity = *p.Capacity
	}
	if p.Phone != nil {
		loc.Phone = *p.Phone
	}
	return loc
}
