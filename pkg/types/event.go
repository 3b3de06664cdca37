package types

// Event is a scheduled happening at a location. LocationID and EventTypeID
// are foreign keys into the Location and EventType collections; zero means
// unset. Their existence is not checked on creation unless strict
// validation is enabled; by default references are only verified when a
// LocalEventLink is created.
type Event struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	StartDate   Date      `json:"start_date" db:"start_date"`
	EndDate     Date      `json:"end_date" db:"end_date"`
	StartTime   TimeOfDay `json:"start_time" db:"start_time"`
	EndTime     TimeOfDay `json:"end_time" db:"end_time"`
	LocationID  int64     `json:"location_id" db:"location_id"`
	EventTypeID int64     `json:"event_type_id" db:"event_type_id"`
}

func (e Event) RecordID() int64 { return e.ID }

func (e Event) WithRecordID(id int64) Event {
	e.ID = id
	return e
}

// Validate checks the fields required on creation.
func (e Event) Validate() error {
	if e.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if e.StartDate.IsZero() {
		return &ValidationError{Field: "start_date", Reason: "is required"}
	}
	if e.EndDate.IsZero() {
		return &ValidationError{Field: "end_date", Reason: "is required"}
	}
	return nil
}

// EventPatch carries the subset of Event fields to overwrite.
type EventPatch struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	StartDate   *Date      `json:"start_date,omitempty"`
	EndDate     *Date      `json:"end_date,omitempty"`
	StartTime   *TimeOfDay `json:"start_time,omitempty"`
	EndTime     *TimeOfDay `json:"end_time,omitempty"`
	LocationID  *int64     `json:"location_id,omitempty"`
	EventTypeID *int64     `json:"event_type_id,omitempty"`
}

// Apply merges the patch onto ev. Nil fields are left unchanged.
func (p EventPatch) Apply(ev Event) Event {
	if p.Name != nil {
		ev.Name = *p.Name
	}
	if p.Description != nil {
		ev.Description = *p.Description
	}
	if p.StartDate != nil {
		ev.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		ev.EndDate = *p.EndDate
	}
	if p.StartTime != nil {
		ev.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		ev.EndTime = *p.EndTime
	}
	if p.LocationID != nil {
		ev.LocationID = *p.LocationID
	}
	if p.EventTypeID != nil {
		ev.EventTypeID = *p.EventTypeID
	}
	return ev
}
