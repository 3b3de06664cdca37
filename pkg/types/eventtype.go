package types

// EventType categorizes events (music, technology, and so on).
type EventType struct {
	ID             int64  `json:"id" db:"id"`
	Category       string `json:"category" db:"category"`
	Description    string `json:"description" db:"description"`
	TargetAudience string `json:"target_audience" db:"target_audience"`
}

func (e EventType) RecordID() int64 { return e.ID }

func (e EventType) WithRecordID(id int64) EventType {
	e.ID = id
	return e
}

// Validate checks the fields required on creation.
func (e EventType) Validate() error {
	if e.Category == "" {
		return &ValidationError{Field: "category", Reason: "must not be empty"}
	}
	return nil
}

// EventTypePatch carries the subset of EventType fields to overwrite.
type EventTypePatch struct {
	Category       *string `json:"category,omitempty"`
	Description    *string `json:"description,omitempty"`
	TargetAudience *string `json:"target_audience,omitempty"`
}

// Apply merges the patch onto et. Nil fields are left unchanged.
func (p EventTypePatch) Apply(et EventType) EventType {
	if p.Category != nil {
		et.Category = *p.Category
	}
	if p.Description != nil {
		et.Description = *p.Description
	}
	if p.TargetAudience != nil {
		et.TargetAudience = *p.TargetAudience
	}
	return et
}
