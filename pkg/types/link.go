package types

// LocalEventLink associates a Location with an Event (many-to-many). Links
// are only created after both referenced records have been confirmed to
// exist; see the service layer for the ordered existence check.
type LocalEventLink struct {
	ID         int64 `json:"id" db:"id"`
	LocationID int64 `json:"location_id" db:"location_id"`
	EventID    int64 `json:"event_id" db:"event_id"`
}

func (l LocalEventLink) RecordID() int64 { return l.ID }

func (l LocalEventLink) WithRecordID(id int64) LocalEventLink {
	l.ID = id
	return l
}
