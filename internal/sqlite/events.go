package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mesh-intelligence/eventbook/pkg/types"
)

// eventStore implements types.Collection[types.Event]. Dates and times go
// through the Date/TimeOfDay Valuer/Scanner implementations, so the TEXT
// columns hold the same strings the JSON files do.
type eventStore struct {
	db *sqlx.DB
}

const eventColumns = "id, name, description, start_date, end_date, start_time, end_time, location_id, event_type_id"

func (s *eventStore) List() ([]types.Event, error) {
	out := []types.Event{}
	err := s.db.Select(&out, "SELECT "+eventColumns+" FROM events ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	return out, nil
}

func (s *eventStore) Get(id int64) (types.Event, error) {
	var ev types.Event
	err := s.db.Get(&ev, "SELECT "+eventColumns+" FROM events WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Event{}, &types.NotFoundError{Entity: types.EntityEvent, ID: id}
	}
	if err != nil {
		return types.Event{}, fmt.Errorf("getting event: %w", err)
	}
	return ev, nil
}

func (s *eventStore) Insert(ev types.Event) (types.Event, error) {
	if ev.ID != 0 {
		if err := rowExists(s.db, "events", ev.ID); err != nil {
			return types.Event{}, err
		}
		_, err := s.db.Exec(
			`INSERT INTO events (id, name, description, start_date, end_date, start_time, end_time, location_id, event_type_id)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			ev.ID, ev.Name, ev.Description, ev.StartDate, ev.EndDate,
			ev.StartTime, ev.EndTime, ev.LocationID, ev.EventTypeID)
		if err != nil {
			return types.Event{}, fmt.Errorf("inserting event: %w", err)
		}
		return ev, nil
	}

	res, err := s.db.Exec(
		`INSERT INTO events (name, description, start_date, end_date, start_time, end_time, location_id, event_type_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.Name, ev.Description, ev.StartDate, ev.EndDate,
		ev.StartTime, ev.EndTime, ev.LocationID, ev.EventTypeID)
	if err != nil {
		return types.Event{}, fmt.Errorf("inserting event: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return types.Event{}, fmt.Errorf("reading assigned event id: %w", err)
	}
	return ev.WithRecordID(id), nil
}

func (s *eventStore) Update(id int64, patch types.Patch[types.Event]) (types.Event, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		return types.Event{}, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	var ev types.Event
	err = tx.Get(&ev, "SELECT "+eventColumns+" FROM events WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Event{}, &types.NotFoundError{Entity: types.EntityEvent, ID: id}
	}
	if err != nil {
		return types.Event{}, fmt.Errorf("loading event for update: %w", err)
	}

	merged := patch.Apply(ev).WithRecordID(id)
	_, err = tx.Exec(
		`UPDATE events SET name = ?, description = ?, start_date = ?, end_date = ?,
		 start_time = ?, end_time = ?, location_id = ?, event_type_id = ? WHERE id = ?`,
		merged.Name, merged.Description, merged.StartDate, merged.EndDate,
		merged.StartTime, merged.EndTime, merged.LocationID, merged.EventTypeID, id)
	if err != nil {
		return types.Event{}, fmt.Errorf("updating event: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return types.Event{}, fmt.Errorf("committing event update: %w", err)
	}
	return merged, nil
}

func (s *eventStore) Delete(id int64) error {
	return deleteRow(s.db, "events", types.EntityEvent, id)
}
