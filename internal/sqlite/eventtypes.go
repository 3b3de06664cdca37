package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mesh-intelligence/eventbook/pkg/types"
)

// eventTypeStore implements types.Collection[types.EventType].
type eventTypeStore struct {
	db *sqlx.DB
}

const eventTypeColumns = "id, category, description, target_audience"

func (s *eventTypeStore) List() ([]types.EventType, error) {
	out := []types.EventType{}
	err := s.db.Select(&out, "SELECT "+eventTypeColumns+" FROM event_types ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("listing event types: %w", err)
	}
	return out, nil
}

func (s *eventTypeStore) Get(id int64) (types.EventType, error) {
	var et types.EventType
	err := s.db.Get(&et, "SELECT "+eventTypeColumns+" FROM event_types WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return types.EventType{}, &types.NotFoundError{Entity: types.EntityEventType, ID: id}
	}
	if err != nil {
		return types.EventType{}, fmt.Errorf("getting event type: %w", err)
	}
	return et, nil
}

func (s *eventTypeStore) Insert(et types.EventType) (types.EventType, error) {
	if et.ID != 0 {
		if err := rowExists(s.db, "event_types", et.ID); err != nil {
			return types.EventType{}, err
		}
		_, err := s.db.Exec(
			"INSERT INTO event_types (id, category, description, target_audience) VALUES (?, ?, ?, ?)",
			et.ID, et.Category, et.Description, et.TargetAudience)
		if err != nil {
			return types.EventType{}, fmt.Errorf("inserting event type: %w", err)
		}
		return et, nil
	}

	res, err := s.db.Exec(
		"INSERT INTO event_types (category, description, target_audience) VALUES (?, ?, ?)",
		et.Category, et.Description, et.TargetAudience)
	if err != nil {
		return types.EventType{}, fmt.Errorf("inserting event type: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return types.EventType{}, fmt.Errorf("reading assigned event type id: %w", err)
	}
	return et.WithRecordID(id), nil
}

func (s *eventTypeStore) Update(id int64, patch types.Patch[types.EventType]) (types.EventType, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		return types.EventType{}, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	var et types.EventType
	err = tx.Get(&et, "SELECT "+eventTypeColumns+" FROM event_types WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return types.EventType{}, &types.NotFoundError{Entity: types.EntityEventType, ID: id}
	}
	if err != nil {
		return types.EventType{}, fmt.Errorf("loading event type for update: %w", err)
	}

	merged := patch.Apply(et).WithRecordID(id)
	_, err = tx.Exec(
		"UPDATE event_types SET category = ?, description = ?, target_audience = ? WHERE id = ?",
		merged.Category, merged.Description, merged.TargetAudience, id)
	if err != nil {
		return types.EventType{}, fmt.Errorf("updating event type: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return types.EventType{}, fmt.Errorf("committing event type update: %w", err)
	}
	return merged, nil
}

func (s *eventTypeStore) Delete(id int64) error {
	return deleteRow(s.db, "event_types", types.EntityEventType, id)
}
