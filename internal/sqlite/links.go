package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mesh-intelligence/eventbook/pkg/types"
)

// linkStore implements types.Collection[types.LocalEventLink]. Link ids are
// always store-assigned; the referential check lives in the service layer.
type linkStore struct {
	db *sqlx.DB
}

const linkColumns = "id, location_id, event_id"

func (s *linkStore) List() ([]types.LocalEventLink, error) {
	out := []types.LocalEventLink{}
	err := s.db.Select(&out, "SELECT "+linkColumns+" FROM local_event_links ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("listing links: %w", err)
	}
	return out, nil
}

func (s *linkStore) Get(id int64) (types.LocalEventLink, error) {
	var l types.LocalEventLink
	err := s.db.Get(&l, "SELECT "+linkColumns+" FROM local_event_links WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return types.LocalEventLink{}, &types.NotFoundError{Entity: types.EntityLink, ID: id}
	}
	if err != nil {
		return types.LocalEventLink{}, fmt.Errorf("getting link: %w", err)
	}
	return l, nil
}

func (s *linkStore) Insert(l types.LocalEventLink) (types.LocalEventLink, error) {
	if l.ID != 0 {
		if err := rowExists(s.db, "local_event_links", l.ID); err != nil {
			return types.LocalEventLink{}, err
		}
		_, err := s.db.Exec(
			"INSERT INTO local_event_links (id, location_id, event_id) VALUES (?, ?, ?)",
			l.ID, l.LocationID, l.EventID)
		if err != nil {
			return types.LocalEventLink{}, fmt.Errorf("inserting link: %w", err)
		}
		return l, nil
	}

	res, err := s.db.Exec(
		"INSERT INTO local_event_links (location_id, event_id) VALUES (?, ?)",
		l.LocationID, l.EventID)
	if err != nil {
		return types.LocalEventLink{}, fmt.Errorf("inserting link: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return types.LocalEventLink{}, fmt.Errorf("reading assigned link id: %w", err)
	}
	return l.WithRecordID(id), nil
}

func (s *linkStore) Update(id int64, patch types.Patch[types.LocalEventLink]) (types.LocalEventLink, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		return types.LocalEventLink{}, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	var l types.LocalEventLink
	err = tx.Get(&l, "SELECT "+linkColumns+" FROM local_event_links WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return types.LocalEventLink{}, &types.NotFoundError{Entity: types.EntityLink, ID: id}
	}
	if err != nil {
		return types.LocalEventLink{}, fmt.Errorf("loading link for update: %w", err)
	}

	merged := patch.Apply(l).WithRecordID(id)
	_, err = tx.Exec(
		"UPDATE local_event_links SET location_id = ?, event_id = ? WHERE id = ?",
		merged.LocationID, merged.EventID, id)
	if err != nil {
		return types.LocalEventLink{}, fmt.Errorf("updating link: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return types.LocalEventLink{}, fmt.Errorf("committing link update: %w", err)
	}
	return merged, nil
}

func (s *linkStore) Delete(id int64) error {
	return deleteRow(s.db, "local_event_links", types.EntityLink, id)
}
