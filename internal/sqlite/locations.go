package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mesh-intelligence/eventbook/pkg/types"
)

// locationStore implements types.Collection[types.Location].
type locationStore struct {
	db *sqlx.DB
}

const locationColumns = "id, name, city, address, capacity, phone"

func (s *locationStore) List() ([]types.Location, error) {
	out := []types.Location{}
	err := s.db.Select(&out, "SELECT "+locationColumns+" FROM locations ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("listing locations: %w", err)
	}
	return out, nil
}

func (s *locationStore) Get(id int64) (types.Location, error) {
	var loc types.Location
	err := s.db.Get(&loc, "SELECT "+locationColumns+" FROM locations WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Location{}, &types.NotFoundError{Entity: types.EntityLocation, ID: id}
	}
	if err != nil {
		return types.Location{}, fmt.Errorf("getting location: %w", err)
	}
	return loc, nil
}

func (s *locationStore) Insert(loc types.Location) (types.Location, error) {
	if loc.ID != 0 {
		if err := rowExists(s.db, "locations", loc.ID); err != nil {
			return types.Location{}, err
		}
		_, err := s.db.Exec(
			"INSERT INTO locations (id, name, city, address, capacity, phone) VALUES (?, ?, ?, ?, ?, ?)",
			loc.ID, loc.Name, loc.City, loc.Address, loc.Capacity, loc.Phone)
		if err != nil {
			return types.Location{}, fmt.Errorf("inserting location: %w", err)
		}
		return loc, nil
	}

	res, err := s.db.Exec(
		"INSERT INTO locations (name, city, address, capacity, phone) VALUES (?, ?, ?, ?, ?)",
		loc.Name, loc.City, loc.Address, loc.Capacity, loc.Phone)
	if err != nil {
		return types.Location{}, fmt.Errorf("inserting location: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return types.Location{}, fmt.Errorf("reading assigned location id: %w", err)
	}
	return loc.WithRecordID(id), nil
}

func (s *locationStore) Update(id int64, patch types.Patch[types.Location]) (types.Location, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		return types.Location{}, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	var loc types.Location
	err = tx.Get(&loc, "SELECT "+locationColumns+" FROM locations WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Location{}, &types.NotFoundError{Entity: types.EntityLocation, ID: id}
	}
	if err != nil {
		return types.Location{}, fmt.Errorf("loading location for update: %w", err)
	}

	merged := patch.Apply(loc).WithRecordID(id)
	_, err = tx.Exec(
		"UPDATE locations SET name = ?, city = ?, address = ?, capacity = ?, phone = ? WHERE id = ?",
		merged.Name, merged.City, merged.Address, merged.Capacity, merged.Phone, id)
	if err != nil {
		return types.Location{}, fmt.Errorf("updating location: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return types.Location{}, fmt.Errorf("committing location update: %w", err)
	}
	return merged, nil
}

func (s *locationStore) Delete(id int64) error {
	return deleteRow(s.db, "locations", types.EntityLocation, id)
}
