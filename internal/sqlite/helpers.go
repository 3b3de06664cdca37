package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mesh-intelligence/eventbook/pkg/types"
)

// rowExists returns ErrDuplicateID when table already holds a row with the
// given id. Used by Insert before honoring a client-supplied primary key.
func rowExists(db *sqlx.DB, table string, id int64) error {
	var one int
	err := db.Get(&one, "SELECT 1 FROM "+table+" WHERE id = ?", id)
	if err == nil {
		return types.ErrDuplicateID
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	return fmt.Errorf("checking %s id: %w", table, err)
}

// deleteRow removes the row with the given id, reporting a NotFoundError
// when no row was deleted.
func deleteRow(db *sqlx.DB, table, entity string, id int64) error {
	res, err := db.Exec("DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting from %s: %w", table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return &types.NotFoundError{Entity: entity, ID: id}
	}
	return nil
}
