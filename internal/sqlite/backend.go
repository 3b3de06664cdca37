package sqlite

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/eventbook/pkg/types"
)

// dbFileName is the SQLite database file created under the data directory.
const dbFileName = "eventbook.db"

// Backend implements types.Store over an embedded SQLite database.
type Backend struct {
	db *sqlx.DB

	locations  *locationStore
	eventTypes *eventTypeStore
	events     *eventStore
	links      *linkStore
}

// Open creates the data directory if needed, opens (or creates) the
// database file, and applies the schema.
func Open(cfg types.Config) (*Backend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sqlx.Open("sqlite", filepath.Join(cfg.DataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying schema: %w", err)
		}
	}

	return &Backend{
		db:         db,
		locations:  &locationStore{db: db},
		eventTypes: &eventTypeStore{db: db},
		events:     &eventStore{db: db},
		links:      &linkStore{db: db},
	}, nil
}

func (b *Backend) Locations() types.Collection[types.Location] { return b.locations }

func (b *Backend) EventTypes() types.Collection[types.EventType] { return b.eventTypes }

func (b *Backend) Events() types.Collection[types.Event] { return b.events }

func (b *Backend) Links() types.Collection[types.LocalEventLink] { return b.links }

// Close closes the underlying database connection.
func (b *Backend) Close() error {
	return b.db.Close()
}
