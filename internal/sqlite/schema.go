// Package sqlite implements the relational storage backend on an embedded
// SQLite database, accessed through sqlx. One table per entity, integer
// primary keys, foreign keys declared for documentation; referential checks
// happen in the service layer so both backends behave identically.
package sqlite

// Schema DDL for all tables.
const (
	createLocations = `CREATE TABLE IF NOT EXISTS locations (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    city TEXT NOT NULL,
    address TEXT NOT NULL,
    capacity INTEGER NOT NULL,
    phone TEXT NOT NULL
);`

	createEventTypes = `CREATE TABLE IF NOT EXISTS event_types (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    category TEXT NOT NULL,
    description TEXT NOT NULL,
    target_audience TEXT NOT NULL
);`

	createEvents = `CREATE TABLE IF NOT EXISTS events (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    description TEXT NOT NULL,
    start_date TEXT NOT NULL,
    end_date TEXT NOT NULL,
    start_time TEXT NOT NULL,
    end_time TEXT NOT NULL,
    location_id INTEGER NOT NULL DEFAULT 0,
    event_type_id INTEGER NOT NULL DEFAULT 0
);`

	createLinks = `CREATE TABLE IF NOT EXISTS local_event_links (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    location_id INTEGER NOT NULL,
    event_id INTEGER NOT NULL
);`
)

// schemaDDL lists the statements executed on Open, in dependency order.
var schemaDDL = []string{
	createLocations,
	createEventTypes,
	createEvents,
	createLinks,
}
