package jsonfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/eventbook/pkg/types"
)

// Backing file names, one JSON array per entity.
const (
	locationsFile  = "Local.json"
	eventTypesFile = "EventType.json"
	eventsFile     = "Event.json"
	linksFile      = "LocalEventLink.json"
)

// Backend implements types.Store over one JSON file per entity collection.
type Backend struct {
	locations  *Collection[types.Location]
	eventTypes *Collection[types.EventType]
	events     *Collection[types.Event]
	links      *Collection[types.LocalEventLink]
}

// Open creates the data directory if needed and returns a Backend rooted
// there. Absent files are created lazily on first mutation.
func Open(cfg types.Config) (*Backend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &Backend{
		locations:  NewCollection[types.Location](filepath.Join(cfg.DataDir, locationsFile), types.EntityLocation),
		eventTypes: NewCollection[types.EventType](filepath.Join(cfg.DataDir, eventTypesFile), types.EntityEventType),
		events:     NewCollection[types.Event](filepath.Join(cfg.DataDir, eventsFile), types.EntityEvent),
		links:      NewCollection[types.LocalEventLink](filepath.Join(cfg.DataDir, linksFile), types.EntityLink),
	}, nil
}

func (b *Backend) Locations() types.Collection[types.Location] { return b.locations }

func (b *Backend) EventTypes() types.Collection[types.EventType] { return b.eventTypes }

func (b *Backend) Events() types.Collection[types.Event] { return b.events }

func (b *Backend) Links() types.Collection[types.LocalEventLink] { return b.links }

// Close releases nothing; all state is on disk after every mutation. It
// exists so both backends share the Store lifecycle.
func (b *Backend) Close() error { return nil }
