// Package jsonfile implements the flat-file storage backend. Each entity
// collection is one JSON array persisted as a whole file under the data
// directory; every mutation reloads the array, modifies it in memory, and
// rewrites the file atomically (temp file, fsync, rename). A mutex per
// collection serializes writers so concurrent mutations cannot lose updates.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/mesh-intelligence/eventbook/pkg/types"
)

// Collection stores one entity type as a JSON array in a single file.
// An empty or absent file is an empty collection, never an error.
type Collection[T types.Record[T]] struct {
	mu     sync.Mutex
	path   string
	entity string
}

// NewCollection creates a collection persisted at path. entity is the
// user-facing entity name used in NotFoundError.
func NewCollection[T types.Record[T]](path, entity string) *Collection[T] {
	return &Collection[T]{path: path, entity: entity}
}

// load reads and parses the backing file. Missing and empty files yield a
// nil slice.
func (c *Collection[T]) load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", c.path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", c.path, err)
	}
	return records, nil
}

// save atomically rewrites the backing file with the full collection using
// the temp-file, fsync, rename pattern.
func (c *Collection[T]) save(records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", c.path, err)
	}

	dir := filepath.Dir(c.path)
	tmp, err := os.CreateTemp(dir, ".json-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing records: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, c.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// List returns all records; an empty collection yields an empty slice.
func (c *Collection[T]) List() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load()
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(id int64) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	records, err := c.load()
	if err != nil {
		return zero, err
	}
	for _, rec := range records {
		if rec.RecordID() == id {
			return rec, nil
		}
	}
	return zero, &types.NotFoundError{Entity: c.entity, ID: id}
}

// Insert appends a new record and rewrites the file. A nonzero id is used
// as given; id 0 is assigned as one past the highest existing id.
func (c *Collection[T]) Insert(rec T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	records, err := c.load()
	if err != nil {
		return zero, err
	}

	if rec.RecordID() == 0 {
		var max int64
		for _, r := range records {
			if r.RecordID() > max {
				max = r.RecordID()
			}
		}
		rec = rec.WithRecordID(max + 1)
	} else {
		for _, r := range records {
			if r.RecordID() == rec.RecordID() {
				return zero, types.ErrDuplicateID
			}
		}
	}

	records = append(records, rec)
	if err := c.save(records); err != nil {
		return zero, err
	}
	return rec, nil
}

// Update merges the patch into the stored record and rewrites the file.
// The id is pinned after the merge, so a patch can never change it.
func (c *Collection[T]) Update(id int64, patch types.Patch[T]) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	records, err := c.load()
	if err != nil {
		return zero, err
	}
	for i, rec := range records {
		if rec.RecordID() != id {
			continue
		}
		merged := patch.Apply(rec).WithRecordID(id)
		records[i] = merged
		if err := c.save(records); err != nil {
			return zero, err
		}
		return merged, nil
	}
	return zero, &types.NotFoundError{Entity: c.entity, ID: id}
}

// Delete removes the record with the given id and rewrites the file.
func (c *Collection[T]) Delete(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load()
	if err != nil {
		return err
	}
	kept := records[:0]
	found := false
	for _, rec := range records {
		if rec.RecordID() == id {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return &types.NotFoundError{Entity: c.entity, ID: id}
	}
	return c.save(kept)
}
