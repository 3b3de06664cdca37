package types

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers match these with errors.Is; the structured
// NotFoundError and ValidationError types below report as their sentinel.
var (
	ErrNotFound    = errors.New("record not found")
	ErrInvalid     = errors.New("invalid record")
	ErrDuplicateID = errors.New("record id already exists")
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrDataDirEmpty   = errors.New("data directory must not be empty")
)

// NotFoundError reports that no record with the given ID exists in the
// named entity collection. Entity is the user-facing entity name
// ("Location", "EventType", "Event", "Link") so adapters can surface which
// collection missed.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
	}
	return e.Entity + " not found"
}

// Is makes errors.Is(err, ErrNotFound) match any NotFoundError.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ValidationError reports a rejected create or update payload, naming the
// offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrInvalid) match any ValidationError.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalid }
