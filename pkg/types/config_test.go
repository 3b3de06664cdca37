package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"valid jsonfile", Config{Backend: BackendJSONFile, DataDir: "db"}, nil},
		{"valid sqlite", Config{Backend: BackendSQLite, DataDir: "db"}, nil},
		{"empty backend", Config{DataDir: "db"}, ErrBackendEmpty},
		{"unknown backend", Config{Backend: "redis", DataDir: "db"}, ErrBackendUnknown},
		{"empty data dir", Config{Backend: BackendJSONFile}, ErrDataDirEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestErrorTaxonomy(t *testing.T) {
	t.Run("not found carries the entity name", func(t *testing.T) {
		err := &NotFoundError{Entity: EntityLocation, ID: 42}
		if !errors.Is(err, ErrNotFound) {
			t.Fatal("expected errors.Is(err, ErrNotFound)")
		}
		if err.Error() != "Location 42 not found" {
			t.Fatalf("unexpected message: %s", err)
		}
	})

	t.Run("validation carries the field name", func(t *testing.T) {
		err := &ValidationError{Field: "name", Reason: "must not be empty"}
		if !errors.Is(err, ErrInvalid) {
			t.Fatal("expected errors.Is(err, ErrInvalid)")
		}
		if err.Error() != `field "name" must not be empty` {
			t.Fatalf("unexpected message: %s", err)
		}
	})
}
