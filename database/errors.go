package database

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by updates that reference an absent id
var ErrNotFound = errors.New("record not found")

// StoreError wraps any failure reported by the store: connectivity,
// constraint violations, rejected queries, expired deadlines.
type StoreError struct {
	Op     string
	Entity string
	Err    error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeError(op, entity string, err error) error {
	return &StoreError{Op: op, Entity: entity, Err: err}
}

// IsStoreError reports whether err carries a StoreError
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
