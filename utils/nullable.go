package utils

import "encoding/json"

// Nullable is a request field that tells an absent key apart from an explicit
// JSON null. Set is true once the key appeared in the body; Valid is false
// when it was null.
type Nullable[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// UnmarshalJSON is also called for a literal null, which is what marks the
// field as present but empty.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Valid = false
		var zero T
		n.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// IsNull reports whether the key was sent as null
func (n Nullable[T]) IsNull() bool {
	return n.Set && !n.Valid
}

// Apply writes the field into an update map when it was present. Null is
// written as SQL NULL.
func (n Nullable[T]) Apply(changes map[string]interface{}, column string) {
	if !n.Set {
		return
	}
	if !n.Valid {
		changes[column] = nil
		return
	}
	changes[column] = n.Value
}

// ApplyNotNull is Apply for NOT NULL-style columns: null resets the column to
// its zero value.
func (n Nullable[T]) ApplyNotNull(changes map[string]interface{}, column string) {
	if n.Set {
		changes[column] = n.Value
	}
}
