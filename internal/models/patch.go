package models

import (
	"bytes"
	"encoding/json"
)

// Patch maps column names to new values. It holds only the fields a caller
// actually supplied, so an empty Patch changes nothing.
type Patch map[string]interface{}

func (p Patch) Has(column string) bool {
	_, ok := p[column]
	return ok
}

func (p Patch) Empty() bool { return len(p) == 0 }

// Optional tracks a JSON field across three states: absent, null, or a value.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(b, &o.Value)
}

// Some builds a present, non-null Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// Ptr returns nil for null and a pointer to the value otherwise.
func (o Optional[T]) Ptr() *T {
	if o.Null {
		return nil
	}
	v := o.Value
	return &v
}

// Apply records the field in p when it was supplied. Null is stored as a
// typed nil so the column is cleared.
func (o Optional[T]) Apply(p Patch, column string) {
	if !o.Set {
		return
	}
	p[column] = o.Ptr()
}
