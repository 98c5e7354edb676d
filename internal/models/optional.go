package models

import (
	"bytes"
	"encoding/json"
)

// Optional distinguishes an absent JSON field from an explicit null and from a value.
// Used for PATCH bodies where only the fields present in the request are applied.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// UnmarshalJSON implements json.Unmarshaler. It is only called for keys present in the input.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}
