package models

import (
	"bytes"
	"encoding/json"
)

// Optional distinguishes a field that was absent from one that was sent,
// including one sent as JSON null. An absent field keeps Set == false;
// a present field sets Set and Null (for null) or Value.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// UnmarshalJSON is only invoked when the key is present in the object.
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

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
