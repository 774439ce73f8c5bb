package models

import (
	"bytes"
	"encoding/json"
)

// Field is a patch slot for a nullable attribute. Set reports whether the key
// was supplied at all; Value is nil when it was supplied as null.
type Field[T any] struct {
	Set   bool
	Value *T
}

// SetTo returns a Field that overwrites the attribute with v.
func SetTo[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: &v}
}

// SetNull returns a Field that clears the attribute.
func SetNull[T any]() Field[T] {
	return Field[T]{Set: true}
}

// UnmarshalJSON is only invoked when the key is present in the payload.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.Value = &v
	return nil
}

// MarshalJSON renders an unset or null Field as null.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set || f.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*f.Value)
}

func applyPtr[T any](dst **T, f Field[T]) {
	if !f.Set {
		return
	}
	if f.Value == nil {
		*dst = nil
		return
	}
	v := *f.Value
	*dst = &v
}

func applySlice[T any](dst *[]T, f Field[[]T]) {
	if !f.Set {
		return
	}
	if f.Value == nil {
		*dst = nil
		return
	}
	*dst = cloneSlice(*f.Value)
}

func applyValue[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func nilIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
