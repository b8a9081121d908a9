// Package patch modela campos de PATCH con presencia explícita:
// no enviado => no tocar; enviado (incluido null) => aplicar.
package patch

import (
	"bytes"
	"encoding/json"
)

// Field distingue "no enviado" de "enviado". Para campos anulables usar Field[*T];
// un null en JSON deja Set=true y Value=nil.
type Field[T any] struct {
	Set   bool
	Value T
}

func Some[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// UnmarshalJSON solo se invoca si la key viene en el body (también con null).
func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		var zero T
		f.Value = zero
		return nil
	}
	return json.Unmarshal(b, &f.Value)
}

// IsNull indica "enviado como null" para campos puntero.
func IsNull[T any](f Field[*T]) bool {
	return f.Set && f.Value == nil
}
