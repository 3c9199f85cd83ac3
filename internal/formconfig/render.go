// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package formconfig

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned by Render for a descriptor whose Kind has no factory method.
var ErrUnknownKind = errors.New("unknown field kind")

// FieldFactory builds host elements of type T from descriptors.
type FieldFactory[T any] interface {
	Text(f Field) (T, error)
	Checkbox(f Field) (T, error)
}

// Render builds one element per field, preserving order.
func Render[T any](factory FieldFactory[T], fields []Field) ([]T, error) {
	out := make([]T, 0, len(fields))
	for _, f := range fields {
		var (
			el  T
			err error
		)
		switch f.Kind {
		case KindText:
			el, err = factory.Text(f)
		case KindCheckbox:
			el, err = factory.Checkbox(f)
		default:
			return nil, fmt.Errorf("field %q: %w %q", f.Name, ErrUnknownKind, f.Kind)
		}
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		out = append(out, el)
	}
	return out, nil
}

// Form binds a factory to the descriptor.
type Form[T any] struct {
	schema  Schema
	factory FieldFactory[T]
}

// NewForm returns a Form that renders the descriptor's fields with factory.
func NewForm[T any](factory FieldFactory[T]) *Form[T] {
	return &Form[T]{schema: New(), factory: factory}
}

// Build renders every field of the descriptor.
func (f *Form[T]) Build() ([]T, error) {
	return Render(f.factory, f.schema.Fields())
}
