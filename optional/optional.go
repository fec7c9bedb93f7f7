// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package optional provides a type for values which may be absent.
//
// Value[T] distinguishes between "not set" and "set to the zero value",
// which matters for configuration where absent fields must be elided
// rather than emitted with defaults.
package optional

// Value represents a value of type T which may or may not be set.
// The zero Value is unset.
type Value[T any] struct {
	value T
	set   bool
}

// ValueOf returns a set Value holding v.
func ValueOf[T any](v T) Value[T] {
	return Value[T]{value: v, set: true}
}

// Value returns the underlying value and whether it was set.
func (v Value[T]) Value() (T, bool) {
	return v.value, v.set
}

// OrElse returns the underlying value if set, otherwise def.
func (v Value[T]) OrElse(def T) T {
	if !v.set {
		return def
	}
	return v.value
}
