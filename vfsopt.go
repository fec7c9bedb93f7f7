// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vfsopt

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/z5labs/vfsopt/connect"
)

// Option is a single, immutable unit of connection configuration.
//
// Implementations must be immutable after construction: Name and Value
// always return the same results, and Apply must not mutate the Option
// itself. Construction performs all validation, so Apply can only fail
// if the options context rejects the value.
type Option interface {
	// Name returns the stable, globally unique name of this option
	// kind. It is the JSON key and the registry lookup key.
	Name() string

	// Value returns the JSON projection of this option's value. Fields
	// without a value are omitted entirely, never emitted as null. The
	// result must reproduce an equal Option when passed back to the
	// kind's JSON constructor.
	Value() any

	// Apply writes this option's value onto opts. It is safe to call
	// multiple times; each call overwrites the previous write.
	Apply(opts *connect.Options) error
}

// Equal reports whether two options are structurally equal, i.e. their
// names and the JSON projections of their values match. Identity is
// irrelevant: an option built from native arguments equals one built
// from the JSON it serializes to.
func Equal(a, b Option) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Name() != b.Name() {
		return false
	}
	av, err := json.Marshal(a.Value())
	if err != nil {
		return false
	}
	bv, err := json.Marshal(b.Value())
	if err != nil {
		return false
	}
	return bytes.Equal(av, bv)
}

// Sprint renders an option in its diagnostic form, a single key JSON
// object of the shape {"<name>": <value>}.
func Sprint(o Option) string {
	b, err := json.Marshal(map[string]any{o.Name(): o.Value()})
	if err != nil {
		// Value() contracts to be JSON marshalable so this only
		// triggers on a misbehaving implementation.
		return fmt.Sprintf("{%q:null}", o.Name())
	}
	return string(b)
}
