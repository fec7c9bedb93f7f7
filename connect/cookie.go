// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package connect

import (
	"time"

	"github.com/z5labs/vfsopt/optional"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Cookie is a single HTTP cookie in the form the transport consumes.
//
// Zero fields mean the cookie does not carry that property. Created and
// Expires are UTC instants; Attributes preserves the order in which
// attributes were declared and maps each attribute name to an optional
// value, so a value-less attribute stays distinguishable from an
// attribute with an empty value.
type Cookie struct {
	Name     string
	Value    string
	Domain   string
	Path     string
	HTTPOnly bool
	Secure   bool
	Created  time.Time
	Expires  time.Time

	// Attributes is nil when the cookie declares no attributes.
	Attributes *orderedmap.OrderedMap[string, optional.Value[string]]
}

// Authenticator carries proxy credentials. Every field is independently
// optional; the transport decides what an incomplete triple means.
type Authenticator struct {
	ID       optional.Value[string]
	Password optional.Value[string]
	Domain   optional.Value[string]
}
