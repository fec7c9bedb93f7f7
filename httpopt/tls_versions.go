// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package httpopt

import (
	"encoding/json"
	"strings"

	"github.com/z5labs/vfsopt"
	"github.com/z5labs/vfsopt/connect"
	"github.com/z5labs/vfsopt/internal/coerce"
)

const tlsVersionsName = "http:tlsVersions"

// tlsVersionTokens is the closed set of legal TLS version tokens, in
// declaration order. Error messages enumerate the set in this order.
var tlsVersionTokens = []string{"V_1_0", "V_1_1", "V_1_2", "V_1_3"}

func init() {
	vfsopt.Register(tlsVersionsName, func(value json.RawMessage) (vfsopt.Option, error) {
		return NewTLSVersionsFromJSON(value)
	})
}

// TLSVersions is the ordered set of TLS versions the connection may
// negotiate.
//
// Its JSON value is an array of version tokens on input, e.g.
// ["V_1_2","V_1_3"], but a single comma joined string on output, e.g.
// "V_1_2,V_1_3". The asymmetry is part of the compatibility surface.
type TLSVersions struct {
	values []string
}

// NewTLSVersions returns a TLSVersions for the given version tokens.
// Tokens are matched case-sensitively against the closed set
// {V_1_0, V_1_1, V_1_2, V_1_3}; any other token fails with
// InvalidValueError listing the whole set.
func NewTLSVersions(versions []string) (*TLSVersions, error) {
	vs, err := coerce.RequireTokens(tlsVersionsName, versions, tlsVersionTokens)
	if err != nil {
		return nil, err
	}
	return &TLSVersions{values: vs}, nil
}

// NewTLSVersionsFromJSON constructs a TLSVersions from its JSON value.
func NewTLSVersionsFromJSON(value json.RawMessage) (*TLSVersions, error) {
	vs, err := coerce.EnumTokens(tlsVersionsName, value, tlsVersionTokens)
	if err != nil {
		return nil, err
	}
	return &TLSVersions{values: vs}, nil
}

// Name implements the vfsopt.Option interface.
func (o *TLSVersions) Name() string {
	return tlsVersionsName
}

// Value implements the vfsopt.Option interface.
func (o *TLSVersions) Value() any {
	return strings.Join(o.values, ",")
}

// Apply implements the vfsopt.Option interface.
func (o *TLSVersions) Apply(opts *connect.Options) error {
	err := opts.SetTLSVersions(strings.Join(o.values, ","))
	if err != nil {
		return vfsopt.ApplyError{Option: tlsVersionsName, Cause: err}
	}
	return nil
}

// String returns the diagnostic form {"http:tlsVersions": "V_1_2,V_1_3"}.
func (o *TLSVersions) String() string {
	return vfsopt.Sprint(o)
}
