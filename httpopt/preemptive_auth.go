// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package httpopt

import (
	"encoding/json"

	"github.com/z5labs/vfsopt"
	"github.com/z5labs/vfsopt/connect"
	"github.com/z5labs/vfsopt/internal/coerce"
)

const preemptiveAuthName = "http:preemptiveAuth"

func init() {
	vfsopt.Register(preemptiveAuthName, func(value json.RawMessage) (vfsopt.Option, error) {
		return NewPreemptiveAuthFromJSON(value)
	})
}

// PreemptiveAuth controls whether credentials are sent before the
// server issues a challenge. Its JSON value is a boolean.
type PreemptiveAuth struct {
	value bool
}

// NewPreemptiveAuth returns a PreemptiveAuth for preemptive.
func NewPreemptiveAuth(preemptive bool) *PreemptiveAuth {
	return &PreemptiveAuth{value: preemptive}
}

// NewPreemptiveAuthFromJSON constructs a PreemptiveAuth from its JSON value.
func NewPreemptiveAuthFromJSON(value json.RawMessage) (*PreemptiveAuth, error) {
	v, err := coerce.Bool(preemptiveAuthName, value)
	if err != nil {
		return nil, err
	}
	return &PreemptiveAuth{value: v}, nil
}

// Name implements the vfsopt.Option interface.
func (o *PreemptiveAuth) Name() string {
	return preemptiveAuthName
}

// Value implements the vfsopt.Option interface.
func (o *PreemptiveAuth) Value() any {
	return o.value
}

// Apply implements the vfsopt.Option interface.
func (o *PreemptiveAuth) Apply(opts *connect.Options) error {
	err := opts.SetPreemptiveAuth(o.value)
	if err != nil {
		return vfsopt.ApplyError{Option: preemptiveAuthName, Cause: err}
	}
	return nil
}

// String returns the diagnostic form {"http:preemptiveAuth": false}.
func (o *PreemptiveAuth) String() string {
	return vfsopt.Sprint(o)
}
