// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package httpopt

import (
	"encoding/json"
	"fmt"

	"github.com/z5labs/vfsopt"
	"github.com/z5labs/vfsopt/connect"
	"github.com/z5labs/vfsopt/internal/coerce"
)

const (
	maxTotalConnectionsName   = "http:maxTotalConnections"
	maxConnectionsPerHostName = "http:maxConnectionsPerHost"
)

func init() {
	vfsopt.Register(maxTotalConnectionsName, func(value json.RawMessage) (vfsopt.Option, error) {
		return NewMaxTotalConnectionsFromJSON(value)
	})
	vfsopt.Register(maxConnectionsPerHostName, func(value json.RawMessage) (vfsopt.Option, error) {
		return NewMaxConnectionsPerHostFromJSON(value)
	})
}

func requirePositive(option string, n int) error {
	if n < 1 {
		return vfsopt.InvalidValueError{
			Option:  option,
			Message: fmt.Sprintf("must be a positive integer: %d", n),
		}
	}
	return nil
}

// MaxTotalConnections is the connection pool size across all hosts.
// Its JSON value is a positive integer.
type MaxTotalConnections struct {
	value int
}

// NewMaxTotalConnections returns a MaxTotalConnections for n. Values
// below 1 fail with InvalidValueError.
func NewMaxTotalConnections(n int) (*MaxTotalConnections, error) {
	if err := requirePositive(maxTotalConnectionsName, n); err != nil {
		return nil, err
	}
	return &MaxTotalConnections{value: n}, nil
}

// NewMaxTotalConnectionsFromJSON constructs a MaxTotalConnections from
// its JSON value.
func NewMaxTotalConnectionsFromJSON(value json.RawMessage) (*MaxTotalConnections, error) {
	n, err := coerce.Int(maxTotalConnectionsName, value)
	if err != nil {
		return nil, err
	}
	return NewMaxTotalConnections(n)
}

// Name implements the vfsopt.Option interface.
func (o *MaxTotalConnections) Name() string {
	return maxTotalConnectionsName
}

// Value implements the vfsopt.Option interface.
func (o *MaxTotalConnections) Value() any {
	return o.value
}

// Apply implements the vfsopt.Option interface.
func (o *MaxTotalConnections) Apply(opts *connect.Options) error {
	err := opts.SetMaxTotalConnections(o.value)
	if err != nil {
		return vfsopt.ApplyError{Option: maxTotalConnectionsName, Cause: err}
	}
	return nil
}

// String returns the diagnostic form {"http:maxTotalConnections": 50}.
func (o *MaxTotalConnections) String() string {
	return vfsopt.Sprint(o)
}

// MaxConnectionsPerHost is the connection pool size per host. Its JSON
// value is a positive integer.
type MaxConnectionsPerHost struct {
	value int
}

// NewMaxConnectionsPerHost returns a MaxConnectionsPerHost for n.
// Values below 1 fail with InvalidValueError.
func NewMaxConnectionsPerHost(n int) (*MaxConnectionsPerHost, error) {
	if err := requirePositive(maxConnectionsPerHostName, n); err != nil {
		return nil, err
	}
	return &MaxConnectionsPerHost{value: n}, nil
}

// NewMaxConnectionsPerHostFromJSON constructs a MaxConnectionsPerHost
// from its JSON value.
func NewMaxConnectionsPerHostFromJSON(value json.RawMessage) (*MaxConnectionsPerHost, error) {
	n, err := coerce.Int(maxConnectionsPerHostName, value)
	if err != nil {
		return nil, err
	}
	return NewMaxConnectionsPerHost(n)
}

// Name implements the vfsopt.Option interface.
func (o *MaxConnectionsPerHost) Name() string {
	return maxConnectionsPerHostName
}

// Value implements the vfsopt.Option interface.
func (o *MaxConnectionsPerHost) Value() any {
	return o.value
}

// Apply implements the vfsopt.Option interface.
func (o *MaxConnectionsPerHost) Apply(opts *connect.Options) error {
	err := opts.SetMaxConnectionsPerHost(o.value)
	if err != nil {
		return vfsopt.ApplyError{Option: maxConnectionsPerHostName, Cause: err}
	}
	return nil
}

// String returns the diagnostic form {"http:maxConnectionsPerHost": 5}.
func (o *MaxConnectionsPerHost) String() string {
	return vfsopt.Sprint(o)
}
