// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package httpopt

import (
	"encoding/json"
	"time"

	"github.com/z5labs/vfsopt"
	"github.com/z5labs/vfsopt/connect"
	"github.com/z5labs/vfsopt/internal/coerce"

	"github.com/sosodev/duration"
)

const connectionTimeoutName = "http:connectionTimeout"

func init() {
	vfsopt.Register(connectionTimeoutName, func(value json.RawMessage) (vfsopt.Option, error) {
		return NewConnectionTimeoutFromJSON(value)
	})
}

// ConnectionTimeout is the timeout for establishing a connection.
//
// Its JSON value is an ISO-8601 duration string, e.g. "PT30S".
type ConnectionTimeout struct {
	value *duration.Duration
}

// NewConnectionTimeout returns a ConnectionTimeout for d. Negative
// durations fail with InvalidValueError.
func NewConnectionTimeout(d time.Duration) (*ConnectionTimeout, error) {
	if d < 0 {
		return nil, vfsopt.InvalidValueError{Option: connectionTimeoutName, Message: "must not be a negative duration"}
	}
	return &ConnectionTimeout{value: duration.FromTimeDuration(d)}, nil
}

// NewConnectionTimeoutFromJSON constructs a ConnectionTimeout from its
// JSON value.
func NewConnectionTimeoutFromJSON(value json.RawMessage) (*ConnectionTimeout, error) {
	d, err := coerce.Duration(connectionTimeoutName, value)
	if err != nil {
		return nil, err
	}
	return &ConnectionTimeout{value: d}, nil
}

// Name implements the vfsopt.Option interface.
func (o *ConnectionTimeout) Name() string {
	return connectionTimeoutName
}

// Value implements the vfsopt.Option interface.
func (o *ConnectionTimeout) Value() any {
	return o.value.String()
}

// Apply implements the vfsopt.Option interface.
func (o *ConnectionTimeout) Apply(opts *connect.Options) error {
	err := opts.SetConnectionTimeout(o.value.ToTimeDuration())
	if err != nil {
		return vfsopt.ApplyError{Option: connectionTimeoutName, Cause: err}
	}
	return nil
}

// String returns the diagnostic form {"http:connectionTimeout": "PT30S"}.
func (o *ConnectionTimeout) String() string {
	return vfsopt.Sprint(o)
}
