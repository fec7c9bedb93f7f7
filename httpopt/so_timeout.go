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

const soTimeoutName = "http:soTimeout"

func init() {
	vfsopt.Register(soTimeoutName, func(value json.RawMessage) (vfsopt.Option, error) {
		return NewSoTimeoutFromJSON(value)
	})
}

// SoTimeout is the socket read timeout.
//
// Its JSON value is an ISO-8601 duration string, e.g. "PT1M".
type SoTimeout struct {
	value *duration.Duration
}

// NewSoTimeout returns a SoTimeout for d. Negative durations fail with
// InvalidValueError.
func NewSoTimeout(d time.Duration) (*SoTimeout, error) {
	if d < 0 {
		return nil, vfsopt.InvalidValueError{Option: soTimeoutName, Message: "must not be a negative duration"}
	}
	return &SoTimeout{value: duration.FromTimeDuration(d)}, nil
}

// NewSoTimeoutFromJSON constructs a SoTimeout from its JSON value.
func NewSoTimeoutFromJSON(value json.RawMessage) (*SoTimeout, error) {
	d, err := coerce.Duration(soTimeoutName, value)
	if err != nil {
		return nil, err
	}
	return &SoTimeout{value: d}, nil
}

// Name implements the vfsopt.Option interface.
func (o *SoTimeout) Name() string {
	return soTimeoutName
}

// Value implements the vfsopt.Option interface.
func (o *SoTimeout) Value() any {
	return o.value.String()
}

// Apply implements the vfsopt.Option interface.
func (o *SoTimeout) Apply(opts *connect.Options) error {
	err := opts.SetSoTimeout(o.value.ToTimeDuration())
	if err != nil {
		return vfsopt.ApplyError{Option: soTimeoutName, Cause: err}
	}
	return nil
}

// String returns the diagnostic form {"http:soTimeout": "PT1M"}.
func (o *SoTimeout) String() string {
	return vfsopt.Sprint(o)
}
