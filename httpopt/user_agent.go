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

const userAgentName = "http:userAgent"

func init() {
	vfsopt.Register(userAgentName, func(value json.RawMessage) (vfsopt.Option, error) {
		return NewUserAgentFromJSON(value)
	})
}

// UserAgent is the User-Agent header sent with each request. Its JSON
// value is a non-empty string.
type UserAgent struct {
	value string
}

// NewUserAgent returns a UserAgent for agent. An empty agent fails
// with InvalidValueError.
func NewUserAgent(agent string) (*UserAgent, error) {
	if agent == "" {
		return nil, vfsopt.InvalidValueError{Option: userAgentName, Message: "must not be empty"}
	}
	return &UserAgent{value: agent}, nil
}

// NewUserAgentFromJSON constructs a UserAgent from its JSON value.
func NewUserAgentFromJSON(value json.RawMessage) (*UserAgent, error) {
	v, err := coerce.String(userAgentName, value)
	if err != nil {
		return nil, err
	}
	return NewUserAgent(v)
}

// Name implements the vfsopt.Option interface.
func (o *UserAgent) Name() string {
	return userAgentName
}

// Value implements the vfsopt.Option interface.
func (o *UserAgent) Value() any {
	return o.value
}

// Apply implements the vfsopt.Option interface.
func (o *UserAgent) Apply(opts *connect.Options) error {
	err := opts.SetUserAgent(o.value)
	if err != nil {
		return vfsopt.ApplyError{Option: userAgentName, Cause: err}
	}
	return nil
}

// String returns the diagnostic form {"http:userAgent": "..."}.
func (o *UserAgent) String() string {
	return vfsopt.Sprint(o)
}
