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

const followRedirectName = "http:followRedirect"

func init() {
	vfsopt.Register(followRedirectName, func(value json.RawMessage) (vfsopt.Option, error) {
		return NewFollowRedirectFromJSON(value)
	})
}

// FollowRedirect controls whether redirects are followed automatically.
// Its JSON value is a boolean.
type FollowRedirect struct {
	value bool
}

// NewFollowRedirect returns a FollowRedirect for follow.
func NewFollowRedirect(follow bool) *FollowRedirect {
	return &FollowRedirect{value: follow}
}

// NewFollowRedirectFromJSON constructs a FollowRedirect from its JSON value.
func NewFollowRedirectFromJSON(value json.RawMessage) (*FollowRedirect, error) {
	v, err := coerce.Bool(followRedirectName, value)
	if err != nil {
		return nil, err
	}
	return &FollowRedirect{value: v}, nil
}

// Name implements the vfsopt.Option interface.
func (o *FollowRedirect) Name() string {
	return followRedirectName
}

// Value implements the vfsopt.Option interface.
func (o *FollowRedirect) Value() any {
	return o.value
}

// Apply implements the vfsopt.Option interface.
func (o *FollowRedirect) Apply(opts *connect.Options) error {
	err := opts.SetFollowRedirect(o.value)
	if err != nil {
		return vfsopt.ApplyError{Option: followRedirectName, Cause: err}
	}
	return nil
}

// String returns the diagnostic form {"http:followRedirect": true}.
func (o *FollowRedirect) String() string {
	return vfsopt.Sprint(o)
}
