// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package httpopt

import (
	"testing"

	"github.com/z5labs/vfsopt"
	"github.com/z5labs/vfsopt/connect"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFollowRedirectFromJSON(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the value is not a JSON boolean", func(t *testing.T) {
			_, err := NewFollowRedirectFromJSON([]byte(`"true"`))

			var ferr vfsopt.InvalidFormatError
			if !assert.ErrorAs(t, err, &ferr) {
				return
			}
		})
	})

	t.Run("will construct the option", func(t *testing.T) {
		t.Run("if the value is a JSON boolean", func(t *testing.T) {
			o, err := NewFollowRedirectFromJSON([]byte(`false`))
			require.NoError(t, err)

			if !assert.Equal(t, "http:followRedirect", o.Name()) {
				return
			}
			if !assert.Equal(t, false, o.Value()) {
				return
			}

			opts := connect.NewOptions()
			require.NoError(t, o.Apply(opts))

			follow, ok := opts.FollowRedirect()
			if !assert.True(t, ok) {
				return
			}
			if !assert.False(t, follow) {
				return
			}
		})
	})

	t.Run("will equal its native built twin", func(t *testing.T) {
		t.Run("if both carry the same boolean", func(t *testing.T) {
			fromJSON, err := NewFollowRedirectFromJSON([]byte(`true`))
			require.NoError(t, err)

			if !assert.True(t, vfsopt.Equal(NewFollowRedirect(true), fromJSON)) {
				return
			}
		})
	})
}

func TestNewPreemptiveAuthFromJSON(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the value is null", func(t *testing.T) {
			_, err := NewPreemptiveAuthFromJSON([]byte(`null`))

			var merr vfsopt.MissingInputError
			if !assert.ErrorAs(t, err, &merr) {
				return
			}
		})
	})

	t.Run("will construct the option", func(t *testing.T) {
		t.Run("if the value is a JSON boolean", func(t *testing.T) {
			o, err := NewPreemptiveAuthFromJSON([]byte(`true`))
			require.NoError(t, err)

			opts := connect.NewOptions()
			require.NoError(t, o.Apply(opts))

			preemptive, ok := opts.PreemptiveAuth()
			if !assert.True(t, ok) {
				return
			}
			if !assert.True(t, preemptive) {
				return
			}
		})
	})
}

func TestNewUserAgentFromJSON(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the value is not a JSON string", func(t *testing.T) {
			_, err := NewUserAgentFromJSON([]byte(`true`))

			var ferr vfsopt.InvalidFormatError
			if !assert.ErrorAs(t, err, &ferr) {
				return
			}
		})

		t.Run("if the string is empty", func(t *testing.T) {
			_, err := NewUserAgentFromJSON([]byte(`""`))

			if !assert.EqualError(t, err, "option value of [http:userAgent] must not be empty") {
				return
			}
		})
	})

	t.Run("will construct the option", func(t *testing.T) {
		t.Run("if the string is non-empty", func(t *testing.T) {
			o, err := NewUserAgentFromJSON([]byte(`"vfs-client/1.0"`))
			require.NoError(t, err)

			opts := connect.NewOptions()
			require.NoError(t, o.Apply(opts))

			ua, ok := opts.UserAgent()
			if !assert.True(t, ok) {
				return
			}
			if !assert.Equal(t, "vfs-client/1.0", ua) {
				return
			}
		})
	})
}

func TestNewMaxTotalConnectionsFromJSON(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the value is not a JSON number", func(t *testing.T) {
			_, err := NewMaxTotalConnectionsFromJSON([]byte(`"10"`))

			var ferr vfsopt.InvalidFormatError
			if !assert.ErrorAs(t, err, &ferr) {
				return
			}
		})

		t.Run("if the number is not an integer", func(t *testing.T) {
			_, err := NewMaxTotalConnectionsFromJSON([]byte(`2.5`))

			var verr vfsopt.InvalidValueError
			if !assert.ErrorAs(t, err, &verr) {
				return
			}
		})

		t.Run("if the number is not positive", func(t *testing.T) {
			_, err := NewMaxTotalConnectionsFromJSON([]byte(`0`))

			if !assert.EqualError(t, err, "option value of [http:maxTotalConnections] must be a positive integer: 0") {
				return
			}
		})
	})

	t.Run("will construct the option", func(t *testing.T) {
		t.Run("if the number is a positive integer", func(t *testing.T) {
			o, err := NewMaxTotalConnectionsFromJSON([]byte(`20`))
			require.NoError(t, err)

			if !assert.Equal(t, 20, o.Value()) {
				return
			}

			opts := connect.NewOptions()
			require.NoError(t, o.Apply(opts))

			n, ok := opts.MaxTotalConnections()
			if !assert.True(t, ok) {
				return
			}
			if !assert.Equal(t, 20, n) {
				return
			}
		})
	})
}

func TestNewMaxConnectionsPerHostFromJSON(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the number is not positive", func(t *testing.T) {
			_, err := NewMaxConnectionsPerHostFromJSON([]byte(`-3`))

			var verr vfsopt.InvalidValueError
			if !assert.ErrorAs(t, err, &verr) {
				return
			}
		})
	})

	t.Run("will construct the option", func(t *testing.T) {
		t.Run("if the number is a positive integer", func(t *testing.T) {
			o, err := NewMaxConnectionsPerHostFromJSON([]byte(`5`))
			require.NoError(t, err)

			opts := connect.NewOptions()
			require.NoError(t, o.Apply(opts))

			n, ok := opts.MaxConnectionsPerHost()
			if !assert.True(t, ok) {
				return
			}
			if !assert.Equal(t, 5, n) {
				return
			}
		})
	})
}
