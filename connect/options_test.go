// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package connect

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Setters(t *testing.T) {
	t.Run("will report unset", func(t *testing.T) {
		t.Run("if a parameter was never written", func(t *testing.T) {
			opts := NewOptions()

			_, ok := opts.ConnectionTimeout()
			if !assert.False(t, ok) {
				return
			}
			_, ok = opts.UserAgent()
			if !assert.False(t, ok) {
				return
			}
			if !assert.Empty(t, opts.Cookies()) {
				return
			}
		})
	})

	t.Run("will report the written value", func(t *testing.T) {
		t.Run("if a parameter was set once", func(t *testing.T) {
			opts := NewOptions()

			require.NoError(t, opts.SetConnectionTimeout(30*time.Second))
			require.NoError(t, opts.SetTLSVersions("V_1_2,V_1_3"))
			require.NoError(t, opts.SetFollowRedirect(true))

			d, ok := opts.ConnectionTimeout()
			if !assert.True(t, ok) {
				return
			}
			if !assert.Equal(t, 30*time.Second, d) {
				return
			}

			vs, ok := opts.TLSVersions()
			if !assert.True(t, ok) {
				return
			}
			if !assert.Equal(t, "V_1_2,V_1_3", vs) {
				return
			}
		})

		t.Run("if a parameter was overwritten", func(t *testing.T) {
			opts := NewOptions()

			require.NoError(t, opts.SetUserAgent("first"))
			require.NoError(t, opts.SetUserAgent("second"))

			ua, ok := opts.UserAgent()
			if !assert.True(t, ok) {
				return
			}
			if !assert.Equal(t, "second", ua) {
				return
			}
		})
	})

	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the total connection pool size is not positive", func(t *testing.T) {
			opts := NewOptions()

			err := opts.SetMaxTotalConnections(0)
			if !assert.Error(t, err) {
				return
			}

			_, ok := opts.MaxTotalConnections()
			if !assert.False(t, ok) {
				return
			}
		})

		t.Run("if the per host connection pool size is not positive", func(t *testing.T) {
			opts := NewOptions()

			err := opts.SetMaxConnectionsPerHost(-1)
			if !assert.Error(t, err) {
				return
			}
		})
	})
}

func TestOptions_Cookies(t *testing.T) {
	t.Run("will isolate the caller's slice", func(t *testing.T) {
		t.Run("if the slice is mutated after SetCookies", func(t *testing.T) {
			opts := NewOptions()

			cs := []Cookie{{Name: "n1"}}
			require.NoError(t, opts.SetCookies(cs))
			cs[0].Name = "mutated"

			got := opts.Cookies()
			require.Len(t, got, 1)
			if !assert.Equal(t, "n1", got[0].Name) {
				return
			}
		})
	})
}
