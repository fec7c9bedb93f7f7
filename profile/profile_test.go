// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package profile

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/z5labs/vfsopt"
	"github.com/z5labs/vfsopt/connect"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	t.Run("will merge sources", func(t *testing.T) {
		t.Run("if the sources hold distinct names", func(t *testing.T) {
			p, err := Read(
				Map{"http:userAgent": "agent"},
				Map{"http:followRedirect": true},
			)
			require.NoError(t, err)

			if !assert.Equal(t, []string{"http:followRedirect", "http:userAgent"}, p.Names()) {
				return
			}
		})

		t.Run("if a later source overrides an earlier one", func(t *testing.T) {
			p, err := Read(
				Map{"http:userAgent": "base"},
				Map{"http:userAgent": "override"},
			)
			require.NoError(t, err)

			var cfg struct {
				Agent string `profile:"http:userAgent"`
			}
			require.NoError(t, p.Unmarshal(&cfg))
			if !assert.Equal(t, "override", cfg.Agent) {
				return
			}
		})
	})
}

func TestProfile_Unmarshal(t *testing.T) {
	t.Run("will decode durations", func(t *testing.T) {
		t.Run("if the value uses ISO-8601 notation", func(t *testing.T) {
			p, err := Read(Map{"http:connectionTimeout": "PT30S"})
			require.NoError(t, err)

			var cfg struct {
				Timeout time.Duration `profile:"http:connectionTimeout"`
			}
			require.NoError(t, p.Unmarshal(&cfg))
			if !assert.Equal(t, 30*time.Second, cfg.Timeout) {
				return
			}
		})

		t.Run("if the value uses Go notation", func(t *testing.T) {
			p, err := Read(Map{"http:soTimeout": "45s"})
			require.NoError(t, err)

			var cfg struct {
				Timeout time.Duration `profile:"http:soTimeout"`
			}
			require.NoError(t, p.Unmarshal(&cfg))
			if !assert.Equal(t, 45*time.Second, cfg.Timeout) {
				return
			}
		})
	})

	t.Run("will decode scalars", func(t *testing.T) {
		t.Run("if the field types match the value types", func(t *testing.T) {
			p, err := Read(Map{
				"http:userAgent":           "vfs-client/1.0",
				"http:followRedirect":      true,
				"http:maxTotalConnections": 20,
			})
			require.NoError(t, err)

			var cfg struct {
				Agent  string `profile:"http:userAgent"`
				Follow bool   `profile:"http:followRedirect"`
				Max    int    `profile:"http:maxTotalConnections"`
			}
			require.NoError(t, p.Unmarshal(&cfg))
			if !assert.Equal(t, "vfs-client/1.0", cfg.Agent) {
				return
			}
			if !assert.True(t, cfg.Follow) {
				return
			}
			if !assert.Equal(t, 20, cfg.Max) {
				return
			}
		})
	})

	t.Run("will return an error", func(t *testing.T) {
		t.Run("if a duration value is malformed", func(t *testing.T) {
			p, err := Read(Map{"http:connectionTimeout": "thirty seconds"})
			require.NoError(t, err)

			var cfg struct {
				Timeout time.Duration `profile:"http:connectionTimeout"`
			}
			err = p.Unmarshal(&cfg)
			if !assert.Error(t, err) {
				return
			}
		})
	})
}

type echoOption struct {
	name string
	raw  json.RawMessage
}

func (o echoOption) Name() string {
	return o.name
}

func (o echoOption) Value() any {
	return string(o.raw)
}

func (o echoOption) Apply(opts *connect.Options) error {
	return nil
}

func TestProfile_Resolve(t *testing.T) {
	echoFactory := func(name string) vfsopt.Factory {
		return func(value json.RawMessage) (vfsopt.Option, error) {
			return echoOption{name: name, raw: value}, nil
		}
	}

	t.Run("will return an error", func(t *testing.T) {
		t.Run("if an entry name is not registered", func(t *testing.T) {
			reg := vfsopt.NewRegistry()
			reg.Register("http:userAgent", echoFactory("http:userAgent"))

			p, err := Read(Map{
				"http:userAgent": "agent",
				"http:unknown":   true,
			})
			require.NoError(t, err)

			_, err = p.Resolve(reg)

			var uerr vfsopt.UnknownOptionError
			if !assert.ErrorAs(t, err, &uerr) {
				return
			}
			if !assert.Equal(t, "http:unknown", uerr.Name) {
				return
			}
		})
	})

	t.Run("will return the options", func(t *testing.T) {
		t.Run("if every entry name is registered", func(t *testing.T) {
			reg := vfsopt.NewRegistry()
			reg.Register("http:userAgent", echoFactory("http:userAgent"))
			reg.Register("http:followRedirect", echoFactory("http:followRedirect"))

			p, err := Read(Map{
				"http:userAgent":      "agent",
				"http:followRedirect": true,
			})
			require.NoError(t, err)

			opts, err := p.Resolve(reg)
			require.NoError(t, err)
			require.Len(t, opts, 2)

			// sorted name order keeps resolution deterministic
			if !assert.Equal(t, "http:followRedirect", opts[0].Name()) {
				return
			}
			if !assert.Equal(t, "http:userAgent", opts[1].Name()) {
				return
			}
			if !assert.JSONEq(t, `"agent"`, opts[1].Value().(string)) {
				return
			}
		})
	})
}
