// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vfsopt

import (
	"testing"

	"github.com/z5labs/vfsopt/connect"

	"github.com/stretchr/testify/assert"
)

type staticOption struct {
	name  string
	value any
}

func (o staticOption) Name() string {
	return o.name
}

func (o staticOption) Value() any {
	return o.value
}

func (o staticOption) Apply(opts *connect.Options) error {
	return nil
}

func TestEqual(t *testing.T) {
	t.Run("will report equal", func(t *testing.T) {
		t.Run("if both options are nil", func(t *testing.T) {
			if !assert.True(t, Equal(nil, nil)) {
				return
			}
		})

		t.Run("if names and value projections match", func(t *testing.T) {
			a := staticOption{name: "http:userAgent", value: "agent"}
			b := staticOption{name: "http:userAgent", value: "agent"}
			if !assert.True(t, Equal(a, b)) {
				return
			}
		})

		t.Run("if object values only differ in key order", func(t *testing.T) {
			a := staticOption{name: "http:proxyAuthenticator", value: map[string]any{"id": "me", "domain": "d"}}
			b := staticOption{name: "http:proxyAuthenticator", value: map[string]any{"domain": "d", "id": "me"}}
			if !assert.True(t, Equal(a, b)) {
				return
			}
		})
	})

	t.Run("will report not equal", func(t *testing.T) {
		t.Run("if only one option is nil", func(t *testing.T) {
			if !assert.False(t, Equal(nil, staticOption{name: "a"})) {
				return
			}
		})

		t.Run("if the names differ", func(t *testing.T) {
			a := staticOption{name: "http:soTimeout", value: "PT1S"}
			b := staticOption{name: "http:connectionTimeout", value: "PT1S"}
			if !assert.False(t, Equal(a, b)) {
				return
			}
		})

		t.Run("if the value projections differ", func(t *testing.T) {
			a := staticOption{name: "http:soTimeout", value: "PT1S"}
			b := staticOption{name: "http:soTimeout", value: "PT2S"}
			if !assert.False(t, Equal(a, b)) {
				return
			}
		})
	})
}

func TestSprint(t *testing.T) {
	t.Run("will render a single key object", func(t *testing.T) {
		t.Run("if the value is a scalar", func(t *testing.T) {
			o := staticOption{name: "http:connectionTimeout", value: "PT30S"}
			if !assert.Equal(t, `{"http:connectionTimeout":"PT30S"}`, Sprint(o)) {
				return
			}
		})

		t.Run("if the value is structured", func(t *testing.T) {
			o := staticOption{name: "http:proxyAuthenticator", value: map[string]any{"id": "me"}}
			if !assert.Equal(t, `{"http:proxyAuthenticator":{"id":"me"}}`, Sprint(o)) {
				return
			}
		})
	})
}
