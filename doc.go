// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package vfsopt provides a pluggable configuration layer for virtual
// file system connectors.
//
// Each connection parameter is described as JSON, validated and
// normalized into an immutable [Option], and finally written onto a
// shared [github.com/z5labs/vfsopt/connect.Options] via [Option.Apply].
//
// # Options
//
// An Option is named, immutable and convertible to and from JSON
// without loss. Two Options are equal iff their names and the JSON
// projections of their values are equal; see [Equal]. All validation
// happens at construction time, never at apply time.
//
// # Registry
//
// Option kinds are discovered by name through a [Registry]. Each kind
// contributes a (name, factory) pair, usually from an init function, so
// new kinds can be added without touching the registry:
//
//	func init() {
//		vfsopt.Register("http:connectionTimeout", func(value json.RawMessage) (vfsopt.Option, error) {
//			return NewConnectionTimeoutFromJSON(value)
//		})
//	}
//
// The registry is read-mostly: registration happens at process start
// and [Registry.Resolve] is safe for concurrent use.
package vfsopt
