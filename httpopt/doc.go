// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package httpopt implements the connection options for the HTTP
// connector.
//
// Every option kind in this package registers itself with the default
// vfsopt registry from an init function, so importing the package is
// enough to make all HTTP option kinds resolvable by name:
//
//	import _ "github.com/z5labs/vfsopt/httpopt"
//
// Each kind offers two constructors, one from native arguments and one
// from raw JSON; both converge on the same validated, immutable state.
package httpopt
