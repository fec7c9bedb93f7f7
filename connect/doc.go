// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package connect defines the mutable connection options context which
// the transport layer consumes.
//
// Options is the single shared aggregate all option values write into.
// It exposes one setter per connection parameter; the setters are the
// only write path and perform no validation beyond what the external
// transport itself would reject. Callers applying options from multiple
// goroutines must serialize those calls themselves.
package connect
