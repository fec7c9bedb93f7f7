// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package profile

import (
	"fmt"
	"io"

	"github.com/tidwall/gjson"
	"github.com/z5labs/sdk-go/try"
)

// Json represents a Source where its underlying format is JSON.
type Json struct {
	r io.Reader
}

// FromJson returns a source which will apply its profile entries from
// the JSON object parsed from the given io.Reader.
func FromJson(r io.Reader) Json {
	return Json{r: r}
}

// InvalidJsonError occurs if the underlying io.Reader contains invalid JSON.
type InvalidJsonError struct {
	cause error
}

// Error implements the error interface.
func (e InvalidJsonError) Error() string {
	return fmt.Sprintf("invalid json: %s", e.cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidJsonError) Unwrap() error {
	return e.cause
}

// NotAnObjectError occurs if a profile source parses successfully but
// is not a JSON/YAML object at the top level.
type NotAnObjectError struct{}

// Error implements the error interface.
func (e NotAnObjectError) Error() string {
	return "profile must be an object of option name to option value"
}

// Apply implements the Source interface.
func (src Json) Apply(store Store) (err error) {
	c, _ := src.r.(io.Closer)
	defer try.Close(&err, c)

	b, err := io.ReadAll(src.r)
	if err != nil {
		return err
	}

	if !gjson.ValidBytes(b) {
		return InvalidJsonError{cause: fmt.Errorf("malformed document")}
	}
	res := gjson.ParseBytes(b)
	if !res.IsObject() {
		return NotAnObjectError{}
	}

	m, ok := res.Value().(map[string]any)
	if !ok {
		return NotAnObjectError{}
	}
	return Map(m).Apply(store)
}
