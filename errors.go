// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vfsopt

import (
	"fmt"
)

// MissingInputError occurs when a required input is null or absent,
// either the top level option value itself or a required nested
// element such as a cookie name.
type MissingInputError struct {
	// Option is the declared name of the offending option.
	Option string

	// Element is the required nested element which was missing.
	// Empty if the top level value itself was missing.
	Element string
}

// Error implements the error interface.
func (e MissingInputError) Error() string {
	if e.Element == "" {
		return fmt.Sprintf("option value of [%s] is required", e.Option)
	}
	return fmt.Sprintf("option value of [%s] requires element [%s]", e.Option, e.Element)
}

// InvalidFormatError occurs when an option value is not the JSON shape
// the option expects, e.g. a JSON number where an object is required.
type InvalidFormatError struct {
	// Option is the declared name of the offending option.
	Option string

	// Expected describes the expected JSON shape, e.g. "a JSON object".
	Expected string

	// Cause is the underlying decode error, if any.
	Cause error
}

// Error implements the error interface.
func (e InvalidFormatError) Error() string {
	return fmt.Sprintf("option value of [%s] must be %s", e.Option, e.Expected)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidFormatError) Unwrap() error {
	return e.Cause
}

// InvalidValueError occurs when an option value is the right JSON shape
// but fails the option's semantic validation, e.g. an unknown
// enumeration token or a negative duration.
type InvalidValueError struct {
	// Option is the declared name of the offending option.
	Option string

	// Message describes the violated constraint. For closed
	// enumerations it lists every legal value in declaration order.
	Message string

	// Cause is the underlying parse error, if any.
	Cause error
}

// Error implements the error interface.
func (e InvalidValueError) Error() string {
	return fmt.Sprintf("option value of [%s] %s", e.Option, e.Message)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidValueError) Unwrap() error {
	return e.Cause
}

// UnknownOptionError occurs when a registry lookup finds no entry
// registered under the requested name.
type UnknownOptionError struct {
	// Name is the unresolvable option name.
	Name string
}

// Error implements the error interface.
func (e UnknownOptionError) Error() string {
	return fmt.Sprintf("no option is registered under the name [%s]", e.Name)
}

// ApplyError occurs when the options context rejects an otherwise
// valid value. It is the only failure Apply can return.
type ApplyError struct {
	// Option is the declared name of the option being applied.
	Option string

	// Cause is the error returned by the options context setter.
	Cause error
}

// Error implements the error interface.
func (e ApplyError) Error() string {
	return fmt.Sprintf("failed to apply option [%s]: %s", e.Option, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e ApplyError) Unwrap() error {
	return e.Cause
}
