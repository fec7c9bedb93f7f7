// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package coerce implements the shared parsing and coercion helpers
// used by option constructors. Every helper turns a malformed input
// into one of the vfsopt error kinds, always naming the option the
// input belonged to.
package coerce

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"path"
	"slices"
	"strings"

	"github.com/z5labs/vfsopt"

	"github.com/sosodev/duration"
	"github.com/tidwall/gjson"
)

// Parse validates the raw option value and returns it as a gjson
// result. A nil, empty or JSON null value fails with MissingInputError;
// malformed JSON fails with InvalidFormatError.
func Parse(option string, value json.RawMessage) (gjson.Result, error) {
	if len(bytes.TrimSpace(value)) == 0 {
		return gjson.Result{}, vfsopt.MissingInputError{Option: option}
	}
	if !gjson.ValidBytes(value) {
		return gjson.Result{}, vfsopt.InvalidFormatError{Option: option, Expected: "valid JSON"}
	}
	res := gjson.ParseBytes(value)
	if res.Type == gjson.Null {
		return gjson.Result{}, vfsopt.MissingInputError{Option: option}
	}
	return res, nil
}

// Duration coerces the raw value to a non-negative ISO-8601 duration.
func Duration(option string, value json.RawMessage) (*duration.Duration, error) {
	res, err := Parse(option, value)
	if err != nil {
		return nil, err
	}
	if res.Type != gjson.String {
		return nil, vfsopt.InvalidFormatError{Option: option, Expected: "a JSON string in ISO-8601 duration format"}
	}
	d, err := duration.Parse(res.String())
	if err != nil {
		return nil, vfsopt.InvalidValueError{
			Option:  option,
			Message: fmt.Sprintf("must be an ISO-8601 duration: %q", res.String()),
			Cause:   err,
		}
	}
	if d.Negative {
		return nil, vfsopt.InvalidValueError{Option: option, Message: "must not be a negative duration"}
	}
	return d, nil
}

// EnumTokens coerces the raw value to a list of tokens from the closed
// set legal. Token matching is exact and case-sensitive; any token
// outside the set fails with an error listing the whole set in its
// declared order.
func EnumTokens(option string, value json.RawMessage, legal []string) ([]string, error) {
	res, err := Parse(option, value)
	if err != nil {
		return nil, err
	}
	if !res.IsArray() {
		return nil, vfsopt.InvalidFormatError{Option: option, Expected: "a JSON array of strings"}
	}

	var tokens []string
	res.ForEach(func(_, v gjson.Result) bool {
		if v.Type != gjson.String {
			err = enumError(option, legal)
			return false
		}
		tokens = append(tokens, v.String())
		return true
	})
	if err != nil {
		return nil, err
	}
	return RequireTokens(option, tokens, legal)
}

// RequireTokens validates already-typed tokens against the closed set
// legal, with the same failure semantics as EnumTokens.
func RequireTokens(option string, tokens, legal []string) ([]string, error) {
	for _, tok := range tokens {
		if !slices.Contains(legal, tok) {
			return nil, enumError(option, legal)
		}
	}
	return slices.Clone(tokens), nil
}

func enumError(option string, legal []string) error {
	return vfsopt.InvalidValueError{
		Option:  option,
		Message: fmt.Sprintf("must be either [%s].", strings.Join(legal, ", ")),
	}
}

// AbsolutePathFromFileURI coerces the raw value to an absolute local
// path given as a file scheme URI, e.g. "file:///etc/keystore.p12".
func AbsolutePathFromFileURI(option string, value json.RawMessage) (string, error) {
	res, err := Parse(option, value)
	if err != nil {
		return "", err
	}
	if res.Type != gjson.String {
		return "", vfsopt.InvalidFormatError{Option: option, Expected: "a JSON string containing a file URI"}
	}
	u, err := url.Parse(res.String())
	if err != nil {
		return "", vfsopt.InvalidValueError{
			Option:  option,
			Message: fmt.Sprintf("must be a valid URI: %q", res.String()),
			Cause:   err,
		}
	}
	if u.Scheme != "file" {
		return "", vfsopt.InvalidValueError{Option: option, Message: "must be a URI with the [file] scheme"}
	}
	return RequireAbsolutePath(option, u.Path)
}

// RequireAbsolutePath validates that p is an absolute path.
func RequireAbsolutePath(option, p string) (string, error) {
	if !path.IsAbs(p) {
		return "", vfsopt.InvalidValueError{
			Option:  option,
			Message: fmt.Sprintf("must be an absolute path: %q", p),
		}
	}
	return p, nil
}

// String coerces the raw value to a string.
func String(option string, value json.RawMessage) (string, error) {
	res, err := Parse(option, value)
	if err != nil {
		return "", err
	}
	if res.Type != gjson.String {
		return "", vfsopt.InvalidFormatError{Option: option, Expected: "a JSON string"}
	}
	return res.String(), nil
}

// Bool coerces the raw value to a boolean.
func Bool(option string, value json.RawMessage) (bool, error) {
	res, err := Parse(option, value)
	if err != nil {
		return false, err
	}
	if res.Type != gjson.True && res.Type != gjson.False {
		return false, vfsopt.InvalidFormatError{Option: option, Expected: "a JSON boolean"}
	}
	return res.Bool(), nil
}

// Int coerces the raw value to an integer.
func Int(option string, value json.RawMessage) (int, error) {
	res, err := Parse(option, value)
	if err != nil {
		return 0, err
	}
	if res.Type != gjson.Number {
		return 0, vfsopt.InvalidFormatError{Option: option, Expected: "a JSON number"}
	}
	if res.Num != math.Trunc(res.Num) {
		return 0, vfsopt.InvalidValueError{
			Option:  option,
			Message: fmt.Sprintf("must be an integer: %v", res.Num),
		}
	}
	return int(res.Num), nil
}
