// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package profile

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/z5labs/vfsopt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/sosodev/duration"
)

// Store represents the key value structure a Source serializes into.
// Keys are option names; values are JSON compatible Go values.
type Store interface {
	Set(name string, value any) error
}

// Source defines valid profile sources as those who can serialize
// themselves into a key value like structure.
type Source interface {
	Apply(Store) error
}

// Map is an ordinary map[string]any but implements the Source interface.
type Map map[string]any

// Apply implements the Source interface.
func (m Map) Apply(store Store) error {
	for k, v := range m {
		err := store.Set(k, v)
		if err != nil {
			return err
		}
	}
	return nil
}

// Profile is a merged, read-only view of one or more profile sources.
type Profile struct {
	values map[string]any
}

type mapStore map[string]any

func (m mapStore) Set(name string, value any) error {
	m[name] = value
	return nil
}

// Read merges the given sources into a Profile. Subsequent sources
// override previous sources.
func Read(srcs ...Source) (*Profile, error) {
	store := make(mapStore)
	for _, src := range srcs {
		err := src.Apply(store)
		if err != nil {
			return nil, err
		}
	}
	return &Profile{values: store}, nil
}

// Names returns the option names present in the profile, sorted.
func (p *Profile) Names() []string {
	names := make([]string, 0, len(p.values))
	for name := range p.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve constructs an option for every entry in the profile through
// the given registry. Entries are visited in sorted name order so a
// failure is always attributed to the same entry regardless of map
// iteration order. The returned options preserve that order.
func (p *Profile) Resolve(reg *vfsopt.Registry) ([]vfsopt.Option, error) {
	names := p.Names()

	opts := make([]vfsopt.Option, 0, len(names))
	for _, name := range names {
		raw, err := json.Marshal(p.values[name])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal profile entry [%s]: %w", name, err)
		}
		o, err := reg.Resolve(name, raw)
		if err != nil {
			return nil, err
		}
		opts = append(opts, o)
	}
	return opts, nil
}

// Unmarshal decodes the raw profile values into v. Struct fields are
// matched via the "profile" tag. String values decode into
// time.Duration in either Go ("30s") or ISO-8601 ("PT30S") notation,
// and into any encoding.TextUnmarshaler.
func (p *Profile) Unmarshal(v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "profile",
		Result:  v,
		DecodeHook: composeDecodeHooks(
			textUnmarshalerHookFunc(),
			iso8601DurationHookFunc(),
			timeDurationHookFunc(),
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(p.values)
}

var errInvalidDecodeCondition = errors.New("invalid decode condition")

// TypeCoercionError occurs when attempting to unmarshal a profile
// value to a struct field whose type does not match the profile value
// type, up to, coercion.
type TypeCoercionError struct {
	from  reflect.Value
	to    reflect.Value
	Cause error
}

// Error implements the error interface.
func (e TypeCoercionError) Error() string {
	return fmt.Sprintf("failed to coerce value from %s to %s: %s", e.from.Type().Name(), e.to.Type().Name(), e.Cause)
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e TypeCoercionError) Unwrap() error {
	return e.Cause
}

func composeDecodeHooks(hs ...mapstructure.DecodeHookFunc) mapstructure.DecodeHookFuncValue {
	return func(f, t reflect.Value) (any, error) {
		for _, h := range hs {
			v, err := mapstructure.DecodeHookExec(h, f, t)
			if err == nil {
				return v, nil
			}
			if err == errInvalidDecodeCondition {
				continue
			}
			return nil, TypeCoercionError{
				from:  f,
				to:    t,
				Cause: err,
			}
		}
		return f.Interface(), nil
	}
}

func textUnmarshalerHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return nil, errInvalidDecodeCondition
		}
		result := reflect.New(t).Interface()
		u, ok := result.(encoding.TextUnmarshaler)
		if !ok {
			return nil, errInvalidDecodeCondition
		}
		err := u.UnmarshalText([]byte(data.(string)))
		if err != nil {
			return nil, err
		}
		return result, nil
	}
}

func iso8601DurationHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeOf(time.Duration(0)) || f.Kind() != reflect.String {
			return nil, errInvalidDecodeCondition
		}
		s := data.(string)
		if !strings.HasPrefix(s, "P") && !strings.HasPrefix(s, "-P") {
			return nil, errInvalidDecodeCondition
		}
		d, err := duration.Parse(s)
		if err != nil {
			return nil, err
		}
		return d.ToTimeDuration(), nil
	}
}

func timeDurationHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeOf(time.Duration(0)) {
			return nil, errInvalidDecodeCondition
		}

		switch f.Kind() {
		case reflect.String:
			return time.ParseDuration(data.(string))
		case reflect.Int:
			return time.Duration(int64(data.(int))), nil
		default:
			return nil, errInvalidDecodeCondition
		}
	}
}
