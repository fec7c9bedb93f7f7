// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package httpopt

import (
	"encoding/json"

	"github.com/z5labs/vfsopt"
	"github.com/z5labs/vfsopt/connect"
	"github.com/z5labs/vfsopt/internal/coerce"
	"github.com/z5labs/vfsopt/optional"

	"github.com/tidwall/gjson"
)

const proxyAuthenticatorName = "http:proxyAuthenticator"

func init() {
	vfsopt.Register(proxyAuthenticatorName, func(value json.RawMessage) (vfsopt.Option, error) {
		return NewProxyAuthenticatorFromJSON(value)
	})
}

// ProxyAuthenticator is the credential triple used to authenticate
// against a proxy.
//
// Its JSON value is an object with the optional string keys "id",
// "password" and "domain". All three are independently optional; absent
// fields are elided on serialization, never emitted as null or empty
// strings.
type ProxyAuthenticator struct {
	id       optional.Value[string]
	password optional.Value[string]
	domain   optional.Value[string]
}

// NewProxyAuthenticator returns a ProxyAuthenticator for the given
// credentials. Any subset of the triple may be set.
func NewProxyAuthenticator(id, password, domain optional.Value[string]) *ProxyAuthenticator {
	return &ProxyAuthenticator{id: id, password: password, domain: domain}
}

// NewProxyAuthenticatorFromJSON constructs a ProxyAuthenticator from
// its JSON value.
func NewProxyAuthenticatorFromJSON(value json.RawMessage) (*ProxyAuthenticator, error) {
	res, err := coerce.Parse(proxyAuthenticatorName, value)
	if err != nil {
		return nil, err
	}
	if !res.IsObject() {
		return nil, vfsopt.InvalidFormatError{Option: proxyAuthenticatorName, Expected: "a JSON object"}
	}

	var o ProxyAuthenticator
	for _, field := range []struct {
		key  string
		dest *optional.Value[string]
	}{
		{"id", &o.id},
		{"password", &o.password},
		{"domain", &o.domain},
	} {
		v := res.Get(field.key)
		if !v.Exists() || v.Type == gjson.Null {
			continue
		}
		if v.Type != gjson.String {
			return nil, vfsopt.InvalidFormatError{Option: proxyAuthenticatorName, Expected: "a JSON object of strings"}
		}
		*field.dest = optional.ValueOf(v.String())
	}
	return &o, nil
}

// Name implements the vfsopt.Option interface.
func (o *ProxyAuthenticator) Name() string {
	return proxyAuthenticatorName
}

// Value implements the vfsopt.Option interface.
func (o *ProxyAuthenticator) Value() any {
	m := make(map[string]any)
	if id, ok := o.id.Value(); ok {
		m["id"] = id
	}
	if password, ok := o.password.Value(); ok {
		m["password"] = password
	}
	if domain, ok := o.domain.Value(); ok {
		m["domain"] = domain
	}
	return m
}

// Apply implements the vfsopt.Option interface.
func (o *ProxyAuthenticator) Apply(opts *connect.Options) error {
	err := opts.SetProxyAuthenticator(connect.Authenticator{
		ID:       o.id,
		Password: o.password,
		Domain:   o.domain,
	})
	if err != nil {
		return vfsopt.ApplyError{Option: proxyAuthenticatorName, Cause: err}
	}
	return nil
}

// String returns the diagnostic form {"http:proxyAuthenticator": {...}}.
// Note this includes the password; keep it out of logs which leave the
// process.
func (o *ProxyAuthenticator) String() string {
	return vfsopt.Sprint(o)
}
