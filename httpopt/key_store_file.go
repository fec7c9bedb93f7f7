// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package httpopt

import (
	"encoding/json"
	"net/url"

	"github.com/z5labs/vfsopt"
	"github.com/z5labs/vfsopt/connect"
	"github.com/z5labs/vfsopt/internal/coerce"
)

const keyStoreFileName = "http:keyStoreFileUri"

func init() {
	vfsopt.Register(keyStoreFileName, func(value json.RawMessage) (vfsopt.Option, error) {
		return NewKeyStoreFileFromJSON(value)
	})
}

// KeyStoreFile is the location of the key store file used for TLS
// client authentication.
//
// Its JSON value is a file scheme URI, e.g. "file:///etc/keystore.p12".
// The path must be absolute no matter which constructor it enters
// through.
type KeyStoreFile struct {
	path string
}

// NewKeyStoreFile returns a KeyStoreFile for the given local path.
// Relative paths fail with InvalidValueError.
func NewKeyStoreFile(path string) (*KeyStoreFile, error) {
	p, err := coerce.RequireAbsolutePath(keyStoreFileName, path)
	if err != nil {
		return nil, err
	}
	return &KeyStoreFile{path: p}, nil
}

// NewKeyStoreFileFromJSON constructs a KeyStoreFile from its JSON
// value. The URI must use the file scheme and resolve to an absolute
// path.
func NewKeyStoreFileFromJSON(value json.RawMessage) (*KeyStoreFile, error) {
	p, err := coerce.AbsolutePathFromFileURI(keyStoreFileName, value)
	if err != nil {
		return nil, err
	}
	return &KeyStoreFile{path: p}, nil
}

// Name implements the vfsopt.Option interface.
func (o *KeyStoreFile) Name() string {
	return keyStoreFileName
}

// Value implements the vfsopt.Option interface.
func (o *KeyStoreFile) Value() any {
	u := url.URL{Scheme: "file", Path: o.path}
	return u.String()
}

// Apply implements the vfsopt.Option interface.
func (o *KeyStoreFile) Apply(opts *connect.Options) error {
	err := opts.SetKeyStoreFile(o.path)
	if err != nil {
		return vfsopt.ApplyError{Option: keyStoreFileName, Cause: err}
	}
	return nil
}

// String returns the diagnostic form {"http:keyStoreFileUri": "file:///etc/keystore.p12"}.
func (o *KeyStoreFile) String() string {
	return vfsopt.Sprint(o)
}
