// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package profile

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sync"
)

// FileReader is an io.Reader that handles opening a file for reading automatically.
type FileReader struct {
	path string

	openOnce sync.Once
	fs       fs.FS
	file     io.ReadCloser
}

// NewFileReader configures a FileReader.
func NewFileReader(fsys fs.FS, path string) *FileReader {
	return &FileReader{
		path: path,
		fs:   fsys,
	}
}

// Read implements the io.Reader interface.
func (r *FileReader) Read(b []byte) (int, error) {
	var err error
	r.openOnce.Do(func() {
		r.file, err = r.fs.Open(r.path)
	})
	if err != nil {
		return 0, err
	}
	return r.file.Read(b)
}

// Close implements the io.Closer interface.
func (r *FileReader) Close() error {
	if r.file == nil {
		return nil
	}

	err := r.file.Close()
	r.file = nil
	return err
}

// UnsupportedFileExtError occurs when FromFile cannot infer the
// profile format from the file name.
type UnsupportedFileExtError struct {
	// Ext is the unrecognized file extension.
	Ext string
}

// Error implements the error interface.
func (e UnsupportedFileExtError) Error() string {
	return fmt.Sprintf("unsupported profile file extension: %q", e.Ext)
}

// FromFile returns a source reading the profile from the named file,
// choosing the format from the file extension: ".json" for JSON,
// ".yaml" or ".yml" for YAML.
func FromFile(fsys fs.FS, name string) (Source, error) {
	switch ext := path.Ext(name); ext {
	case ".json":
		return FromJson(NewFileReader(fsys, name)), nil
	case ".yaml", ".yml":
		return FromYaml(NewFileReader(fsys, name)), nil
	default:
		return nil, UnsupportedFileExtError{Ext: ext}
	}
}
