package extract

import "os"

// Source identifies a reference page, either by file path or as an
// in-memory byte buffer.
type Source struct {
	path string
	data []byte
}

// FromFile creates a Source referring to a file on disk.
func FromFile(path string) Source {
	return Source{path: path}
}

// FromBytes creates a Source from an in-memory buffer.
func FromBytes(data []byte) Source {
	return Source{data: data}
}

// Path returns the file path, or "" for byte sources.
func (s Source) Path() string { return s.path }

// Bytes returns the raw buffer, or nil for file sources.
func (s Source) Bytes() []byte { return s.data }

// IsFile reports whether the source refers to a file on disk.
func (s Source) IsFile() bool { return s.path != "" }

// stat verifies that a file source exists, returning NotFoundError
// otherwise. Byte sources always pass.
func (s Source) stat() error {
	if !s.IsFile() {
		return nil
	}
	if _, err := os.Stat(s.path); err != nil {
		return &NotFoundError{Path: s.path}
	}
	return nil
}
