package entities

import "io"

// ByteSource is an opaque handle to an entry's bytes. Layout code carries it
// along and never opens it.
type ByteSource interface {
	Open() (io.ReadCloser, error)
}

// ModuleEntry is one artifact of a module. Entries are values: methods that
// change a field return a new entry.
type ModuleEntry struct {
	Content           ByteSource
	Path              ZipPath
	ForceUncompressed bool
}

// NewModuleEntry creates an entry for path with the given content.
func NewModuleEntry(path ZipPath, content ByteSource) ModuleEntry {
	return ModuleEntry{Path: path, Content: content}
}

// WithPath returns a copy of the entry located at path.
func (e ModuleEntry) WithPath(path ZipPath) ModuleEntry {
	e.Path = path
	return e
}

// WithForceUncompressed returns a copy of the entry with the flag set.
func (e ModuleEntry) WithForceUncompressed(v bool) ModuleEntry {
	e.ForceUncompressed = v
	return e
}
