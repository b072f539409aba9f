package entities

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidZipPath is wrapped by every error NewZipPath returns.
var ErrInvalidZipPath = errors.New("invalid zip path")

// ZipPath is a normalized, slash-separated path relative to an archive or module root.
// The zero value is the empty path (no segments).
type ZipPath struct {
	names []string
}

// NewZipPath parses a slash-separated relative path. Empty segments are dropped.
// Absolute paths and ".." segments are rejected.
func NewZipPath(p string) (ZipPath, error) {
	if strings.HasPrefix(p, "/") {
		return ZipPath{}, fmt.Errorf("%w: %q is absolute", ErrInvalidZipPath, p)
	}
	var names []string
	for _, n := range strings.Split(p, "/") {
		switch n {
		case "", ".":
			continue
		case "..":
			return ZipPath{}, fmt.Errorf("%w: %q escapes its root", ErrInvalidZipPath, p)
		}
		names = append(names, n)
	}
	return ZipPath{names: names}, nil
}

// MustZipPath is NewZipPath for literals known to be valid. It panics otherwise.
func MustZipPath(p string) ZipPath {
	zp, err := NewZipPath(p)
	if err != nil {
		panic(err)
	}
	return zp
}

// NameCount returns the number of segments.
func (p ZipPath) NameCount() int {
	return len(p.names)
}

// Name returns segment i.
func (p ZipPath) Name(i int) string {
	return p.names[i]
}

// Subpath returns segments [from, to).
func (p ZipPath) Subpath(from, to int) ZipPath {
	return ZipPath{names: append([]string(nil), p.names[from:to]...)}
}

// StartsWith reports whether prefix's segments are a leading run of p's segments.
// "rootfile" does not start with "root".
func (p ZipPath) StartsWith(prefix ZipPath) bool {
	if len(prefix.names) > len(p.names) {
		return false
	}
	for i, n := range prefix.names {
		if p.names[i] != n {
			return false
		}
	}
	return true
}

// Resolve appends other's segments to p.
func (p ZipPath) Resolve(other ZipPath) ZipPath {
	names := make([]string, 0, len(p.names)+len(other.names))
	names = append(names, p.names...)
	names = append(names, other.names...)
	return ZipPath{names: names}
}

// IsEmpty reports whether the path has no segments.
func (p ZipPath) IsEmpty() bool {
	return len(p.names) == 0
}

// String joins the segments with "/".
func (p ZipPath) String() string {
	return strings.Join(p.names, "/")
}

// Equal compares two paths segment by segment.
func (p ZipPath) Equal(other ZipPath) bool {
	return slices.Equal(p.names, other.names)
}
