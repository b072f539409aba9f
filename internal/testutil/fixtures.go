package testutil

import (
	"bytes"
	"io"
	"testing"

	"github.com/bundlekit/sdklayout/domain/entities"
	"github.com/stretchr/testify/require"
)

// StaticContent is an in-memory ByteSource.
type StaticContent []byte

// Open returns a reader over the bytes.
func (c StaticContent) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(c)), nil
}

// Entries builds one entry per path with the path itself as content.
func Entries(t *testing.T, paths ...string) []entities.ModuleEntry {
	t.Helper()
	out := make([]entities.ModuleEntry, 0, len(paths))
	for _, p := range paths {
		zp, err := entities.NewZipPath(p)
		require.NoError(t, err, "fixture path %q", p)
		out = append(out, entities.NewModuleEntry(zp, StaticContent(p)))
	}
	return out
}

// SdkModule builds an SDK module for pkg holding entries at paths.
func SdkModule(t *testing.T, name, pkg string, paths ...string) *entities.BundleModule {
	t.Helper()
	return &entities.BundleModule{
		Name:             name,
		Type:             entities.ModuleTypeSdk,
		Entries:          Entries(t, paths...),
		SdkModulesConfig: &entities.SdkModulesConfig{SdkPackageName: pkg},
	}
}

// Paths returns the string form of each entry's path.
func Paths(entries []entities.ModuleEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Path.String()
	}
	return out
}
