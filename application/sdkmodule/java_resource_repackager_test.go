package sdkmodule_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bundlekit/sdklayout/application/mutation"
	"github.com/bundlekit/sdklayout/application/sdkmodule"
	"github.com/bundlekit/sdklayout/domain/entities"
	domainerrors "github.com/bundlekit/sdklayout/domain/errors"
	"github.com/bundlekit/sdklayout/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sdkPackage = "com.example.sdk"

func newRepackager(t *testing.T) *sdkmodule.JavaResourceRepackager {
	t.Helper()
	r, err := sdkmodule.NewJavaResourceRepackager(&entities.SdkModulesConfig{SdkPackageName: sdkPackage})
	require.NoError(t, err)
	return r
}

func TestJavaResourceRepackager_Directories(t *testing.T) {
	r := newRepackager(t)

	assert.Equal(t, "assets/RuntimeEnabledSdk-com.example.sdk/javaresources", r.JavaResourceDirectory())
	assert.Equal(t, "RuntimeEnabledSdk-com.example.sdk/javaresources", r.JavaResourceDirectoryInsideAssets())
}

func TestJavaResourceRepackager_Relocates(t *testing.T) {
	module := testutil.SdkModule(t, "sdk", sdkPackage,
		"root/a/b.txt",
		"manifest/AndroidManifest.xml",
		"root/x.txt",
	)

	got, err := mutation.Apply(context.Background(), module, newRepackager(t).Mutation())
	require.NoError(t, err)

	testutil.AssertPaths(t, []string{
		"manifest/AndroidManifest.xml",
		"assets/RuntimeEnabledSdk-com.example.sdk/javaresources/a/b.txt",
		"assets/RuntimeEnabledSdk-com.example.sdk/javaresources/x.txt",
	}, got.Entries)
	assert.Len(t, got.Entries, len(module.Entries))

	moved, ok := got.FindEntry(entities.MustZipPath("assets/RuntimeEnabledSdk-com.example.sdk/javaresources/x.txt"))
	require.True(t, ok)
	assert.Equal(t, testutil.StaticContent("root/x.txt"), moved.Content)
}

func TestJavaResourceRepackager_Select(t *testing.T) {
	r := newRepackager(t)

	tests := []struct {
		path string
		want bool
	}{
		{"root/a.txt", true},
		{"root/META-INF/services/x", true},
		{"root", true},
		{"rootfile.txt", false},
		{"dex/classes.dex", false},
		{"assets/root/a.txt", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			e := entities.NewModuleEntry(entities.MustZipPath(tt.path), nil)
			assert.Equal(t, tt.want, r.Select(e))
		})
	}
	assert.True(t, r.Applicable(&entities.BundleModule{}))
}

func TestJavaResourceRepackager_SingleSegmentFails(t *testing.T) {
	module := testutil.SdkModule(t, "sdk", sdkPackage, "root/a.txt", "root")

	got, err := mutation.Apply(context.Background(), module, newRepackager(t).Mutation())
	require.Error(t, err)
	assert.Nil(t, got)

	var pathErr *domainerrors.InvalidPathStructureError
	require.True(t, errors.As(err, &pathErr))
	assert.Equal(t, "root", pathErr.Path)
	assert.Equal(t, 2, pathErr.MinSegments)

	var mutErr *domainerrors.MutationError
	require.True(t, errors.As(err, &mutErr))
	assert.Equal(t, sdkmodule.JavaResourceMutationName, mutErr.Mutation)
}

func TestJavaResourceRepackager_ReapplyIsNoop(t *testing.T) {
	module := testutil.SdkModule(t, "sdk", sdkPackage, "root/a/b.txt", "dex/classes.dex")
	m := newRepackager(t).Mutation()

	once, err := mutation.Apply(context.Background(), module, m)
	require.NoError(t, err)
	twice, err := mutation.Apply(context.Background(), once, m)
	require.NoError(t, err)

	assert.Equal(t, testutil.Paths(once.Entries), testutil.Paths(twice.Entries))
}

func TestJavaResourceRepackager_TwoSdksDoNotCollide(t *testing.T) {
	a, err := sdkmodule.NewJavaResourceRepackager(&entities.SdkModulesConfig{SdkPackageName: "com.a"})
	require.NoError(t, err)
	b, err := sdkmodule.NewJavaResourceRepackager(&entities.SdkModulesConfig{SdkPackageName: "com.b"})
	require.NoError(t, err)

	entries := testutil.Entries(t, "root/config.properties")
	fromA, err := a.Transform(entries)
	require.NoError(t, err)
	fromB, err := b.Transform(entries)
	require.NoError(t, err)

	assert.NotEqual(t, fromA[0].Path.String(), fromB[0].Path.String())
}

func TestJavaResourceRepackager_TransformKeepsOrder(t *testing.T) {
	r := newRepackager(t)
	out, err := r.Transform(testutil.Entries(t, "root/z", "root/a", "root/m/n"))
	require.NoError(t, err)

	prefix := r.JavaResourceDirectory() + "/"
	testutil.AssertPaths(t, []string{prefix + "z", prefix + "a", prefix + "m/n"}, out)
}

func TestNewJavaResourceRepackager_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *entities.SdkModulesConfig
	}{
		{"nil", nil},
		{"empty package", &entities.SdkModulesConfig{}},
		{"path separator", &entities.SdkModulesConfig{SdkPackageName: "com/example"}},
		{"space", &entities.SdkModulesConfig{SdkPackageName: "com example"}},
		{"only dots", &entities.SdkModulesConfig{SdkPackageName: ".."}},
		{"empty segment", &entities.SdkModulesConfig{SdkPackageName: "com.a..b"}},
		{"leading dash", &entities.SdkModulesConfig{SdkPackageName: "-x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sdkmodule.NewJavaResourceRepackager(tt.cfg)
			var cfgErr *domainerrors.ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, "sdk_package_name", cfgErr.Field)
		})
	}
}
