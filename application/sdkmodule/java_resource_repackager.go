// Package sdkmodule holds the layout rules for runtime-enabled SDK modules
// embedded in an app bundle.
package sdkmodule

import (
	"fmt"

	"github.com/bundlekit/sdklayout/application/mutation"
	"github.com/bundlekit/sdklayout/application/validation"
	"github.com/bundlekit/sdklayout/domain/entities"
	"github.com/bundlekit/sdklayout/domain/errors"
)

const (
	javaResourceRoot          = "root"
	assetsDirectory           = "assets"
	assetsSubdirectoryPrefix  = "RuntimeEnabledSdk-"
	javaResourcesSubdirectory = "javaresources"

	// JavaResourceMutationName names the relocation in logs and errors.
	JavaResourceMutationName = "java-resource-repackager"
)

// JavaResourceRepackager moves the Java resources of an SDK module from the
// classpath root into assets/RuntimeEnabledSdk-<package>/javaresources so the
// app never loads them as classes and two SDKs cannot collide on a file name.
type JavaResourceRepackager struct {
	root      entities.ZipPath
	targetDir entities.ZipPath
	pkg       string
}

// NewJavaResourceRepackager returns a repackager for the SDK named by cfg.
func NewJavaResourceRepackager(cfg *entities.SdkModulesConfig) (*JavaResourceRepackager, error) {
	if cfg == nil || cfg.SdkPackageName == "" {
		return nil, &errors.ConfigError{Field: "sdk_package_name", Err: fmt.Errorf("must not be empty")}
	}
	if !validation.IsJavaPackageName(cfg.SdkPackageName) {
		return nil, &errors.ConfigError{
			Field: "sdk_package_name",
			Err:   fmt.Errorf("%q is not a valid Java package name", cfg.SdkPackageName),
		}
	}
	target, err := entities.NewZipPath(assetsDirectory + "/" + assetsSubdirectoryPrefix + cfg.SdkPackageName + "/" + javaResourcesSubdirectory)
	if err != nil {
		return nil, &errors.ConfigError{Field: "sdk_package_name", Err: err}
	}
	if target.NameCount() != 3 {
		return nil, &errors.ConfigError{
			Field: "sdk_package_name",
			Err:   fmt.Errorf("%q must be a single path segment", cfg.SdkPackageName),
		}
	}
	return &JavaResourceRepackager{
		root:      entities.MustZipPath(javaResourceRoot),
		targetDir: target,
		pkg:       cfg.SdkPackageName,
	}, nil
}

// JavaResourceDirectory returns the module-relative directory resources are moved to.
func (r *JavaResourceRepackager) JavaResourceDirectory() string {
	return r.targetDir.String()
}

// JavaResourceDirectoryInsideAssets returns JavaResourceDirectory relative to assets/.
func (r *JavaResourceRepackager) JavaResourceDirectoryInsideAssets() string {
	return r.targetDir.Subpath(1, r.targetDir.NameCount()).String()
}

// Select reports whether e lives under the classpath root.
func (r *JavaResourceRepackager) Select(e entities.ModuleEntry) bool {
	return e.Path.StartsWith(r.root)
}

// Applicable is true for every module.
func (r *JavaResourceRepackager) Applicable(*entities.BundleModule) bool {
	return true
}

// Transform relocates each entry. An entry that is only the root segment has
// no resource path to keep and fails the whole transform.
func (r *JavaResourceRepackager) Transform(entries []entities.ModuleEntry) ([]entities.ModuleEntry, error) {
	out := make([]entities.ModuleEntry, len(entries))
	for i, e := range entries {
		moved, err := r.relocate(e)
		if err != nil {
			return nil, err
		}
		out[i] = moved
	}
	return out, nil
}

func (r *JavaResourceRepackager) relocate(e entities.ModuleEntry) (entities.ModuleEntry, error) {
	n := e.Path.NameCount()
	if n < 2 {
		return entities.ModuleEntry{}, &errors.InvalidPathStructureError{
			Path:        e.Path.String(),
			MinSegments: 2,
			Reason:      "unexpected path to a Java resource entry",
		}
	}
	return e.WithPath(r.targetDir.Resolve(e.Path.Subpath(1, n))), nil
}

// Mutation exposes the repackager as an EntriesMutation.
func (r *JavaResourceRepackager) Mutation() mutation.EntriesMutation {
	return mutation.EntriesMutation{
		Name:       JavaResourceMutationName,
		Select:     r.Select,
		Transform:  r.Transform,
		Applicable: r.Applicable,
	}
}
