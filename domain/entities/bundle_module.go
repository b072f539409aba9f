package entities

// ModuleType distinguishes regular feature modules from runtime-enabled SDK modules.
type ModuleType string

const (
	// ModuleTypeFeature is an app feature module.
	ModuleTypeFeature ModuleType = "feature"

	// ModuleTypeSdk is an SDK module embedded in an app bundle.
	ModuleTypeSdk ModuleType = "sdk"
)

// BundleModule is one module of a bundle prior to final assembly.
// Treat it as immutable; use WithEntries to derive a modified copy.
type BundleModule struct {
	SdkModulesConfig *SdkModulesConfig `json:"sdk_modules_config,omitempty" yaml:"sdk_modules_config,omitempty"`
	Name             string            `json:"name" yaml:"name"`
	Type             ModuleType        `json:"type" yaml:"type"`
	Entries          []ModuleEntry     `json:"-" yaml:"-"`
}

// WithEntries returns a shallow copy of m holding entries.
func (m *BundleModule) WithEntries(entries []ModuleEntry) *BundleModule {
	clone := *m
	clone.Entries = entries
	return &clone
}

// SdkPackageName returns the package name of the SDK this module was built
// from, or "" for modules without SDK configuration.
func (m *BundleModule) SdkPackageName() string {
	if m == nil || m.SdkModulesConfig == nil {
		return ""
	}
	return m.SdkModulesConfig.SdkPackageName
}

// FindEntry returns the entry located at path.
func (m *BundleModule) FindEntry(path ZipPath) (ModuleEntry, bool) {
	for _, e := range m.Entries {
		if e.Path.Equal(path) {
			return e, true
		}
	}
	return ModuleEntry{}, false
}
