package entities

import "fmt"

// EntryDescriptor describes one module entry by path.
type EntryDescriptor struct {
	Path              string `json:"path" yaml:"path"`
	ForceUncompressed bool   `json:"force_uncompressed,omitempty" yaml:"force_uncompressed,omitempty"`
}

// ModuleDescriptor is a serializable listing of a module's entries. It lets
// tools describe a module layout without shipping its bytes.
type ModuleDescriptor struct {
	Name    string            `json:"name" yaml:"name"`
	Type    ModuleType        `json:"type,omitempty" yaml:"type,omitempty"`
	Entries []EntryDescriptor `json:"entries" yaml:"entries"`
}

// ToModule converts the descriptor into a BundleModule with content-less entries.
func (d *ModuleDescriptor) ToModule(cfg *SdkModulesConfig) (*BundleModule, error) {
	entries := make([]ModuleEntry, 0, len(d.Entries))
	for i, ed := range d.Entries {
		p, err := NewZipPath(ed.Path)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, NewModuleEntry(p, nil).WithForceUncompressed(ed.ForceUncompressed))
	}
	t := d.Type
	if t == "" {
		t = ModuleTypeSdk
	}
	return &BundleModule{
		Name:             d.Name,
		Type:             t,
		Entries:          entries,
		SdkModulesConfig: cfg,
	}, nil
}
