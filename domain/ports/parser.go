package ports

import "github.com/bundlekit/sdklayout/domain/entities"

// ConfigParser decodes layout documents from raw bytes.
type ConfigParser interface {
	// ParseSdkModulesConfig decodes an SDK modules config document.
	ParseSdkModulesConfig(data []byte) (*entities.SdkModulesConfig, error)

	// ParseModuleDescriptor decodes a module entry listing.
	ParseModuleDescriptor(data []byte) (*entities.ModuleDescriptor, error)
}
