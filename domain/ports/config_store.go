package ports

import "github.com/bundlekit/sdklayout/domain/entities"

// ConfigStore provides persistence for an SDK modules config.
type ConfigStore interface {
	// Load reads and decodes the stored config.
	Load() (*entities.SdkModulesConfig, error)

	// Save persists cfg.
	Save(cfg *entities.SdkModulesConfig) error

	// ConfigPath returns the path to the backing store (for user messaging).
	ConfigPath() string
}
