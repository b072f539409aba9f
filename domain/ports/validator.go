package ports

import "github.com/bundlekit/sdklayout/domain/entities"

// ConfigValidator validates SDK modules configuration.
type ConfigValidator interface {
	// Validate checks a raw config document against the config schema.
	// Schema violations are reported in the result; the error is reserved
	// for documents that cannot be decoded at all.
	Validate(data []byte) (*entities.ValidationResult, error)

	// ValidateStruct checks a decoded config against its field rules.
	ValidateStruct(cfg *entities.SdkModulesConfig) error
}
