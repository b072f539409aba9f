// Package extractor turns module descriptors into bundle modules.
package extractor

import (
	"fmt"

	"github.com/bundlekit/sdklayout/domain/entities"
	"github.com/bundlekit/sdklayout/domain/ports"
)

// ModuleExtractor builds a BundleModule from a (possibly templated) module descriptor.
type ModuleExtractor struct {
	parser     ports.ConfigParser
	renderer   ports.TemplateEngine
	descriptor []byte
}

// ModuleExtractorOption configures the ModuleExtractor.
type ModuleExtractorOption func(*ModuleExtractor)

// WithParser sets the descriptor parser.
func WithParser(p ports.ConfigParser) ModuleExtractorOption {
	return func(e *ModuleExtractor) {
		e.parser = p
	}
}

// WithTemplateEngine renders the descriptor before parsing it.
func WithTemplateEngine(t ports.TemplateEngine) ModuleExtractorOption {
	return func(e *ModuleExtractor) {
		e.renderer = t
	}
}

// NewModuleExtractor creates a new ModuleExtractor for the given descriptor.
func NewModuleExtractor(descriptor []byte, opts ...ModuleExtractorOption) *ModuleExtractor {
	e := &ModuleExtractor{descriptor: descriptor}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract renders the descriptor with cfg exposed as .sdk, parses it and
// returns the module it describes, bound to cfg.
func (e *ModuleExtractor) Extract(cfg *entities.SdkModulesConfig) (*entities.BundleModule, error) {
	if e.parser == nil {
		return nil, fmt.Errorf("descriptor parser is required")
	}

	data := e.descriptor
	if e.renderer != nil {
		var err error
		data, err = e.renderer.Render(data, TemplateData(cfg))
		if err != nil {
			return nil, fmt.Errorf("failed to render module descriptor: %w", err)
		}
	}

	desc, err := e.parser.ParseModuleDescriptor(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse module descriptor: %w", err)
	}

	module, err := desc.ToModule(cfg)
	if err != nil {
		return nil, fmt.Errorf("module %s: %w", desc.Name, err)
	}
	return module, nil
}

// TemplateData is the root object descriptor templates are executed against.
func TemplateData(cfg *entities.SdkModulesConfig) map[string]any {
	sdk := map[string]any{}
	if cfg != nil {
		sdk["package_name"] = cfg.SdkPackageName
		sdk["version"] = cfg.SdkVersion.String()
		sdk["provider_class_name"] = cfg.SdkProviderClassName
		sdk["compat_provider_class_name"] = cfg.CompatSdkProviderClassName
		sdk["bundletool_version"] = cfg.BundletoolVersion
	}
	return map[string]any{"sdk": sdk}
}
