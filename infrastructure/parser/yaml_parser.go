package parser

import (
	"fmt"

	"github.com/bundlekit/sdklayout/domain/entities"
	"github.com/bundlekit/sdklayout/domain/errors"
	"github.com/bundlekit/sdklayout/domain/ports"
	"gopkg.in/yaml.v3"
)

// YamlConfigParser implements ConfigParser for YAML (and therefore JSON) documents.
type YamlConfigParser struct{}

// NewYamlConfigParser creates a new YamlConfigParser.
func NewYamlConfigParser() ports.ConfigParser {
	return &YamlConfigParser{}
}

// ParseSdkModulesConfig unmarshals YAML bytes into an SdkModulesConfig.
func (p *YamlConfigParser) ParseSdkModulesConfig(data []byte) (*entities.SdkModulesConfig, error) {
	var cfg entities.SdkModulesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &errors.ConfigError{Err: fmt.Errorf("parsing sdk modules config: %w", err)}
	}
	return &cfg, nil
}

// ParseModuleDescriptor unmarshals YAML bytes into a ModuleDescriptor.
func (p *YamlConfigParser) ParseModuleDescriptor(data []byte) (*entities.ModuleDescriptor, error) {
	var d entities.ModuleDescriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing module descriptor: %w", err)
	}
	if d.Name == "" {
		return nil, fmt.Errorf("parsing module descriptor: name is required")
	}
	return &d, nil
}
