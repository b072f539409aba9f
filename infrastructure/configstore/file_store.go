// Package configstore persists SDK modules configuration on disk.
package configstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bundlekit/sdklayout/domain/entities"
	"github.com/bundlekit/sdklayout/domain/errors"
	"github.com/bundlekit/sdklayout/domain/ports"
	"github.com/bundlekit/sdklayout/infrastructure/parser"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file name used when no path is configured.
const DefaultFileName = "sdk-modules-config.yaml"

// fileStoreConfig holds configuration for the FileStore.
type fileStoreConfig struct {
	validator ports.ConfigValidator // Optional schema and struct validation on Load/Save
	parser    ports.ConfigParser
	path      string      // Path to the config file
	dirPerm   os.FileMode // Permission for created directories
	filePerm  os.FileMode // Permission for the config file
}

func defaultFileStoreConfig() fileStoreConfig {
	return fileStoreConfig{
		path:     DefaultFileName,
		parser:   parser.NewYamlConfigParser(),
		dirPerm:  0o755,
		filePerm: 0o644,
	}
}

// FileStoreOption configures a FileStore instance.
type FileStoreOption func(*fileStoreConfig)

// WithPath sets the path to the config file.
func WithPath(path string) FileStoreOption {
	return func(c *fileStoreConfig) {
		c.path = path
	}
}

// WithFilePermissions sets the file permissions for the config file.
func WithFilePermissions(perm os.FileMode) FileStoreOption {
	return func(c *fileStoreConfig) {
		c.filePerm = perm
	}
}

// WithDirPermissions sets the permissions for directories created by Save.
func WithDirPermissions(perm os.FileMode) FileStoreOption {
	return func(c *fileStoreConfig) {
		c.dirPerm = perm
	}
}

// WithValidator validates configs as they are loaded and before they are saved.
func WithValidator(v ports.ConfigValidator) FileStoreOption {
	return func(c *fileStoreConfig) {
		c.validator = v
	}
}

// FileStore provides file-based persistence for an SDK modules config.
type FileStore struct {
	config fileStoreConfig
}

// NewFileStore creates a new FileStore with the given options.
func NewFileStore(opts ...FileStoreOption) ports.ConfigStore {
	cfg := defaultFileStoreConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &FileStore{config: cfg}
}

// Load reads the config file. Unlike optional settings, a missing SDK config
// is an error: relocation cannot run without a package name. With a validator
// the raw document is checked against the schema first, so unknown or
// misspelled keys fail instead of being dropped.
func (s *FileStore) Load() (*entities.SdkModulesConfig, error) {
	data, err := os.ReadFile(s.config.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sdk modules config: %w", err)
	}

	if s.config.validator != nil {
		result, err := s.config.validator.Validate(data)
		if err != nil {
			return nil, err
		}
		if !result.Valid {
			return nil, resultError(result)
		}
	}

	cfg, err := s.config.parser.ParseSdkModulesConfig(data)
	if err != nil {
		return nil, err
	}
	if s.config.validator != nil {
		if err := s.config.validator.ValidateStruct(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// resultError folds a failed ValidationResult into a ConfigError naming the
// first offending field.
func resultError(result *entities.ValidationResult) error {
	msgs := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		if e.Field != "" {
			msgs = append(msgs, e.Field+": "+e.Message)
		} else {
			msgs = append(msgs, e.Message)
		}
	}
	var field string
	if len(result.Errors) > 0 {
		field = strings.ReplaceAll(strings.TrimPrefix(result.Errors[0].Field, "/"), "/", ".")
		field = strings.TrimPrefix(field, "SdkModulesConfig.")
	}
	return &errors.ConfigError{Field: field, Err: fmt.Errorf("%s", strings.Join(msgs, "; "))}
}

// Save persists cfg.
func (s *FileStore) Save(cfg *entities.SdkModulesConfig) error {
	if s.config.validator != nil {
		if err := s.config.validator.ValidateStruct(cfg); err != nil {
			return err
		}
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal sdk modules config: %w", err)
	}

	dir := filepath.Dir(s.config.path)
	if err := os.MkdirAll(dir, s.config.dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(s.config.path, data, s.config.filePerm); err != nil {
		return fmt.Errorf("failed to write sdk modules config: %w", err)
	}
	return nil
}

// ConfigPath returns the path to the backing store.
func (s *FileStore) ConfigPath() string {
	return s.config.path
}
