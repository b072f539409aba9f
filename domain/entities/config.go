package entities

import "runtime"

// LayoutConfig controls how layout mutations are driven.
type LayoutConfig struct {
	// LogLevel is the logging verbosity level ("debug", "info", "warn", "error").
	LogLevel string `json:"log_level,omitempty" mapstructure:"log_level"`

	// LogFormat is the record format ("text", "json", "logfmt").
	LogFormat string `json:"log_format,omitempty" mapstructure:"log_format"`

	// Parallelism caps the number of modules mutated concurrently. Zero or
	// negative means one per available CPU.
	Parallelism int `json:"parallelism" mapstructure:"parallelism"`

	// LogTimestamp prefixes every record with its time.
	LogTimestamp bool `json:"log_timestamp,omitempty" mapstructure:"log_timestamp"`
}

// DefaultLayoutConfig returns the default configuration.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		LogLevel:    "info",
		LogFormat:   "text",
		Parallelism: runtime.GOMAXPROCS(0),
	}
}

// ConfigOption is a functional option for LayoutConfig.
type ConfigOption func(*LayoutConfig)

// NewLayoutConfig applies opts on top of DefaultLayoutConfig.
func NewLayoutConfig(opts ...ConfigOption) LayoutConfig {
	return DefaultLayoutConfig().With(opts...)
}

// With returns a copy of c with opts applied.
func (c LayoutConfig) With(opts ...ConfigOption) LayoutConfig {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithParallelism sets the module concurrency limit. Non-positive values are ignored.
func WithParallelism(n int) ConfigOption {
	return func(c *LayoutConfig) {
		if n > 0 {
			c.Parallelism = n
		}
	}
}

// WithLogLevel sets the logging verbosity level.
func WithLogLevel(level string) ConfigOption {
	return func(c *LayoutConfig) {
		c.LogLevel = level
	}
}

// WithLogFormat sets the record format.
func WithLogFormat(format string) ConfigOption {
	return func(c *LayoutConfig) {
		c.LogFormat = format
	}
}

// WithLogTimestamp toggles record timestamps.
func WithLogTimestamp(enabled bool) ConfigOption {
	return func(c *LayoutConfig) {
		c.LogTimestamp = enabled
	}
}

// EffectiveParallelism returns Parallelism, or the CPU count when it is not positive.
func (c LayoutConfig) EffectiveParallelism() int {
	if c.Parallelism > 0 {
		return c.Parallelism
	}
	return runtime.GOMAXPROCS(0)
}
