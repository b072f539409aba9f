// Package template renders module descriptors written as Go text templates.
package template

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/bundlekit/sdklayout/domain/ports"
)

// templateConfig holds configuration for the GoTemplateEngine.
type templateConfig struct {
	delimLeft  string
	delimRight string
	strict     bool
}

func defaultTemplateConfig() templateConfig {
	return templateConfig{
		strict:     true,
		delimLeft:  "{{",
		delimRight: "}}",
	}
}

// TemplateOption configures a GoTemplateEngine.
type TemplateOption func(*templateConfig)

// WithStrict enables/disables strict mode for missing keys.
// When enabled (default), rendering fails if a referenced key is missing.
func WithStrict(enabled bool) TemplateOption {
	return func(c *templateConfig) {
		c.strict = enabled
	}
}

// WithDelims replaces the default {{ }} action delimiters.
func WithDelims(left, right string) TemplateOption {
	return func(c *templateConfig) {
		if left != "" && right != "" {
			c.delimLeft, c.delimRight = left, right
		}
	}
}

// GoTemplateEngine implements TemplateEngine using standard text/template.
type GoTemplateEngine struct {
	config templateConfig
}

// NewGoTemplateEngine creates a new GoTemplateEngine.
func NewGoTemplateEngine(opts ...TemplateOption) ports.TemplateEngine {
	cfg := defaultTemplateConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &GoTemplateEngine{config: cfg}
}

// Render processes raw with data as the template root.
func (e *GoTemplateEngine) Render(raw []byte, data map[string]any) ([]byte, error) {
	tmpl := template.New("descriptor").Delims(e.config.delimLeft, e.config.delimRight)
	if e.config.strict {
		tmpl = tmpl.Option("missingkey=error")
	}

	tmpl, err := tmpl.Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse descriptor template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute descriptor template: %w", err)
	}
	return buf.Bytes(), nil
}
