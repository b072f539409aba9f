// Package schema provides JSON schema generation for layout configuration documents.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/bundlekit/sdklayout/domain/entities"
	"github.com/bundlekit/sdklayout/domain/errors"
	"github.com/invopop/jsonschema"
)

// SdkModulesConfigSchemaID is the $id of the generated SdkModulesConfig schema.
const SdkModulesConfigSchemaID = "https://bundlekit.dev/schemas/sdk-modules-config.json"

// SchemaOption customizes a generated schema document.
type SchemaOption func(*jsonschema.Schema)

// WithID sets the schema $id.
func WithID(id string) SchemaOption {
	return func(s *jsonschema.Schema) {
		s.ID = jsonschema.ID(id)
	}
}

// WithTitle sets the schema title.
func WithTitle(title string) SchemaOption {
	return func(s *jsonschema.Schema) {
		s.Title = title
	}
}

// GenerateSchema creates a JSON schema from a Go struct.
// It uses the `invopop/jsonschema` library to reflect on the struct
// and generate a standard JSON Schema (Draft 2020-12). Nested structs are
// inlined so the document compiles without resolving $defs.
func GenerateSchema(v interface{}, opts ...SchemaOption) ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true, // Expand struct definitions inline
		DoNotReference: true,
	}
	schema := reflector.Reflect(v)
	for _, opt := range opts {
		opt(schema)
	}

	jsonBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	return jsonBytes, nil
}

// SdkModulesConfigSchema returns the JSON schema of an SDK modules config document.
func SdkModulesConfigSchema() ([]byte, error) {
	out, err := GenerateSchema(&entities.SdkModulesConfig{},
		WithID(SdkModulesConfigSchemaID),
		WithTitle("SDK modules config"),
	)
	if err != nil {
		return nil, &errors.SchemaError{Type: "SdkModulesConfig", Err: err}
	}
	return out, nil
}
