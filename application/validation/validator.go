// Package validation checks SDK modules configuration documents.
//
// Raw documents are checked against the JSON schema generated from
// entities.SdkModulesConfig; decoded values are checked against their
// `validate` struct tags.
package validation

import (
	"bytes"
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/bundlekit/sdklayout/application/schema"
	"github.com/bundlekit/sdklayout/domain/entities"
	"github.com/bundlekit/sdklayout/domain/errors"
	"github.com/bundlekit/sdklayout/domain/ports"
	"github.com/go-playground/validator/v10"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

var javaPackagePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// IsJavaPackageName reports whether s is a dot-separated sequence of Java identifiers.
func IsJavaPackageName(s string) bool {
	return javaPackagePattern.MatchString(s)
}

// validate is a package-level singleton; building a validator is expensive.
var validate = newStructValidator()

var printer = message.NewPrinter(language.English)

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	if err := v.RegisterValidation("java_package", func(fl validator.FieldLevel) bool {
		return IsJavaPackageName(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// ConfigValidator validates SdkModulesConfig documents.
type ConfigValidator struct {
	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

// NewConfigValidator creates a new validator. The schema is compiled on first use.
func NewConfigValidator() ports.ConfigValidator {
	return &ConfigValidator{}
}

func (v *ConfigValidator) schema() (*jsonschema.Schema, error) {
	v.once.Do(func() {
		raw, err := schema.SdkModulesConfigSchema()
		if err != nil {
			v.err = err
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			v.err = &errors.SchemaError{Type: "SdkModulesConfig", Err: err}
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schema.SdkModulesConfigSchemaID, doc); err != nil {
			v.err = &errors.SchemaError{Type: "SdkModulesConfig", Err: err}
			return
		}
		v.compiled, err = c.Compile(schema.SdkModulesConfigSchemaID)
		if err != nil {
			v.err = &errors.SchemaError{Type: "SdkModulesConfig", Err: err}
		}
	})
	return v.compiled, v.err
}

// Validate checks a YAML or JSON config document against the generated schema
// and, when the document is structurally valid, against the struct rules.
func (v *ConfigValidator) Validate(data []byte) (*entities.ValidationResult, error) {
	sch, err := v.schema()
	if err != nil {
		return nil, err
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &errors.ConfigError{Err: fmt.Errorf("parsing document: %w", err)}
	}
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, &errors.ConfigError{Err: fmt.Errorf("converting to JSON: %w", err)}
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, &errors.ConfigError{Err: fmt.Errorf("preparing JSON for validation: %w", err)}
	}

	result := &entities.ValidationResult{Valid: true}
	if err := sch.Validate(inst); err != nil {
		var ve *jsonschema.ValidationError
		if !stdErrors.As(err, &ve) {
			return nil, &errors.SchemaError{Type: "SdkModulesConfig", Err: err}
		}
		collectSchemaErrors(ve, result)
		if result.Valid {
			result.AddError("", ve.Error())
		}
		return result, nil
	}

	var cfg entities.SdkModulesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &errors.ConfigError{Err: fmt.Errorf("decoding config: %w", err)}
	}
	var fieldErrs validator.ValidationErrors
	if err := validate.Struct(&cfg); stdErrors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			result.AddError(fe.Namespace(), fieldMessage(fe))
		}
	}
	return result, nil
}

// ValidateStruct checks cfg against its `validate` tags. The first failing
// field is reported as *errors.ConfigError.
func (v *ConfigValidator) ValidateStruct(cfg *entities.SdkModulesConfig) error {
	if cfg == nil {
		return &errors.ConfigError{Err: fmt.Errorf("config is nil")}
	}
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if stdErrors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &errors.ConfigError{Field: fe.Field(), Err: fmt.Errorf("%s", fieldMessage(fe))}
	}
	return &errors.ConfigError{Err: err}
}

// collectSchemaErrors walks the error tree and records the leaf errors.
func collectSchemaErrors(ve *jsonschema.ValidationError, result *entities.ValidationResult) {
	if len(ve.Causes) == 0 {
		path := ""
		if len(ve.InstanceLocation) > 0 {
			path = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		msg := ve.Error()
		if ve.ErrorKind != nil {
			msg = ve.ErrorKind.LocalizedString(printer)
		}
		result.AddError(path, msg)
		return
	}
	for _, cause := range ve.Causes {
		collectSchemaErrors(cause, result)
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "java_package":
		return fmt.Sprintf("%q is not a valid Java package name", fe.Value())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
