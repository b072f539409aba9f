// Package errors provides domain-specific error types for bundle layout.
// All error types support error unwrapping via errors.As() and errors.Is().
package errors

import (
	stdErrors "errors"
	"fmt"

	"github.com/bundlekit/sdklayout/domain/entities"
)

// ErrorDetail is an alias to entities.ErrorDetail for convenience.
type ErrorDetail = entities.ErrorDetail

// DetailedError is implemented by error types that can describe themselves as
// a structured ErrorDetail.
type DetailedError interface {
	error
	ToErrorDetail() *entities.ErrorDetail
}

// ToErrorDetail converts a Go error to a structured ErrorDetail.
func ToErrorDetail(err error) *entities.ErrorDetail {
	if err == nil {
		return nil
	}

	var e *entities.ErrorDetail
	if stdErrors.As(err, &e) {
		return e
	}

	var de DetailedError
	if stdErrors.As(err, &de) {
		return de.ToErrorDetail()
	}

	return &entities.ErrorDetail{
		Message: err.Error(),
		Type:    "internal",
	}
}

// InvalidPathStructureError reports a module entry whose path cannot be
// rewritten because it lacks the segments the rewrite needs. The module is
// structurally invalid and must not be packaged.
type InvalidPathStructureError struct {
	Path        string
	Reason      string
	MinSegments int
}

func (e *InvalidPathStructureError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid path structure %q: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("invalid path structure %q: expected at least %d segments", e.Path, e.MinSegments)
}

// ToErrorDetail implements DetailedError.
func (e *InvalidPathStructureError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{
		Message: e.Error(),
		Type:    "validation",
		Code:    "invalid_path_structure",
		Details: map[string]any{"path": e.Path},
	}
}

// BuilderContractError reports misuse of a value builder, such as setting a
// field after Build. It signals a programming error, not bad input.
type BuilderContractError struct {
	Builder string
	Reason  string
}

func (e *BuilderContractError) Error() string {
	return fmt.Sprintf("%s builder contract violated: %s", e.Builder, e.Reason)
}

// ToErrorDetail implements DetailedError.
func (e *BuilderContractError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "internal", Code: "builder_contract"}
}

// EntryConservationError reports a transform that produced more entries than
// it was given, or two output entries at the same path.
type EntryConservationError struct {
	DuplicatePath string
	Input         int
	Output        int
}

func (e *EntryConservationError) Error() string {
	if e.DuplicatePath != "" {
		return fmt.Sprintf("entry conservation violated: duplicate entry path %q", e.DuplicatePath)
	}
	return fmt.Sprintf("entry conservation violated: transform returned %d entries for %d inputs", e.Output, e.Input)
}

// ToErrorDetail implements DetailedError.
func (e *EntryConservationError) ToErrorDetail() *entities.ErrorDetail {
	detail := &entities.ErrorDetail{Message: e.Error(), Type: "validation", Code: "entry_conservation"}
	if e.DuplicatePath != "" {
		detail.Details = map[string]any{"path": e.DuplicatePath}
	}
	return detail
}

// MutationError wraps a failure of one mutation applied to one module.
type MutationError struct {
	Err      error
	Mutation string
	Module   string
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("mutation %s failed for module %s: %v", e.Mutation, e.Module, e.Err)
}

func (e *MutationError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError. The cause's detail is kept as the
// wrapped detail so drivers can still see the root failure code.
func (e *MutationError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{
		Message: fmt.Sprintf("mutation %s failed for module %s", e.Mutation, e.Module),
		Type:    "validation",
		Code:    "mutation_failed",
		Details: map[string]any{"mutation": e.Mutation, "module": e.Module},
		Wrapped: ToErrorDetail(e.Err),
	}
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Err   error
	Field string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config validation failed for field '%s': %v", e.Field, e.Err)
	}
	return fmt.Sprintf("config validation failed: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *ConfigError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "config", Code: e.Field}
}

// SchemaError represents a schema generation or validation error.
type SchemaError struct {
	Err  error
	Type string
}

func (e *SchemaError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("schema error for type %s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("schema error: %v", e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *SchemaError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "validation", Code: "schema"}
}
