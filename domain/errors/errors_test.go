package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidPathStructureError(t *testing.T) {
	err := &InvalidPathStructureError{Path: "root", MinSegments: 2}

	assert.Equal(t, `invalid path structure "root": expected at least 2 segments`, err.Error())

	var pathErr *InvalidPathStructureError
	require.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &pathErr))
	assert.Equal(t, "root", pathErr.Path)
}

func TestInvalidPathStructureError_WithReason(t *testing.T) {
	err := &InvalidPathStructureError{Path: "root", Reason: "no resource file name after root"}

	assert.Equal(t, `invalid path structure "root": no resource file name after root`, err.Error())
}

func TestBuilderContractError(t *testing.T) {
	err := &BuilderContractError{Builder: "Receiver", Reason: "SetName called after Build"}

	assert.Equal(t, "Receiver builder contract violated: SetName called after Build", err.Error())
	assert.Equal(t, "builder_contract", err.ToErrorDetail().Code)
}

func TestEntryConservationError(t *testing.T) {
	err := &EntryConservationError{Input: 2, Output: 3}
	assert.Equal(t, "entry conservation violated: transform returned 3 entries for 2 inputs", err.Error())

	dup := &EntryConservationError{DuplicatePath: "assets/a.txt"}
	assert.Equal(t, `entry conservation violated: duplicate entry path "assets/a.txt"`, dup.Error())
	assert.Equal(t, "assets/a.txt", dup.ToErrorDetail().Details["path"])
}

func TestMutationError(t *testing.T) {
	cause := &InvalidPathStructureError{Path: "root", MinSegments: 2}
	err := &MutationError{Mutation: "java-resources", Module: "sdk", Err: cause}

	assert.Equal(t, `mutation java-resources failed for module sdk: invalid path structure "root": expected at least 2 segments`, err.Error())

	var pathErr *InvalidPathStructureError
	require.True(t, errors.As(err, &pathErr))
	assert.Same(t, cause, pathErr)

	detail := err.ToErrorDetail()
	assert.Equal(t, "mutation_failed", detail.Code)
	require.NotNil(t, detail.Wrapped)
	assert.Equal(t, "invalid_path_structure", detail.Wrapped.Code)
}

func TestConfigError(t *testing.T) {
	baseErr := fmt.Errorf("must not be empty")
	err := &ConfigError{
		Field: "sdk_package_name",
		Err:   baseErr,
	}

	assert.Equal(t, "config validation failed for field 'sdk_package_name': must not be empty", err.Error())
	assert.True(t, errors.Is(err, baseErr))
}

func TestConfigError_NoField(t *testing.T) {
	err := &ConfigError{Err: fmt.Errorf("invalid configuration")}

	assert.Equal(t, "config validation failed: invalid configuration", err.Error())
}

func TestSchemaError(t *testing.T) {
	baseErr := fmt.Errorf("unsupported type")
	err := &SchemaError{
		Type: "SdkModulesConfig",
		Err:  baseErr,
	}

	assert.Equal(t, "schema error for type SdkModulesConfig: unsupported type", err.Error())
	assert.True(t, errors.Is(err, baseErr))
}

func TestSchemaError_NoType(t *testing.T) {
	err := &SchemaError{Err: fmt.Errorf("invalid schema")}

	assert.Equal(t, "schema error: invalid schema", err.Error())
}

func TestToErrorDetail(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType string
		wantCode string
	}{
		{"nil", nil, "", ""},
		{"plain", fmt.Errorf("boom"), "internal", ""},
		{"path", &InvalidPathStructureError{Path: "root", MinSegments: 2}, "validation", "invalid_path_structure"},
		{"wrapped path", fmt.Errorf("ctx: %w", &InvalidPathStructureError{Path: "root"}), "validation", "invalid_path_structure"},
		{"config", &ConfigError{Field: "sdk_package_name", Err: fmt.Errorf("x")}, "config", "sdk_package_name"},
		{"builder", &BuilderContractError{Builder: "IntentFilter", Reason: "x"}, "internal", "builder_contract"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail := ToErrorDetail(tt.err)
			if tt.err == nil {
				assert.Nil(t, detail)
				return
			}
			require.NotNil(t, detail)
			assert.Equal(t, tt.wantType, detail.Type)
			assert.Equal(t, tt.wantCode, detail.Code)
		})
	}
}

func TestErrorUnwrapping(t *testing.T) {
	baseErr := fmt.Errorf("base error")

	tests := []struct {
		name string
		err  error
	}{
		{"MutationError", &MutationError{Mutation: "test", Module: "m", Err: baseErr}},
		{"ConfigError", &ConfigError{Field: "test", Err: baseErr}},
		{"SchemaError", &SchemaError{Type: "test", Err: baseErr}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.err, baseErr), "errors.Is should find base error")
			unwrapped := errors.Unwrap(tt.err)
			assert.Equal(t, baseErr, unwrapped, "errors.Unwrap should return base error")
		})
	}
}
