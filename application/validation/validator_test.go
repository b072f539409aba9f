package validation_test

import (
	"errors"
	"testing"

	"github.com/bundlekit/sdklayout/application/validation"
	"github.com/bundlekit/sdklayout/domain/entities"
	domainerrors "github.com/bundlekit/sdklayout/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidator_Validate(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantValid bool
		wantField string
	}{
		{
			name: "valid yaml",
			doc: `
sdk_package_name: com.example.sdk
sdk_version:
  major: 1
  minor: 2
  patch: 3
sdk_provider_class_name: com.example.sdk.Provider
`,
			wantValid: true,
		},
		{
			name:      "valid json",
			doc:       `{"sdk_package_name": "com.example.sdk"}`,
			wantValid: true,
		},
		{
			name:      "missing package name",
			doc:       `sdk_provider_class_name: com.example.sdk.Provider`,
			wantValid: false,
		},
		{
			name:      "package name with path separator",
			doc:       `sdk_package_name: com/example`,
			wantValid: false,
			wantField: "/sdk_package_name",
		},
		{
			name:      "package name wrong type",
			doc:       `sdk_package_name: 42`,
			wantValid: false,
			wantField: "/sdk_package_name",
		},
		{
			name:      "empty document",
			doc:       ``,
			wantValid: false,
		},
	}

	v := validation.NewConfigValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := v.Validate([]byte(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, result.Valid, "errors: %+v", result.Errors)
			if tt.wantValid {
				assert.Empty(t, result.Errors)
				return
			}
			require.NotEmpty(t, result.Errors)
			if tt.wantField != "" {
				var fields []string
				for _, e := range result.Errors {
					fields = append(fields, e.Field)
				}
				assert.Contains(t, fields, tt.wantField)
			}
		})
	}
}

func TestConfigValidator_Validate_Unparseable(t *testing.T) {
	v := validation.NewConfigValidator()

	_, err := v.Validate([]byte("sdk_package_name: [unterminated"))

	var cfgErr *domainerrors.ConfigError
	require.True(t, errors.As(err, &cfgErr))
}

func TestConfigValidator_ValidateStruct(t *testing.T) {
	v := validation.NewConfigValidator()

	require.NoError(t, v.ValidateStruct(&entities.SdkModulesConfig{SdkPackageName: "com.example.sdk"}))

	tests := []struct {
		name string
		cfg  *entities.SdkModulesConfig
	}{
		{"nil", nil},
		{"empty package", &entities.SdkModulesConfig{}},
		{"bad package", &entities.SdkModulesConfig{SdkPackageName: "1com.example"}},
		{"negative version", &entities.SdkModulesConfig{
			SdkPackageName: "com.example",
			SdkVersion:     entities.SdkVersion{Major: -1},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.cfg)
			var cfgErr *domainerrors.ConfigError
			require.True(t, errors.As(err, &cfgErr), "got %v", err)
		})
	}
}

func TestConfigValidator_ValidateStruct_FieldName(t *testing.T) {
	v := validation.NewConfigValidator()

	err := v.ValidateStruct(&entities.SdkModulesConfig{SdkPackageName: "com..example"})

	var cfgErr *domainerrors.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "sdk_package_name", cfgErr.Field)
	assert.Contains(t, cfgErr.Error(), "not a valid Java package name")
}

func TestIsJavaPackageName(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"com.example.sdk", true},
		{"_internal.v2", true},
		{"sdk", true},
		{"", false},
		{"com example", false},
		{"..", false},
		{"com.a..b", false},
		{"-x", false},
		{"1com.example", false},
		{"com/example", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, validation.IsJavaPackageName(tt.in))
		})
	}
}
