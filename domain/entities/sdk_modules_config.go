package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// SdkVersion is the semantic version of a runtime-enabled SDK.
type SdkVersion struct {
	Major int `json:"major" yaml:"major" mapstructure:"major" validate:"gte=0"`
	Minor int `json:"minor" yaml:"minor" mapstructure:"minor" validate:"gte=0"`
	Patch int `json:"patch" yaml:"patch" mapstructure:"patch" validate:"gte=0"`
}

// String returns "major.minor.patch".
func (v SdkVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// ParseSdkVersion parses "major[.minor[.patch]]". Missing parts are zero.
func ParseSdkVersion(s string) (SdkVersion, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) > 3 {
		return SdkVersion{}, fmt.Errorf("invalid sdk version %q", s)
	}
	var nums [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return SdkVersion{}, fmt.Errorf("invalid sdk version %q", s)
		}
		nums[i] = n
	}
	return SdkVersion{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// SdkModulesConfig identifies the SDK an SDK module was built from. The
// package name namespaces everything the SDK contributes to a bundle.
type SdkModulesConfig struct {
	SdkPackageName             string     `json:"sdk_package_name" yaml:"sdk_package_name" mapstructure:"sdk_package_name" validate:"required,java_package" jsonschema:"required,pattern=^[A-Za-z_][A-Za-z0-9_]*(\\.[A-Za-z_][A-Za-z0-9_]*)*$"`
	SdkProviderClassName       string     `json:"sdk_provider_class_name,omitempty" yaml:"sdk_provider_class_name,omitempty" mapstructure:"sdk_provider_class_name"`
	CompatSdkProviderClassName string     `json:"compat_sdk_provider_class_name,omitempty" yaml:"compat_sdk_provider_class_name,omitempty" mapstructure:"compat_sdk_provider_class_name"`
	BundletoolVersion          string     `json:"bundletool_version,omitempty" yaml:"bundletool_version,omitempty" mapstructure:"bundletool_version"`
	SdkVersion                 SdkVersion `json:"sdk_version,omitempty" yaml:"sdk_version" mapstructure:"sdk_version"`
}
