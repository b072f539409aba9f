package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	domainerrors "github.com/bundlekit/sdklayout/domain/errors"
	"github.com/bundlekit/sdklayout/internal/testutil"
	"github.com/bundlekit/sdklayout/wireformat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(t.Context())
	return stdout.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sdkConfigYAML = `sdk_package_name: com.example.sdk
sdk_version:
  major: 1
  minor: 2
  patch: 0
`

func TestRelocateCommand(t *testing.T) {
	dir := t.TempDir()
	sdkConfig := writeFile(t, dir, "sdk.yaml", sdkConfigYAML)
	module := writeFile(t, dir, "module.yaml", `name: ads
entries:
  - path: root/com/example/data.txt
  - path: dex/classes.dex
  - path: root/META-INF/services/x
`)

	out, err := execute(t, "relocate", "--sdk-config", sdkConfig, "--module", module)
	require.NoError(t, err)

	var plans []wireformat.RelocationPlanWire
	require.NoError(t, json.Unmarshal([]byte(out), &plans))
	require.Len(t, plans, 1)
	assert.Equal(t, "ads", plans[0].Module)
	assert.Equal(t, "java-resource-repackager", plans[0].Mutation)
	assert.Equal(t, []wireformat.EntryMoveWire{
		{From: "root/com/example/data.txt", To: "assets/RuntimeEnabledSdk-com.example.sdk/javaresources/com/example/data.txt"},
		{From: "root/META-INF/services/x", To: "assets/RuntimeEnabledSdk-com.example.sdk/javaresources/META-INF/services/x"},
	}, plans[0].Moves)
	assert.Equal(t, []string{"dex/classes.dex"}, plans[0].Unchanged)
}

func TestRelocateCommand_MultipleModules(t *testing.T) {
	dir := t.TempDir()
	sdkConfig := writeFile(t, dir, "sdk.yaml", sdkConfigYAML)
	first := writeFile(t, dir, "a.yaml", "name: a\nentries:\n  - path: root/a.txt\n")
	second := writeFile(t, dir, "b.yaml", "name: b\nentries:\n  - path: assets/b.txt\n")

	out, err := execute(t, "relocate", "--sdk-config", sdkConfig, "--module", first, "--module", second)
	require.NoError(t, err)

	var plans []wireformat.RelocationPlanWire
	require.NoError(t, json.Unmarshal([]byte(out), &plans))
	require.Len(t, plans, 2)
	assert.Equal(t, "a", plans[0].Module)
	assert.Len(t, plans[0].Moves, 1)
	assert.Equal(t, "b", plans[1].Module)
	assert.Empty(t, plans[1].Moves)
	assert.Equal(t, []string{"assets/b.txt"}, plans[1].Unchanged)
}

func TestRelocateCommand_TemplatedDescriptor(t *testing.T) {
	dir := t.TempDir()
	sdkConfig := writeFile(t, dir, "sdk.yaml", sdkConfigYAML)
	module := writeFile(t, dir, "module.yaml", `name: ads
entries:
  - path: root/{{.sdk.package_name}}.properties
`)

	out, err := execute(t, "relocate", "--sdk-config", sdkConfig, "--module", module)
	require.NoError(t, err)

	var plans []wireformat.RelocationPlanWire
	require.NoError(t, json.Unmarshal([]byte(out), &plans))
	require.Len(t, plans, 1)
	assert.Equal(t, []wireformat.EntryMoveWire{{
		From: "root/com.example.sdk.properties",
		To:   "assets/RuntimeEnabledSdk-com.example.sdk/javaresources/com.example.sdk.properties",
	}}, plans[0].Moves)
}

func TestRelocateCommand_ShortRootPath(t *testing.T) {
	dir := t.TempDir()
	sdkConfig := writeFile(t, dir, "sdk.yaml", sdkConfigYAML)
	module := writeFile(t, dir, "module.yaml", "name: ads\nentries:\n  - path: root\n")

	out, err := execute(t, "relocate", "--sdk-config", sdkConfig, "--module", module)

	var pathErr *domainerrors.InvalidPathStructureError
	require.True(t, errors.As(err, &pathErr))
	assert.Equal(t, "root", pathErr.Path)

	var plans []wireformat.RelocationPlanWire
	require.NoError(t, json.Unmarshal([]byte(out), &plans))
	require.Len(t, plans, 1)
	require.NotNil(t, plans[0].Error)
	assert.Equal(t, "mutation_failed", plans[0].Error.Code)
	require.NotNil(t, plans[0].Error.Wrapped)
	assert.Equal(t, "invalid_path_structure", plans[0].Error.Wrapped.Code)
}

func TestRelocateCommand_InvalidSdkConfig(t *testing.T) {
	dir := t.TempDir()
	sdkConfig := writeFile(t, dir, "sdk.yaml", "sdk_package_name: \"not a package\"\n")
	module := writeFile(t, dir, "module.yaml", "name: ads\nentries: []\n")

	_, err := execute(t, "relocate", "--sdk-config", sdkConfig, "--module", module)

	var cfgErr *domainerrors.ConfigError
	require.True(t, errors.As(err, &cfgErr))
}

func TestRelocateCommand_RequiresFlags(t *testing.T) {
	_, err := execute(t, "relocate")
	assert.Error(t, err)
}

func TestReceiverCommand(t *testing.T) {
	out, err := execute(t, "receiver", "--name", "com.example.Ping", "--exported=false", "--action", "a.PING")
	require.NoError(t, err)

	testutil.AssertJSONEqual(t, `{
		"name": "receiver",
		"attributes": [
			{"namespace_uri": "http://schemas.android.com/apk/res/android", "name": "name", "type": "string", "value": "com.example.Ping", "resource_id": 16842755},
			{"namespace_uri": "http://schemas.android.com/apk/res/android", "name": "exported", "type": "bool", "value": "false", "resource_id": 16842768}
		],
		"children": [
			{"name": "intent-filter", "children": [
				{"name": "action", "attributes": [
					{"namespace_uri": "http://schemas.android.com/apk/res/android", "name": "name", "type": "string", "value": "a.PING", "resource_id": 16842755}
				]}
			]}
		]
	}`, out)
}

func TestReceiverCommand_AbsentFields(t *testing.T) {
	out, err := execute(t, "receiver")
	require.NoError(t, err)

	testutil.AssertJSONEqual(t, `{"name": "receiver"}`, out)
}

func TestSchemaCommand(t *testing.T) {
	out, err := execute(t, "schema")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "https://bundlekit.dev/schemas/sdk-modules-config.json", doc["$id"])
}

func TestRootCommand_InvalidLogLevel(t *testing.T) {
	_, err := execute(t, "--log-level", "chatty", "schema")

	var cfgErr *domainerrors.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "log_level", cfgErr.Field)
}

func TestRootCommand_ConfigFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "layout.yaml", "log_level: debug\nparallelism: 1\n")

	_, err := execute(t, "--config", path, "schema")
	require.NoError(t, err)
}

func TestRootCommand_FlagOverrides(t *testing.T) {
	path := writeFile(t, t.TempDir(), "layout.yaml", "log_level: debug\nparallelism: 1\n")

	_, err := execute(t, "--config", path, "--parallelism", "2", "--log-timestamp", "--log-format", "json", "schema")
	require.NoError(t, err)
}

func TestRootCommand_OverrideStillValidated(t *testing.T) {
	_, err := execute(t, "--log-format", "xml", "schema")

	var cfgErr *domainerrors.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "log_format", cfgErr.Field)
}
