// Package testutil provides common test utilities and assertions for layout tests
package testutil

import (
	"encoding/json"
	"testing"

	"github.com/bundlekit/sdklayout/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertJSONEqual compares two JSON strings for equality, ignoring formatting
func AssertJSONEqual(t *testing.T, expected, actual string, msgAndArgs ...interface{}) {
	t.Helper()

	var expectedJSON, actualJSON interface{}
	require.NoError(t, json.Unmarshal([]byte(expected), &expectedJSON), "expected JSON is invalid")
	require.NoError(t, json.Unmarshal([]byte(actual), &actualJSON), "actual JSON is invalid")

	assert.Equal(t, expectedJSON, actualJSON, msgAndArgs...)
}

// AssertPaths asserts that entries sit at exactly the given paths, in order
func AssertPaths(t *testing.T, expected []string, entries []entities.ModuleEntry, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, expected, Paths(entries), msgAndArgs...)
}

// AssertXMLEqual asserts that two element trees are structurally equal
func AssertXMLEqual(t *testing.T, expected, actual *entities.XMLElement, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, expected.Equal(actual), msgAndArgs...)
}
