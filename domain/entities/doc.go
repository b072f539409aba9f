// Package entities provides the value types shared by every layer: the manifest
// schema table, the generic XML element tree, module entries and their paths,
// bundle modules and the SDK configuration that identifies them.
package entities
