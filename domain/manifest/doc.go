// Package manifest models individual Android manifest elements as immutable
// values with optional fields. Each element converts itself into an
// entities.XMLElement tree once and caches the result for its lifetime.
//
// Field presence is explicit: an element built without SetExported emits no
// android:exported attribute and defers to the platform default, while one
// built with SetExported(false) emits android:exported="false".
//
// This is not an exhaustive representation of the manifest schema.
package manifest
