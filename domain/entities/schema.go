package entities

// AndroidNamespaceURI is the XML namespace of platform-defined manifest attributes.
const AndroidNamespaceURI = "http://schemas.android.com/apk/res/android"

// AndroidNamespacePrefix is the conventional prefix bound to AndroidNamespaceURI.
const AndroidNamespacePrefix = "android"

// Attribute keys understood by AndroidSchema.
const (
	NameAttribute     = "name"
	ExportedAttribute = "exported"
)

// Element keys understood by AndroidSchema.
const (
	ReceiverElement     = "receiver"
	IntentFilterElement = "intent-filter"
	ActionElement       = "action"
	CategoryElement     = "category"
)

// AttributeBinding pairs a manifest attribute name with the platform resource id
// that binary serialization needs alongside it. A binding is only ever obtained
// from an AndroidSchema, so the two halves cannot drift apart.
type AttributeBinding struct {
	Name       string
	ResourceID uint32
}

// IsZero reports whether b is the zero binding returned for unknown keys.
func (b AttributeBinding) IsZero() bool {
	return b.Name == "" && b.ResourceID == 0
}

// AndroidSchema is the subset of the platform manifest schema used by this module.
// It is immutable once constructed and is passed explicitly to the code that needs it.
type AndroidSchema struct {
	attributes   map[string]AttributeBinding
	elements     map[string]string
	namespaceURI string
}

// NewAndroidSchema returns the schema table with the platform's canonical ids.
func NewAndroidSchema() *AndroidSchema {
	return &AndroidSchema{
		namespaceURI: AndroidNamespaceURI,
		attributes: map[string]AttributeBinding{
			NameAttribute:     {Name: "name", ResourceID: 0x01010003},
			ExportedAttribute: {Name: "exported", ResourceID: 0x01010010},
		},
		elements: map[string]string{
			ReceiverElement:     "receiver",
			IntentFilterElement: "intent-filter",
			ActionElement:       "action",
			CategoryElement:     "category",
		},
	}
}

// NamespaceURI returns the namespace attributes from this schema live in.
func (s *AndroidSchema) NamespaceURI() string {
	return s.namespaceURI
}

// Attribute looks up the binding for an attribute key.
func (s *AndroidSchema) Attribute(key string) (AttributeBinding, bool) {
	b, ok := s.attributes[key]
	return b, ok
}

// MustAttribute is like Attribute but panics on unknown keys.
// Only use it with the package-level attribute constants.
func (s *AndroidSchema) MustAttribute(key string) AttributeBinding {
	b, ok := s.attributes[key]
	if !ok {
		panic("entities: unknown schema attribute " + key)
	}
	return b
}

// ElementName returns the tag name for an element key.
func (s *AndroidSchema) ElementName(key string) (string, bool) {
	n, ok := s.elements[key]
	return n, ok
}

// MustElementName is like ElementName but panics on unknown keys.
func (s *AndroidSchema) MustElementName(key string) string {
	n, ok := s.elements[key]
	if !ok {
		panic("entities: unknown schema element " + key)
	}
	return n
}
