package entities

import "strconv"

// ValueKind identifies the type held by an AttributeValue.
type ValueKind string

const (
	// ValueKindString marks a string attribute value.
	ValueKindString ValueKind = "string"

	// ValueKindBool marks a boolean attribute value.
	ValueKindBool ValueKind = "bool"
)

// AttributeValue is a typed attribute value. The zero value has no kind and
// renders as an empty string.
type AttributeValue struct {
	Kind ValueKind
	str  string
	b    bool
}

// StringValue returns a string-typed AttributeValue.
func StringValue(s string) AttributeValue {
	return AttributeValue{Kind: ValueKindString, str: s}
}

// BoolValue returns a bool-typed AttributeValue.
func BoolValue(b bool) AttributeValue {
	return AttributeValue{Kind: ValueKindBool, b: b}
}

// AsString returns the string value and whether the value is a string.
func (v AttributeValue) AsString() (string, bool) {
	return v.str, v.Kind == ValueKindString
}

// AsBool returns the bool value and whether the value is a bool.
func (v AttributeValue) AsBool() (bool, bool) {
	return v.b, v.Kind == ValueKindBool
}

// String renders the value the way it appears in textual XML.
func (v AttributeValue) String() string {
	switch v.Kind {
	case ValueKindBool:
		return strconv.FormatBool(v.b)
	case ValueKindString:
		return v.str
	default:
		return ""
	}
}

// XMLAttribute is one attribute of an XMLElement.
type XMLAttribute struct {
	Value        AttributeValue
	Name         string
	NamespaceURI string
	ResourceID   uint32
}

// XMLElement is a generic, immutable tree node: a tag, ordered attributes and
// ordered child elements. Build instances with XMLElementBuilder.
type XMLElement struct {
	name         string
	namespaceURI string
	attributes   []XMLAttribute
	children     []*XMLElement
}

// Name returns the element tag name.
func (e *XMLElement) Name() string {
	return e.name
}

// NamespaceURI returns the element namespace, usually empty for manifest elements.
func (e *XMLElement) NamespaceURI() string {
	return e.namespaceURI
}

// Attributes returns a copy of the ordered attribute list.
func (e *XMLElement) Attributes() []XMLAttribute {
	return append([]XMLAttribute(nil), e.attributes...)
}

// Children returns a copy of the ordered child list. Children are themselves
// immutable, so sharing them is safe.
func (e *XMLElement) Children() []*XMLElement {
	return append([]*XMLElement(nil), e.children...)
}

// Attribute finds an attribute by namespace and name.
func (e *XMLElement) Attribute(namespaceURI, name string) (XMLAttribute, bool) {
	for _, a := range e.attributes {
		if a.NamespaceURI == namespaceURI && a.Name == name {
			return a, true
		}
	}
	return XMLAttribute{}, false
}

// ChildrenNamed returns the direct children with the given tag, in order.
func (e *XMLElement) ChildrenNamed(name string) []*XMLElement {
	var out []*XMLElement
	for _, c := range e.children {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

// Equal reports whether two trees are structurally identical.
func (e *XMLElement) Equal(other *XMLElement) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.name != other.name || e.namespaceURI != other.namespaceURI {
		return false
	}
	if len(e.attributes) != len(other.attributes) || len(e.children) != len(other.children) {
		return false
	}
	for i := range e.attributes {
		if e.attributes[i] != other.attributes[i] {
			return false
		}
	}
	for i := range e.children {
		if !e.children[i].Equal(other.children[i]) {
			return false
		}
	}
	return true
}

// ToBuilder returns a builder seeded with a deep copy of e.
func (e *XMLElement) ToBuilder() *XMLElementBuilder {
	b := &XMLElementBuilder{name: e.name, namespaceURI: e.namespaceURI}
	for _, a := range e.attributes {
		b.attributes = append(b.attributes, &XMLAttributeBuilder{attr: a})
	}
	for _, c := range e.children {
		b.children = append(b.children, c.ToBuilder())
	}
	return b
}

// XMLElementBuilder assembles an XMLElement. It is not safe for concurrent use.
type XMLElementBuilder struct {
	name         string
	namespaceURI string
	attributes   []*XMLAttributeBuilder
	children     []*XMLElementBuilder
}

// NewXMLElementBuilder starts an element with the given tag name and no namespace.
func NewXMLElementBuilder(name string) *XMLElementBuilder {
	return &XMLElementBuilder{name: name}
}

// GetOrCreateAndroidAttribute returns the builder for the attribute described by
// binding in the android namespace, appending it if it does not exist yet.
func (b *XMLElementBuilder) GetOrCreateAndroidAttribute(binding AttributeBinding) *XMLAttributeBuilder {
	return b.GetOrCreateAttribute(AndroidNamespaceURI, binding)
}

// GetOrCreateAttribute is GetOrCreateAndroidAttribute for an arbitrary namespace.
func (b *XMLElementBuilder) GetOrCreateAttribute(namespaceURI string, binding AttributeBinding) *XMLAttributeBuilder {
	for _, a := range b.attributes {
		if a.attr.NamespaceURI == namespaceURI && a.attr.Name == binding.Name {
			return a
		}
	}
	a := &XMLAttributeBuilder{attr: XMLAttribute{
		Name:         binding.Name,
		NamespaceURI: namespaceURI,
		ResourceID:   binding.ResourceID,
	}}
	b.attributes = append(b.attributes, a)
	return a
}

// AddChildElement appends child as the last child.
func (b *XMLElementBuilder) AddChildElement(child *XMLElementBuilder) *XMLElementBuilder {
	b.children = append(b.children, child)
	return b
}

// Build produces an immutable XMLElement. The builder stays usable; later
// changes do not affect elements already built.
func (b *XMLElementBuilder) Build() *XMLElement {
	e := &XMLElement{name: b.name, namespaceURI: b.namespaceURI}
	if len(b.attributes) > 0 {
		e.attributes = make([]XMLAttribute, len(b.attributes))
		for i, a := range b.attributes {
			e.attributes[i] = a.attr
		}
	}
	if len(b.children) > 0 {
		e.children = make([]*XMLElement, len(b.children))
		for i, c := range b.children {
			e.children[i] = c.Build()
		}
	}
	return e
}

// XMLAttributeBuilder sets the value of one attribute inside an XMLElementBuilder.
type XMLAttributeBuilder struct {
	attr XMLAttribute
}

// SetValueAsString stores a string value.
func (a *XMLAttributeBuilder) SetValueAsString(s string) *XMLAttributeBuilder {
	a.attr.Value = StringValue(s)
	return a
}

// SetValueAsBoolean stores a bool value.
func (a *XMLAttributeBuilder) SetValueAsBoolean(v bool) *XMLAttributeBuilder {
	a.attr.Value = BoolValue(v)
	return a
}
