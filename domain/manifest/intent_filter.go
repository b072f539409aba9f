package manifest

import "github.com/bundlekit/sdklayout/domain/entities"

// IntentFilter represents an <intent-filter> element with its action and
// category children.
type IntentFilter struct {
	cache      elementCache
	actions    []string
	categories []string
}

// Actions returns a copy of the action names in declaration order.
func (f *IntentFilter) Actions() []string {
	return append([]string(nil), f.actions...)
}

// Categories returns a copy of the category names in declaration order.
func (f *IntentFilter) Categories() []string {
	return append([]string(nil), f.categories...)
}

// AsXMLElement converts the filter into an XML element tree: one <action>
// child per action followed by one <category> child per category.
func (f *IntentFilter) AsXMLElement(schema *entities.AndroidSchema) *entities.XMLElement {
	return f.cache.get(schema, f.buildElement)
}

func (f *IntentFilter) buildElement(schema *entities.AndroidSchema) *entities.XMLElement {
	nameAttr := schema.MustAttribute(entities.NameAttribute)
	b := entities.NewXMLElementBuilder(schema.MustElementName(entities.IntentFilterElement))
	for _, action := range f.actions {
		child := entities.NewXMLElementBuilder(schema.MustElementName(entities.ActionElement))
		child.GetOrCreateAndroidAttribute(nameAttr).SetValueAsString(action)
		b.AddChildElement(child)
	}
	for _, category := range f.categories {
		child := entities.NewXMLElementBuilder(schema.MustElementName(entities.CategoryElement))
		child.GetOrCreateAndroidAttribute(nameAttr).SetValueAsString(category)
		b.AddChildElement(child)
	}
	return b.Build()
}

// IntentFilterBuilder collects the children of an IntentFilter.
type IntentFilterBuilder struct {
	state      builderState
	actions    []string
	categories []string
}

// NewIntentFilterBuilder returns an empty builder.
func NewIntentFilterBuilder() *IntentFilterBuilder {
	return &IntentFilterBuilder{state: builderState{kind: "IntentFilter"}}
}

// AddAction appends an <action android:name=...> child.
func (b *IntentFilterBuilder) AddAction(name string) *IntentFilterBuilder {
	if b.state.mutable("AddAction") {
		b.actions = append(b.actions, name)
	}
	return b
}

// AddCategory appends a <category android:name=...> child.
func (b *IntentFilterBuilder) AddCategory(name string) *IntentFilterBuilder {
	if b.state.mutable("AddCategory") {
		b.categories = append(b.categories, name)
	}
	return b
}

// Build returns the IntentFilter. It fails only with *errors.BuilderContractError.
func (b *IntentFilterBuilder) Build() (*IntentFilter, error) {
	if b == nil {
		return nil, nilBuilderError("IntentFilter")
	}
	if err := b.state.seal(); err != nil {
		return nil, err
	}
	return &IntentFilter{
		actions:    append([]string(nil), b.actions...),
		categories: append([]string(nil), b.categories...),
	}, nil
}
