package manifest

import "github.com/bundlekit/sdklayout/domain/entities"

// Receiver represents the <receiver> element of an Android manifest.
// Every field is optional. A Receiver must not be copied once it is in use.
type Receiver struct {
	intentFilter *IntentFilter
	cache        elementCache
	name         string
	hasName      bool
	exported     bool
	hasExported  bool
}

// Name returns the android:name value and whether it was set.
func (r *Receiver) Name() (string, bool) {
	return r.name, r.hasName
}

// Exported returns the android:exported value and whether it was set.
func (r *Receiver) Exported() (bool, bool) {
	return r.exported, r.hasExported
}

// IntentFilter returns the nested intent filter and whether it was set.
func (r *Receiver) IntentFilter() (*IntentFilter, bool) {
	return r.intentFilter, r.intentFilter != nil
}

// AsXMLElement converts the receiver into a generic XML element tree. The tree
// is computed on first call and the same value is returned afterwards. A nil
// schema selects a freshly built default table.
func (r *Receiver) AsXMLElement(schema *entities.AndroidSchema) *entities.XMLElement {
	return r.cache.get(schema, r.buildElement)
}

func (r *Receiver) buildElement(schema *entities.AndroidSchema) *entities.XMLElement {
	b := entities.NewXMLElementBuilder(schema.MustElementName(entities.ReceiverElement))
	if r.hasName {
		b.GetOrCreateAndroidAttribute(schema.MustAttribute(entities.NameAttribute)).
			SetValueAsString(r.name)
	}
	if r.hasExported {
		b.GetOrCreateAndroidAttribute(schema.MustAttribute(entities.ExportedAttribute)).
			SetValueAsBoolean(r.exported)
	}
	if r.intentFilter != nil {
		b.AddChildElement(r.intentFilter.AsXMLElement(schema).ToBuilder())
	}
	return b.Build()
}

// ToBuilder returns a new builder seeded with r's fields.
func (r *Receiver) ToBuilder() *ReceiverBuilder {
	return &ReceiverBuilder{
		state:        builderState{kind: "Receiver"},
		name:         r.name,
		hasName:      r.hasName,
		exported:     r.exported,
		hasExported:  r.hasExported,
		intentFilter: r.intentFilter,
	}
}

// ReceiverBuilder collects the optional fields of a Receiver. A builder is
// sealed by Build; setters called afterwards are a contract violation that
// the next Build reports.
type ReceiverBuilder struct {
	intentFilter *IntentFilter
	state        builderState
	name         string
	hasName      bool
	exported     bool
	hasExported  bool
}

// NewReceiverBuilder returns a builder with no fields set.
func NewReceiverBuilder() *ReceiverBuilder {
	return &ReceiverBuilder{state: builderState{kind: "Receiver"}}
}

// SetName sets android:name.
func (b *ReceiverBuilder) SetName(name string) *ReceiverBuilder {
	if b.state.mutable("SetName") {
		b.name, b.hasName = name, true
	}
	return b
}

// SetExported sets android:exported. SetExported(false) is distinct from never
// calling SetExported.
func (b *ReceiverBuilder) SetExported(exported bool) *ReceiverBuilder {
	if b.state.mutable("SetExported") {
		b.exported, b.hasExported = exported, true
	}
	return b
}

// SetIntentFilter sets the nested <intent-filter>. A nil filter clears it.
func (b *ReceiverBuilder) SetIntentFilter(filter *IntentFilter) *ReceiverBuilder {
	if b.state.mutable("SetIntentFilter") {
		b.intentFilter = filter
	}
	return b
}

// Build returns the Receiver. It fails only with *errors.BuilderContractError.
func (b *ReceiverBuilder) Build() (*Receiver, error) {
	if b == nil {
		return nil, nilBuilderError("Receiver")
	}
	if err := b.state.seal(); err != nil {
		return nil, err
	}
	return &Receiver{
		name:         b.name,
		hasName:      b.hasName,
		exported:     b.exported,
		hasExported:  b.hasExported,
		intentFilter: b.intentFilter,
	}, nil
}
