package manifest

import (
	"fmt"
	"sync/atomic"

	"github.com/bundlekit/sdklayout/domain/entities"
	"github.com/bundlekit/sdklayout/domain/errors"
)

// builderState tracks the sealed/violated state shared by element builders.
type builderState struct {
	kind      string
	violation string
	sealed    bool
}

// mutable reports whether a setter may apply its change, recording a
// violation when the builder has already produced its value.
func (s *builderState) mutable(setter string) bool {
	if !s.sealed {
		return true
	}
	if s.violation == "" {
		s.violation = fmt.Sprintf("%s called after Build", setter)
	}
	return false
}

func (s *builderState) seal() error {
	if s.violation != "" {
		return &errors.BuilderContractError{Builder: s.kind, Reason: s.violation}
	}
	s.sealed = true
	return nil
}

func nilBuilderError(kind string) error {
	return &errors.BuilderContractError{Builder: kind, Reason: "Build called on nil builder"}
}

// elementCache memoizes an element's XML tree. The first stored tree wins, so
// concurrent first reads may each compute a tree but all observe the same one.
type elementCache struct {
	p atomic.Pointer[cachedElement]
}

type cachedElement struct {
	schema  *entities.AndroidSchema
	element *entities.XMLElement
}

func (c *elementCache) get(schema *entities.AndroidSchema, build func(*entities.AndroidSchema) *entities.XMLElement) *entities.XMLElement {
	if cached := c.p.Load(); cached != nil && cached.schema == schema {
		return cached.element
	}
	resolved := schema
	if resolved == nil {
		resolved = entities.NewAndroidSchema()
	}
	element := build(resolved)
	if c.p.CompareAndSwap(nil, &cachedElement{schema: schema, element: element}) {
		return element
	}
	if cached := c.p.Load(); cached.schema == schema {
		return cached.element
	}
	// A different schema owns the cache slot.
	return element
}
