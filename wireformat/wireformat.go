// Package wireformat defines the JSON structures layout results are handed to
// downstream tools in. These types must remain stable and backward compatible.
package wireformat

import (
	"github.com/bundlekit/sdklayout/domain/entities"
)

// ErrorDetail is re-exported from entities for wire consumers.
type ErrorDetail = entities.ErrorDetail

// XMLAttributeWire is the JSON form of one element attribute.
type XMLAttributeWire struct {
	NamespaceURI string `json:"namespace_uri,omitempty"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Value        string `json:"value"`
	ResourceID   uint32 `json:"resource_id,omitempty"`
}

// XMLElementWire is the JSON form of an element tree.
type XMLElementWire struct {
	NamespaceURI string             `json:"namespace_uri,omitempty"`
	Name         string             `json:"name"`
	Attributes   []XMLAttributeWire `json:"attributes,omitempty"`
	Children     []XMLElementWire   `json:"children,omitempty"`
}

// FromXMLElement converts an element tree into its wire form.
func FromXMLElement(e *entities.XMLElement) XMLElementWire {
	w := XMLElementWire{Name: e.Name(), NamespaceURI: e.NamespaceURI()}
	for _, a := range e.Attributes() {
		w.Attributes = append(w.Attributes, XMLAttributeWire{
			NamespaceURI: a.NamespaceURI,
			Name:         a.Name,
			Type:         string(a.Value.Kind),
			Value:        a.Value.String(),
			ResourceID:   a.ResourceID,
		})
	}
	for _, c := range e.Children() {
		w.Children = append(w.Children, FromXMLElement(c))
	}
	return w
}

// EntryMoveWire records one entry that changed location.
type EntryMoveWire struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// RelocationPlanWire summarizes what a mutation did to one module.
type RelocationPlanWire struct {
	Error     *ErrorDetail    `json:"error,omitempty"`
	Module    string          `json:"module"`
	Mutation  string          `json:"mutation"`
	Moves     []EntryMoveWire `json:"moves,omitempty"`
	Unchanged []string        `json:"unchanged,omitempty"`
	Dropped   []string        `json:"dropped,omitempty"`
}

// NewRelocationPlan compares a module before and after a mutation. Paths that
// disappeared are paired in order with paths that appeared, which is exact for
// mutations that keep the relative order of the entries they move.
func NewRelocationPlan(mutation string, before, after *entities.BundleModule) RelocationPlanWire {
	plan := RelocationPlanWire{Module: before.Name, Mutation: mutation}

	afterPaths := make(map[string]struct{}, len(after.Entries))
	for _, e := range after.Entries {
		afterPaths[e.Path.String()] = struct{}{}
	}
	beforePaths := make(map[string]struct{}, len(before.Entries))
	for _, e := range before.Entries {
		beforePaths[e.Path.String()] = struct{}{}
	}

	var gone, added []string
	for _, e := range before.Entries {
		p := e.Path.String()
		if _, ok := afterPaths[p]; ok {
			plan.Unchanged = append(plan.Unchanged, p)
		} else {
			gone = append(gone, p)
		}
	}
	for _, e := range after.Entries {
		p := e.Path.String()
		if _, ok := beforePaths[p]; !ok {
			added = append(added, p)
		}
	}

	for i, from := range gone {
		if i < len(added) {
			plan.Moves = append(plan.Moves, EntryMoveWire{From: from, To: added[i]})
		} else {
			plan.Dropped = append(plan.Dropped, from)
		}
	}
	return plan
}

// FailedRelocationPlan reports a mutation that could not be applied.
func FailedRelocationPlan(mutation, module string, detail *ErrorDetail) RelocationPlanWire {
	return RelocationPlanWire{Module: module, Mutation: mutation, Error: detail}
}
