// Copyright © 2026 The svgls authors

// Package schema describes the SVG grammar used for completion: the
// elements, the attributes they accept, attribute value enumerations and
// the legal parent/child nesting. A Catalog is built once and never
// mutated afterwards, so it may be shared freely between goroutines.
package schema

import (
	"slices"
	"strings"
)

// EnumValue is one permitted value of an enumerated attribute. In a schema
// document it is either a bare string or an object with a name and
// documentation.
type EnumValue struct {
	Name          string `json:"name" yaml:"name"`
	Documentation string `json:"documentation,omitempty" yaml:"documentation,omitempty"`
}

// IsPlaceholder reports whether the value stands for a type reference or
// pattern such as "<length>" rather than a literal that can be inserted.
func (v EnumValue) IsPlaceholder() bool {
	return strings.HasPrefix(v.Name, "<")
}

// AttributeSchema describes a single attribute.
type AttributeSchema struct {
	Name          string      `json:"name" yaml:"name"`
	Documentation string      `json:"documentation,omitempty" yaml:"documentation,omitempty"`
	Deprecated    bool        `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Type          string      `json:"type,omitempty" yaml:"type,omitempty"`
	Enum          []EnumValue `json:"enum,omitempty" yaml:"enum,omitempty"`
}

// HasEnum reports whether the attribute declares enumerated values.
func (a *AttributeSchema) HasEnum() bool {
	return a != nil && len(a.Enum) > 0
}

// AttributeRef is an entry of an element's attribute list. It either names
// an attribute defined in the global registry or carries an inline
// definition.
type AttributeRef struct {
	name   string
	inline *AttributeSchema
}

// Ref returns a reference to the global attribute called name.
func Ref(name string) AttributeRef {
	return AttributeRef{name: name}
}

// Inline returns an entry carrying its own attribute definition.
func Inline(attr *AttributeSchema) AttributeRef {
	return AttributeRef{name: attr.Name, inline: attr}
}

// Name returns the attribute name the entry refers to or defines.
func (r AttributeRef) Name() string {
	return r.name
}

// Schema returns the inline definition, if the entry has one.
func (r AttributeRef) Schema() (*AttributeSchema, bool) {
	return r.inline, r.inline != nil
}

// ElementSchema describes one element of the grammar.
type ElementSchema struct {
	Name          string         `json:"-" yaml:"-"`
	Documentation string         `json:"documentation,omitempty" yaml:"documentation,omitempty"`
	Deprecated    bool           `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Simple        bool           `json:"simple,omitempty" yaml:"simple,omitempty"`
	Inline        bool           `json:"inline,omitempty" yaml:"inline,omitempty"`
	SubElements   []string       `json:"subElements,omitempty" yaml:"subElements,omitempty"`
	Attributes    []AttributeRef `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// RestrictsChildren reports whether the element declares which elements
// may be nested directly inside it. A nil SubElements list means any
// element is allowed; an empty non-nil list allows none.
func (e *ElementSchema) RestrictsChildren() bool {
	return e != nil && e.SubElements != nil
}

// Catalog is an immutable, ordered view of a grammar.
type Catalog struct {
	elements   []*ElementSchema
	byName     map[string]*ElementSchema
	attributes map[string]*AttributeSchema
}

// NewCatalog builds a catalog from elements in catalog order and a
// registry of global attributes. A later element with an already seen
// name replaces the earlier definition but keeps its position. The
// catalog keeps its own copies of the definitions.
func NewCatalog(elements []*ElementSchema, attributes map[string]*AttributeSchema) *Catalog {
	c := &Catalog{
		byName:     make(map[string]*ElementSchema, len(elements)),
		attributes: make(map[string]*AttributeSchema, len(attributes)),
	}
	for _, e := range elements {
		if e == nil {
			continue
		}
		e = e.clone()
		if _, ok := c.byName[e.Name]; ok {
			for i, prev := range c.elements {
				if prev.Name == e.Name {
					c.elements[i] = e
				}
			}
		} else {
			c.elements = append(c.elements, e)
		}
		c.byName[e.Name] = e
	}
	for name, attr := range attributes {
		if attr == nil {
			continue
		}
		attr = attr.clone()
		if attr.Name == "" {
			attr.Name = name
		}
		c.attributes[name] = attr
	}
	return c
}

// Len returns the number of elements in the catalog.
func (c *Catalog) Len() int {
	return len(c.elements)
}

// Elements returns the elements in catalog order. The elements themselves
// are shared and must not be modified.
func (c *Catalog) Elements() []*ElementSchema {
	return slices.Clone(c.elements)
}

// LookupElement returns the element called name.
func (c *Catalog) LookupElement(name string) (*ElementSchema, bool) {
	e, ok := c.byName[name]
	return e, ok
}

// LookupAttribute returns the global attribute called name.
func (c *Catalog) LookupAttribute(name string) (*AttributeSchema, bool) {
	a, ok := c.attributes[name]
	return a, ok
}

// ResolveElementAttribute finds the definition of attrName as used on
// elementName. The element's own attribute list is consulted first: an
// inline definition wins, otherwise the entry is treated as a reference
// into the global registry. Attributes the element does not list at all
// are looked up in the global registry directly.
func (c *Catalog) ResolveElementAttribute(elementName, attrName string) (*AttributeSchema, bool) {
	if e, ok := c.byName[elementName]; ok {
		for _, ref := range e.Attributes {
			if ref.Name() != attrName {
				continue
			}
			if attr, ok := ref.Schema(); ok {
				return attr, true
			}
			return c.LookupAttribute(attrName)
		}
	}
	return c.LookupAttribute(attrName)
}

// UndeclaredChildren returns the sub-element names that no element in the
// catalog declares, as "parent/child" pairs in catalog order.
func (c *Catalog) UndeclaredChildren() []string {
	var missing []string
	for _, e := range c.elements {
		for _, child := range e.SubElements {
			if _, ok := c.byName[child]; !ok {
				missing = append(missing, e.Name+"/"+child)
			}
		}
	}
	return missing
}

func (e *ElementSchema) clone() *ElementSchema {
	cp := *e
	cp.SubElements = slices.Clone(e.SubElements)
	cp.Attributes = slices.Clone(e.Attributes)
	for i, ref := range cp.Attributes {
		if ref.inline != nil {
			ref = Inline(ref.inline.clone())
		}
		cp.Attributes[i] = ref
	}
	return &cp
}

func (a *AttributeSchema) clone() *AttributeSchema {
	cp := *a
	cp.Enum = slices.Clone(a.Enum)
	return &cp
}
