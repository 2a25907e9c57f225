// Copyright © 2026 The svgls authors

package complete

import (
	"strings"

	"github.com/luthersystems/svgls/markup"
	"github.com/luthersystems/svgls/schema"
)

const (
	rootElement = "svg"
	// rootSkeleton follows a '<' the author has already typed.
	rootSkeleton = "svg xmlns=\"http://www.w3.org/2000/svg\">\n\t\n</svg"

	deprecatedDetail = "DEPRECATED"
	deprecatedSuffix = "\n\n**DEPRECATED**"
)

// Generator builds candidates from a schema catalog.
type Generator struct {
	catalog *schema.Catalog
}

// NewGenerator returns a generator drawing from catalog.
func NewGenerator(catalog *schema.Catalog) *Generator {
	return &Generator{catalog: catalog}
}

// TagCompletions proposes element names after a '<' typed at pos. In an
// empty document only the root element is offered, as a skeleton with the
// namespace and end tag. Otherwise the children allowed in ancestor are
// offered, or the whole catalog when ancestor is empty, unknown or does
// not restrict its children.
func (g *Generator) TagCompletions(ancestor string, documentIsEmpty bool, pos markup.Position) []Candidate {
	if documentIsEmpty {
		root, _ := g.catalog.LookupElement(rootElement)
		c := elementCandidate(rootElement, root)
		c.InsertText = ""
		c.Edit = &TextEdit{
			Range:   markup.Range{Start: pos, End: pos},
			NewText: rootSkeleton,
		}
		return []Candidate{c}
	}

	if parent, ok := g.catalog.LookupElement(ancestor); ok && parent.RestrictsChildren() {
		items := make([]Candidate, 0, len(parent.SubElements))
		for _, name := range parent.SubElements {
			e, _ := g.catalog.LookupElement(name)
			items = append(items, elementCandidate(name, e))
		}
		return items
	}

	items := make([]Candidate, 0, g.catalog.Len())
	for _, e := range g.catalog.Elements() {
		items = append(items, elementCandidate(e.Name, e))
	}
	return items
}

// elementCandidate builds the candidate for one element. e may be nil for
// a name the catalog does not define.
func elementCandidate(name string, e *schema.ElementSchema) Candidate {
	c := Candidate{Label: name, Kind: KindElement}
	if e != nil {
		c.Detail, c.Documentation = describe(e.Documentation, e.Deprecated)
	}
	switch {
	case e != nil && e.Simple:
		c.InsertText = name + " /"
		c.Command = CursorCommand{Kind: CursorMoveLeft, Offset: 1}
	case e != nil && e.Inline:
		c.InsertText = name + "></" + name + ">"
		c.Command = CursorCommand{Kind: CursorMoveLeft, Offset: len(name) + 3}
	default:
		// The trailing '>' comes from the one already after the cursor.
		c.InsertText = name + ">\n\t\n</" + name
		c.Command = CursorCommand{Kind: CursorMoveUp, Offset: 1}
	}
	return c
}

// AttributeCompletions proposes the attributes of tag that do not already
// appear in attrs, the raw text typed so far inside the start tag.
func (g *Generator) AttributeCompletions(tag, attrs string) []Candidate {
	e, ok := g.catalog.LookupElement(tag)
	if !ok {
		return nil
	}
	var items []Candidate
	for _, ref := range e.Attributes {
		name := ref.Name()
		// The leading space keeps "x" from matching inside " dx=".
		if strings.Contains(attrs, " "+name+"=") {
			continue
		}
		attr, _ := g.catalog.ResolveElementAttribute(tag, name)
		items = append(items, attributeCandidate(name, attr))
	}
	return items
}

func attributeCandidate(name string, attr *schema.AttributeSchema) Candidate {
	c := Candidate{
		Label:      name,
		Kind:       KindAttribute,
		InsertText: name + `=""`,
		Command:    CursorCommand{Kind: CursorMoveLeft, Offset: 1},
	}
	if attr == nil {
		return c
	}
	c.Detail, c.Documentation = describe(attr.Documentation, attr.Deprecated)
	if attr.Type != "" {
		c.Detail = attr.Type
	}
	c.Command.HasEnumFollowUp = attr.HasEnum()
	return c
}

// EnumCompletions proposes the literal values of attr in declared order.
// Placeholders such as "<color>" are skipped.
func (g *Generator) EnumCompletions(attr *schema.AttributeSchema) []Candidate {
	if attr == nil {
		return nil
	}
	var items []Candidate
	for _, v := range attr.Enum {
		if v.Name == "" || v.IsPlaceholder() {
			continue
		}
		items = append(items, Candidate{
			Label:         v.Name,
			Kind:          KindValue,
			Documentation: v.Documentation,
			InsertText:    v.Name,
			Command:       CursorCommand{Kind: CursorMoveRightPastAttribute, Offset: 1},
		})
	}
	return items
}

// describe returns the detail and documentation for a schema entry.
func describe(doc string, deprecated bool) (detail, documentation string) {
	if !deprecated {
		return "", doc
	}
	if doc != "" {
		doc += deprecatedSuffix
	}
	return deprecatedDetail, doc
}
