// Copyright © 2026 The svgls authors

package complete

import (
	"testing"

	"github.com/luthersystems/svgls/markup"
	"github.com/luthersystems/svgls/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCatalog is a small grammar exercising every kind of entry.
func testCatalog() *schema.Catalog {
	return schema.NewCatalog([]*schema.ElementSchema{
		{
			Name:          "svg",
			Documentation: "Root element.",
			Attributes:    []schema.AttributeRef{schema.Ref("width"), schema.Ref("class")},
		},
		{
			Name:          "g",
			Documentation: "Group.",
			SubElements:   []string{"rect", "circle"},
		},
		{
			Name:          "rect",
			Documentation: "Rectangle.",
			Simple:        true,
			Attributes: []schema.AttributeRef{
				schema.Ref("x"),
				schema.Ref("class"),
				schema.Ref("classid"),
				schema.Inline(&schema.AttributeSchema{
					Name:          "fill",
					Type:          "<paint>",
					Documentation: "Paint.",
					Enum:          []schema.EnumValue{{Name: "none"}, {Name: "<color>"}},
				}),
				schema.Ref("old"),
				schema.Ref("version"),
				schema.Ref("nosuch"),
			},
		},
		{Name: "circle", Simple: true},
		{Name: "title", Documentation: "Title.", Inline: true},
		{Name: "font", Documentation: "Font.", Deprecated: true},
		{Name: "tref", Deprecated: true},
		{Name: "empty", SubElements: []string{}},
		{Name: "odd", SubElements: []string{"circle", "unknown"}},
	}, map[string]*schema.AttributeSchema{
		"x":       {Type: "<coordinate>", Documentation: "X."},
		"class":   {Documentation: "Classes."},
		"classid": {Documentation: "Class id."},
		"width":   {Type: "<length>"},
		"old":     {Type: "<number>", Documentation: "Old.", Deprecated: true},
		"version": {Documentation: "Version.", Deprecated: true, Enum: []schema.EnumValue{{Name: "1.0"}, {Name: "1.1"}}},
		"mode": {Enum: []schema.EnumValue{
			{Name: "foo"},
			{Name: "<url>"},
			{Name: "bar", Documentation: "Bar."},
		}},
	})
}

func labels(items []Candidate) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Label
	}
	return out
}

func find(t *testing.T, items []Candidate, label string) Candidate {
	t.Helper()
	for _, item := range items {
		if item.Label == label {
			return item
		}
	}
	require.Failf(t, "candidate not found", "no candidate %q in %v", label, labels(items))
	return Candidate{}
}

func TestTagCompletionsEmptyDocument(t *testing.T) {
	g := NewGenerator(testCatalog())
	pos := markup.Position{Line: 0, Character: 1}
	items := g.TagCompletions("", true, pos)
	require.Len(t, items, 1)

	root := items[0]
	assert.Equal(t, "svg", root.Label)
	assert.Equal(t, KindElement, root.Kind)
	assert.Equal(t, "Root element.", root.Documentation)
	require.NotNil(t, root.Edit)
	assert.Equal(t, markup.Range{Start: pos, End: pos}, root.Edit.Range)
	assert.Equal(t, "svg xmlns=\"http://www.w3.org/2000/svg\">\n\t\n</svg", root.Edit.NewText)
	assert.Equal(t, root.Edit.NewText, root.Text())
	assert.Equal(t, CursorCommand{Kind: CursorMoveUp, Offset: 1}, root.Command)
}

func TestTagCompletionsNesting(t *testing.T) {
	g := NewGenerator(testCatalog())
	all := []string{"svg", "g", "rect", "circle", "title", "font", "tref", "empty", "odd"}

	t.Run("restricted", func(t *testing.T) {
		assert.Equal(t, []string{"rect", "circle"}, labels(g.TagCompletions("g", false, markup.Position{})))
	})
	t.Run("unrestricted", func(t *testing.T) {
		assert.Equal(t, all, labels(g.TagCompletions("svg", false, markup.Position{})))
	})
	t.Run("document root", func(t *testing.T) {
		assert.Equal(t, all, labels(g.TagCompletions("", false, markup.Position{})))
	})
	t.Run("unknown ancestor", func(t *testing.T) {
		assert.Equal(t, all, labels(g.TagCompletions("foreign", false, markup.Position{})))
	})
	t.Run("no children allowed", func(t *testing.T) {
		assert.Empty(t, g.TagCompletions("empty", false, markup.Position{}))
	})
	t.Run("unknown child", func(t *testing.T) {
		items := g.TagCompletions("odd", false, markup.Position{})
		assert.Equal(t, []string{"circle", "unknown"}, labels(items))
		assert.Equal(t, "unknown>\n\t\n</unknown", items[1].InsertText)
		assert.Empty(t, items[1].Documentation)
	})
}

func TestTagCompletionsTemplates(t *testing.T) {
	items := NewGenerator(testCatalog()).TagCompletions("svg", false, markup.Position{})

	rect := find(t, items, "rect")
	assert.Equal(t, "rect /", rect.InsertText)
	assert.Nil(t, rect.Edit)
	assert.Equal(t, CursorCommand{Kind: CursorMoveLeft, Offset: 1}, rect.Command)

	title := find(t, items, "title")
	assert.Equal(t, "title></title>", title.InsertText)
	assert.Equal(t, CursorCommand{Kind: CursorMoveLeft, Offset: len("title") + 3}, title.Command)

	g := find(t, items, "g")
	assert.Equal(t, "g>\n\t\n</g", g.InsertText)
	assert.Equal(t, CursorCommand{Kind: CursorMoveUp, Offset: 1}, g.Command)
}

func TestTagCompletionsDeprecated(t *testing.T) {
	items := NewGenerator(testCatalog()).TagCompletions("svg", false, markup.Position{})

	font := find(t, items, "font")
	assert.Equal(t, "DEPRECATED", font.Detail)
	assert.Equal(t, "Font.\n\n**DEPRECATED**", font.Documentation)

	tref := find(t, items, "tref")
	assert.Equal(t, "DEPRECATED", tref.Detail)
	assert.Empty(t, tref.Documentation)

	rect := find(t, items, "rect")
	assert.Empty(t, rect.Detail)
	assert.Equal(t, "Rectangle.", rect.Documentation)
}

func TestAttributeCompletions(t *testing.T) {
	g := NewGenerator(testCatalog())

	t.Run("all", func(t *testing.T) {
		items := g.AttributeCompletions("rect", " ")
		assert.Equal(t, []string{"x", "class", "classid", "fill", "old", "version", "nosuch"}, labels(items))
	})
	t.Run("already declared", func(t *testing.T) {
		items := g.AttributeCompletions("rect", ` class="x" `)
		assert.Equal(t, []string{"x", "classid", "fill", "old", "version", "nosuch"}, labels(items))
	})
	t.Run("longer name declared", func(t *testing.T) {
		items := g.AttributeCompletions("rect", ` classid="x" `)
		assert.Contains(t, labels(items), "class")
		assert.NotContains(t, labels(items), "classid")
	})
	t.Run("unknown tag", func(t *testing.T) {
		assert.Nil(t, g.AttributeCompletions("nope", " "))
	})
	t.Run("fields", func(t *testing.T) {
		items := g.AttributeCompletions("rect", " ")

		x := find(t, items, "x")
		assert.Equal(t, KindAttribute, x.Kind)
		assert.Equal(t, "<coordinate>", x.Detail)
		assert.Equal(t, "X.", x.Documentation)
		assert.Equal(t, `x=""`, x.InsertText)
		assert.Equal(t, CursorCommand{Kind: CursorMoveLeft, Offset: 1}, x.Command)

		fill := find(t, items, "fill")
		assert.Equal(t, "<paint>", fill.Detail)
		assert.True(t, fill.Command.HasEnumFollowUp)

		old := find(t, items, "old")
		assert.Equal(t, "<number>", old.Detail, "type wins over deprecation in detail")
		assert.Equal(t, "Old.\n\n**DEPRECATED**", old.Documentation)

		version := find(t, items, "version")
		assert.Equal(t, "DEPRECATED", version.Detail)
		assert.Equal(t, "Version.\n\n**DEPRECATED**", version.Documentation)
		assert.True(t, version.Command.HasEnumFollowUp)

		nosuch := find(t, items, "nosuch")
		assert.Empty(t, nosuch.Detail)
		assert.Empty(t, nosuch.Documentation)
		assert.False(t, nosuch.Command.HasEnumFollowUp)
		assert.Equal(t, `nosuch=""`, nosuch.InsertText)
	})
}

func TestEnumCompletions(t *testing.T) {
	c := testCatalog()
	g := NewGenerator(c)

	mode, ok := c.LookupAttribute("mode")
	require.True(t, ok)
	items := g.EnumCompletions(mode)
	assert.Equal(t, []string{"foo", "bar"}, labels(items))
	for _, item := range items {
		assert.Equal(t, KindValue, item.Kind)
		assert.Equal(t, item.Label, item.InsertText)
		assert.Equal(t, CursorCommand{Kind: CursorMoveRightPastAttribute, Offset: 1}, item.Command)
	}
	assert.Empty(t, items[0].Documentation)
	assert.Equal(t, "Bar.", items[1].Documentation)

	x, _ := c.LookupAttribute("x")
	assert.Empty(t, g.EnumCompletions(x))
	assert.Nil(t, g.EnumCompletions(nil))
}
