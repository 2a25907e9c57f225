// Copyright © 2026 The svgls authors

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogLookups(t *testing.T) {
	c := NewCatalog([]*ElementSchema{
		{Name: "svg", Attributes: []AttributeRef{Ref("id")}},
		{Name: "a", Attributes: []AttributeRef{
			Inline(&AttributeSchema{Name: "target", Enum: []EnumValue{{Name: "_blank"}}}),
			Ref("id"),
			Ref("missing"),
		}},
	}, map[string]*AttributeSchema{
		"id":     {Type: "<name>"},
		"target": {Type: "<global-target>"},
	})

	t.Run("elements", func(t *testing.T) {
		assert.Equal(t, 2, c.Len())
		e, ok := c.LookupElement("a")
		require.True(t, ok)
		assert.Equal(t, "a", e.Name)
		_, ok = c.LookupElement("b")
		assert.False(t, ok)
	})
	t.Run("global attribute name from key", func(t *testing.T) {
		a, ok := c.LookupAttribute("id")
		require.True(t, ok)
		assert.Equal(t, "id", a.Name)
	})
	t.Run("inline wins", func(t *testing.T) {
		a, ok := c.ResolveElementAttribute("a", "target")
		require.True(t, ok)
		assert.True(t, a.HasEnum())
		assert.Empty(t, a.Type)
	})
	t.Run("bare reference", func(t *testing.T) {
		a, ok := c.ResolveElementAttribute("a", "id")
		require.True(t, ok)
		assert.Equal(t, "<name>", a.Type)
	})
	t.Run("unresolved reference", func(t *testing.T) {
		_, ok := c.ResolveElementAttribute("a", "missing")
		assert.False(t, ok)
	})
	t.Run("not listed falls back to registry", func(t *testing.T) {
		a, ok := c.ResolveElementAttribute("svg", "target")
		require.True(t, ok)
		assert.Equal(t, "<global-target>", a.Type)
	})
	t.Run("unknown element falls back to registry", func(t *testing.T) {
		a, ok := c.ResolveElementAttribute("nope", "id")
		require.True(t, ok)
		assert.Equal(t, "<name>", a.Type)
	})
}

func TestCatalogDuplicateElement(t *testing.T) {
	c := NewCatalog([]*ElementSchema{
		{Name: "a", Documentation: "first"},
		{Name: "b"},
		{Name: "a", Documentation: "second"},
	}, nil)
	require.Equal(t, 2, c.Len())
	assert.Equal(t, "a", c.Elements()[0].Name)
	assert.Equal(t, "second", c.Elements()[0].Documentation)
}

func TestCatalogCopiesDefinitions(t *testing.T) {
	fill := &AttributeSchema{Enum: []EnumValue{{Name: "none"}}}
	inline := &AttributeSchema{Name: "units", Enum: []EnumValue{{Name: "a"}}}
	g := &ElementSchema{
		Name:        "g",
		SubElements: []string{"g"},
		Attributes:  []AttributeRef{Ref("fill"), Inline(inline)},
	}
	c := NewCatalog([]*ElementSchema{g}, map[string]*AttributeSchema{"fill": fill})

	assert.Empty(t, fill.Name, "caller's attribute is not renamed")
	got, ok := c.LookupAttribute("fill")
	require.True(t, ok)
	assert.Equal(t, "fill", got.Name)

	fill.Enum[0].Name = "changed"
	g.Documentation = "changed"
	g.SubElements[0] = "changed"
	inline.Enum = nil
	c.Elements()[0] = nil

	got, _ = c.LookupAttribute("fill")
	assert.Equal(t, "none", got.Enum[0].Name)
	e, ok := c.LookupElement("g")
	require.True(t, ok)
	assert.Empty(t, e.Documentation)
	assert.Equal(t, []string{"g"}, e.SubElements)
	units, ok := c.ResolveElementAttribute("g", "units")
	require.True(t, ok)
	assert.Len(t, units.Enum, 1)
	assert.NotNil(t, c.Elements()[0])
}

func TestRestrictsChildren(t *testing.T) {
	assert.False(t, (&ElementSchema{}).RestrictsChildren())
	assert.True(t, (&ElementSchema{SubElements: []string{}}).RestrictsChildren())
	assert.True(t, (&ElementSchema{SubElements: []string{"a"}}).RestrictsChildren())
	var e *ElementSchema
	assert.False(t, e.RestrictsChildren())
}

func TestEnumPlaceholder(t *testing.T) {
	assert.True(t, EnumValue{Name: "<color>"}.IsPlaceholder())
	assert.True(t, EnumValue{Name: "<align> meet"}.IsPlaceholder())
	assert.False(t, EnumValue{Name: "none"}.IsPlaceholder())
}

func TestUndeclaredChildren(t *testing.T) {
	c := NewCatalog([]*ElementSchema{
		{Name: "svg", SubElements: []string{"g", "blink"}},
		{Name: "g", SubElements: []string{}},
		{Name: "text", SubElements: []string{"tspan"}},
	}, nil)
	assert.Equal(t, []string{"svg/blink", "text/tspan"}, c.UndeclaredChildren())
	assert.Empty(t, Default().UndeclaredChildren())
}
