// Copyright © 2026 The svgls authors

package schema

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJSON = `{
  "elements": {
    "svg": {"documentation": "Root.", "attributes": ["id", {"name": "version", "enum": ["1.1", {"name": "2", "documentation": "Two."}]}]},
    "zeta": {"simple": true},
    "alpha": {"inline": true, "subElements": []},
    "g": {"deprecated": true, "subElements": ["zeta", "alpha"]}
  },
  "attributes": {
    "id": {"type": "<name>", "documentation": "Identifier."}
  }
}`

const testYAML = `
elements:
  svg:
    documentation: Root.
    attributes:
      - id
      - name: version
        enum:
          - "1.1"
          - name: "2"
            documentation: Two.
  zeta:
    simple: true
  alpha:
    inline: true
    subElements: []
  g:
    deprecated: true
    subElements: [zeta, alpha]
attributes:
  id:
    type: <name>
    documentation: Identifier.
`

func elementNames(c *Catalog) []string {
	var names []string
	for _, e := range c.Elements() {
		names = append(names, e.Name)
	}
	return names
}

func TestLoad(t *testing.T) {
	for _, tc := range []struct {
		format Format
		src    string
	}{
		{FormatJSON, testJSON},
		{FormatYAML, testYAML},
	} {
		t.Run(tc.format.String(), func(t *testing.T) {
			c, err := Load(strings.NewReader(tc.src), tc.format)
			require.NoError(t, err)

			assert.Equal(t, []string{"svg", "zeta", "alpha", "g"}, elementNames(c), "document order")

			svg, _ := c.LookupElement("svg")
			assert.Equal(t, "Root.", svg.Documentation)
			assert.False(t, svg.RestrictsChildren())
			require.Len(t, svg.Attributes, 2)
			assert.Equal(t, "id", svg.Attributes[0].Name())
			_, inline := svg.Attributes[0].Schema()
			assert.False(t, inline)

			version, ok := svg.Attributes[1].Schema()
			require.True(t, ok)
			assert.Equal(t, []EnumValue{{Name: "1.1"}, {Name: "2", Documentation: "Two."}}, version.Enum)

			zeta, _ := c.LookupElement("zeta")
			assert.True(t, zeta.Simple)
			alpha, _ := c.LookupElement("alpha")
			assert.True(t, alpha.Inline)
			assert.True(t, alpha.RestrictsChildren())
			assert.Empty(t, alpha.SubElements)
			g, _ := c.LookupElement("g")
			assert.True(t, g.Deprecated)
			assert.Equal(t, []string{"zeta", "alpha"}, g.SubElements)

			id, ok := c.ResolveElementAttribute("svg", "id")
			require.True(t, ok)
			assert.Equal(t, "id", id.Name)
			assert.Equal(t, "<name>", id.Type)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(strings.NewReader(`{"elements": []}`), FormatJSON)
	assert.Error(t, err)
	_, err = Load(strings.NewReader(`{"attributes": {}}`), FormatJSON)
	assert.Error(t, err)
	_, err = Load(strings.NewReader("elements: [a]"), FormatYAML)
	assert.Error(t, err)
	_, err = Load(strings.NewReader(`{"elements": {"a": {"attributes": [1]}}}`), FormatJSON)
	assert.Error(t, err)
	_, err = Load(strings.NewReader("{}"), Format(9))
	assert.Error(t, err)
	_, err = Load(strings.NewReader(`{"elements": {"": {}}}`), FormatJSON)
	assert.EqualError(t, err, "schema declares an element with an empty name")
}

func TestLoadErrorPosition(t *testing.T) {
	t.Run("json syntax", func(t *testing.T) {
		src := "{\n  \"elements\": {\n    \"a\": {,}\n  }\n}"
		_, err := Load(strings.NewReader(src), FormatJSON)
		var le *LoadError
		require.True(t, errors.As(err, &le))
		assert.Equal(t, 3, le.Line)
		assert.Equal(t, 11, le.Col)
		var syn *json.SyntaxError
		assert.True(t, errors.As(err, &syn))
	})
	t.Run("yaml type", func(t *testing.T) {
		src := "elements:\n  a:\n    simple: maybe\n"
		_, err := Load(strings.NewReader(src), FormatYAML)
		var le *LoadError
		require.True(t, errors.As(err, &le))
		assert.Equal(t, 3, le.Line)
		assert.Equal(t, 1, le.Col)
	})
	t.Run("no position", func(t *testing.T) {
		_, err := Load(strings.NewReader(`{"elements": {"a": {"simple": "yes"}}}`), FormatJSON)
		var le *LoadError
		require.True(t, errors.As(err, &le))
		assert.Zero(t, le.Line)
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grammar.yml")
	require.NoError(t, os.WriteFile(path, []byte(testYAML), 0o600))
	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
	_, err = LoadFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad+":1:1:")
	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, bad, le.Path)

	_, err = LoadFile(filepath.Join(dir, "grammar.xsd"))
	assert.Error(t, err)
	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestAttributeRefMarshal(t *testing.T) {
	b, err := json.Marshal([]AttributeRef{Ref("id"), Inline(&AttributeSchema{Name: "x", Type: "<length>"})})
	require.NoError(t, err)
	assert.JSONEq(t, `["id", {"name": "x", "type": "<length>"}]`, string(b))
}

func TestDefault(t *testing.T) {
	c := Default()
	require.NotNil(t, c)
	assert.Same(t, c, Default())
	assert.Equal(t, "svg", c.Elements()[0].Name)

	for _, e := range c.Elements() {
		for _, ref := range e.Attributes {
			if _, inline := ref.Schema(); inline {
				continue
			}
			_, ok := c.LookupAttribute(ref.Name())
			assert.True(t, ok, "%s references undefined attribute %s", e.Name, ref.Name())
		}
		for _, child := range e.SubElements {
			_, ok := c.LookupElement(child)
			assert.True(t, ok, "%s allows undefined child %s", e.Name, child)
		}
	}
}
