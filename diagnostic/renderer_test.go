// Copyright © 2026 The svgls authors

package diagnostic

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRenderer(sources map[string]string) *Renderer {
	return &Renderer{
		Color: ColorNever,
		SourceReader: func(name string) ([]byte, error) {
			s, ok := sources[name]
			if !ok {
				return nil, errors.New("not found: " + name)
			}
			return []byte(s), nil
		},
	}
}

func render(t *testing.T, r *Renderer, d Diagnostic) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, d))
	return buf.String()
}

func TestRenderError(t *testing.T) {
	r := testRenderer(map[string]string{
		"grammar.json": "{\n  \"elements\": {\n    \"a\": {,}\n  }\n}",
	})
	got := render(t, r, Diagnostic{
		Severity: SeverityError,
		Message:  "invalid character ',' looking for beginning of object key string",
		Spans:    []Span{{File: "grammar.json", Line: 3, Col: 11, Label: "here"}},
	})
	want := strings.Join([]string{
		"error: invalid character ',' looking for beginning of object key string",
		"  --> grammar.json:3:11",
		"   |",
		" 3 |      \"a\": {,}",
		"   |            ^ here",
		"   |",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestRenderWarning(t *testing.T) {
	r := testRenderer(map[string]string{
		"grammar.yaml": "elements:\n  tref:\n    deprecated: true\n",
	})
	got := render(t, r, Diagnostic{
		Severity: SeverityWarning,
		Message:  "element tref is deprecated",
		Spans:    []Span{{File: "grammar.yaml", Line: 2, Col: 3}},
	})
	assert.Contains(t, got, "warning: element tref is deprecated")
	assert.Contains(t, got, "--> grammar.yaml:2:3")
	assert.Contains(t, got, " 2 |    tref:")
	assert.Contains(t, got, "  ^^^^\n")
}

func TestRenderNoSource(t *testing.T) {
	got := render(t, testRenderer(nil), Diagnostic{
		Message: "decoding yaml schema",
		Spans:   []Span{{File: "<stdin>", Line: 5, Col: 3}},
	})
	assert.Contains(t, got, "error: decoding yaml schema")
	assert.Contains(t, got, "--> <stdin>:5:3")
	assert.NotContains(t, got, "^")
}

func TestRenderLineOnly(t *testing.T) {
	got := render(t, testRenderer(map[string]string{"g.yml": "a\nb\n"}), Diagnostic{
		Message: "bad",
		Spans:   []Span{{File: "g.yml", Line: 2}},
	})
	assert.Contains(t, got, "--> g.yml:2\n")
	assert.Contains(t, got, " 2 |  b\n")
}

func TestRenderNotes(t *testing.T) {
	got := render(t, testRenderer(nil), Diagnostic{
		Message: "loading schema",
		Notes:   []string{"schema files must declare at least one element"},
	})
	assert.Contains(t, got, "= note: schema files must declare at least one element")
	assert.NotContains(t, got, "-->")
}

func TestRenderTabs(t *testing.T) {
	got := render(t, testRenderer(map[string]string{"g.yml": "\tsvg: x"}), Diagnostic{
		Message: "bad",
		Spans:   []Span{{File: "g.yml", Line: 1, Col: 2}},
	})
	assert.Contains(t, got, " 1 |      svg: x\n")
	assert.Contains(t, got, " |      ^^^\n")
}

func TestRenderAll(t *testing.T) {
	var buf bytes.Buffer
	err := testRenderer(nil).RenderAll(&buf, []Diagnostic{
		{Message: "first"},
		{Severity: SeverityNote, Message: "second"},
	})
	require.NoError(t, err)
	assert.Equal(t, "error: first\n\nnote: second\n", buf.String())
}

func TestTokenEnd(t *testing.T) {
	for _, tc := range []struct {
		source string
		col    int
		want   int
	}{
		{`<rect width="1"/>`, 2, 5},
		{`<rect width="1"/>`, 7, 11},
		{`"a": {,}`, 7, 7},
		{"svg", 9, 9},
	} {
		assert.Equal(t, tc.want, tokenEnd(tc.source, tc.col), "%q at %d", tc.source, tc.col)
	}
}

func TestColorMode(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, ansi, ColorAlways.palette(&buf))
	assert.Equal(t, palette{}, ColorNever.palette(&buf))
	assert.Equal(t, palette{}, ColorAuto.palette(&buf))
}
