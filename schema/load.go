// Copyright © 2026 The svgls authors

package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a schema document.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks a format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("unsupported schema file extension %q", filepath.Ext(path))
	}
}

// document is the on-disk shape of a schema.
type document struct {
	Elements   orderedElements             `json:"elements" yaml:"elements"`
	Attributes map[string]*AttributeSchema `json:"attributes" yaml:"attributes"`
}

// LoadError is a schema document that failed to decode. Line and Col
// are 1-based and zero when the decoder reported no position.
type LoadError struct {
	Path string
	Line int
	Col  int
	Err  error
}

func (e *LoadError) Error() string {
	switch {
	case e.Path == "":
		return e.Err.Error()
	case e.Line > 0:
		return fmt.Sprintf("%s:%d:%d: %v", e.Path, e.Line, e.Col, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadFile reads a schema document from path.
func LoadFile(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck // read-only file
	c, err := Load(f, format)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
			return nil, le
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Load decodes a schema document from r. Decoding failures are returned
// as a *LoadError.
func Load(r io.Reader, format Format) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc document
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			le := &LoadError{Err: fmt.Errorf("decoding json schema: %w", err)}
			var syn *json.SyntaxError
			if errors.As(err, &syn) {
				le.Line, le.Col = offsetPosition(data, syn.Offset)
			}
			return nil, le
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			le := &LoadError{Err: fmt.Errorf("decoding yaml schema: %w", err)}
			le.Line = yamlErrorLine(err)
			if le.Line > 0 {
				le.Col = 1
			}
			return nil, le
		}
	default:
		return nil, fmt.Errorf("unknown schema format %v", format)
	}
	if len(doc.Elements) == 0 {
		return nil, errors.New("schema declares no elements")
	}
	for _, e := range doc.Elements {
		if e.Name == "" {
			return nil, errors.New("schema declares an element with an empty name")
		}
	}
	return NewCatalog(doc.Elements, doc.Attributes), nil
}

// offsetPosition converts the byte count reported by encoding/json to a
// line and column. The offset counts the byte that caused the error.
func offsetPosition(data []byte, offset int64) (line, col int) {
	if offset <= 0 {
		return 1, 1
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	head := data[:offset-1]
	line = bytes.Count(head, []byte{'\n'}) + 1
	col = len(head) - (bytes.LastIndexByte(head, '\n') + 1) + 1
	return line, col
}

var yamlLine = regexp.MustCompile(`line (\d+)`)

// yamlErrorLine extracts the first line number from a yaml.v3 error, which
// reports positions only in its message text.
func yamlErrorLine(err error) int {
	m := yamlLine.FindStringSubmatch(err.Error())
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

// orderedElements decodes the elements object keeping the order in which
// elements appear in the document.
type orderedElements []*ElementSchema

func (o *orderedElements) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("elements: expected object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("elements: unexpected key %v", tok)
		}
		e := &ElementSchema{}
		if err := dec.Decode(e); err != nil {
			return fmt.Errorf("element %s: %w", name, err)
		}
		e.Name = name
		*o = append(*o, e)
	}
	_, err = dec.Token()
	return err
}

func (o *orderedElements) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("elements: line %d: expected mapping", n.Line)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		name := n.Content[i].Value
		e := &ElementSchema{}
		if err := n.Content[i+1].Decode(e); err != nil {
			return fmt.Errorf("element %s: %w", name, err)
		}
		e.Name = name
		*o = append(*o, e)
	}
	return nil
}

func (r *AttributeRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var name string
		if err := json.Unmarshal(b, &name); err != nil {
			return err
		}
		*r = Ref(name)
		return nil
	}
	attr := &AttributeSchema{}
	if err := json.Unmarshal(b, attr); err != nil {
		return err
	}
	*r = Inline(attr)
	return nil
}

func (r AttributeRef) MarshalJSON() ([]byte, error) {
	if r.inline != nil {
		return json.Marshal(r.inline)
	}
	return json.Marshal(r.name)
}

func (r *AttributeRef) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		*r = Ref(n.Value)
		return nil
	case yaml.MappingNode:
		attr := &AttributeSchema{}
		if err := n.Decode(attr); err != nil {
			return err
		}
		*r = Inline(attr)
		return nil
	default:
		return fmt.Errorf("attribute entry: line %d: expected name or mapping", n.Line)
	}
}

func (v *EnumValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		*v = EnumValue{}
		return json.Unmarshal(b, &v.Name)
	}
	type plain EnumValue
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*v = EnumValue(p)
	return nil
}

func (v *EnumValue) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		*v = EnumValue{Name: n.Value}
		return nil
	case yaml.MappingNode:
		type plain EnumValue
		var p plain
		if err := n.Decode(&p); err != nil {
			return err
		}
		*v = EnumValue(p)
		return nil
	default:
		return fmt.Errorf("enum value: line %d: expected string or mapping", n.Line)
	}
}
