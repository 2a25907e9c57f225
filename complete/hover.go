// Copyright © 2026 The svgls authors

package complete

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/luthersystems/svgls/markup"
)

// Hover is documentation for the name under the cursor.
type Hover struct {
	Range    markup.Range
	Contents string
}

// Hover documents the element or attribute name at pos. Element names are
// recognised right after '<' or '</'; attribute names inside a start tag
// when followed by '='.
func (p *Provider) Hover(_ context.Context, buf markup.Buffer, pos markup.Position) (Hover, bool) {
	line := buf.GetText(markup.Range{
		Start: markup.Position{Line: pos.Line},
		End:   markup.Position{Line: pos.Line, Character: math.MaxInt32},
	})
	start, end := markup.NameAt(line, pos.Character)
	if start == end {
		return Hover{}, false
	}
	name := line[start:end]
	rng := markup.Range{
		Start: markup.Position{Line: pos.Line, Character: start},
		End:   markup.Position{Line: pos.Line, Character: end},
	}

	before := line[:start]
	if strings.HasSuffix(before, "<") || strings.HasSuffix(before, "</") {
		e, ok := p.catalog.LookupElement(name)
		if !ok {
			return Hover{}, false
		}
		return Hover{Range: rng, Contents: hoverContent("<"+name+">", "", e.Documentation, e.Deprecated)}, true
	}

	if !strings.HasPrefix(strings.TrimLeft(line[end:], " \t"), "=") {
		return Hover{}, false
	}
	tag, ok := markup.FindEnclosingStartTag(markup.TextBefore(buf, rng.Start))
	if !ok {
		return Hover{}, false
	}
	attr, ok := p.catalog.ResolveElementAttribute(tag.Name, name)
	if !ok {
		return Hover{}, false
	}
	return Hover{Range: rng, Contents: hoverContent(name, attr.Type, attr.Documentation, attr.Deprecated)}, true
}

func hoverContent(title, typ, doc string, deprecated bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "`%s`", title)
	if typ != "" {
		fmt.Fprintf(&sb, " `%s`", typ)
	}
	if _, doc = describe(doc, deprecated); doc != "" {
		fmt.Fprintf(&sb, "\n\n%s", doc)
	} else if deprecated {
		sb.WriteString(deprecatedSuffix)
	}
	return sb.String()
}
