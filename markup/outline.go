// Copyright © 2026 The svgls authors

package markup

import "context"

// Span is a half-open byte range of a document.
type Span struct {
	Start, End int
}

// Element is an element found by ParseOutline.
type Element struct {
	Name string
	// Span runs from the element's '<' to just past its end tag. A
	// self-closing element spans its one tag; an element that is never
	// closed runs to the end of the document, or to the end tag of an
	// ancestor that closes it.
	Span     Span
	Children []*Element
}

// Outline is the element tree of a document.
type Outline struct {
	Roots    []*Element
	Comments []Span
}

// ParseOutline builds the element tree of text with the same tolerant
// scanning FindParentElement uses. End tags that match no open element are
// ignored.
func ParseOutline(ctx context.Context, text string) (*Outline, error) {
	out := &Outline{}
	var stack []*Element
	add := func(e *Element) {
		if len(stack) == 0 {
			out.Roots = append(out.Roots, e)
			return
		}
		parent := stack[len(stack)-1]
		parent.Children = append(parent.Children, e)
	}
	err := walkTags(ctx, text, func(ev tagEvent) {
		switch ev.kind {
		case eventOpen:
			e := &Element{Name: ev.name, Span: Span{Start: ev.start}}
			add(e)
			stack = append(stack, e)
		case eventSelfClosed:
			add(&Element{Name: ev.name, Span: Span{Start: ev.start, End: ev.end}})
		case eventClose:
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i].Name != ev.name {
					continue
				}
				stack[i].Span.End = ev.end
				for _, open := range stack[i+1:] {
					open.Span.End = ev.start
				}
				stack = stack[:i]
				break
			}
		case eventComment:
			out.Comments = append(out.Comments, Span{Start: ev.start, End: ev.end})
		}
	})
	if err != nil {
		return nil, err
	}
	for _, open := range stack {
		open.Span.End = len(text)
	}
	return out, nil
}

// Walk calls fn for every element in the outline, parents before
// children.
func (o *Outline) Walk(fn func(e *Element, depth int)) {
	var walk func(es []*Element, depth int)
	walk = func(es []*Element, depth int) {
		for _, e := range es {
			fn(e, depth)
			walk(e.Children, depth+1)
		}
	}
	walk(o.Roots, 0)
}
