// Copyright © 2026 The svgls authors

package markup

import (
	"unicode"
	"unicode/utf8"
)

// Context is what the author is typing at the cursor.
type Context int

const (
	ContextNone Context = iota
	ContextTagOpen
	ContextAttributeName
	ContextAttributeValue
)

func (c Context) String() string {
	switch c {
	case ContextTagOpen:
		return "tag-open"
	case ContextAttributeName:
		return "attribute-name"
	case ContextAttributeValue:
		return "attribute-value"
	default:
		return "none"
	}
}

// Classify picks a context from the character before the cursor (prev)
// and the character after it (next). An empty string means there is no
// character on that side. Rules are checked in order:
//
//	prev '<'                                   tag open
//	prev ' ' and next is '/', '>', space, none attribute name
//	prev '"' or '='                            attribute value
func Classify(prev, next string) Context {
	switch {
	case prev == "<":
		return ContextTagOpen
	case prev == " " && endsAttributeList(next):
		return ContextAttributeName
	case prev == `"` || prev == "=":
		return ContextAttributeValue
	default:
		return ContextNone
	}
}

// ClassifyAt reads the characters around pos and classifies them.
func ClassifyAt(buf Buffer, pos Position) Context {
	return Classify(CharBefore(buf, pos), CharAfter(buf, pos))
}

func endsAttributeList(next string) bool {
	if next == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(next)
	return r == '/' || r == '>' || unicode.IsSpace(r)
}
