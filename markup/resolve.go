// Copyright © 2026 The svgls authors

package markup

import (
	"context"
	"regexp"
	"strings"
)

// TagMatch is the start tag the cursor is inside of.
type TagMatch struct {
	// Name is the tag name.
	Name string
	// Attrs is the raw text between the tag name and the cursor.
	Attrs string
}

// AttributeMatch is the attribute whose value is being typed.
type AttributeMatch struct {
	Tag  string
	Name string
}

// FindEnclosingStartTag scans prefix backwards for the start tag that is
// still open at its end. The scan fails as soon as a '>' is seen, since the
// cursor is then outside of any tag, or when the '<' found does not begin a
// start tag.
func FindEnclosingStartTag(prefix string) (TagMatch, bool) {
	for i := len(prefix) - 1; i >= 0; i-- {
		switch prefix[i] {
		case '>':
			return TagMatch{}, false
		case '<':
			name := scanName(prefix[i+1:])
			if name == "" {
				return TagMatch{}, false
			}
			return TagMatch{Name: name, Attrs: prefix[i+1+len(name):]}, true
		}
	}
	return TagMatch{}, false
}

// attrValueStart matches an attribute name followed by '=' and an optional
// opening quote at the very end of the text.
var attrValueStart = regexp.MustCompile(`(?:^|\s)([A-Za-z_:][-\w:.]*)\s*=\s*"?$`)

// FindEnclosingAttribute returns the attribute whose value starts at the
// end of prefix, that is, prefix ends in `name="` or `name=` inside a start
// tag.
func FindEnclosingAttribute(prefix string) (AttributeMatch, bool) {
	tag, ok := FindEnclosingStartTag(prefix)
	if !ok {
		return AttributeMatch{}, false
	}
	loc := attrValueStart.FindStringSubmatchIndex(tag.Attrs)
	if loc == nil {
		return AttributeMatch{}, false
	}
	// An odd number of quotes before the name means it sits inside another
	// attribute's value.
	if strings.Count(tag.Attrs[:loc[2]], `"`)%2 != 0 {
		return AttributeMatch{}, false
	}
	return AttributeMatch{Tag: tag.Name, Name: tag.Attrs[loc[2]:loc[3]]}, true
}

// FindParentElement returns the innermost element that is open at the end
// of prefix. It walks prefix from the start keeping a stack of open
// elements: start tags push, end tags pop back to their matching entry and
// self-closing tags, comments, processing instructions and declarations
// are skipped. Unbalanced markup leaves entries on the stack. ok is false
// at document root.
//
// The context is checked periodically; on cancellation the context's error
// is returned.
func FindParentElement(ctx context.Context, prefix string) (name string, ok bool, err error) {
	var stack []string
	err = walkTags(ctx, prefix, func(ev tagEvent) {
		switch ev.kind {
		case eventOpen:
			stack = append(stack, ev.name)
		case eventClose:
			stack = popTo(stack, ev.name)
		}
	})
	if err != nil {
		return "", false, err
	}
	if len(stack) == 0 {
		return "", false, nil
	}
	return stack[len(stack)-1], true, nil
}

// FindPrecedingTag reports the last tag before the cursor, ignoring a '<'
// that was just typed at the end of prefix. ok is false when prefix holds
// no markup at all.
func FindPrecedingTag(prefix string) (name string, ok bool) {
	prefix = strings.TrimSuffix(prefix, "<")
	for i := len(prefix) - 1; i >= 0; i-- {
		if prefix[i] != '<' || i+1 >= len(prefix) {
			continue
		}
		switch c := prefix[i+1]; {
		case c == '/' || c == '!' || c == '?':
			return string(c) + scanName(prefix[i+2:]), true
		case isNameStart(c):
			return scanName(prefix[i+1:]), true
		}
	}
	return "", false
}

func popTo(stack []string, name string) []string {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == name {
			return stack[:i]
		}
	}
	return stack
}

func scanName(s string) string {
	if s == "" || !isNameStart(s[0]) {
		return ""
	}
	i := 1
	for i < len(s) && isNameChar(s[i]) {
		i++
	}
	return s[:i]
}

func isNameStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' || c == ':'
}

func isNameChar(c byte) bool {
	return isNameStart(c) || c >= '0' && c <= '9' || c == '-' || c == '.'
}

// NameAt returns the bounds of the tag or attribute name in line that col
// touches. start == end when there is none.
func NameAt(line string, col int) (start, end int) {
	if col < 0 || col > len(line) {
		return col, col
	}
	start, end = col, col
	for start > 0 && isNameChar(line[start-1]) {
		start--
	}
	for end < len(line) && isNameChar(line[end]) {
		end++
	}
	for start < end && !isNameStart(line[start]) {
		start++
	}
	return start, end
}
