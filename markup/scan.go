// Copyright © 2026 The svgls authors

package markup

import (
	"context"
	"strings"
)

// cancelCheckInterval is how many bytes walkTags scans between checks of
// its context.
const cancelCheckInterval = 4096

type eventKind int

const (
	eventOpen eventKind = iota
	eventSelfClosed
	eventClose
	eventComment
)

// tagEvent is one piece of markup found by walkTags. start is the offset
// of its '<' and end the offset just past its '>'.
type tagEvent struct {
	kind       eventKind
	name       string
	start, end int
}

// walkTags calls visit for every start tag, end tag and comment in s, in
// order. CDATA sections, processing instructions and declarations are
// skipped silently. A start tag interrupted by another '<' is dropped. The
// walk stops at the first construct left unterminated, since everything
// after it belongs to that construct.
func walkTags(ctx context.Context, s string, visit func(tagEvent)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	checked := 0
	for i := 0; i < len(s); {
		if i-checked >= cancelCheckInterval {
			if err := ctx.Err(); err != nil {
				return err
			}
			checked = i
		}
		if s[i] != '<' {
			i++
			continue
		}
		rest := s[i:]
		var n int
		switch {
		case strings.HasPrefix(rest, "<!--"):
			n = skipPast(rest, 4, "-->")
			if n > 0 {
				visit(tagEvent{kind: eventComment, start: i, end: i + n})
			}
		case strings.HasPrefix(rest, "<![CDATA["):
			n = skipPast(rest, 9, "]]>")
		case strings.HasPrefix(rest, "<?"):
			n = skipPast(rest, 2, "?>")
		case strings.HasPrefix(rest, "<!"):
			n = skipPast(rest, 2, ">")
		case strings.HasPrefix(rest, "</"):
			end := strings.IndexByte(rest, '>')
			if end < 0 {
				return nil
			}
			n = end + 1
			visit(tagEvent{kind: eventClose, name: scanName(rest[2:]), start: i, end: i + n})
		default:
			tag := scanName(rest[1:])
			if tag == "" {
				n = 1
				break
			}
			end, term := scanTagEnd(rest, 1+len(tag))
			switch term {
			case tagOpen:
				n = end + 1
				visit(tagEvent{kind: eventOpen, name: tag, start: i, end: i + n})
			case tagSelfClosed:
				n = end + 1
				visit(tagEvent{kind: eventSelfClosed, name: tag, start: i, end: i + n})
			case tagAbandoned:
				n = end
			default:
				n = -1
			}
		}
		if n < 0 {
			return nil
		}
		i += n
	}
	return nil
}

type tagTermination int

const (
	tagUnterminated tagTermination = iota
	tagOpen
	tagSelfClosed
	tagAbandoned
)

// scanTagEnd finds where the start tag in s ends, beginning at from and
// skipping quoted attribute values. For a closed tag end is the index of
// its '>'; for an abandoned tag it is the index of the '<' that
// interrupted it.
func scanTagEnd(s string, from int) (end int, term tagTermination) {
	var quote byte
	for i := from; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '>':
			if s[i-1] == '/' {
				return i, tagSelfClosed
			}
			return i, tagOpen
		case c == '<':
			return i, tagAbandoned
		}
	}
	return -1, tagUnterminated
}

func skipPast(s string, from int, terminator string) int {
	idx := strings.Index(s[from:], terminator)
	if idx < 0 {
		return -1
	}
	return from + idx + len(terminator)
}
