// Copyright © 2026 The svgls authors

// Package markup classifies the cursor context inside SVG markup and
// recovers the structure around the cursor (enclosing start tag, attribute
// being edited, open ancestor element) by scanning raw text. The same
// tolerant scanner builds the element outline of a whole document.
package markup

import (
	"strings"
	"unicode/utf8"
)

// Position is a 0-based line and column. Columns count bytes.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Range is a half-open span of text between two positions.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Buffer is a line/column addressable text buffer.
type Buffer interface {
	// GetText returns the text in r. Positions outside the buffer are
	// clamped, so an out-of-range request yields an empty string.
	GetText(r Range) string
}

// StringBuffer is an immutable Buffer backed by a string.
type StringBuffer struct {
	text       string
	lineStarts []int
}

// NewStringBuffer indexes the lines of text.
func NewStringBuffer(text string) *StringBuffer {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &StringBuffer{text: text, lineStarts: starts}
}

// Text returns the whole buffer.
func (b *StringBuffer) Text() string {
	return b.text
}

// LineCount returns the number of lines in the buffer.
func (b *StringBuffer) LineCount() int {
	return len(b.lineStarts)
}

// Line returns line n without its terminating newline.
func (b *StringBuffer) Line(n int) string {
	if n < 0 || n >= len(b.lineStarts) {
		return ""
	}
	start := b.lineStarts[n]
	end := len(b.text)
	if n+1 < len(b.lineStarts) {
		end = b.lineStarts[n+1] - 1
	}
	return strings.TrimSuffix(b.text[start:end], "\r")
}

// Offset converts pos to a byte offset, clamping the line to the buffer
// and the column to the line.
func (b *StringBuffer) Offset(pos Position) int {
	if pos.Line < 0 {
		return 0
	}
	if pos.Line >= len(b.lineStarts) {
		return len(b.text)
	}
	col := pos.Character
	if col < 0 {
		col = 0
	}
	if n := len(b.Line(pos.Line)); col > n {
		col = n
	}
	return b.lineStarts[pos.Line] + col
}

// PositionAt converts a byte offset to a position.
func (b *StringBuffer) PositionAt(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(b.text) {
		offset = len(b.text)
	}
	line := 0
	for line+1 < len(b.lineStarts) && b.lineStarts[line+1] <= offset {
		line++
	}
	return Position{Line: line, Character: offset - b.lineStarts[line]}
}

func (b *StringBuffer) GetText(r Range) string {
	start, end := b.Offset(r.Start), b.Offset(r.End)
	if end < start {
		return ""
	}
	return b.text[start:end]
}

// TextBefore returns everything in buf before pos.
func TextBefore(buf Buffer, pos Position) string {
	return buf.GetText(Range{End: pos})
}

// CharBefore returns the character preceding pos on its line, or the
// empty string at the start of a line. A multi-byte character is returned
// whole.
func CharBefore(buf Buffer, pos Position) string {
	if pos.Character <= 0 {
		return ""
	}
	s := buf.GetText(Range{
		Start: Position{Line: pos.Line, Character: max(pos.Character-utf8.UTFMax, 0)},
		End:   pos,
	})
	_, size := utf8.DecodeLastRuneInString(s)
	return s[len(s)-size:]
}

// CharAfter returns the character following pos on its line, or the empty
// string at the end of a line. A multi-byte character is returned whole.
func CharAfter(buf Buffer, pos Position) string {
	s := buf.GetText(Range{
		Start: pos,
		End:   Position{Line: pos.Line, Character: pos.Character + utf8.UTFMax},
	})
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}
