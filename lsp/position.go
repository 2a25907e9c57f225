// Copyright © 2026 The svgls authors

package lsp

import (
	"github.com/luthersystems/svgls/markup"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// toMarkupPosition converts an LSP position to a position in buf. LSP
// characters count UTF-16 code units; buffer columns count bytes.
func toMarkupPosition(buf *markup.StringBuffer, p protocol.Position) markup.Position {
	line := int(p.Line)
	return markup.Position{
		Line:      line,
		Character: byteColumn(buf.Line(line), int(p.Character)),
	}
}

// toLSPPosition converts a position in buf to an LSP position.
func toLSPPosition(buf *markup.StringBuffer, p markup.Position) protocol.Position {
	text := buf.Line(p.Line)
	col := min(max(p.Character, 0), len(text))
	return protocol.Position{
		Line:      safeUint(p.Line),
		Character: safeUint(utf16Len(text[:col])),
	}
}

// toLSPRange converts a range in buf to an LSP range.
func toLSPRange(buf *markup.StringBuffer, r markup.Range) protocol.Range {
	return protocol.Range{Start: toLSPPosition(buf, r.Start), End: toLSPPosition(buf, r.End)}
}

// lspPositionAt converts a byte offset in buf to an LSP position.
func lspPositionAt(buf *markup.StringBuffer, offset int) protocol.Position {
	return toLSPPosition(buf, buf.PositionAt(offset))
}

// byteColumn returns the byte offset in line of the given UTF-16 column.
// A column inside a surrogate pair moves past the pair; a column beyond
// the line clamps to its end.
func byteColumn(line string, units int) int {
	n := 0
	for i, r := range line {
		if n >= units {
			return i
		}
		n += utf16RuneLen(r)
	}
	return len(line)
}

// utf16Len returns the length of s in UTF-16 code units.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16RuneLen(r)
	}
	return n
}

func utf16RuneLen(r rune) int {
	if r > 0xFFFF {
		return 2
	}
	return 1
}

// safeUint converts a non-negative int to protocol.UInteger, clamping
// negative values to zero.
func safeUint(n int) protocol.UInteger {
	if n < 0 {
		return 0
	}
	return protocol.UInteger(n) // #nosec G115 -- line/col are always small positive ints
}
