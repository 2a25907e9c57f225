// Copyright © 2026 The svgls authors

package lsp

import (
	"context"

	"github.com/luthersystems/svgls/markup"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// outline parses the element tree of doc, bounded by the completion
// timeout.
func (s *Server) outline(doc *Document) (*markup.StringBuffer, *markup.Outline, error) {
	ctx := context.Background()
	if s.completionTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.completionTimeout)
		defer cancel()
	}
	buf := doc.Buffer()
	o, err := markup.ParseOutline(ctx, buf.Text())
	if err != nil {
		return nil, nil, err
	}
	return buf, o, nil
}

// textDocumentFoldingRange handles the textDocument/foldingRange request.
// It returns folding ranges for multi-line elements and comments.
func (s *Server) textDocumentFoldingRange(_ *glsp.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	buf, o, err := s.outline(doc)
	if err != nil {
		s.log.Debugf("folding %s: %s", params.TextDocument.URI, err)
		return nil, nil
	}

	var ranges []protocol.FoldingRange
	o.Walk(func(e *markup.Element, _ int) {
		if r, ok := foldingRange(buf, e.Span, protocol.FoldingRangeKindRegion); ok {
			ranges = append(ranges, r)
		}
	})
	for _, c := range o.Comments {
		if r, ok := foldingRange(buf, c, protocol.FoldingRangeKindComment); ok {
			ranges = append(ranges, r)
		}
	}
	return ranges, nil
}

// foldingRange folds span when it covers more than one line.
func foldingRange(buf *markup.StringBuffer, span markup.Span, kind protocol.FoldingRangeKind) (protocol.FoldingRange, bool) {
	if span.End <= span.Start {
		return protocol.FoldingRange{}, false
	}
	startLine := buf.PositionAt(span.Start).Line
	endLine := buf.PositionAt(span.End - 1).Line
	if endLine <= startLine {
		return protocol.FoldingRange{}, false
	}
	k := string(kind)
	return protocol.FoldingRange{
		StartLine: safeUint(startLine),
		EndLine:   safeUint(endLine),
		Kind:      &k,
	}, true
}
