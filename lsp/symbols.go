// Copyright © 2026 The svgls authors

package lsp

import (
	"github.com/luthersystems/svgls/markup"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// textDocumentDocumentSymbol handles the textDocument/documentSymbol
// request with the document's element tree.
func (s *Server) textDocumentDocumentSymbol(_ *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	buf, o, err := s.outline(doc)
	if err != nil {
		s.log.Debugf("symbols %s: %s", params.TextDocument.URI, err)
		return nil, nil
	}
	if len(o.Roots) == 0 {
		return nil, nil
	}

	// Return as []DocumentSymbol (the preferred hierarchical form).
	return s.documentSymbols(buf, o.Roots), nil
}

func (s *Server) documentSymbols(buf *markup.StringBuffer, elems []*markup.Element) []protocol.DocumentSymbol {
	symbols := make([]protocol.DocumentSymbol, 0, len(elems))
	for _, e := range elems {
		nameStart := e.Span.Start + 1
		sym := protocol.DocumentSymbol{
			Name: e.Name,
			Kind: protocol.SymbolKindClass,
			Range: protocol.Range{
				Start: lspPositionAt(buf, e.Span.Start),
				End:   lspPositionAt(buf, e.Span.End),
			},
			SelectionRange: protocol.Range{
				Start: lspPositionAt(buf, nameStart),
				End:   lspPositionAt(buf, nameStart+len(e.Name)),
			},
			Detail: s.symbolDetail(e.Name),
		}
		if len(e.Children) > 0 {
			sym.Children = s.documentSymbols(buf, e.Children)
		}
		symbols = append(symbols, sym)
	}
	return symbols
}

// symbolDetail flags elements the grammar marks deprecated or does not
// know.
func (s *Server) symbolDetail(name string) *string {
	var detail string
	e, ok := s.catalog.LookupElement(name)
	switch {
	case !ok:
		detail = "unknown element"
	case e.Deprecated:
		detail = "deprecated"
	default:
		return nil
	}
	return &detail
}
