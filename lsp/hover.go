// Copyright © 2026 The svgls authors

package lsp

import (
	"context"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// textDocumentHover handles the textDocument/hover request.
func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}

	buf := doc.Buffer()
	h, ok := s.provider.Hover(context.Background(), buf, toMarkupPosition(buf, params.Position))
	if !ok {
		return nil, nil
	}

	rng := toLSPRange(buf, h.Range)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: h.Contents,
		},
		Range: &rng,
	}, nil
}
