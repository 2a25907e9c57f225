// Copyright © 2026 The svgls authors

package lsp

import (
	"github.com/luthersystems/svgls/markup"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// textDocumentDidOpen handles textDocument/didOpen.
func (s *Server) textDocumentDidOpen(_ *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.Open(params.TextDocument.URI, int32(params.TextDocument.Version), params.TextDocument.Text)
	s.log.Debugf("opened %s", params.TextDocument.URI)
	return nil
}

// textDocumentDidChange handles textDocument/didChange. Whole-document
// changes replace the text; ranged changes are applied in order.
func (s *Server) textDocumentDidChange(_ *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	var content string
	if doc := s.docs.Get(uri); doc != nil {
		content = doc.Content()
	}
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			content = c.Text
		case protocol.TextDocumentContentChangeEvent:
			content = applyChange(content, c)
		}
	}
	s.docs.Change(uri, int32(params.TextDocument.Version), content)
	return nil
}

// textDocumentDidClose handles textDocument/didClose.
func (s *Server) textDocumentDidClose(_ *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.Close(params.TextDocument.URI)
	s.log.Debugf("closed %s", params.TextDocument.URI)
	return nil
}

// applyChange splices a ranged change into content. A change without a
// range replaces everything.
func applyChange(content string, c protocol.TextDocumentContentChangeEvent) string {
	if c.Range == nil {
		return c.Text
	}
	buf := markup.NewStringBuffer(content)
	start := buf.Offset(toMarkupPosition(buf, c.Range.Start))
	end := buf.Offset(toMarkupPosition(buf, c.Range.End))
	if end < start {
		start, end = end, start
	}
	return content[:start] + c.Text + content[end:]
}
