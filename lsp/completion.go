// Copyright © 2026 The svgls authors

package lsp

import (
	"context"

	"github.com/luthersystems/svgls/complete"
	"github.com/luthersystems/svgls/markup"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Client commands attached to completion items. moveCursorCommand is
// implemented by the editor extension; cursorUpCommand is built into
// VS Code-compatible clients.
const (
	moveCursorCommand = "_svg.moveCursor"
	cursorUpCommand   = "cursorUp"
)

// textDocumentCompletion handles the textDocument/completion request.
func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}

	ctx := context.Background()
	if s.completionTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.completionTimeout)
		defer cancel()
	}

	buf := doc.Buffer()
	candidates := s.provider.Complete(ctx, buf, toMarkupPosition(buf, params.Position))
	if len(candidates) == 0 {
		return nil, nil
	}
	s.log.Debugf("%d completions at %s:%d:%d", len(candidates),
		params.TextDocument.URI, params.Position.Line, params.Position.Character)

	items := make([]protocol.CompletionItem, 0, len(candidates))
	for _, c := range candidates {
		items = append(items, completionItem(buf, c))
	}
	return items, nil
}

// completionItem converts a candidate to its LSP form. Edit ranges are
// positions in buf.
func completionItem(buf *markup.StringBuffer, c complete.Candidate) protocol.CompletionItem {
	kind := completionItemKind(c.Kind)
	item := protocol.CompletionItem{
		Label:   c.Label,
		Kind:    &kind,
		Command: cursorCommand(c),
	}
	if c.Detail != "" {
		detail := c.Detail
		item.Detail = &detail
	}
	if c.Documentation != "" {
		item.Documentation = &protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: c.Documentation,
		}
	}
	if c.Edit != nil {
		item.TextEdit = protocol.TextEdit{
			Range:   toLSPRange(buf, c.Edit.Range),
			NewText: c.Edit.NewText,
		}
	} else {
		text := c.InsertText
		item.InsertText = &text
	}
	return item
}

func completionItemKind(k complete.Kind) protocol.CompletionItemKind {
	switch k {
	case complete.KindElement:
		return protocol.CompletionItemKindClass
	case complete.KindAttribute:
		return protocol.CompletionItemKindProperty
	case complete.KindValue:
		return protocol.CompletionItemKindEnum
	default:
		return protocol.CompletionItemKindText
	}
}

// cursorCommand maps the candidate's cursor movement to a client command.
// Attribute candidates always carry the enum follow-up flag as a second
// argument.
func cursorCommand(c complete.Candidate) *protocol.Command {
	switch c.Command.Kind {
	case complete.CursorMoveLeft:
		if c.Kind == complete.KindAttribute {
			return &protocol.Command{
				Title:     "Cursor Left",
				Command:   moveCursorCommand,
				Arguments: []any{-c.Command.Offset, c.Command.HasEnumFollowUp},
			}
		}
		return &protocol.Command{
			Title:     "Cursor To Inside",
			Command:   moveCursorCommand,
			Arguments: []any{-c.Command.Offset},
		}
	case complete.CursorMoveUp:
		return &protocol.Command{
			Title:   "Cursor Up",
			Command: cursorUpCommand,
		}
	case complete.CursorMoveRightPastAttribute:
		return &protocol.Command{
			Title:     "Cursor Out Attribute",
			Command:   moveCursorCommand,
			Arguments: []any{c.Command.Offset},
		}
	default:
		return nil
	}
}
