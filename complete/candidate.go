// Copyright © 2026 The svgls authors

package complete

import "github.com/luthersystems/svgls/markup"

// Kind says what a candidate completes.
type Kind int

const (
	KindElement Kind = iota
	KindAttribute
	KindValue
)

func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindAttribute:
		return "attribute"
	case KindValue:
		return "value"
	default:
		return "unknown"
	}
}

// CommandKind is the cursor movement to perform after a candidate has been
// inserted.
type CommandKind int

const (
	CommandNone CommandKind = iota
	// CursorMoveLeft moves the cursor Offset characters left.
	CursorMoveLeft
	// CursorMoveUp moves the cursor Offset lines up.
	CursorMoveUp
	// CursorMoveRightPastAttribute moves the cursor Offset characters
	// right, out of the attribute value just completed.
	CursorMoveRightPastAttribute
)

func (k CommandKind) String() string {
	switch k {
	case CursorMoveLeft:
		return "left"
	case CursorMoveUp:
		return "up"
	case CursorMoveRightPastAttribute:
		return "right"
	default:
		return "none"
	}
}

// CursorCommand describes how the client should reposition the cursor once
// a candidate has been inserted. It is plain data; executing it is up to
// the client.
type CursorCommand struct {
	Kind   CommandKind
	Offset int
	// HasEnumFollowUp is set on attribute candidates whose attribute has
	// enumerated values, so the client can ask for value completions right
	// away.
	HasEnumFollowUp bool
}

// TextEdit replaces Range with NewText. An empty range inserts.
type TextEdit struct {
	Range   markup.Range
	NewText string
}

// Candidate is one proposed completion.
type Candidate struct {
	Label         string
	Kind          Kind
	Detail        string
	Documentation string
	// InsertText is inserted at the cursor when Edit is nil.
	InsertText string
	// Edit, when set, is applied instead of InsertText.
	Edit    *TextEdit
	Command CursorCommand
}

// Text returns the text the candidate inserts.
func (c Candidate) Text() string {
	if c.Edit != nil {
		return c.Edit.NewText
	}
	return c.InsertText
}
