// Copyright © 2026 The svgls authors

// Package diagnostic renders errors against the source text that caused
// them, with the offending line quoted and underlined. It has no
// dependency on the schema or markup packages.
package diagnostic

// Severity is the level printed in a diagnostic header.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityNote
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNote:
		return "note"
	default:
		return "unknown"
	}
}

// Span is a location in a source file. Line and Col are 1-based; a zero
// Line prints the file name alone.
type Span struct {
	File string
	Line int
	Col  int
	// EndCol is the last underlined column. Zero underlines the token
	// starting at Col.
	EndCol int
	Label  string
}

// Diagnostic is one reported problem.
type Diagnostic struct {
	Severity Severity
	Message  string
	Spans    []Span
	Notes    []string
}
