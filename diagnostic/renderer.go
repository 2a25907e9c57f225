// Copyright © 2026 The svgls authors

package diagnostic

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

// tabWidth is the number of columns a tab is expanded to when quoting
// source lines.
const tabWidth = 4

// Renderer writes diagnostics in the form
//
//	error: message
//	  --> file:line:col
//	   |
//	 3 |      "a": {,}
//	   |           ^ label
//	   |
type Renderer struct {
	Color ColorMode
	// SourceReader loads the file named by a span. os.ReadFile when nil.
	SourceReader func(string) ([]byte, error)
}

// Render writes d to w.
func (r *Renderer) Render(w io.Writer, d Diagnostic) error {
	p := r.Color.palette(w)
	bw := bufio.NewWriter(w)
	ew := &errWriter{w: bw}

	sev := p.boldRed
	switch d.Severity {
	case SeverityWarning:
		sev = p.yellow
	case SeverityNote:
		sev = p.note
	}
	ew.printf("%s%s%s: %s%s%s\n", sev, d.Severity, p.reset, p.bold, d.Message, p.reset)
	for _, span := range d.Spans {
		r.writeSpan(ew, span, p)
	}
	for _, note := range d.Notes {
		ew.printf("   %s=%s note: %s\n", p.note, p.reset, note)
	}
	if ew.err != nil {
		return ew.err
	}
	return bw.Flush()
}

// RenderAll writes ds to w with a blank line between diagnostics.
func (r *Renderer) RenderAll(w io.Writer, ds []Diagnostic) error {
	for i, d := range ds {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := r.Render(w, d); err != nil {
			return err
		}
	}
	return nil
}

// errWriter keeps the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, a ...any) {
	if ew.err == nil {
		_, ew.err = fmt.Fprintf(ew.w, format, a...)
	}
}

func (r *Renderer) writeSpan(ew *errWriter, span Span, p palette) {
	loc := span.File
	switch {
	case span.Line > 0 && span.Col > 0:
		loc = fmt.Sprintf("%s:%d:%d", span.File, span.Line, span.Col)
	case span.Line > 0:
		loc = fmt.Sprintf("%s:%d", span.File, span.Line)
	}
	ew.printf("  %s-->%s %s\n", p.gutter, p.reset, loc)

	source, ok := r.sourceLine(span.File, span.Line)
	if !ok {
		ew.printf("   %s|%s\n", p.gutter, p.reset)
		return
	}

	num := strconv.Itoa(span.Line)
	pad := strings.Repeat(" ", len(num))
	col := max(span.Col, 1)
	end := span.EndCol
	if end <= 0 {
		end = tokenEnd(source, col)
	}
	end = max(end, col)
	indent := 0
	if col-1 <= len(source) {
		indent = displayWidth(source[:col-1])
	}

	ew.printf(" %s%s |%s\n", p.gutter, pad, p.reset)
	ew.printf(" %s%s |%s  %s\n", p.gutter, num, p.reset, strings.ReplaceAll(source, "\t", strings.Repeat(" ", tabWidth)))
	ew.printf(" %s%s |%s  %s%s%s%s", p.gutter, pad, p.reset,
		strings.Repeat(" ", indent), p.boldRed, strings.Repeat("^", end-col+1), p.reset)
	if span.Label != "" {
		ew.printf(" %s%s%s", p.boldRed, span.Label, p.reset)
	}
	ew.printf("\n %s%s |%s\n", p.gutter, pad, p.reset)
}

func (r *Renderer) sourceLine(file string, line int) (string, bool) {
	if line <= 0 || file == "" {
		return "", false
	}
	read := r.SourceReader
	if read == nil {
		read = os.ReadFile
	}
	data, err := read(file)
	if err != nil {
		return "", false
	}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for i := 1; sc.Scan(); i++ {
		if i == line {
			return sc.Text(), true
		}
	}
	return "", false
}

// tokenEnd returns the 1-based column of the last byte of the token
// starting at col. Tokens end at whitespace or at JSON, YAML and markup
// punctuation.
func tokenEnd(source string, col int) int {
	if col > len(source) {
		return col
	}
	end := col - 1
	for end < len(source) {
		ch, size := utf8.DecodeRuneInString(source[end:])
		if strings.ContainsRune(" \t,:{}[]<>\"'=", ch) {
			break
		}
		end += size
	}
	if end == col-1 {
		return col
	}
	return end
}

func displayWidth(s string) int {
	w := 0
	for _, ch := range s {
		if ch == '\t' {
			w += tabWidth
		} else {
			w++
		}
	}
	return w
}
