// Copyright © 2026 The svgls authors

// Package repl implements an interactive SVG scratchpad. Lines typed at
// the prompt are appended to a document and TAB completes element names,
// attribute names and attribute values against that document.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ergochat/readline"
	"github.com/luthersystems/svgls/complete"
	"github.com/luthersystems/svgls/markup"
	"github.com/luthersystems/svgls/schema"
)

const helpText = `Type SVG markup; each line is appended to the document.
Press TAB to complete after '<', a space inside a tag, '=' or '"'.

  :complete  list completions at the end of the document
  :show      print the document
  :reset     clear the document
  :help      show this message
  :quit      leave the repl`

type config struct {
	stdin   io.ReadCloser
	stderr  io.WriteCloser
	catalog *schema.Catalog
	timeout time.Duration
}

func newConfig(opts ...Option) *config {
	config := &config{timeout: 250 * time.Millisecond}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

type Option func(*config)

// WithStdin allows overriding the input to the REPL.
func WithStdin(stdin io.ReadCloser) Option {
	return func(c *config) {
		c.stdin = stdin
	}
}

// WithStderr allows overriding the output to the REPL.
func WithStderr(stderr io.WriteCloser) Option {
	return func(c *config) {
		c.stderr = stderr
	}
}

// WithCatalog completes against c instead of the embedded SVG grammar.
func WithCatalog(c *schema.Catalog) Option {
	return func(cfg *config) {
		cfg.catalog = c
	}
}

// WithTimeout bounds each completion.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// session is the document being typed.
type session struct {
	provider *complete.Provider
	timeout  time.Duration
	lines    []string
}

func (s *session) text() string {
	return strings.Join(s.lines, "\n")
}

// completeAt returns the candidates for a cursor placed after pending,
// the unfinished line following the document.
func (s *session) completeAt(pending string) []complete.Candidate {
	text := pending
	if len(s.lines) > 0 {
		text = s.text() + "\n" + pending
	}
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	buf := markup.NewStringBuffer(text)
	return s.provider.Complete(ctx, buf, buf.PositionAt(len(text)))
}

// RunRepl reads markup from the terminal until EOF or :quit.
func RunRepl(prompt string, opts ...Option) error {
	cfg := newConfig(opts...)
	if cfg.catalog == nil {
		cfg.catalog = schema.Default()
	}
	var out io.Writer = os.Stderr
	if cfg.stderr != nil {
		out = cfg.stderr
	}

	s := &session{
		provider: complete.NewProvider(cfg.catalog),
		timeout:  cfg.timeout,
	}

	hist := historyPath()
	ensureHistoryFilePermissions(hist)
	rlCfg := &readline.Config{
		Stdout:            out,
		Stderr:            out,
		Prompt:            prompt,
		HistoryFile:       hist,
		HistorySearchFold: true,
		AutoComplete:      &markupCompleter{session: s},
	}
	if cfg.stdin != nil {
		rlCfg.Stdin = cfg.stdin
	}
	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return fmt.Errorf("readline: %w", err)
	}
	defer rl.Close() //nolint:errcheck // best-effort cleanup

	for {
		line, err := rl.ReadLine()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			return nil
		}
		if !strings.HasPrefix(line, ":") {
			s.lines = append(s.lines, line)
			continue
		}
		switch cmd := strings.TrimSpace(line); cmd {
		case ":quit", ":q":
			return nil
		case ":show":
			fmt.Fprintln(out, s.text()) //nolint:errcheck // best-effort REPL output
		case ":reset":
			s.lines = nil
		case ":help":
			fmt.Fprintln(out, helpText) //nolint:errcheck // best-effort REPL output
		case ":complete":
			printCandidates(out, s.completeAtEnd())
		default:
			fmt.Fprintf(out, "unknown command %s (try :help)\n", cmd) //nolint:errcheck // best-effort REPL output
		}
	}
}

// completeAtEnd completes with the cursor at the end of the last line.
func (s *session) completeAtEnd() []complete.Candidate {
	if len(s.lines) == 0 {
		return nil
	}
	last := s.lines[len(s.lines)-1]
	rest := &session{provider: s.provider, timeout: s.timeout, lines: s.lines[:len(s.lines)-1]}
	return rest.completeAt(last)
}

func printCandidates(w io.Writer, items []complete.Candidate) {
	if len(items) == 0 {
		fmt.Fprintln(w, "no completions") //nolint:errcheck // best-effort REPL output
		return
	}
	for _, c := range items {
		if c.Detail != "" {
			fmt.Fprintf(w, "%s\t%s\n", c.Label, c.Detail) //nolint:errcheck // best-effort REPL output
			continue
		}
		fmt.Fprintln(w, c.Label) //nolint:errcheck // best-effort REPL output
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".svgls_history")
}

// ensureHistoryFilePermissions creates the history file readable only by
// its owner, or restricts an existing one.
func ensureHistoryFilePermissions(path string) {
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, 0o600)
	if err != nil {
		return
	}
	_ = f.Close()
	_ = os.Chmod(path, 0o600)
}
