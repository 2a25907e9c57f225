// Copyright © 2026 The svgls authors

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/luthersystems/svgls/complete"
	"github.com/luthersystems/svgls/markup"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
)

const defaultCursorMarker = "|"

var (
	completeLine   int
	completeCol    int
	completeJSON   bool
	completeMarker string
)

// completeCmd represents the complete command
var completeCmd = &cobra.Command{
	Use:   "complete [flags] FILE",
	Short: "Print the completions at a position in an SVG document",
	Long: `Print the completion candidates svgls offers at one position of an
SVG document, the way an editor would receive them.

The position is given with --line and --col (both 1-based, columns in
bytes). Without them the document must contain a '|' marking the cursor;
the marker is removed before completing. Only the first occurrence counts,
so a document that already contains '|' (in CSS or text, say) needs
another marker chosen with --marker. Use '-' to read the document from
stdin.

Examples:
  svgls complete icon.svg --line 4 --col 6
  echo '<svg><rect stroke-linecap="|' | svgls complete -
  svgls complete --marker '@@' - < styled.svg
  svgls complete --json - < draft.svg`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readDocument(cmd.InOrStdin(), args[0])
		if err != nil {
			return err
		}
		buf, pos, err := cursorPosition(text, completeLine, completeCol, completeMarker)
		if err != nil {
			return err
		}
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}

		ctx := context.Background()
		if d := completionTimeout(); d > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, d)
			defer cancel()
		}
		items := complete.NewProvider(catalog).Complete(ctx, buf, pos)

		out := cmd.OutOrStdout()
		if completeJSON {
			return writeCandidatesJSON(out, items)
		}
		writeCandidates(out, items)
		return nil
	},
}

func readDocument(stdin io.Reader, name string) (string, error) {
	var (
		b   []byte
		err error
	)
	if name == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(name)
	}
	if err != nil {
		return "", fmt.Errorf("reading document: %w", err)
	}
	return string(b), nil
}

// cursorPosition locates the cursor from 1-based line and col, or from
// the first occurrence of marker when line is zero.
func cursorPosition(text string, line, col int, marker string) (*markup.StringBuffer, markup.Position, error) {
	if line > 0 {
		if col < 1 {
			return nil, markup.Position{}, errors.New("--col must be at least 1")
		}
		buf := markup.NewStringBuffer(text)
		if line > buf.LineCount() {
			return nil, markup.Position{}, fmt.Errorf("line %d is past the end of the document (%d lines)", line, buf.LineCount())
		}
		return buf, markup.Position{Line: line - 1, Character: col - 1}, nil
	}
	if marker == "" {
		return nil, markup.Position{}, errors.New("--marker must not be empty")
	}
	idx := strings.Index(text, marker)
	if idx < 0 {
		return nil, markup.Position{}, fmt.Errorf("no position: pass --line and --col or mark the cursor with %q", marker)
	}
	buf := markup.NewStringBuffer(text[:idx] + text[idx+len(marker):])
	return buf, buf.PositionAt(idx), nil
}

func writeCandidates(w io.Writer, items []complete.Candidate) {
	if len(items) == 0 {
		fmt.Fprintln(w, "no completions")
		return
	}
	for i, c := range items {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%s)", c.Label, c.Kind)
		if c.Detail != "" {
			fmt.Fprintf(w, " %s", c.Detail)
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  insert: %s\n", strconv.Quote(c.Text()))
		if c.Command.Kind != complete.CommandNone {
			fmt.Fprintf(w, "  cursor: %s\n", describeCommand(c.Command))
		}
		if c.Documentation != "" {
			fmt.Fprintln(w, wrapDoc(c.Documentation, 4))
		}
	}
}

func describeCommand(cmd complete.CursorCommand) string {
	s := fmt.Sprintf("%s %d", cmd.Kind, cmd.Offset)
	if cmd.HasEnumFollowUp {
		s += ", then complete values"
	}
	return s
}

type jsonCommand struct {
	Kind            string `json:"kind"`
	Offset          int    `json:"offset"`
	HasEnumFollowUp bool   `json:"hasEnumFollowUp,omitempty"`
}

type jsonCandidate struct {
	Label         string        `json:"label"`
	Kind          string        `json:"kind"`
	Detail        string        `json:"detail,omitempty"`
	Documentation string        `json:"documentation,omitempty"`
	InsertText    string        `json:"insertText"`
	Range         *markup.Range `json:"range,omitempty"`
	Command       *jsonCommand  `json:"command,omitempty"`
}

func writeCandidatesJSON(w io.Writer, items []complete.Candidate) error {
	out := make([]jsonCandidate, 0, len(items))
	for _, c := range items {
		jc := jsonCandidate{
			Label:         c.Label,
			Kind:          c.Kind.String(),
			Detail:        c.Detail,
			Documentation: c.Documentation,
			InsertText:    c.Text(),
		}
		if c.Edit != nil {
			r := c.Edit.Range
			jc.Range = &r
		}
		if c.Command.Kind != complete.CommandNone {
			jc.Command = &jsonCommand{
				Kind:            c.Command.Kind.String(),
				Offset:          c.Command.Offset,
				HasEnumFollowUp: c.Command.HasEnumFollowUp,
			}
		}
		out = append(out, jc)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// wrapDoc wraps documentation for the terminal and indents it by n
// spaces.
func wrapDoc(doc string, n uint) string {
	doc = indent.String(wordwrap.String(strings.TrimSpace(doc), 72), n)
	return strings.TrimSuffix(doc, "\n")
}

func init() {
	rootCmd.AddCommand(completeCmd)

	completeCmd.Flags().IntVarP(&completeLine, "line", "l", 0, "1-based line of the cursor")
	completeCmd.Flags().IntVarP(&completeCol, "col", "c", 0, "1-based byte column of the cursor")
	completeCmd.Flags().BoolVar(&completeJSON, "json", false, "print candidates as JSON")
	completeCmd.Flags().StringVar(&completeMarker, "marker", defaultCursorMarker, "text marking the cursor when --line is not given")
}
