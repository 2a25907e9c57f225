// Copyright © 2026 The svgls authors

package repl

import (
	"strings"

	"github.com/luthersystems/svgls/complete"
)

// markupCompleter implements readline.AutoCompleter on top of the
// completion provider.
type markupCompleter struct {
	session *session
}

func (c *markupCompleter) Do(line []rune, pos int) ([][]rune, int) {
	// The partial name being typed sits between the trigger character
	// and the cursor.
	start := pos
	for start > 0 && isNameRune(line[start-1]) {
		start--
	}
	prefix := string(line[start:pos])

	candidates := c.session.completeAt(string(line[:start]))
	if len(candidates) == 0 {
		return nil, 0
	}

	// Build completions: each entry is the suffix to append.
	result := make([][]rune, 0, len(candidates))
	for _, cand := range candidates {
		if !strings.HasPrefix(cand.Label, prefix) {
			continue
		}
		result = append(result, []rune(insertion(cand)[len(prefix):]))
	}
	return result, len([]rune(prefix))
}

// insertion is what a candidate types on a single line. Multi-line
// templates collapse to the bare label.
func insertion(c complete.Candidate) string {
	text := c.Text()
	if strings.ContainsRune(text, '\n') || !strings.HasPrefix(text, c.Label) {
		return c.Label
	}
	return text
}

func isNameRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' ||
		r == '-' || r == '_' || r == ':' || r == '.'
}
