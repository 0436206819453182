// Package share formats a finished session as a spoiler-free result grid
// and puts it on the system clipboard.
package share

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/f3rmion/snack/internal/engine"
	"github.com/f3rmion/snack/internal/snack"
)

var squares = map[snack.Verdict]string{
	snack.Match:     "🟩",
	snack.Partial:   "🟨",
	snack.Higher:    "⬆️",
	snack.Lower:     "⬇️",
	snack.Different: "🟥",
}

// Row renders one comparison as a line of squares, in schema order.
func Row(cmp snack.Comparison) string {
	var b strings.Builder
	for _, r := range cmp.Results {
		sq, ok := squares[r.Verdict]
		if !ok {
			sq = "⬜"
		}
		b.WriteString(sq)
	}
	return b.String()
}

// Grid renders a session's guesses oldest first, under a one-line header.
// Item names never appear, so the grid can be posted without giving the
// answer away.
func Grid(title, day string, s *engine.Session) string {
	var b strings.Builder

	score := "X"
	if s.IsSolved() {
		score = fmt.Sprint(s.Attempts())
	}
	fmt.Fprintf(&b, "%s %s %s\n", title, day, score)

	for _, g := range s.Guesses() {
		b.WriteString(Row(g.Comparison))
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// Copy writes text to the system clipboard.
func Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard available (install xclip or xsel)")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}
