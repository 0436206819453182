package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/snack/internal/engine"
	"github.com/f3rmion/snack/internal/snack"
	"github.com/mattn/go-runewidth"
)

// Column limits of the history table.
const (
	maxCellWidth = 18
	nameWidth    = 22
)

// Mark returns the short symbol shown next to a value.
func Mark(v snack.Verdict) string {
	switch v {
	case snack.Match:
		return "✓"
	case snack.Higher:
		return "↑"
	case snack.Lower:
		return "↓"
	case snack.Partial:
		return "~"
	default:
		return "✗"
	}
}

// FormatNumber prints a number without trailing zeros.
func FormatNumber(v float64, unit string) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if unit != "" {
		s += " " + unit
	}
	return s
}

// FormatValue renders an item's value for one attribute.
func FormatValue(it snack.Item, a snack.Attribute) string {
	switch {
	case a.Kind.IsNumeric():
		return FormatNumber(it.Number(a.Name), a.Unit)
	case a.Kind == snack.SetValued:
		set := it.Set(a.Name)
		if len(set) == 0 {
			return "-"
		}
		return strings.Join(set, ", ")
	default:
		return it.Label(a.Name)
	}
}

// Cell renders one attribute of a guess as "value mark".
func Cell(g engine.Guess, a snack.Attribute) string {
	v := g.Comparison.Verdict(a.Name)
	return FormatValue(g.Item, a) + " " + Mark(v)
}

func label(a snack.Attribute) string {
	if a.Label != "" {
		return a.Label
	}
	return a.Name
}

func pad(s string, width int) string {
	s = runewidth.Truncate(s, width, "…")
	return runewidth.FillRight(s, width)
}

// columnWidths sizes each attribute column to its widest cell.
func columnWidths(schema snack.Schema, guesses []engine.Guess) []int {
	widths := make([]int, len(schema.Attributes))
	for i, a := range schema.Attributes {
		widths[i] = runewidth.StringWidth(label(a))
		for _, g := range guesses {
			if w := runewidth.StringWidth(Cell(g, a)); w > widths[i] {
				widths[i] = w
			}
		}
		if widths[i] > maxCellWidth {
			widths[i] = maxCellWidth
		}
	}
	return widths
}

// RenderHistory renders guesses as a table, newest first.
func RenderHistory(schema snack.Schema, guesses []engine.Guess) string {
	if len(guesses) == 0 {
		return HelpStyle.Render("No guesses yet.")
	}

	widths := columnWidths(schema, guesses)

	var b strings.Builder
	header := []string{HeaderStyle.Render(pad("#", 3)), HeaderStyle.Render(pad("Guess", nameWidth))}
	for i, a := range schema.Attributes {
		header = append(header, HeaderStyle.Render(pad(label(a), widths[i])))
	}
	b.WriteString(strings.Join(header, " "))
	b.WriteString("\n")

	for n := len(guesses) - 1; n >= 0; n-- {
		g := guesses[n]
		row := []string{
			HelpStyle.Render(pad(strconv.Itoa(n+1), 3)),
			NameStyle.Render(pad(g.Name, nameWidth)),
		}
		for i, a := range schema.Attributes {
			style := VerdictStyle(g.Comparison.Verdict(a.Name))
			row = append(row, style.Render(pad(Cell(g, a), widths[i])))
		}
		b.WriteString(strings.Join(row, " "))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// ClueText describes what is known about one attribute, or "" when nothing
// is known yet.
func ClueText(a snack.Attribute, clues engine.ClueState) string {
	switch {
	case a.Kind.IsNumeric():
		c := clues.Numeric[a.Name]
		switch {
		case c.Confirmed != nil:
			return "= " + FormatNumber(*c.Confirmed, a.Unit)
		case c.Min != nil && c.Max != nil:
			return fmt.Sprintf("%s < ? < %s", FormatNumber(*c.Min, ""), FormatNumber(*c.Max, a.Unit))
		case c.Min != nil:
			return "> " + FormatNumber(*c.Min, a.Unit)
		case c.Max != nil:
			return "< " + FormatNumber(*c.Max, a.Unit)
		}
	case a.Kind == snack.SetValued:
		if c := clues.Set[a.Name]; len(c.Matched) > 0 {
			return "includes " + strings.Join(c.Matched, ", ")
		}
	default:
		c := clues.Categorical[a.Name]
		switch {
		case c.Confirmed != nil:
			return "= " + *c.Confirmed
		case len(c.Excluded) > 0:
			return "not " + strings.Join(c.Excluded, ", ")
		}
	}
	return ""
}

// RenderClues renders the clue summary, one line per attribute.
func RenderClues(schema snack.Schema, clues engine.ClueState) string {
	var lines []string
	for _, a := range schema.Attributes {
		text := ClueText(a, clues)
		if text == "" {
			text = HelpStyle.Render("?")
		} else {
			text = ValueStyle.Render(text)
		}
		lines = append(lines, LabelStyle.Render(label(a))+text)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
