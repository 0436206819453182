// Package tui provides the interactive terminal game.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/snack/internal/snack"
)

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // Red - titles, misses
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - subtitles, prompt
	ColorAccent    = lipgloss.Color("#ffe66d") // Yellow - partial, input
	ColorMuted     = lipgloss.Color("#666666") // Gray - help text
	ColorSuccess   = lipgloss.Color("#a8e6cf") // Green - matches
	ColorText      = lipgloss.Color("#f1faee") // Light text
	ColorLabel     = lipgloss.Color("#a8dadc") // Label color
	ColorBg        = lipgloss.Color("#1a1a2e") // Dark background
	ColorBgAlt     = lipgloss.Color("#2d3436") // Alt background
	ColorBorder    = lipgloss.Color("#3d5a80") // Border color
)

// Title styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)
)

// Verdict cell styles
var (
	MatchStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	PartialStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	DirectionStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	MissStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorLabel).
			Bold(true)

	NameStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)
)

// Clue summary styles
var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorLabel).
			Bold(true).
			Width(14)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText)
)

// Box styles
var (
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	SearchBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 1)

	SuggestionStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	SuggestionActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent).
				Background(ColorBgAlt).
				Padding(0, 1)
)

// Status styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	WinStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	RevealStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)
)

// ContentStyle pads the whole screen.
var ContentStyle = lipgloss.NewStyle().
	Padding(1, 2)

// VerdictStyle returns the cell style for a verdict.
func VerdictStyle(v snack.Verdict) lipgloss.Style {
	switch v {
	case snack.Match:
		return MatchStyle
	case snack.Partial:
		return PartialStyle
	case snack.Higher, snack.Lower:
		return DirectionStyle
	default:
		return MissStyle
	}
}
