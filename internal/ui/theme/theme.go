package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, phosphor-terminal greens on a near-black background
var (
	Primary   = lipgloss.Color("#22C55E") // Terminal Green
	Secondary = lipgloss.Color("#22D3EE") // Cyan
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#4ADE80") // Light Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Warning   = lipgloss.Color("#FACC15") // Yellow
	Text      = lipgloss.Color("#E2E8F0") // Off White
	TextDim   = lipgloss.Color("#64748B") // Slate
	BgDark    = lipgloss.Color("#020617") // Near Black
	BgCard    = lipgloss.Color("#0F172A") // Deep Navy
	Border    = lipgloss.Color("#1E3A2F") // Dark Green
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Disabled = lipgloss.NewStyle().
			Foreground(TextDim)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Terminal transcript
var (
	TermPrompt  = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	TermOutput  = lipgloss.NewStyle().Foreground(Text)
	TermError   = lipgloss.NewStyle().Foreground(Error)
	TermSuccess = lipgloss.NewStyle().Foreground(Warning).Bold(true)
)

// DifficultyColor returns the badge color for a difficulty name.
func DifficultyColor(name string) lipgloss.Style {
	switch name {
	case "beginner":
		return lipgloss.NewStyle().Foreground(Success)
	case "intermediate":
		return lipgloss.NewStyle().Foreground(Warning)
	default:
		return lipgloss.NewStyle().Foreground(Error)
	}
}
