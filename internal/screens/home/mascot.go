package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cyberquest/internal/ui/theme"
)

// MascotVariant selects which sentinel art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Green, still training
	MascotAlert                            // Amber, final quiz unlocked
	MascotCelebrating                      // Yellow, final quiz passed
)

const mascotIdle = `┌─────┐
│ ▪ ▪ │
│  ─  │
│ >_  │
└─────┘`

const mascotAlert = `┌─────┐
│ ◉ ◉ │ !
│  ○  │
│ >_  │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ #!  │
└─╥═╥─┘
  ╚═╝`

// variantFor picks the sentinel mood from the learner's standing.
func variantFor(finalUnlocked, finalPassed bool) MascotVariant {
	switch {
	case finalPassed:
		return MascotCelebrating
	case finalUnlocked:
		return MascotAlert
	default:
		return MascotIdle
	}
}

// RenderMascot returns the sentinel ASCII art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.Warning
	case MascotAlert:
		art = mascotAlert
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
