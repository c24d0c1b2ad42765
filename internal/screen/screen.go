package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cyberquest/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Refresher is implemented by screens that derive their view from learner
// progress. The router calls Refresh when the screen becomes active again
// after the screen above it is popped.
type Refresher interface {
	Refresh() tea.Cmd
}

// InputCapturer is implemented by screens with a focused text field.
// While CapturesInput reports true, the app does not treat plain keys
// such as "q" as global shortcuts.
type InputCapturer interface {
	CapturesInput() bool
}
