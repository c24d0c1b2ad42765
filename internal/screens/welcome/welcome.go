package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cyberquest/internal/router"
	"github.com/abhisek/cyberquest/internal/screen"
	"github.com/abhisek/cyberquest/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const lockArt = `    ╭───────╮
    │ ╭───╮ │
    │ │   │ │
  ╭─┴─┴───┴─┴─╮
  │   ┌───┐   │
  │   │ ● │   │
  │   └─┬─┘   │
  │     │     │
  ╰───────────╯`

// bootLines type out beneath the lock while the splash plays.
var bootLines = []string{
	"[ OK ] loading training modules",
	"[ OK ] arming terminal simulator",
	"[ OK ] restoring operator progress",
}

// cursor frames blink after the boot log
var cursorFrames = []string{"█", " "}

type tickMsg time.Time

// WelcomeScreen shows a splash animation before transitioning to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	return router.Replace(w.homeFactory())
}

// visibleBootLines returns how many boot lines have printed by now.
func (w *WelcomeScreen) visibleBootLines() int {
	if w.elapsed < phase1End {
		return 0
	}
	step := (phase2End - phase1End) / time.Duration(len(bootLines))
	n := int((w.elapsed-phase1End)/step) + 1
	if n > len(bootLines) {
		n = len(bootLines)
	}
	return n
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Primary).Render(lockArt))

	// Phase 2: boot log
	if n := w.visibleBootLines(); n > 0 {
		okStyle := lipgloss.NewStyle().Foreground(theme.Success)
		var log []string
		for _, l := range bootLines[:n] {
			log = append(log, okStyle.Render(l))
		}
		sections = append(sections, "", strings.Join(log, "\n"))
	}

	// Phase 3: banner + tagline
	if w.elapsed >= phase2End {
		sections = append(sections, "", RenderBanner(width), "")

		cursor := cursorFrames[w.tickCount%len(cursorFrames)]
		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Learn to break in. Learn to keep them out." + cursor)
		sections = append(sections, tagline)

		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, "", hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
