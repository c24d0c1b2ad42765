package home

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/cyberquest/internal/router"
	"github.com/abhisek/cyberquest/internal/screen"
	"github.com/abhisek/cyberquest/internal/screens/finalquiz"
	"github.com/abhisek/cyberquest/internal/screens/history"
	"github.com/abhisek/cyberquest/internal/screens/modules"
	"github.com/abhisek/cyberquest/internal/ui/components"
	"github.com/abhisek/cyberquest/internal/ui/layout"
)

// Menu positions.
const (
	itemModules = iota
	itemFinalQuiz
	itemHistory
	itemReset
	itemExit
)

type stats struct {
	completed      int
	modules        int
	score          int
	finalScore     int
	finalCompleted bool
	finalUnlocked  bool
}

// HomeScreen is the main menu.
type HomeScreen struct {
	env        *screen.Env
	menu       components.Menu
	stats      stats
	confirming bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Refresher = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(env *screen.Env) *HomeScreen {
	h := &HomeScreen{env: env}
	h.reload()
	return h
}

// reload recomputes stats and the menu from the progress store.
func (h *HomeScreen) reload() {
	p := h.env.Progress
	snap := p.Snapshot()
	h.stats = stats{
		completed:      p.CompletedModulesCount(),
		modules:        len(h.env.Catalog.Modules),
		score:          p.TotalScore(),
		finalScore:     snap.FinalQuizScore,
		finalCompleted: snap.FinalQuizCompleted,
		finalUnlocked:  p.CanAccessFinalQuiz(),
	}

	env := h.env
	items := []components.MenuItem{
		itemModules: {Label: "MODULES", Action: func() tea.Cmd {
			return router.Push(modules.New(env))
		}},
		itemFinalQuiz: {Label: "FINAL QUIZ", Disabled: !h.stats.finalUnlocked, Action: func() tea.Cmd {
			return router.Push(finalquiz.New(env))
		}},
		itemHistory: {Label: "HISTORY", Action: func() tea.Cmd {
			return router.Push(history.New(env))
		}},
		itemReset: {Label: "RESET PROGRESS", Action: func() tea.Cmd {
			h.confirming = true
			return nil
		}},
		itemExit: {Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	selected := h.menu.Selected
	h.menu = components.NewMenu(items)
	if selected > 0 && selected < len(items) && !items[selected].Disabled {
		h.menu.Selected = selected
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Refresh() tea.Cmd {
	h.reload()
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if h.confirming {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			switch kmsg.String() {
			case "y", "Y":
				h.reset()
				h.confirming = false
			case "n", "N", "esc":
				h.confirming = false
			}
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) reset() {
	h.env.Progress.Reset()
	if h.env.Attempts != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.env.Attempts.Clear(ctx); err != nil {
			h.env.Log().Error("clear attempt log failed", zap.Error(err))
		}
	}
	h.reload()
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 34 || width < 100

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		variant := variantFor(h.stats.finalUnlocked, h.stats.finalCompleted && h.stats.finalScore >= 70)
		sections = append(sections, renderMascotBox(variant, cw))
	}

	sections = append(sections, renderStatsBar(h.stats, cw, compact))

	if h.confirming {
		sections = append(sections, renderConfirm(cw))
	} else if compact {
		sections = append(sections, renderArcadeMenuCompact(
			h.menu.Labels(), h.menu.Selected, cw, h.menu.DisabledSet()))
	} else {
		sections = append(sections, renderArcadeMenu(
			h.menu.Labels(), h.menu.Selected, cw, h.menu.DisabledSet()))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.confirming {
		return []layout.KeyHint{
			{Key: "y", Description: "Erase"},
			{Key: "n", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
