package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/cyberquest/internal/progress"
	"github.com/abhisek/cyberquest/internal/router"
	"github.com/abhisek/cyberquest/internal/screen"
	"github.com/abhisek/cyberquest/internal/screens/home"
	"github.com/abhisek/cyberquest/internal/screens/welcome"
	"github.com/abhisek/cyberquest/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Env *screen.Env

	// SkipWelcome starts on the home screen.
	SkipWelcome bool
}

// header holds the stats shown in the title bar. It is shared by pointer
// so the progress listener can update it between renders.
type header struct {
	stats layout.Stats
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	env    *screen.Env
	router *router.Router
	header *header
	width  int
	height int
}

// newAppModel creates the root model and subscribes the header to
// progress changes. The returned func unsubscribes.
func newAppModel(opts Options) (AppModel, func()) {
	env := opts.Env
	homeFactory := func() screen.Screen { return home.New(env) }

	var first screen.Screen
	if opts.SkipWelcome {
		first = homeFactory()
	} else {
		first = welcome.New(homeFactory)
	}

	h := &header{stats: statsFor(env)}
	unsubscribe := env.Progress.Subscribe(func(progress.State) {
		h.stats = statsFor(env)
	})

	return AppModel{
		env:    env,
		router: router.New(first),
		header: h,
	}, unsubscribe
}

func statsFor(env *screen.Env) layout.Stats {
	return layout.Stats{
		Completed: env.Progress.CompletedModulesCount(),
		Modules:   len(env.Catalog.Modules),
		Score:     env.Progress.TotalScore(),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) capturing() bool {
	c, ok := m.router.Active().(screen.InputCapturer)
	return ok && c.CapturesInput()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, router.Pop()
			}
			return m, nil
		case "q":
			if m.router.Depth() == 1 && !m.capturing() {
				return m, tea.Quit
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) footerHints() []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		hints = []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	} else {
		hints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
		}
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.header.stats, m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Env == nil || opts.Env.Catalog == nil || opts.Env.Progress == nil {
		return fmt.Errorf("app: env needs a catalog and a progress store")
	}

	model, unsubscribe := newAppModel(opts)
	defer unsubscribe()

	log := opts.Env.Log()
	log.Info("tui starting",
		zap.Int("modules", len(opts.Env.Catalog.Modules)),
		zap.Int("completed", model.header.stats.Completed))

	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		log.Error("tui exited with error", zap.Error(err))
		return fmt.Errorf("run tui: %w", err)
	}
	log.Info("tui stopped")
	return nil
}
