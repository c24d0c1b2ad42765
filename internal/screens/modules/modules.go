package modules

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cyberquest/internal/progress"
	"github.com/abhisek/cyberquest/internal/router"
	"github.com/abhisek/cyberquest/internal/screen"
	"github.com/abhisek/cyberquest/internal/screens/moduledetail"
	"github.com/abhisek/cyberquest/internal/ui/components"
	"github.com/abhisek/cyberquest/internal/ui/layout"
	"github.com/abhisek/cyberquest/internal/ui/theme"
)

// ModulesScreen lists every training module with its status.
type ModulesScreen struct {
	env      *screen.Env
	snap     progress.State
	selected int
}

var _ screen.Screen = (*ModulesScreen)(nil)
var _ screen.Refresher = (*ModulesScreen)(nil)
var _ screen.KeyHintProvider = (*ModulesScreen)(nil)

// New creates a ModulesScreen.
func New(env *screen.Env) *ModulesScreen {
	return &ModulesScreen{env: env, snap: env.Progress.Snapshot()}
}

func (s *ModulesScreen) Init() tea.Cmd {
	return nil
}

func (s *ModulesScreen) Refresh() tea.Cmd {
	s.snap = s.env.Progress.Snapshot()
	return nil
}

func (s *ModulesScreen) Title() string {
	return "Modules"
}

func (s *ModulesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ModulesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	mods := s.env.Catalog.Modules
	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(mods)-1 {
			s.selected++
		}
	case "enter":
		if len(mods) == 0 {
			return s, nil
		}
		return s, router.Push(moduledetail.New(s.env, s.Selected()))
	}
	return s, nil
}

// Selected returns the highlighted module id.
func (s *ModulesScreen) Selected() string {
	return s.env.Catalog.Modules[s.selected].ID
}

func (s *ModulesScreen) View(width, height int) string {
	mods := s.env.Catalog.Modules
	cw := components.ContentWidth(width)

	done := 0
	for _, m := range mods {
		if s.snap.Module(m.ID).Completed {
			done++
		}
	}

	var b strings.Builder
	b.WriteString("\n")
	bar := components.NewCountBar(fmt.Sprintf("Progress %d/%d", done, len(mods)), done, len(mods), cw)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	var rows []string
	for i, m := range mods {
		st := s.snap.Module(m.ID).Status()

		iconStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		switch st {
		case progress.StatusCompleted:
			iconStyle = lipgloss.NewStyle().Foreground(theme.Success)
		case progress.StatusInProgress:
			iconStyle = lipgloss.NewStyle().Foreground(theme.Warning)
		}

		prefix := "  "
		titleStyle := theme.Unselected
		if i == s.selected {
			prefix = "▸ "
			titleStyle = theme.Selected
		}

		terminalMark := "  "
		if m.HasTerminal() {
			terminalMark = ">_"
		}

		row := fmt.Sprintf("%s%s %s %s  %s  %s",
			titleStyle.Render(prefix),
			iconStyle.Render(st.Icon()),
			m.Icon,
			titleStyle.Render(fmt.Sprintf("%-28s", m.Title)),
			theme.DifficultyColor(string(m.Difficulty)).Render(fmt.Sprintf("%-12s", m.Difficulty.DisplayName())),
			theme.Hint.Render(fmt.Sprintf("%-8s %s", m.EstimatedTime, terminalMark)),
		)
		rows = append(rows, row)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(rows, "\n")))
	b.WriteString("\n\n")

	if len(mods) > 0 {
		desc := lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw).Render(mods[s.selected].Description)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, desc))
	}

	return b.String()
}
