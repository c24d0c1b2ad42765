package moduledetail

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/cyberquest/internal/content"
	"github.com/abhisek/cyberquest/internal/progress"
	"github.com/abhisek/cyberquest/internal/quiz"
	"github.com/abhisek/cyberquest/internal/router"
	"github.com/abhisek/cyberquest/internal/screen"
	"github.com/abhisek/cyberquest/internal/screens/notice"
	quizscreen "github.com/abhisek/cyberquest/internal/screens/quiz"
	terminalscreen "github.com/abhisek/cyberquest/internal/screens/terminal"
	"github.com/abhisek/cyberquest/internal/ui/components"
	"github.com/abhisek/cyberquest/internal/ui/layout"
	"github.com/abhisek/cyberquest/internal/ui/theme"
)

// DetailScreen shows one module's overview, requirements and actions.
type DetailScreen struct {
	env    *screen.Env
	module *content.Module
	next   *content.Module
	mp     progress.ModuleProgress
	menu   components.Menu
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.Refresher = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

// New returns the detail screen for id, or a not-found notice when the
// catalog has no such module.
func New(env *screen.Env, id string) screen.Screen {
	m, err := env.Catalog.Module(id)
	if err != nil {
		env.Log().Warn("open module", zap.String("module", id), zap.Error(err))
		return notice.NotFound(id)
	}
	d := &DetailScreen{
		env:    env,
		module: m,
		next:   env.Catalog.NextModule(id),
	}
	d.reload()
	return d
}

func (d *DetailScreen) reload() {
	d.mp = d.env.Progress.Module(d.module.ID)

	env, m := d.env, d.module
	items := []components.MenuItem{
		{Label: "Take Quiz", Action: func() tea.Cmd {
			return router.Push(quizscreen.New(env, m))
		}},
	}
	if m.HasTerminal() {
		items = append(items, components.MenuItem{Label: "Open Terminal", Action: func() tea.Cmd {
			return router.Push(terminalscreen.New(env, m))
		}})
	}
	if d.next != nil {
		next := d.next
		item := components.MenuItem{Label: "Next Module: " + next.Title, Action: func() tea.Cmd {
			return router.Replace(New(env, next.ID))
		}}
		if !d.mp.Completed {
			item.Disabled = true
			item.Note = "complete this module first"
		}
		items = append(items, item)
	}
	items = append(items, components.MenuItem{Label: "Back", Action: router.Pop})

	selected := d.menu.Selected
	d.menu = components.NewMenu(items)
	if selected < len(items) && !items[selected].Disabled {
		d.menu.Selected = selected
	}
}

func (d *DetailScreen) Init() tea.Cmd {
	return nil
}

func (d *DetailScreen) Refresh() tea.Cmd {
	d.reload()
	return nil
}

func (d *DetailScreen) Title() string {
	return d.module.Title
}

func (d *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *DetailScreen) View(width, height int) string {
	m := d.module
	cw := components.ContentWidth(width)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(fmt.Sprintf("%s  %s", m.Icon, m.Title)))
	b.WriteString("\n")
	b.WriteString(theme.DifficultyColor(string(m.Difficulty)).Render(m.Difficulty.DisplayName()))
	b.WriteString(theme.Hint.Render("  ·  " + m.EstimatedTime + "  ·  " + d.mp.Status().String()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 6).Render(m.Description))
	b.WriteString("\n\n")

	b.WriteString(theme.Subtitle.Render("Topics"))
	b.WriteString("\n")
	for _, t := range m.Topics {
		b.WriteString(theme.Body.Render("  • " + t))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(theme.Subtitle.Render("Requirements"))
	b.WriteString("\n")
	total := len(m.Questions)
	quizDone := quiz.Passed(d.mp.QuizScore, total)
	b.WriteString(requirement(quizDone, fmt.Sprintf("Quiz: score %d%% or more (%d questions)", quiz.PassThreshold, total)))
	if quizDone {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  best %d/%d", d.mp.QuizScore, total)))
	}
	b.WriteString("\n")
	if m.HasTerminal() {
		b.WriteString(requirement(d.mp.TerminalCompleted, "Terminal: capture the flag"))
		b.WriteString("\n")
	}
	if d.mp.Completed {
		b.WriteString("\n")
		b.WriteString(components.Badge("MODULE COMPLETE", theme.Success))
		b.WriteString("\n")
	}

	card := components.Card(b.String(), cw)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card) + "\n\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, d.menu.View())
}

func requirement(done bool, text string) string {
	if done {
		return theme.Correct.Render("  ✔ ") + theme.Body.Render(text)
	}
	return theme.Disabled.Render("  ○ " + text)
}
