package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cyberquest/internal/quiz"
	"github.com/abhisek/cyberquest/internal/screen"
	"github.com/abhisek/cyberquest/internal/store"
	"github.com/abhisek/cyberquest/internal/ui/layout"
	"github.com/abhisek/cyberquest/internal/ui/theme"
)

// pageSize is how many attempts the screen loads.
const pageSize = 50

type historyLoadedMsg struct {
	Attempts []store.Attempt
	Err      error
}

// HistoryScreen displays past quiz attempts.
type HistoryScreen struct {
	env      *screen.Env
	attempts []store.Attempt
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(env *screen.Env) *HistoryScreen {
	return &HistoryScreen{
		env:      env,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.env.Attempts
	return func() tea.Msg {
		if repo == nil {
			return historyLoadedMsg{}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		attempts, err := repo.Recent(ctx, pageSize)
		return historyLoadedMsg{Attempts: attempts, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts = msg.Attempts
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

// label names the quiz an attempt belongs to.
func (s *HistoryScreen) label(a store.Attempt) string {
	if a.Kind == store.AttemptFinal {
		return "Final Quiz"
	}
	if m, err := s.env.Catalog.Module(a.ModuleID); err == nil {
		return m.Title
	}
	return a.ModuleID
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.attempts) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No attempts yet. Take a quiz!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, a := range s.attempts {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		verdict := theme.Incorrect.Render("FAIL")
		if a.Passed {
			verdict = theme.Correct.Render("PASS")
		}

		line := fmt.Sprintf("%s%s  %-26s  %d/%d  %3d%%  ",
			prefix, a.CreatedAt.Format("Jan 02, 2006 15:04"), s.label(a), a.Score, a.Total, a.Percentage)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)+verdict))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    %s quiz · attempt %s", a.Kind, shortID(a.ID))
			if a.Kind == store.AttemptFinal {
				r := quiz.RankFor(a.Percentage)
				detail += fmt.Sprintf(" · %s %s", r.Icon, r.Title)
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
