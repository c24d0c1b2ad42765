package finalquiz

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cyberquest/internal/content"
	"github.com/abhisek/cyberquest/internal/quiz"
	"github.com/abhisek/cyberquest/internal/router"
	"github.com/abhisek/cyberquest/internal/screen"
	quizscreen "github.com/abhisek/cyberquest/internal/screens/quiz"
	"github.com/abhisek/cyberquest/internal/ui/components"
	"github.com/abhisek/cyberquest/internal/ui/layout"
	"github.com/abhisek/cyberquest/internal/ui/theme"
)

// FinalQuizScreen is the gate in front of the cumulative final quiz.
// It shows a locked view until every module is complete, then an intro
// with the last result.
type FinalQuizScreen struct {
	env        *screen.Env
	unlocked   bool
	remaining  []content.Module
	lastScore  int
	hasAttempt bool
}

var _ screen.Screen = (*FinalQuizScreen)(nil)
var _ screen.Refresher = (*FinalQuizScreen)(nil)
var _ screen.KeyHintProvider = (*FinalQuizScreen)(nil)

// New creates a FinalQuizScreen.
func New(env *screen.Env) *FinalQuizScreen {
	s := &FinalQuizScreen{env: env}
	s.reload()
	return s
}

func (s *FinalQuizScreen) reload() {
	p := s.env.Progress
	s.unlocked = p.CanAccessFinalQuiz()
	s.remaining = s.remaining[:0]
	for _, m := range s.env.Catalog.Modules {
		if !p.IsModuleCompleted(m.ID) {
			s.remaining = append(s.remaining, m)
		}
	}
	snap := p.Snapshot()
	s.lastScore = snap.FinalQuizScore
	s.hasAttempt = snap.FinalQuizCompleted
}

func (s *FinalQuizScreen) Init() tea.Cmd {
	return nil
}

func (s *FinalQuizScreen) Refresh() tea.Cmd {
	s.reload()
	return nil
}

func (s *FinalQuizScreen) Title() string {
	return "Final Quiz"
}

func (s *FinalQuizScreen) KeyHints() []layout.KeyHint {
	if !s.unlocked {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	label := "Start"
	if s.hasAttempt {
		label = "Retake"
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: label},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *FinalQuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		if !s.unlocked || len(s.env.Catalog.FinalQuiz) == 0 {
			return s, nil
		}
		return s, router.Push(quizscreen.NewFinal(s.env))
	}
	return s, nil
}

func (s *FinalQuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var body string
	if s.unlocked {
		body = s.introView()
	} else {
		body = s.lockedView()
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, components.Card(body, cw))
}

func (s *FinalQuizScreen) lockedView() string {
	var b strings.Builder
	b.WriteString(theme.Incorrect.Render("🔒 FINAL QUIZ LOCKED"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render("Complete every module to unlock the final assessment."))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Remaining (%d)", len(s.remaining))))
	b.WriteString("\n")
	for _, m := range s.remaining {
		b.WriteString(theme.Disabled.Render(fmt.Sprintf("  ○ %s %s", m.Icon, m.Title)))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *FinalQuizScreen) introView() string {
	total := len(s.env.Catalog.FinalQuiz)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("⚑ FINAL ASSESSMENT"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf(
		"%d questions drawn from every module.\nScore %d%% or more to pass.", total, quiz.PassThreshold)))
	b.WriteString("\n\n")

	b.WriteString(theme.Subtitle.Render("Ranks"))
	b.WriteString("\n")
	for _, pct := range []int{95, 85, quiz.PassThreshold} {
		r := quiz.RankFor(pct)
		b.WriteString(theme.Body.Render(fmt.Sprintf("  %s %-16s %d%%+", r.Icon, r.Title, pct)))
		b.WriteString("\n")
	}

	if s.hasAttempt {
		r := quiz.RankFor(s.lastScore)
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(
			fmt.Sprintf("Last result: %d%%  %s %s", s.lastScore, r.Icon, r.Title)))
		b.WriteString("\n")
	}
	return b.String()
}
