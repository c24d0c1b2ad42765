package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cyberquest/internal/content"
	"github.com/abhisek/cyberquest/internal/quiz"
	"github.com/abhisek/cyberquest/internal/router"
	"github.com/abhisek/cyberquest/internal/screen"
	"github.com/abhisek/cyberquest/internal/ui/components"
	"github.com/abhisek/cyberquest/internal/ui/layout"
	"github.com/abhisek/cyberquest/internal/ui/theme"
)

// Result is what a finished quiz hands to the summary screen.
type Result struct {
	Heading    string
	Final      bool
	Score      int
	Total      int
	Percentage int
	Passed     bool

	// Module quizzes only.
	ModuleCompleted bool
	NeedsTerminal   bool

	// Final quiz only.
	Rank *quiz.Rank

	Questions []content.Question
	Answers   []int
}

// CanRetry reports whether another attempt is offered. Module quizzes are
// retried after a fail; the final quiz can always be retaken.
func (r Result) CanRetry() bool {
	return r.Final || !r.Passed
}

// SummaryScreen displays a finished quiz.
type SummaryScreen struct {
	result Result
	again  func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. again builds the screen for another
// attempt; it may be nil.
func New(result Result, again func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{result: result, again: again}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	if s.canRetry() {
		label := "Retry"
		if s.result.Final {
			label = "Retake"
		}
		hints = append(hints, layout.KeyHint{Key: "r", Description: label})
	}
	return hints
}

func (s *SummaryScreen) canRetry() bool {
	return s.again != nil && s.result.CanRetry()
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			return s, router.Pop()
		case "r":
			if s.canRetry() {
				return s, router.Replace(s.again())
			}
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(r.Heading + " complete")))
	b.WriteString("\n\n")

	verdict := theme.Incorrect.Render("ACCESS DENIED")
	if r.Passed {
		verdict = theme.Correct.Render("ACCESS GRANTED")
	}
	b.WriteString(center(verdict))
	b.WriteString("\n\n")

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text).
		Render(fmt.Sprintf("Score: %d/%d        %d%%        pass mark %d%%",
			r.Score, r.Total, r.Percentage, quiz.PassThreshold))))
	b.WriteString("\n")
	bar := components.NewCountBar("", r.Score, r.Total, min(width-8, 50))
	b.WriteString(center(bar.View()))
	b.WriteString("\n\n")

	if msg := s.message(); msg != "" {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Accent).Render(msg)))
		b.WriteString("\n\n")
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-8, 60)))
	b.WriteString(center(theme.Hint.Render("Review")))
	b.WriteString("\n")
	b.WriteString(center(divider))
	b.WriteString("\n")

	var rows []string
	for i, q := range r.Questions {
		chosen := -1
		if i < len(r.Answers) {
			chosen = r.Answers[i]
		}
		mark := theme.Incorrect.Render("✗")
		if q.IsCorrect(chosen) {
			mark = theme.Correct.Render("✓")
		}
		prompt := q.Prompt
		if limit := 56; len([]rune(prompt)) > limit {
			prompt = string([]rune(prompt)[:limit-1]) + "…"
		}
		rows = append(rows, fmt.Sprintf("%s %2d. %s", mark, i+1, theme.Body.Render(prompt)))
	}
	b.WriteString(center(strings.Join(rows, "\n")))

	return b.String()
}

// message returns the follow-up line under the score.
func (s *SummaryScreen) message() string {
	r := s.result
	switch {
	case r.Final && r.Rank != nil:
		return fmt.Sprintf("%s  Rank: %s", r.Rank.Icon, r.Rank.Title)
	case !r.Passed:
		return "Review the explanations and try again."
	case r.ModuleCompleted:
		return "Module complete. Nice work, operator."
	case r.NeedsTerminal:
		return "Quiz passed. Capture the flag in the terminal to finish the module."
	}
	return ""
}
