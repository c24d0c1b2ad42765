package quiz

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/cyberquest/internal/content"
	"github.com/abhisek/cyberquest/internal/quiz"
	"github.com/abhisek/cyberquest/internal/router"
	"github.com/abhisek/cyberquest/internal/screen"
	"github.com/abhisek/cyberquest/internal/screens/summary"
	"github.com/abhisek/cyberquest/internal/store"
	"github.com/abhisek/cyberquest/internal/ui/components"
	"github.com/abhisek/cyberquest/internal/ui/layout"
	"github.com/abhisek/cyberquest/internal/ui/theme"
)

// QuizScreen runs one quiz attempt, either a module quiz or the final quiz.
type QuizScreen struct {
	env    *screen.Env
	module *content.Module // nil for the final quiz
	eval   *quiz.Evaluator
	mc     components.MultiChoice

	lastCorrect bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz over m's questions.
func New(env *screen.Env, m *content.Module) *QuizScreen {
	s := &QuizScreen{env: env, module: m, eval: quiz.New(m.Questions)}
	s.loadQuestion()
	return s
}

// NewFinal creates the cumulative final quiz.
func NewFinal(env *screen.Env) *QuizScreen {
	s := &QuizScreen{env: env, eval: quiz.New(env.Catalog.FinalQuiz)}
	s.loadQuestion()
	return s
}

func (s *QuizScreen) final() bool { return s.module == nil }

func (s *QuizScreen) loadQuestion() {
	q := s.eval.Current()
	s.mc = components.NewMultiChoice(q.Prompt, q.Options, q.CorrectAnswer)
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	if s.final() {
		return "Final Quiz"
	}
	return s.module.Title + " · Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.eval.Answered() {
		label := "Next"
		if s.eval.IsLast() {
			label = "Finish"
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: label},
			{Key: "Esc", Description: "Abandon"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "1-4", Description: "Answer"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.eval.Phase() == quiz.PhaseComplete {
		return s, nil
	}

	if !s.eval.Answered() {
		mc, chosen, ok := s.mc.Update(msg)
		s.mc = mc
		if ok {
			res := s.eval.Select(chosen)
			if res.Accepted {
				s.mc.Reveal(chosen)
				s.lastCorrect = res.Correct
			}
		}
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || kmsg.String() != "enter" {
		return s, nil
	}

	completion, advanced := s.eval.Advance()
	if completion != nil {
		return s, s.finish(*completion)
	}
	if advanced {
		s.loadQuestion()
	}
	return s, nil
}

// finish records the attempt and swaps in the result screen.
func (s *QuizScreen) finish(c quiz.Completion) tea.Cmd {
	res := summary.Result{
		Score:      c.Score,
		Total:      c.Total,
		Percentage: c.Percentage(),
		Passed:     c.Passed(),
		Questions:  s.questions(),
		Answers:    s.eval.Answers(),
	}

	attempt := store.Attempt{
		Score:      c.Score,
		Total:      c.Total,
		Percentage: res.Percentage,
		Passed:     res.Passed,
	}

	if s.final() {
		out := s.env.Progress.RecordFinalQuiz(c)
		res.Passed = out.Passed
		attempt.Passed = out.Passed
		rank := quiz.RankFor(res.Percentage)
		res.Final = true
		res.Rank = &rank
		res.Heading = "Final Quiz"
		attempt.Kind = store.AttemptFinal
	} else {
		out := s.env.Progress.RecordQuizResult(s.module, c)
		res.Heading = s.module.Title
		res.ModuleCompleted = out.ModuleCompleted
		res.NeedsTerminal = out.NeedsTerminal
		attempt.Kind = store.AttemptModule
		attempt.ModuleID = s.module.ID
	}
	s.env.RecordAttempt(attempt)

	s.env.Log().Info("quiz finished",
		zap.String("kind", string(attempt.Kind)),
		zap.String("module", attempt.ModuleID),
		zap.Int("score", c.Score),
		zap.Int("total", c.Total),
		zap.Bool("passed", res.Passed))

	return router.Replace(summary.New(res, s.restart))
}

// restart rewinds the evaluator for another attempt at the same quiz.
func (s *QuizScreen) restart() screen.Screen {
	s.eval.Retry()
	s.lastCorrect = false
	s.loadQuestion()
	return s
}

func (s *QuizScreen) questions() []content.Question {
	if s.final() {
		return s.env.Catalog.FinalQuiz
	}
	return s.module.Questions
}

func (s *QuizScreen) View(width, height int) string {
	var b strings.Builder

	info := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", s.eval.Index()+1, s.eval.Total()))
	score := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("score %d", s.eval.Score()))
	pad := width - lipgloss.Width(info) - lipgloss.Width(score) - 4
	if pad < 1 {
		pad = 1
	}
	b.WriteString(info + strings.Repeat(" ", pad) + score)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	body := lipgloss.NewStyle().Width(min(width-8, 80)).Render(s.mc.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body))

	if s.eval.Answered() {
		b.WriteString("\n")
		b.WriteString(s.renderFeedback(width))
	}

	return b.String()
}

func (s *QuizScreen) renderFeedback(width int) string {
	var b strings.Builder
	if s.lastCorrect {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Correct.Render("Correct!")))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Incorrect.Render("Not quite")))
	}
	b.WriteString("\n\n")

	if exp := s.eval.Current().Explanation; exp != "" {
		expStyle := lipgloss.NewStyle().Width(min(width-8, 70)).Foreground(theme.Text)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, expStyle.Render(exp)))
		b.WriteString("\n")
	}
	return b.String()
}
