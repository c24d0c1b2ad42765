package progress

import (
	"github.com/abhisek/cyberquest/internal/content"
	"github.com/abhisek/cyberquest/internal/quiz"
)

// Outcome describes what a recorded result did to a module.
type Outcome struct {
	Passed          bool
	Percentage      int
	ModuleCompleted bool
	// NeedsTerminal is set when the quiz is passed but the module's
	// terminal challenge is still open.
	NeedsTerminal bool
}

// RecordQuizResult applies a finished module quiz. Failed attempts leave
// the record untouched.
func (s *Store) RecordQuizResult(m *content.Module, c quiz.Completion) Outcome {
	out := Outcome{Passed: c.Passed(), Percentage: c.Percentage()}
	if !out.Passed {
		out.ModuleCompleted = s.IsModuleCompleted(m.ID)
		return out
	}

	terminalDone := s.Module(m.ID).TerminalCompleted
	completed := !m.HasTerminal() || terminalDone
	s.UpdateProgress(m.ID, Patch{
		QuizScore: Int(c.Score),
		Completed: Bool(completed),
	})
	out.ModuleCompleted = completed
	out.NeedsTerminal = m.HasTerminal() && !terminalDone
	return out
}

// RecordFlagFound marks the module's terminal challenge as solved. The
// module completes if its quiz was already passed.
func (s *Store) RecordFlagFound(m *content.Module) Outcome {
	mp := s.Module(m.ID)
	passed := quiz.Passed(mp.QuizScore, len(m.Questions))
	s.UpdateProgress(m.ID, Patch{
		TerminalCompleted: Bool(true),
		FlagFound:         Bool(true),
		Completed:         Bool(passed),
	})
	return Outcome{
		Passed:          passed,
		Percentage:      quiz.Percentage(mp.QuizScore, len(m.Questions)),
		ModuleCompleted: passed,
	}
}

// RecordFinalQuiz stores the final quiz percentage and marks it taken.
// Passing is judged on the rounded percentage.
func (s *Store) RecordFinalQuiz(c quiz.Completion) Outcome {
	pct := c.Percentage()
	s.SetFinalQuizScore(pct)
	s.SetFinalQuizCompleted(true)
	return Outcome{Passed: quiz.PercentagePassed(pct), Percentage: pct}
}
