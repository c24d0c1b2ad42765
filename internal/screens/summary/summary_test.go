package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cyberquest/internal/content"
	"github.com/abhisek/cyberquest/internal/quiz"
	"github.com/abhisek/cyberquest/internal/router"
	"github.com/abhisek/cyberquest/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "quiz" }
func (s *stubScreen) Title() string                           { return "Quiz" }

func testResult(passed bool) Result {
	qs := []content.Question{
		{ID: "q1", Prompt: "What is a port?", Options: []string{"a", "b"}, CorrectAnswer: 0},
		{ID: "q2", Prompt: "What is DNS?", Options: []string{"a", "b"}, CorrectAnswer: 1},
	}
	r := Result{Heading: "Networking Basics", Questions: qs, Total: 2}
	if passed {
		r.Score, r.Percentage, r.Passed, r.Answers = 2, 100, true, []int{0, 1}
	} else {
		r.Score, r.Percentage, r.Answers = 1, 50, []int{0, 0}
	}
	return r
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testResult(true), nil)
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestSummaryScreen_PassedView(t *testing.T) {
	r := testResult(true)
	r.NeedsTerminal = true
	view := New(r, nil).View(100, 30)
	for _, want := range []string{"ACCESS GRANTED", "2/2", "100%", "Capture the flag"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_FinalShowsRank(t *testing.T) {
	r := testResult(true)
	r.Final = true
	rank := quiz.RankFor(100)
	r.Rank = &rank
	view := New(r, nil).View(100, 30)
	if !strings.Contains(view, "Elite Hacker") {
		t.Error("final result should show rank title")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testResult(true), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter (pop)")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestSummaryScreen_RetryAfterFail(t *testing.T) {
	calls := 0
	again := func() screen.Screen {
		calls++
		return &stubScreen{}
	}

	s := New(testResult(false), again)
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected retry command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg")
	}
	if calls != 1 {
		t.Errorf("again called %d times, want 1", calls)
	}
}

func TestSummaryScreen_NoRetryAfterModulePass(t *testing.T) {
	s := New(testResult(true), func() screen.Screen { return &stubScreen{} })
	if _, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"}); cmd != nil {
		t.Error("passed module quiz should not offer retry")
	}
	if len(s.KeyHints()) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(s.KeyHints()))
	}
}

func TestResult_CanRetry(t *testing.T) {
	final := testResult(true)
	final.Final = true
	if !final.CanRetry() {
		t.Error("final quiz can always be retaken")
	}
}
