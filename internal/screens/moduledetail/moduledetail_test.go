package moduledetail

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cyberquest/internal/router"
	"github.com/abhisek/cyberquest/internal/screen"
	"github.com/abhisek/cyberquest/internal/screen/screentest"
	"github.com/abhisek/cyberquest/internal/screens/notice"
	quizscreen "github.com/abhisek/cyberquest/internal/screens/quiz"
	terminalscreen "github.com/abhisek/cyberquest/internal/screens/terminal"
)

func open(t *testing.T, env *screen.Env, id string) *DetailScreen {
	t.Helper()
	d, ok := New(env, id).(*DetailScreen)
	if !ok {
		t.Fatalf("New(%q) did not return a detail screen", id)
	}
	return d
}

func labels(d *DetailScreen) []string {
	return d.menu.Labels()
}

func pushed(t *testing.T, cmd tea.Cmd) screen.Screen {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	return msg.Screen
}

func TestNew_UnknownModuleShowsNotice(t *testing.T) {
	env, _ := screentest.Env()
	s := New(env, "quantum-hacking")
	if _, ok := s.(*notice.NoticeScreen); !ok {
		t.Fatalf("expected notice screen, got %T", s)
	}
	if !strings.Contains(s.View(80, 20), "quantum-hacking") {
		t.Error("notice should name the missing module")
	}
}

func TestDetail_ViewShowsOverview(t *testing.T) {
	env, _ := screentest.Env()
	d := open(t, env, "networking-basics")
	view := d.View(120, 50)
	for _, want := range []string{"Networking Basics", "Topics", "Requirements", "capture the flag", "not started"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestDetail_ActionsWithTerminal(t *testing.T) {
	env, _ := screentest.Env()
	d := open(t, env, "networking-basics")

	got := labels(d)
	want := []string{"Take Quiz", "Open Terminal", "Next Module: Linux Fundamentals", "Back"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("menu = %v, want %v", got, want)
	}
	if !d.menu.Items[2].Disabled {
		t.Error("next module should be locked until this one is complete")
	}

	_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := pushed(t, cmd).(*quizscreen.QuizScreen); !ok {
		t.Error("first action should open the quiz")
	}

	d.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd = d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := pushed(t, cmd).(*terminalscreen.TerminalScreen); !ok {
		t.Error("second action should open the terminal")
	}
}

func TestDetail_NoTerminalNoNext(t *testing.T) {
	env, _ := screentest.Env()
	d := open(t, env, "social-engineering")
	got := labels(d)
	want := []string{"Take Quiz", "Back"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("menu = %v, want %v", got, want)
	}
}

func TestDetail_NextModuleAfterCompletion(t *testing.T) {
	env, _ := screentest.Env()
	d := open(t, env, "cryptography")

	screentest.CompleteModule(env, "cryptography")
	d.Refresh()

	if d.menu.Items[2].Disabled {
		t.Fatal("next module should unlock after completion")
	}
	if !strings.Contains(d.View(120, 50), "MODULE COMPLETE") {
		t.Error("expected completion badge")
	}

	d.menu.Selected = 2
	_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen.Title() != "Privilege Escalation" {
		t.Errorf("next module title = %q", msg.Screen.Title())
	}
}
