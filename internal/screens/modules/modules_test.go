package modules

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cyberquest/internal/router"
	"github.com/abhisek/cyberquest/internal/screen/screentest"
	"github.com/abhisek/cyberquest/internal/screens/moduledetail"
)

func TestModules_ListsEveryModule(t *testing.T) {
	env, _ := screentest.Env()
	view := New(env).View(120, 40)
	for _, m := range env.Catalog.Modules {
		if !strings.Contains(view, m.Title) {
			t.Errorf("view missing module %q", m.Title)
		}
	}
	if !strings.Contains(view, "Progress 0/6") {
		t.Error("expected progress label")
	}
}

func TestModules_NavigationClamps(t *testing.T) {
	env, _ := screentest.Env()
	s := New(env)

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.Selected() != "networking-basics" {
		t.Errorf("Selected = %q, want first module", s.Selected())
	}
	for i := 0; i < 10; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if s.Selected() != "social-engineering" {
		t.Errorf("Selected = %q, want last module", s.Selected())
	}
}

func TestModules_EnterOpensDetail(t *testing.T) {
	env, _ := screentest.Env()
	s := New(env)
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected push command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	d, ok := msg.Screen.(*moduledetail.DetailScreen)
	if !ok {
		t.Fatalf("expected detail screen, got %T", msg.Screen)
	}
	if d.Title() != "Linux Fundamentals" {
		t.Errorf("detail title = %q", d.Title())
	}
}

func TestModules_RefreshPicksUpCompletion(t *testing.T) {
	env, _ := screentest.Env()
	s := New(env)

	screentest.CompleteModule(env, "networking-basics")
	if strings.Contains(s.View(120, 40), "Progress 1/6") {
		t.Fatal("view should not change before refresh")
	}
	s.Refresh()
	if !strings.Contains(s.View(120, 40), "Progress 1/6") {
		t.Error("expected refreshed progress")
	}
}
