package notice

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cyberquest/internal/router"
)

func TestNotFound_View(t *testing.T) {
	s := NotFound("quantum-hacking")
	view := s.View(80, 20)
	if !strings.Contains(view, "quantum-hacking") {
		t.Errorf("view should name the missing module, got %q", view)
	}
	if s.Title() != "Not Found" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestEnterPops(t *testing.T) {
	s := NotFound("x")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
