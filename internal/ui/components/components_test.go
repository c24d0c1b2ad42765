package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Modules"},
		{Label: "Final Quiz", Disabled: true, Note: "locked"},
		{Label: "History"},
	})

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Errorf("Selected = %d, want 2 (disabled item skipped)", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 0 {
		t.Errorf("Selected = %d, want 0", m.Selected)
	}
}

func TestMenu_EnterRunsAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{{Label: "Go", Action: func() tea.Cmd {
		ran = true
		return nil
	}}})
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !ran {
		t.Error("expected action to run on Enter")
	}
}

func TestMenu_ViewShowsNote(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "A"}, {Label: "B", Disabled: true, Note: "complete all modules"}})
	if !strings.Contains(m.View(), "complete all modules") {
		t.Error("expected disabled note in view")
	}
}

func TestMultiChoice_CursorAndChoose(t *testing.T) {
	mc := NewMultiChoice("Q?", []string{"a", "b", "c", "d"}, 2)

	mc, _, ok := mc.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if ok || mc.Cursor != 1 {
		t.Fatalf("down: cursor=%d ok=%v", mc.Cursor, ok)
	}
	mc, chosen, ok := mc.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !ok || chosen != 1 {
		t.Fatalf("enter: chosen=%d ok=%v, want 1 true", chosen, ok)
	}

	mc, chosen, ok = mc.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	if !ok || chosen != 2 || mc.Cursor != 2 {
		t.Fatalf("digit: chosen=%d ok=%v cursor=%d", chosen, ok, mc.Cursor)
	}

	mc.Reveal(chosen)
	if !mc.IsCorrect() {
		t.Error("expected correct after revealing index 2")
	}
	if _, _, ok := mc.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); ok {
		t.Error("revealed component should ignore input")
	}
}

func TestMultiChoice_DigitOutOfRange(t *testing.T) {
	mc := NewMultiChoice("Q?", []string{"a", "b"}, 0)
	if _, _, ok := mc.Update(tea.KeyPressMsg{Code: '4', Text: "4"}); ok {
		t.Error("digit past the last option should be ignored")
	}
}

func TestNewCountBar(t *testing.T) {
	p := NewCountBar("", 3, 6, 40)
	if p.Percent != 0.5 {
		t.Errorf("Percent = %v, want 0.5", p.Percent)
	}
	if !strings.Contains(p.View(), "50%") {
		t.Errorf("view missing 50%%: %q", p.View())
	}
	if NewCountBar("", 0, 0, 40).Percent != 0 {
		t.Error("empty total should be 0%")
	}
}
