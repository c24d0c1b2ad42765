package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cyberquest/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

// MultiChoice renders a question and moves a cursor over its options.
// Answer checking belongs to the caller: Update reports a choice through
// Chosen, and Reveal locks the component and colours the options.
type MultiChoice struct {
	Question     string
	Options      []string
	Cursor       int
	CorrectIndex int
	ChosenIndex  int
	Revealed     bool
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement. Enter, or a number key for a direct
// pick, returns the chosen index with ok=true.
func (m MultiChoice) Update(msg tea.Msg) (mc MultiChoice, chosen int, ok bool) {
	if m.Revealed {
		return m, -1, false
	}

	kmsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m, -1, false
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "enter":
		return m, m.Cursor, true
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			i := int(key[0] - '1')
			if i < len(m.Options) {
				m.Cursor = i
				return m, i, true
			}
		}
	}

	return m, -1, false
}

// Reveal locks the component with chosen as the learner's answer.
func (m *MultiChoice) Reveal(chosen int) {
	m.Revealed = true
	m.ChosenIndex = chosen
}

// View renders the multiple-choice component.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n\n"

	for i, opt := range m.Options {
		label := fmt.Sprint(i + 1)
		if i < len(optionLabels) {
			label = optionLabels[i]
		}
		prefix := "  "
		if i == m.Cursor && !m.Revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		if m.Revealed {
			switch i {
			case m.CorrectIndex:
				s += theme.Correct.Render(line+"  ✓") + "\n"
			case m.ChosenIndex:
				s += theme.Incorrect.Render(line+"  ✗") + "\n"
			default:
				s += theme.Disabled.Render(line) + "\n"
			}
		} else if i == m.Cursor {
			s += theme.Selected.Render(line) + "\n"
		} else {
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}

// IsCorrect returns true if the revealed answer is the correct one.
func (m MultiChoice) IsCorrect() bool {
	return m.Revealed && m.ChosenIndex == m.CorrectIndex
}
