package terminal

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/cyberquest/internal/content"
	"github.com/abhisek/cyberquest/internal/screen"
	"github.com/abhisek/cyberquest/internal/screens/notice"
	"github.com/abhisek/cyberquest/internal/terminal"
	"github.com/abhisek/cyberquest/internal/ui/components"
	"github.com/abhisek/cyberquest/internal/ui/layout"
	"github.com/abhisek/cyberquest/internal/ui/theme"
)

// inputLimit caps a typed command.
const inputLimit = 200

// TerminalScreen is the interactive shell for a module's challenge.
type TerminalScreen struct {
	env     *screen.Env
	module  *content.Module
	session *terminal.Session
	input   components.TextInput

	captured        bool
	moduleCompleted bool
}

var _ screen.Screen = (*TerminalScreen)(nil)
var _ screen.KeyHintProvider = (*TerminalScreen)(nil)
var _ screen.InputCapturer = (*TerminalScreen)(nil)

// New opens the terminal for m. Modules without a challenge get a notice.
func New(env *screen.Env, m *content.Module) screen.Screen {
	if !m.HasTerminal() {
		return notice.New("Terminal", "╌╌ No terminal ╌╌",
			m.Title+" has no terminal challenge.\nPress Enter to go back.")
	}
	return &TerminalScreen{
		env:     env,
		module:  m,
		session: terminal.NewSession(m.Terminal, env.TerminalOptions()...),
		input:   components.NewTextInput(terminal.Prompt, "type a command, or \"help\"", inputLimit),
	}
}

func (s *TerminalScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *TerminalScreen) Title() string {
	return s.module.Title + " · Terminal"
}

func (s *TerminalScreen) CapturesInput() bool {
	return true
}

func (s *TerminalScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Run"},
		{Key: "↑↓", Description: "History"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *TerminalScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			s.submit()
			return s, nil
		case "up":
			if v, ok := s.session.HistoryUp(); ok {
				s.input.SetValue(v)
			}
			return s, nil
		case "down":
			if v, ok := s.session.HistoryDown(); ok {
				s.input.SetValue(v)
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *TerminalScreen) submit() {
	raw := s.input.Value()
	s.input.Reset()

	res := s.session.Submit(raw)
	if !res.FlagFound {
		return
	}

	out := s.env.Progress.RecordFlagFound(s.module)
	s.captured = true
	s.moduleCompleted = out.ModuleCompleted
	s.env.Log().Info("flag captured",
		zap.String("module", s.module.ID),
		zap.Bool("module_completed", out.ModuleCompleted))
}

func (s *TerminalScreen) View(width, height int) string {
	var b strings.Builder

	status := s.statusLine()
	b.WriteString(status)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-2, 0))))
	b.WriteString("\n")

	// Rows left for the transcript after status, divider and prompt.
	rows := height - lipgloss.Height(status) - 3
	if rows < 1 {
		rows = 1
	}
	lines := s.session.Transcript()
	if len(lines) > rows {
		lines = lines[len(lines)-rows:]
	}

	clip := lipgloss.NewStyle().MaxWidth(max(width-2, 1))
	for _, l := range lines {
		b.WriteString(clip.Render(renderLine(l)))
		b.WriteString("\n")
	}
	b.WriteString(s.input.View())

	return b.String()
}

func (s *TerminalScreen) statusLine() string {
	if !s.captured {
		return theme.Hint.Render("Find the flag. Type \"hint\" if you get stuck.")
	}
	badge := components.Badge("FLAG CAPTURED", theme.Warning)
	note := "Pass the module quiz to complete the module."
	if s.moduleCompleted {
		note = "Module complete!"
	}
	return badge + "  " + lipgloss.NewStyle().Foreground(theme.Success).Render(note)
}

func renderLine(l terminal.Line) string {
	switch l.Kind {
	case terminal.LineInput:
		if rest, ok := strings.CutPrefix(l.Text, terminal.Prompt); ok {
			return theme.TermPrompt.Render(terminal.Prompt) + theme.TermOutput.Render(rest)
		}
		return theme.TermOutput.Render(l.Text)
	case terminal.LineError:
		return theme.TermError.Render(l.Text)
	case terminal.LineSuccess:
		return theme.TermSuccess.Render(l.Text)
	default:
		return theme.TermOutput.Render(l.Text)
	}
}
