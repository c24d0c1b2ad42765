package notice

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cyberquest/internal/router"
	"github.com/abhisek/cyberquest/internal/screen"
	"github.com/abhisek/cyberquest/internal/ui/layout"
	"github.com/abhisek/cyberquest/internal/ui/theme"
)

// NoticeScreen shows a single message, such as a missing module.
type NoticeScreen struct {
	title   string
	heading string
	body    string
}

var _ screen.Screen = (*NoticeScreen)(nil)
var _ screen.KeyHintProvider = (*NoticeScreen)(nil)

// New creates a NoticeScreen.
func New(title, heading, body string) *NoticeScreen {
	return &NoticeScreen{title: title, heading: heading, body: body}
}

// NotFound is the screen shown for an unknown module id.
func NotFound(moduleID string) *NoticeScreen {
	return New("Not Found", "╌╌ Module not found ╌╌",
		"No module with id \""+moduleID+"\" exists.\nPress Enter to go back.")
}

func (p *NoticeScreen) Init() tea.Cmd {
	return nil
}

func (p *NoticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return p, router.Pop()
	}
	return p, nil
}

func (p *NoticeScreen) View(width, height int) string {
	heading := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(p.heading)
	body := lipgloss.NewStyle().Foreground(theme.Text).Render(p.body)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(heading + "\n\n" + body)
}

func (p *NoticeScreen) Title() string {
	return p.title
}

func (p *NoticeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Enter", Description: "Back"}}
}
