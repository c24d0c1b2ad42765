package terminal

import (
	"strings"

	"github.com/abhisek/cyberquest/internal/content"
)

const (
	clearedMessage  = `Terminal cleared. Type "help" for commands.`
	notFoundSuggest = `Type "help" for available commands or "hint" for a hint.`
)

var banner = []string{
	"╔══════════════════════════════════════════════════════════════╗",
	"║           CYBER QUEST VIRTUAL MACHINE v2.0                   ║",
	"║                   Welcome, Hacker!                           ║",
	"╚══════════════════════════════════════════════════════════════╝",
}

// Result describes what a single Submit call changed.
type Result struct {
	// Lines are the transcript lines appended by this command.
	// After a clear it holds the whole new transcript.
	Lines []Line

	// Cleared is set when the transcript was reset.
	Cleared bool

	// FlagFound is set only on the first command that reveals the flag.
	FlagFound bool
}

// Session simulates a shell for one terminal challenge.
type Session struct {
	challenge  *content.TerminalChallenge
	picker     Picker
	transcript []Line
	history    *History
	flagFound  bool
}

// Option configures a Session.
type Option func(*Session)

// WithPicker sets the hint picker. The default picks at random.
func WithPicker(p Picker) Option {
	return func(s *Session) { s.picker = p }
}

// NewSession starts a session seeded with the mission banner.
func NewSession(ch *content.TerminalChallenge, opts ...Option) *Session {
	s := &Session{
		challenge: ch,
		picker:    RandomPicker{},
		history:   NewHistory(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.transcript = intro(ch)
	return s
}

func intro(ch *content.TerminalChallenge) []Line {
	lines := make([]Line, 0, len(banner)+len(ch.Objectives)+8)
	for _, b := range banner {
		lines = append(lines, output(b))
	}
	lines = append(lines,
		output(""),
		output("Mission: "+ch.Description),
		output(""),
		output("Objectives:"),
	)
	for _, obj := range ch.Objectives {
		lines = append(lines, output("  • "+obj))
	}
	lines = append(lines,
		output(""),
		output(`Type "help" for available commands.`),
		output(""),
	)
	return lines
}

// Submit runs one command line and appends its output to the transcript.
func (s *Session) Submit(raw string) Result {
	cmd := strings.ToLower(strings.TrimSpace(raw))
	echo := Line{Kind: LineInput, Text: Prompt + raw}

	switch cmd {
	case "":
		return s.append(echo)
	case "clear", "cls":
		s.transcript = []Line{output(clearedMessage)}
		return Result{Lines: s.Transcript(), Cleared: true}
	case "hint":
		return s.append(echo, s.hint())
	}

	// Only commands that reach the table are recalled; clear and hint are not.
	s.history.Add(raw)
	response, ok := s.lookup(raw, cmd)
	if !ok {
		return s.append(echo,
			Line{Kind: LineError, Text: "bash: " + raw + ": command not found or invalid arguments"},
			output(notFoundSuggest),
		)
	}

	lines := []Line{echo}
	first := false
	for _, text := range strings.Split(response, "\n") {
		if strings.Contains(text, s.challenge.Flag) {
			lines = append(lines, Line{Kind: LineSuccess, Text: text})
			if !s.flagFound {
				s.flagFound = true
				first = true
			}
			continue
		}
		lines = append(lines, output(text))
	}

	res := s.append(lines...)
	res.FlagFound = first
	return res
}

// lookup finds the first table entry matching either the raw command
// exactly or the normalised command case-insensitively.
func (s *Session) lookup(raw, normalized string) (string, bool) {
	for _, e := range s.challenge.Commands {
		if normalized == strings.ToLower(e.Command) || raw == e.Command {
			return e.Response, true
		}
	}
	return "", false
}

func (s *Session) hint() Line {
	hints := s.challenge.Hints
	if len(hints) == 0 {
		return output("💡 Hint: no hints for this mission.")
	}
	return output("💡 Hint: " + hints[clamp(s.picker.Pick(len(hints)), len(hints))])
}

func (s *Session) append(lines ...Line) Result {
	s.transcript = append(s.transcript, lines...)
	return Result{Lines: lines}
}

// HistoryUp recalls an older command into the input buffer.
func (s *Session) HistoryUp() (string, bool) { return s.history.Up() }

// HistoryDown recalls a newer command, or clears the buffer past the newest.
func (s *Session) HistoryDown() (string, bool) { return s.history.Down() }

// History returns the submitted commands, oldest first.
func (s *Session) History() []string { return s.history.Entries() }

// FlagFound reports whether the flag has been revealed in this session.
func (s *Session) FlagFound() bool { return s.flagFound }

// Transcript returns a copy of the visible transcript.
func (s *Session) Transcript() []Line {
	out := make([]Line, len(s.transcript))
	copy(out, s.transcript)
	return out
}
