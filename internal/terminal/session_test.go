package terminal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/cyberquest/internal/content"
)

func testChallenge() *content.TerminalChallenge {
	return &content.TerminalChallenge{
		Description: "Find the flag.",
		Objectives:  []string{"Scan the host", "Read the page"},
		Hints:       []string{"Try nmap", "Try curl"},
		Commands: []content.CommandEntry{
			{Command: "nmap 10.0.0.1", Response: "22/tcp open ssh\n80/tcp open http"},
			{Command: "curl 10.0.0.1", Response: "<html>\n<body>FLAG{test}</body>\n</html>"},
			{Command: "Echo Hi", Response: "Hi"},
			{Command: "help", Response: "Available commands: nmap, curl"},
		},
		Flag: "FLAG{test}",
	}
}

func newTestSession() *Session {
	return NewSession(testChallenge(), WithPicker(FixedPicker(1)))
}

func TestNewSession_Intro(t *testing.T) {
	s := newTestSession()
	lines := s.Transcript()
	require.NotEmpty(t, lines)

	var texts []string
	for _, l := range lines {
		if l.Kind != LineOutput {
			t.Errorf("intro line %q has kind %v, want output", l.Text, l.Kind)
		}
		texts = append(texts, l.Text)
	}
	joined := strings.Join(texts, "\n")
	assert.Contains(t, joined, "CYBER QUEST VIRTUAL MACHINE")
	assert.Contains(t, joined, "Mission: Find the flag.")
	assert.Contains(t, joined, "  • Scan the host")
	assert.Contains(t, joined, "  • Read the page")
	assert.Contains(t, joined, `Type "help" for available commands.`)
}

func TestSubmit_Help(t *testing.T) {
	s := newTestSession()
	res := s.Submit("help")

	require.Len(t, res.Lines, 2)
	assert.Equal(t, Line{Kind: LineInput, Text: Prompt + "help"}, res.Lines[0])
	assert.Equal(t, Line{Kind: LineOutput, Text: "Available commands: nmap, curl"}, res.Lines[1])
	assert.False(t, res.FlagFound)
	assert.False(t, s.FlagFound())
}

func TestSubmit_Empty(t *testing.T) {
	s := newTestSession()
	before := len(s.Transcript())
	res := s.Submit("   ")

	require.Len(t, res.Lines, 1)
	assert.Equal(t, LineInput, res.Lines[0].Kind)
	assert.Len(t, s.Transcript(), before+1)
	assert.Empty(t, s.History(), "empty input is not recorded for recall")
}

func TestSubmit_MultilineOutput(t *testing.T) {
	s := newTestSession()
	res := s.Submit("nmap 10.0.0.1")
	require.Len(t, res.Lines, 3)
	assert.Equal(t, "22/tcp open ssh", res.Lines[1].Text)
	assert.Equal(t, "80/tcp open http", res.Lines[2].Text)
}

func TestSubmit_FlagMarksSuccessLine(t *testing.T) {
	s := newTestSession()
	res := s.Submit("curl 10.0.0.1")

	require.Len(t, res.Lines, 4)
	assert.Equal(t, LineOutput, res.Lines[1].Kind)
	assert.Equal(t, LineSuccess, res.Lines[2].Kind)
	assert.Equal(t, LineOutput, res.Lines[3].Kind)
	assert.True(t, res.FlagFound)
	assert.True(t, s.FlagFound())
}

func TestSubmit_FlagEventOnlyOnce(t *testing.T) {
	s := newTestSession()
	events := 0
	for i := 0; i < 3; i++ {
		res := s.Submit("curl 10.0.0.1")
		if res.FlagFound {
			events++
		}
		// The line is styled as success every time.
		assert.Equal(t, LineSuccess, res.Lines[2].Kind)
	}
	if events != 1 {
		t.Errorf("flag event fired %d times, want 1", events)
	}
}

func TestSubmit_CaseInsensitiveAndTrimmed(t *testing.T) {
	s := newTestSession()
	res := s.Submit("  NMAP 10.0.0.1  ")
	require.Len(t, res.Lines, 3)
	assert.Equal(t, LineInput, res.Lines[0].Kind)
	assert.Equal(t, Prompt+"  NMAP 10.0.0.1  ", res.Lines[0].Text, "echo keeps the raw input")
	assert.NotEqual(t, LineError, res.Lines[1].Kind)
}

func TestSubmit_MixedCaseKey(t *testing.T) {
	s := newTestSession()
	for _, cmd := range []string{"Echo Hi", "echo hi", "ECHO HI"} {
		res := s.Submit(cmd)
		require.Len(t, res.Lines, 2, cmd)
		assert.Equal(t, "Hi", res.Lines[1].Text, cmd)
	}
}

func TestSubmit_NotFound(t *testing.T) {
	s := newTestSession()
	res := s.Submit("rm -rf /")

	require.Len(t, res.Lines, 3)
	assert.Equal(t, LineError, res.Lines[1].Kind)
	assert.Equal(t, "bash: rm -rf /: command not found or invalid arguments", res.Lines[1].Text)
	assert.Equal(t, LineOutput, res.Lines[2].Kind)
	assert.Contains(t, res.Lines[2].Text, `"hint"`)
	assert.Equal(t, []string{"rm -rf /"}, s.History())
}

func TestSubmit_Clear(t *testing.T) {
	for _, cmd := range []string{"clear", "CLS", " Clear "} {
		s := newTestSession()
		s.Submit("help")
		res := s.Submit(cmd)

		assert.True(t, res.Cleared, cmd)
		lines := s.Transcript()
		require.Len(t, lines, 1, cmd)
		assert.Equal(t, clearedMessage, lines[0].Text)
	}
}

func TestSubmit_Hint(t *testing.T) {
	s := newTestSession()
	res := s.Submit("hint")
	require.Len(t, res.Lines, 2)
	assert.Equal(t, "💡 Hint: Try curl", res.Lines[1].Text)
}

func TestSubmit_ClearThenHintAfterFlag(t *testing.T) {
	s := newTestSession()
	first := s.Submit("curl 10.0.0.1")
	require.True(t, first.FlagFound)

	cleared := s.Submit("clear")
	require.True(t, cleared.Cleared)
	require.Len(t, s.Transcript(), 1)

	hint := s.Submit("hint")
	assert.False(t, hint.FlagFound)
	assert.Len(t, s.Transcript(), 3) // cleared line, echo, hint
	assert.Equal(t, LineOutput, s.Transcript()[2].Kind)

	// Flag state survives the clear.
	again := s.Submit("curl 10.0.0.1")
	assert.False(t, again.FlagFound)
	assert.True(t, s.FlagFound())
}

func TestSubmit_FirstMatchWins(t *testing.T) {
	ch := testChallenge()
	ch.Commands = append([]content.CommandEntry{{Command: "HELP", Response: "first"}}, ch.Commands...)
	s := NewSession(ch)
	res := s.Submit("help")
	assert.Equal(t, "first", res.Lines[1].Text)
}

func TestSubmit_HistoryRecall(t *testing.T) {
	s := newTestSession()
	s.Submit("help")
	s.Submit("nmap 10.0.0.1")

	buf, ok := s.HistoryUp()
	require.True(t, ok)
	assert.Equal(t, "nmap 10.0.0.1", buf)

	buf, _ = s.HistoryUp()
	assert.Equal(t, "help", buf)

	buf, ok = s.HistoryDown()
	require.True(t, ok)
	assert.Equal(t, "nmap 10.0.0.1", buf)
}

func TestSubmit_MetaCommandsNotRecalled(t *testing.T) {
	s := newTestSession()
	s.Submit("nmap 10.0.0.1")
	s.Submit("hint")
	s.Submit("clear")
	s.Submit("cls")

	assert.Equal(t, []string{"nmap 10.0.0.1"}, s.History())

	buf, ok := s.HistoryUp()
	require.True(t, ok)
	assert.Equal(t, "nmap 10.0.0.1", buf)
}

func TestSubmit_UnmatchedCommandIsRecalled(t *testing.T) {
	s := newTestSession()
	s.Submit("help")
	s.Submit("whoami")

	buf, _ := s.HistoryUp()
	assert.Equal(t, "whoami", buf)
	assert.Equal(t, []string{"help", "whoami"}, s.History())
}

// rangeBreaker returns indexes outside [0, n).
type rangeBreaker int

func (r rangeBreaker) Pick(n int) int { return int(r) }

func TestSubmit_HintWithOutOfRangePicker(t *testing.T) {
	tests := []struct {
		pick int
		want string
	}{
		{7, "💡 Hint: Try curl"},
		{-3, "💡 Hint: Try nmap"},
	}
	for _, tt := range tests {
		s := NewSession(testChallenge(), WithPicker(rangeBreaker(tt.pick)))
		var res Result
		require.NotPanics(t, func() { res = s.Submit("hint") })
		require.Len(t, res.Lines, 2)
		assert.Equal(t, tt.want, res.Lines[1].Text, "pick %d", tt.pick)
	}
}

func TestLineKindString(t *testing.T) {
	assert.Equal(t, "input", LineInput.String())
	assert.Equal(t, "output", LineOutput.String())
	assert.Equal(t, "error", LineError.String())
	assert.Equal(t, "success", LineSuccess.String())
}

func TestFixedPicker_Clamps(t *testing.T) {
	if got := FixedPicker(5).Pick(2); got != 1 {
		t.Errorf("Pick = %d, want 1", got)
	}
	if got := FixedPicker(-1).Pick(2); got != 0 {
		t.Errorf("Pick = %d, want 0", got)
	}
}

func TestRandomPicker_InRange(t *testing.T) {
	var p RandomPicker
	for i := 0; i < 50; i++ {
		if got := p.Pick(3); got < 0 || got >= 3 {
			t.Fatalf("Pick(3) = %d, out of range", got)
		}
	}
}
