package terminal

// Prompt is printed before every echoed command.
const Prompt = "hacker@cyberquest:~$ "

// LineKind classifies a transcript line for styling.
type LineKind int

const (
	LineOutput  LineKind = iota // Plain command output
	LineInput                   // Echoed command
	LineError                   // Command not found
	LineSuccess                 // Output containing the flag
)

// String returns the kind's name.
func (k LineKind) String() string {
	switch k {
	case LineInput:
		return "input"
	case LineError:
		return "error"
	case LineSuccess:
		return "success"
	default:
		return "output"
	}
}

// Line is a single transcript entry.
type Line struct {
	Kind LineKind
	Text string
}

func output(text string) Line { return Line{Kind: LineOutput, Text: text} }
