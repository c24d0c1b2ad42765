package content

// Difficulty is a module's difficulty rating.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// DisplayName returns a human-readable name for a difficulty.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyBeginner:
		return "Beginner"
	case DifficultyIntermediate:
		return "Intermediate"
	case DifficultyAdvanced:
		return "Advanced"
	default:
		return string(d)
	}
}

// Question is a single multiple-choice question.
type Question struct {
	ID            string   `yaml:"id"`
	Prompt        string   `yaml:"question"`
	Options       []string `yaml:"options"`
	CorrectAnswer int      `yaml:"correct_answer"`
	Explanation   string   `yaml:"explanation"`
}

// IsCorrect reports whether option i is the correct answer.
func (q Question) IsCorrect(i int) bool {
	return i == q.CorrectAnswer
}

// CommandEntry maps one exact command line to its canned output.
type CommandEntry struct {
	Command  string `yaml:"command"`
	Response string `yaml:"response"`
}

// TerminalChallenge is the scripted shell attached to a module.
// Commands are kept in declared order; lookups take the first match.
type TerminalChallenge struct {
	Description string         `yaml:"description"`
	Objectives  []string       `yaml:"objectives"`
	Hints       []string       `yaml:"hints"`
	Commands    []CommandEntry `yaml:"commands"`
	Flag        string         `yaml:"flag"`
}

// Module is a topic unit bundling a quiz and an optional terminal challenge.
type Module struct {
	ID            string             `yaml:"id"`
	Title         string             `yaml:"title"`
	Description   string             `yaml:"description"`
	Icon          string             `yaml:"icon"`
	Difficulty    Difficulty         `yaml:"difficulty"`
	EstimatedTime string             `yaml:"estimated_time"`
	Topics        []string           `yaml:"topics"`
	Questions     []Question         `yaml:"questions"`
	Terminal      *TerminalChallenge `yaml:"terminal,omitempty"`
}

// HasTerminal reports whether the module carries a terminal challenge.
func (m *Module) HasTerminal() bool {
	return m.Terminal != nil
}

// Catalog is the full, read-only course content.
type Catalog struct {
	Modules   []Module   `yaml:"modules"`
	FinalQuiz []Question `yaml:"final_quiz"`
}
