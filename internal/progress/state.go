package progress

// Storage keys. The layout matches what earlier releases wrote, so
// existing progress keeps loading.
const (
	KeyProgress       = "cyber-quest-progress"
	KeyFinalScore     = "final-quiz-score"
	KeyFinalCompleted = "final-quiz-completed"
)

// ModuleProgress is the learner's record for one module.
type ModuleProgress struct {
	Completed         bool `json:"completed"`
	QuizScore         int  `json:"quizScore"`
	TerminalCompleted bool `json:"terminalCompleted"`
	FlagFound         bool `json:"flagFound"`
}

// Patch is a partial update for a ModuleProgress. Nil fields are left alone.
type Patch struct {
	Completed         *bool
	QuizScore         *int
	TerminalCompleted *bool
	FlagFound         *bool
}

// Bool returns a pointer to b, for building a Patch.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to i, for building a Patch.
func Int(i int) *int { return &i }

func (p Patch) apply(mp ModuleProgress) ModuleProgress {
	if p.Completed != nil {
		mp.Completed = *p.Completed
	}
	if p.QuizScore != nil {
		mp.QuizScore = *p.QuizScore
	}
	if p.TerminalCompleted != nil {
		mp.TerminalCompleted = *p.TerminalCompleted
	}
	if p.FlagFound != nil {
		mp.FlagFound = *p.FlagFound
	}
	return mp
}

// State is the learner's full progress.
type State struct {
	Modules            map[string]ModuleProgress
	FinalQuizScore     int
	FinalQuizCompleted bool
}

// Module returns the record for id, zero-valued if absent.
func (s State) Module(id string) ModuleProgress {
	return s.Modules[id]
}

func (s State) clone() State {
	out := State{
		Modules:            make(map[string]ModuleProgress, len(s.Modules)),
		FinalQuizScore:     s.FinalQuizScore,
		FinalQuizCompleted: s.FinalQuizCompleted,
	}
	for id, mp := range s.Modules {
		out.Modules[id] = mp
	}
	return out
}

// defaultState returns one zeroed record per id and a zeroed final quiz.
func defaultState(ids []string) State {
	s := State{Modules: make(map[string]ModuleProgress, len(ids))}
	for _, id := range ids {
		s.Modules[id] = ModuleProgress{}
	}
	return s
}

// Status is a coarse view of a module record, for list badges.
type Status int

const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusCompleted
)

// Status reports whether the module is untouched, partly done or complete.
func (mp ModuleProgress) Status() Status {
	switch {
	case mp.Completed:
		return StatusCompleted
	case mp.QuizScore > 0 || mp.TerminalCompleted:
		return StatusInProgress
	default:
		return StatusNotStarted
	}
}

// Icon returns the list badge for s.
func (s Status) Icon() string {
	switch s {
	case StatusCompleted:
		return "✔"
	case StatusInProgress:
		return "◐"
	default:
		return "○"
	}
}

func (s Status) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusInProgress:
		return "in progress"
	default:
		return "not started"
	}
}
