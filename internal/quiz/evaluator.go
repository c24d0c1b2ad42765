package quiz

import "github.com/abhisek/cyberquest/internal/content"

// Phase is the evaluator's current phase.
type Phase int

const (
	PhaseActive   Phase = iota // Serving questions
	PhaseComplete              // Every question answered and advanced past
)

// Completion is emitted once when the last question is advanced past.
type Completion struct {
	Score int
	Total int
}

// Percentage returns the rounded percentage for the completed attempt.
func (c Completion) Percentage() int {
	return Percentage(c.Score, c.Total)
}

// Passed reports whether the attempt met the pass threshold.
func (c Completion) Passed() bool {
	return Passed(c.Score, c.Total)
}

// SelectResult describes the outcome of a Select call.
type SelectResult struct {
	Accepted bool // false when the question was already answered or the option is invalid
	Correct  bool
}

// Evaluator drives a single quiz attempt over an ordered question list.
// Out-of-sequence calls are no-ops so duplicate UI events are harmless.
type Evaluator struct {
	questions []content.Question
	phase     Phase
	index     int
	selected  int // -1 when the current question is unanswered
	score     int
	answers   []int // -1 for unanswered
}

// New creates an Evaluator positioned on the first question.
// It panics if questions is empty.
func New(questions []content.Question) *Evaluator {
	if len(questions) == 0 {
		panic("quiz: evaluator needs at least one question")
	}
	e := &Evaluator{questions: questions}
	e.reset()
	return e
}

func (e *Evaluator) reset() {
	e.phase = PhaseActive
	e.index = 0
	e.selected = -1
	e.score = 0
	e.answers = make([]int, len(e.questions))
	for i := range e.answers {
		e.answers[i] = -1
	}
}

// Select records an answer for the current question.
func (e *Evaluator) Select(option int) SelectResult {
	if e.phase != PhaseActive || e.selected >= 0 {
		return SelectResult{}
	}
	q := e.questions[e.index]
	if option < 0 || option >= len(q.Options) {
		return SelectResult{}
	}

	e.selected = option
	e.answers[e.index] = option
	correct := q.IsCorrect(option)
	if correct {
		e.score++
	}
	return SelectResult{Accepted: true, Correct: correct}
}

// Advance moves past an answered question. On the last question it
// completes the attempt and returns the completion event.
func (e *Evaluator) Advance() (*Completion, bool) {
	if e.phase != PhaseActive || e.selected < 0 {
		return nil, false
	}
	if e.index == len(e.questions)-1 {
		e.phase = PhaseComplete
		return &Completion{Score: e.score, Total: len(e.questions)}, true
	}
	e.index++
	e.selected = -1
	return nil, true
}

// Retry restarts a completed attempt from the first question.
func (e *Evaluator) Retry() bool {
	if e.phase != PhaseComplete {
		return false
	}
	e.reset()
	return true
}

// Phase returns the current phase.
func (e *Evaluator) Phase() Phase { return e.phase }

// Index returns the zero-based index of the current question.
func (e *Evaluator) Index() int { return e.index }

// Total returns the number of questions.
func (e *Evaluator) Total() int { return len(e.questions) }

// Score returns the number of correct answers so far.
func (e *Evaluator) Score() int { return e.score }

// Current returns the question being shown.
func (e *Evaluator) Current() content.Question { return e.questions[e.index] }

// Answered reports whether the current question has an answer.
func (e *Evaluator) Answered() bool { return e.selected >= 0 }

// IsLast reports whether the current question is the final one.
func (e *Evaluator) IsLast() bool { return e.index == len(e.questions)-1 }

// Answers returns a copy of the answer log (-1 for unanswered).
func (e *Evaluator) Answers() []int {
	out := make([]int, len(e.answers))
	copy(out, e.answers)
	return out
}
