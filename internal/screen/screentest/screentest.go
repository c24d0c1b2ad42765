// Package screentest builds screen environments for tests.
package screentest

import (
	"context"
	"sync"

	"github.com/abhisek/cyberquest/internal/content"
	"github.com/abhisek/cyberquest/internal/progress"
	"github.com/abhisek/cyberquest/internal/quiz"
	"github.com/abhisek/cyberquest/internal/screen"
	"github.com/abhisek/cyberquest/internal/store"
	"github.com/abhisek/cyberquest/internal/terminal"
)

// Attempts is an in-memory store.AttemptRepo.
type Attempts struct {
	mu   sync.Mutex
	list []store.Attempt
	Err  error
}

var _ store.AttemptRepo = (*Attempts)(nil)

func (a *Attempts) Append(_ context.Context, at *store.Attempt) error {
	if a.Err != nil {
		return a.Err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.list = append(a.list, *at)
	return nil
}

func (a *Attempts) Recent(_ context.Context, limit int) ([]store.Attempt, error) {
	if a.Err != nil {
		return nil, a.Err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	var out []store.Attempt
	for i := len(a.list) - 1; i >= 0; i-- {
		out = append(out, a.list[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (a *Attempts) Clear(context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.list = nil
	return nil
}

// Len returns the number of stored attempts.
func (a *Attempts) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.list)
}

// Env returns an env over the embedded catalog with in-memory progress,
// an in-memory attempt log and a hint picker that always takes the first
// hint.
func Env() (*screen.Env, *Attempts) {
	catalog := content.Default()
	attempts := &Attempts{}
	return &screen.Env{
		Catalog:  catalog,
		Progress: progress.Open(catalog, progress.NewMemoryStorage()),
		Attempts: attempts,
		Picker:   terminal.FixedPicker(0),
	}, attempts
}

// CompleteModule records a perfect quiz and, when present, the flag for id.
func CompleteModule(env *screen.Env, id string) {
	m, err := env.Catalog.Module(id)
	if err != nil {
		panic(err)
	}
	if m.HasTerminal() {
		env.Progress.RecordFlagFound(m)
	}
	env.Progress.RecordQuizResult(m, quiz.Completion{Score: len(m.Questions), Total: len(m.Questions)})
}

// CompleteAll completes every module in the catalog.
func CompleteAll(env *screen.Env) {
	for _, id := range env.Catalog.ModuleIDs() {
		CompleteModule(env, id)
	}
}
