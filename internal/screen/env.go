package screen

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/cyberquest/internal/content"
	"github.com/abhisek/cyberquest/internal/progress"
	"github.com/abhisek/cyberquest/internal/store"
	"github.com/abhisek/cyberquest/internal/terminal"
)

// Env carries the services screens share.
type Env struct {
	Catalog  *content.Catalog
	Progress *progress.Store
	// Attempts may be nil, in which case attempts are not logged and the
	// history screen shows an empty log.
	Attempts store.AttemptRepo
	Logger   *zap.Logger
	// Picker chooses terminal hints. Nil means random.
	Picker terminal.Picker
}

// Log returns the env logger, or a no-op logger.
func (e *Env) Log() *zap.Logger {
	if e == nil || e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

// RecordAttempt appends a finished quiz to the attempt log. Failures are
// logged; the quiz result itself is already stored in progress.
func (e *Env) RecordAttempt(a store.Attempt) {
	if e.Attempts == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Attempts.Append(ctx, &a); err != nil {
		e.Log().Error("record attempt failed",
			zap.String("kind", string(a.Kind)),
			zap.String("module", a.ModuleID),
			zap.Error(err))
	}
}

// TerminalOptions returns the session options implied by the env.
func (e *Env) TerminalOptions() []terminal.Option {
	if e.Picker == nil {
		return nil
	}
	return []terminal.Option{terminal.WithPicker(e.Picker)}
}
