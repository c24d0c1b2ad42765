package progress

import (
	"encoding/json"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/abhisek/cyberquest/internal/content"
	"github.com/abhisek/cyberquest/internal/quiz"
)

// Store owns the learner's progress and persists every change through a
// Storage. Write failures are logged; the in-memory state stays
// authoritative either way.
type Store struct {
	mu        sync.Mutex
	catalog   *content.Catalog
	storage   Storage
	logger    *zap.Logger
	state     State
	listeners map[int]func(State)
	nextSub   int
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load and write failures.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// Open loads persisted progress for catalog from storage. Missing or
// unreadable data falls back to defaults; Open never fails.
func Open(catalog *content.Catalog, storage Storage, opts ...Option) *Store {
	s := &Store{
		catalog:   catalog,
		storage:   storage,
		logger:    zap.NewNop(),
		listeners: make(map[int]func(State)),
	}
	for _, o := range opts {
		o(s)
	}
	s.state = s.load()
	return s
}

func (s *Store) load() State {
	ids := s.catalog.ModuleIDs()
	st := defaultState(ids)

	raw, ok, err := s.storage.Get(KeyProgress)
	switch {
	case err != nil:
		s.logger.Warn("read progress failed, using defaults", zap.Error(err))
	case ok:
		var persisted map[string]ModuleProgress
		if err := json.Unmarshal([]byte(raw), &persisted); err != nil || persisted == nil {
			s.logger.Warn("progress record unreadable, using defaults", zap.Error(err))
		} else {
			for id, mp := range persisted {
				if mp.Completed && !s.eligible(id, mp) {
					s.logger.Warn("stored completion not earned, clearing", zap.String("module", id))
					mp.Completed = false
				}
				st.Modules[id] = mp
			}
		}
	}

	if raw, ok, err := s.storage.Get(KeyFinalScore); err != nil {
		s.logger.Warn("read final quiz score failed", zap.Error(err))
	} else if ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > 100 {
			s.logger.Warn("final quiz score unreadable, using 0", zap.String("value", raw))
		} else {
			st.FinalQuizScore = n
		}
	}

	if raw, ok, err := s.storage.Get(KeyFinalCompleted); err != nil {
		s.logger.Warn("read final quiz status failed", zap.Error(err))
	} else if ok {
		st.FinalQuizCompleted = raw == "true"
	}
	return st
}

// Catalog returns the catalog this store tracks.
func (s *Store) Catalog() *content.Catalog { return s.catalog }

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Module returns the record for one module.
func (s *Store) Module(id string) ModuleProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Modules[id]
}

// UpdateProgress merges patch into the module's record, creating it if
// needed, and persists the progress map. A completed flag that the module
// has not earned is cleared.
func (s *Store) UpdateProgress(moduleID string, patch Patch) {
	s.mu.Lock()
	mp := patch.apply(s.state.Modules[moduleID])
	if mp.Completed && !s.eligible(moduleID, mp) {
		s.logger.Warn("ignoring completion for module without passing quiz and terminal",
			zap.String("module", moduleID))
		mp.Completed = false
	}
	s.state.Modules[moduleID] = mp
	s.persistModules()
	s.mu.Unlock()
	s.notify()
}

// eligible reports whether mp satisfies the completion rule for moduleID.
// Ids outside the catalog are not checked.
func (s *Store) eligible(moduleID string, mp ModuleProgress) bool {
	m, err := s.catalog.Module(moduleID)
	if err != nil {
		return true
	}
	if !quiz.Passed(mp.QuizScore, len(m.Questions)) {
		return false
	}
	return !m.HasTerminal() || mp.TerminalCompleted
}

// IsModuleCompleted reports the completed flag for id.
func (s *Store) IsModuleCompleted(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Modules[id].Completed
}

// CanAccessFinalQuiz reports whether every catalog module is completed.
func (s *Store) CanAccessFinalQuiz() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.catalog.Modules {
		if !s.state.Modules[m.ID].Completed {
			return false
		}
	}
	return true
}

// CompletedModulesCount counts completed catalog modules.
func (s *Store) CompletedModulesCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, m := range s.catalog.Modules {
		if s.state.Modules[m.ID].Completed {
			n++
		}
	}
	return n
}

// TotalScore sums quiz scores across catalog modules.
func (s *Store) TotalScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, m := range s.catalog.Modules {
		total += s.state.Modules[m.ID].QuizScore
	}
	return total
}

// SetFinalQuizScore stores the final quiz percentage.
func (s *Store) SetFinalQuizScore(pct int) {
	s.mu.Lock()
	s.state.FinalQuizScore = pct
	s.write(KeyFinalScore, strconv.Itoa(pct))
	s.mu.Unlock()
	s.notify()
}

// SetFinalQuizCompleted stores whether the final quiz has been taken.
func (s *Store) SetFinalQuizCompleted(done bool) {
	s.mu.Lock()
	s.state.FinalQuizCompleted = done
	s.write(KeyFinalCompleted, strconv.FormatBool(done))
	s.mu.Unlock()
	s.notify()
}

// Reset restores defaults and persists them.
func (s *Store) Reset() {
	s.mu.Lock()
	s.state = defaultState(s.catalog.ModuleIDs())
	s.persistModules()
	s.write(KeyFinalScore, "0")
	s.write(KeyFinalCompleted, "false")
	s.mu.Unlock()
	s.logger.Info("progress reset")
	s.notify()
}

// Subscribe registers fn to be called with a snapshot after every
// mutation. The returned func removes it.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	snap := s.state.clone()
	fns := make([]func(State), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(snap)
	}
}

// persistModules writes the progress map. Caller holds mu.
func (s *Store) persistModules() {
	data, err := json.Marshal(s.state.Modules)
	if err != nil {
		s.logger.Error("encode progress", zap.Error(err))
		return
	}
	s.write(KeyProgress, string(data))
}

func (s *Store) write(key, value string) {
	if err := s.storage.Set(key, value); err != nil {
		s.logger.Error("persist progress failed", zap.String("key", key), zap.Error(err))
	}
}
