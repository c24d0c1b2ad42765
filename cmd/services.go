package cmd

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/cyberquest/internal/content"
	"github.com/abhisek/cyberquest/internal/progress"
	"github.com/abhisek/cyberquest/internal/screen"
	"github.com/abhisek/cyberquest/internal/store"
)

// services bundles what the subcommands share: the SQLite store, the
// progress state over it and the attempt log.
type services struct {
	store *store.Store
	env   *screen.Env
}

// openServices opens the database named by the config. In ephemeral mode
// progress lives in memory and attempts go to an in-memory database, so
// nothing touches disk.
func openServices() (*services, error) {
	if rt == nil {
		return nil, errors.New("runtime not initialised")
	}
	cfg, log := rt.cfg, rt.logger

	dsn := ":memory:"
	if !cfg.Ephemeral {
		dsn = cfg.DBPath
		if err := store.EnsureDir(dsn); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	st, err := store.Open(dsn)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	var storage progress.Storage = st.KV()
	if cfg.Ephemeral {
		storage = progress.NewMemoryStorage()
	}

	catalog := content.Default()
	env := &screen.Env{
		Catalog:  catalog,
		Progress: progress.Open(catalog, storage, progress.WithLogger(log)),
		Attempts: st.AttemptRepo(),
		Logger:   log,
	}
	log.Info("store opened", zap.String("dsn", dsn), zap.Int("modules", len(catalog.Modules)))

	return &services{store: st, env: env}, nil
}

func (s *services) Close() error {
	return s.store.Close()
}
