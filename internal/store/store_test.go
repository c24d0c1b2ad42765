package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/cyberquest/internal/content"
	"github.com/abhisek/cyberquest/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.db

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestKV_GetSetRemove(t *testing.T) {
	kv := openTestStore(t).KV()

	_, ok, err := kv.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("k", "v1"))
	require.NoError(t, kv.Set("k", "v2"))

	v, ok, err := kv.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", v)

	require.NoError(t, kv.Remove("k"))
	require.NoError(t, kv.Remove("k"))
	_, ok, err = kv.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKV_BacksProgressAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.db")
	catalog := content.Default()

	s1, err := Open(path)
	require.NoError(t, err)
	p1 := progress.Open(catalog, s1.KV())
	p1.UpdateProgress("linux-fundamentals", progress.Patch{
		TerminalCompleted: progress.Bool(true),
		FlagFound:         progress.Bool(true),
	})
	p1.SetFinalQuizScore(60)
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()
	p2 := progress.Open(catalog, s2.KV())

	mp := p2.Module("linux-fundamentals")
	assert.True(t, mp.TerminalCompleted)
	assert.True(t, mp.FlagFound)
	assert.Equal(t, 60, p2.Snapshot().FinalQuizScore)
}

func TestAttemptRepo_AppendAndRecent(t *testing.T) {
	repo := openTestStore(t).AttemptRepo()
	ctx := context.Background()

	got, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, got)

	base := time.Now().Add(-time.Hour)
	for i, id := range []string{"networking-basics", "cryptography", ""} {
		kind := AttemptModule
		if id == "" {
			kind = AttemptFinal
		}
		a := &Attempt{
			Kind:       kind,
			ModuleID:   id,
			Score:      4,
			Total:      5,
			Percentage: 80,
			Passed:     true,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Append(ctx, a))
		assert.NotEmpty(t, a.ID)
	}

	got, err = repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, AttemptFinal, got[0].Kind)
	assert.Equal(t, "", got[0].ModuleID)
	assert.Equal(t, "cryptography", got[1].ModuleID)
	assert.True(t, got[1].Passed)
	assert.Equal(t, 80, got[1].Percentage)

	all, err := repo.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestAttemptRepo_Clear(t *testing.T) {
	repo := openTestStore(t).AttemptRepo()
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, &Attempt{Kind: AttemptModule, ModuleID: "web-security", Score: 1, Total: 5, Percentage: 20}))
	require.NoError(t, repo.Clear(ctx))

	got, err := repo.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDefaultDBPath(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv("CYBERQUEST_DB", "/tmp/custom.db")
		p, err := DefaultDBPath()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/custom.db", p)
	})

	t.Run("xdg data home", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("CYBERQUEST_DB", "")
		t.Setenv("XDG_DATA_HOME", dir)
		p, err := DefaultDBPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "cyberquest", "cyberquest.db"), p)
	})
}

func TestEnsureDir(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a", "b", "c.db")
	require.NoError(t, EnsureDir(p))
	assert.DirExists(t, filepath.Dir(p))
}
