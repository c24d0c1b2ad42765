package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every XDG base and CYBERQUEST_* variable at a temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	for _, k := range []string{"CYBERQUEST_DB", "CYBERQUEST_LOG_LEVEL", "CYBERQUEST_LOG_FILE", "CYBERQUEST_EPHEMERAL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return dir
}

func noEnvFile(dir string) []string {
	return []string{filepath.Join(dir, "absent.env")}
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load(LoadOptions{EnvFiles: noEnvFile(dir)})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "data", "cyberquest", "cyberquest.db"), cfg.DBPath)
	assert.Equal(t, filepath.Join(dir, "state", "cyberquest", "cyberquest.log"), cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Ephemeral)
	assert.Empty(t, cfg.ConfigFile)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_ConfigFileInXDGDir(t *testing.T) {
	dir := isolate(t)
	cfgDir := filepath.Join(dir, "config", "cyberquest")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.yaml"),
		[]byte("db: /srv/quest.db\nlog:\n  level: debug\n  max_backups: 7\n"), 0o644))

	cfg, err := Load(LoadOptions{EnvFiles: noEnvFile(dir)})
	require.NoError(t, err)

	assert.Equal(t, "/srv/quest.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 7, cfg.Log.MaxBackups)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
	assert.Equal(t, filepath.Join(cfgDir, "config.yaml"), cfg.ConfigFile)
}

func TestLoad_ExplicitConfigMustExist(t *testing.T) {
	dir := isolate(t)
	_, err := Load(LoadOptions{
		ConfigFile: filepath.Join(dir, "nope.yaml"),
		EnvFiles:   noEnvFile(dir),
	})
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	file := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte("log:\n  level: warn\n"), 0o644))
	t.Setenv("CYBERQUEST_LOG_LEVEL", "error")

	cfg, err := Load(LoadOptions{ConfigFile: file, EnvFiles: noEnvFile(dir)})
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("CYBERQUEST_DB=/from/dotenv.db\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("CYBERQUEST_DB") })

	cfg, err := Load(LoadOptions{EnvFiles: []string{envFile}})
	require.NoError(t, err)
	assert.Equal(t, "/from/dotenv.db", cfg.DBPath)
}

func TestLoad_FlagsWin(t *testing.T) {
	dir := isolate(t)
	t.Setenv("CYBERQUEST_DB", "/from/env.db")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("db", "", "")
	fs.String("log-level", "info", "")
	fs.Bool("ephemeral", false, "")
	require.NoError(t, fs.Parse([]string{"--db", "/from/flag.db", "--ephemeral"}))

	cfg, err := Load(LoadOptions{EnvFiles: noEnvFile(dir), Flags: fs})
	require.NoError(t, err)
	assert.Equal(t, "/from/flag.db", cfg.DBPath)
	assert.True(t, cfg.Ephemeral)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			DBPath: "/tmp/q.db",
			Log:    LogConfig{File: "/tmp/q.log", Level: "info", MaxSizeMB: 10},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"empty db", func(c *Config) { c.DBPath = "" }, true},
		{"empty db ephemeral", func(c *Config) { c.DBPath = ""; c.Ephemeral = true }, false},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"no log file", func(c *Config) { c.Log.File = "" }, true},
		{"zero size", func(c *Config) { c.Log.MaxSizeMB = 0 }, true},
		{"negative backups", func(c *Config) { c.Log.MaxBackups = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
