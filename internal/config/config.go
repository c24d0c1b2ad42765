// Package config resolves runtime settings from defaults, an optional
// YAML file, a .env file, CYBERQUEST_* environment variables and CLI
// flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/cyberquest/internal/store"
)

// EnvPrefix is prepended to every environment variable, e.g. CYBERQUEST_DB.
const EnvPrefix = "CYBERQUEST"

// Config holds the resolved settings.
type Config struct {
	DBPath    string    `mapstructure:"db"`
	Ephemeral bool      `mapstructure:"ephemeral"`
	Log       LogConfig `mapstructure:"log"`

	// ConfigFile is the file that was read, if any.
	ConfigFile string `mapstructure:"-"`
}

// LogConfig controls the rotating log file.
type LogConfig struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// LoadOptions tells Load where to look.
type LoadOptions struct {
	// ConfigFile is an explicit config path. It must exist when set.
	ConfigFile string
	// EnvFiles are dotenv files to load. Missing files are skipped.
	// Defaults to ".env".
	EnvFiles []string
	// Flags are bound over everything else when set.
	Flags *pflag.FlagSet
}

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"db":        "db",
	"ephemeral": "ephemeral",
	"log-level": "log.level",
	"log-file":  "log.file",
}

// Load resolves the configuration.
func Load(opts LoadOptions) (*Config, error) {
	if err := loadEnvFiles(opts.EnvFiles); err != nil {
		return nil, err
	}

	v := viper.New()
	if err := setDefaults(v); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v, opts.ConfigFile); err != nil {
		return nil, err
	}

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.ConfigFile = v.ConfigFileUsed()
	return &cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if !c.Ephemeral && c.DBPath == "" {
		return errors.New("db path is empty")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if c.Log.File == "" {
		return errors.New("log file is empty")
	}
	if c.Log.MaxSizeMB <= 0 {
		return fmt.Errorf("log max_size_mb must be positive, got %d", c.Log.MaxSizeMB)
	}
	if c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return errors.New("log max_backups and max_age_days must not be negative")
	}
	return nil
}

func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) error {
	dbPath, err := store.DefaultDBPath()
	if err != nil {
		return err
	}
	logPath, err := DefaultLogPath()
	if err != nil {
		return err
	}

	v.SetDefault("db", dbPath)
	v.SetDefault("ephemeral", false)
	v.SetDefault("log.file", logPath)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("log.compress", false)
	return nil
}

func readConfigFile(v *viper.Viper, explicit string) error {
	if explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", explicit, err)
		}
		return nil
	}

	dir, err := configDir()
	if err != nil {
		return err
	}
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// configDir returns $XDG_CONFIG_HOME/cyberquest or ~/.config/cyberquest.
func configDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "cyberquest"), nil
}

// DefaultLogPath returns $XDG_STATE_HOME/cyberquest/cyberquest.log,
// falling back to ~/.local/state.
func DefaultLogPath() (string, error) {
	base := os.Getenv("XDG_STATE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(base, "cyberquest", "cyberquest.log"), nil
}
