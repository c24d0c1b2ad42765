package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/cyberquest/internal/config"
	"github.com/abhisek/cyberquest/internal/logging"
)

// runtime is the per-invocation state built by the root pre-run hook.
type runtime struct {
	cfg       *config.Config
	logger    *zap.Logger
	logCloser io.Closer
}

var rt *runtime

var rootCmd = &cobra.Command{
	Use:   "cyberquest",
	Short: "Learn cybersecurity in your terminal",
	Long: `CyberQuest: a terminal app for learning cybersecurity.

Work through topic modules, pass each quiz, capture the flag in a simulated
shell, and unlock the final assessment once every module is complete.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command until it finishes or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer teardown()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to SQLite database file (overrides CYBERQUEST_DB env var)")
	flags.String("config", "", "Path to a YAML config file")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.String("log-file", "", "Path to the log file")
	flags.Bool("ephemeral", false, "Keep progress in memory only")

	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup resolves configuration and opens the log file.
func setup(cmd *cobra.Command, args []string) error {
	if cmd == versionCmd {
		return nil
	}

	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: configFile,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	logger = logger.With(zap.String("command", cmd.Name()))
	logger.Debug("configuration loaded",
		zap.String("config_file", cfg.ConfigFile),
		zap.String("db", cfg.DBPath),
		zap.Bool("ephemeral", cfg.Ephemeral))

	rt = &runtime{cfg: cfg, logger: logger, logCloser: closer}
	return nil
}

func teardown() {
	if rt == nil {
		return
	}
	_ = rt.logCloser.Close()
	rt = nil
}
