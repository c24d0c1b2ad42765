package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/cyberquest/internal/screen"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset learner progress and the attempt log",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Reset all progress? This cannot be undone. [y/N] ") {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}

		svc, err := openServices()
		if err != nil {
			return err
		}
		defer svc.Close()

		if err := resetAll(cmd.Context(), svc.env); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Progress reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}

func resetAll(ctx context.Context, env *screen.Env) error {
	env.Progress.Reset()
	if env.Attempts != nil {
		if err := env.Attempts.Clear(ctx); err != nil {
			return fmt.Errorf("clear attempts: %w", err)
		}
	}
	env.Log().Info("progress reset")
	return nil
}

func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

