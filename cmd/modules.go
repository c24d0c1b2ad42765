package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/cyberquest/internal/screen"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List learning modules and your progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices()
		if err != nil {
			return err
		}
		defer svc.Close()

		printModules(cmd.OutOrStdout(), svc.env)
		return nil
	},
}

func printModules(w io.Writer, env *screen.Env) {
	fmt.Fprintf(w, "%-2s  %-22s  %-26s  %-12s  %-8s  %3s  %-4s  %s\n",
		"", "ID", "Title", "Difficulty", "Time", "Qs", "Term", "Status")
	fmt.Fprintln(w, strings.Repeat("─", 100))

	for _, m := range env.Catalog.Modules {
		mp := env.Progress.Module(m.ID)
		term := "-"
		if m.HasTerminal() {
			term = "yes"
		}
		fmt.Fprintf(w, "%-2s  %-22s  %-26s  %-12s  %-8s  %3d  %-4s  %s\n",
			mp.Status().Icon(),
			m.ID,
			truncate(m.Title, 26),
			m.Difficulty.DisplayName(),
			m.EstimatedTime,
			len(m.Questions),
			term,
			mp.Status(),
		)
	}
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
