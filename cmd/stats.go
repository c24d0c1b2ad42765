package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/cyberquest/internal/quiz"
	"github.com/abhisek/cyberquest/internal/screen"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		svc, err := openServices()
		if err != nil {
			return err
		}
		defer svc.Close()

		return printStats(cmd.Context(), cmd.OutOrStdout(), svc.env, limit)
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 10, "Number of recent attempts to show")
}

func printStats(ctx context.Context, w io.Writer, env *screen.Env, limit int) error {
	p := env.Progress
	snap := p.Snapshot()

	fmt.Fprintf(w, "Modules completed:  %d/%d\n", p.CompletedModulesCount(), len(env.Catalog.Modules))
	fmt.Fprintf(w, "Total quiz score:   %d\n", p.TotalScore())

	switch {
	case snap.FinalQuizCompleted:
		r := quiz.RankFor(snap.FinalQuizScore)
		fmt.Fprintf(w, "Final quiz:         %d%% (%s)\n", snap.FinalQuizScore, r.Title)
	case p.CanAccessFinalQuiz():
		fmt.Fprintln(w, "Final quiz:         unlocked, not taken")
	default:
		fmt.Fprintln(w, "Final quiz:         locked")
	}

	if env.Attempts == nil || limit <= 0 {
		return nil
	}
	attempts, err := env.Attempts.Recent(ctx, limit)
	if err != nil {
		return fmt.Errorf("query attempts: %w", err)
	}

	fmt.Fprintln(w)
	if len(attempts) == 0 {
		fmt.Fprintln(w, "No quiz attempts yet.")
		return nil
	}

	fmt.Fprintln(w, "Recent Attempts")
	fmt.Fprintln(w, strings.Repeat("─", 64))
	fmt.Fprintf(w, "%-16s  %-22s  %7s  %5s  %s\n", "Time", "Quiz", "Score", "Pct", "Result")
	fmt.Fprintln(w, strings.Repeat("─", 64))
	for _, a := range attempts {
		name := a.ModuleID
		if name == "" {
			name = "final"
		}
		result := "fail"
		if a.Passed {
			result = "pass"
		}
		fmt.Fprintf(w, "%-16s  %-22s  %7s  %4d%%  %s\n",
			a.CreatedAt.Local().Format("2006-01-02 15:04"),
			truncate(name, 22),
			fmt.Sprintf("%d/%d", a.Score, a.Total),
			a.Percentage,
			result,
		)
	}
	return nil
}
