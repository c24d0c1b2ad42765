package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/cyberquest/internal/app"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	svc, err := openServices()
	if err != nil {
		return err
	}
	defer svc.Close()

	skip, _ := cmd.Flags().GetBool("skip-welcome")
	return app.Run(cmd.Context(), app.Options{
		Env:         svc.env,
		SkipWelcome: skip,
	})
}

func init() {
	rootCmd.Flags().Bool("skip-welcome", false, "Start on the home screen")
}
