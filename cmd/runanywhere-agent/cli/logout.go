package cli

import (
	"github.com/spf13/cobra"

	"github.com/runanywhereai/runanywhere-agent/internal/auth"
)

func init() {
	rootCmd.AddCommand(logoutCmd)
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the cached identity",
	Long: `Clear the locally cached email so the next run re-verifies against
the allow-list. Saved API keys are untouched; use 'login --clear' for those.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		auth.Logout()
	},
}
