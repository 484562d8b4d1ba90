package cli

import (
	"github.com/spf13/cobra"

	"github.com/runanywhereai/runanywhere-agent/internal/credential"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which API keys are available",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printKeyStatus(credential.ResolveSet())
	},
}
