package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runanywhereai/runanywhere-agent/internal/credential"
)

func init() {
	rootCmd.AddCommand(encodeKeyCmd)
}

var encodeKeyCmd = &cobra.Command{
	Use:   "encode-key <api-key>",
	Short: "Base64-encode an API key for embedding",
	Long: `Base64-encode a raw API key so it can replace an embedded placeholder
before building an internal release. The encoding only prevents casual
viewing; anyone with the binary can recover the key.`,
	Args:   cobra.ExactArgs(1),
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(credential.EncodeKey(args[0]))
	},
}
