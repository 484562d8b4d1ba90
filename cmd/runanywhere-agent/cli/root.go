// Package cli implements the runanywhere-agent command-line interface
// using Cobra. The root command runs a gated, credential-injected aider
// session; subcommands manage identity, keys, and diagnostics.
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/runanywhereai/runanywhere-agent/internal/config"
	"github.com/runanywhereai/runanywhere-agent/internal/log"
)

var (
	verbose  bool
	jsonOut  bool
	skipAuth bool
	modelArg string
)

var rootCmd = &cobra.Command{
	Use:   "runanywhere-agent [flags] [-- aider args]",
	Short: "AI coding assistant for RunAnywhere SDK development",
	Long: `RunAnywhere Agent is an AI coding assistant for on-device AI mobile
development, powered by aider.

It verifies your email against the RunAnywhere allow-list, injects API
credentials, loads SDK-specific prompts, and starts an aider session.
Everything after "--" is forwarded to aider unchanged.

Examples:
  # Start a coding session in the current repo
  runanywhere-agent

  # Forward flags to aider
  runanywhere-agent -- --no-auto-commits main.swift

  # Pick a model explicitly
  runanywhere-agent --model gpt-4o

  # Development: skip the allow-list check
  runanywhere-agent --skip-auth`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		globalCfg := config.LoadGlobal()
		if err := log.Init(log.Options{
			Verbose:       verbose,
			JSONFormat:    jsonOut,
			DebugDir:      filepath.Join(config.Dir(), "debug"),
			RetentionDays: globalCfg.Debug.RetentionDays,
		}); err != nil {
			cmd.PrintErrf("Warning: failed to initialize debug logging: %v\n", err)
		}
		return nil
	},
	RunE: runSession,
}

// Execute runs the root command.
func Execute() error {
	defer log.Close()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "log in JSON format")
	rootCmd.Flags().BoolVar(&skipAuth, "skip-auth", false, "skip allow-list verification (development only, env: RUNANYWHERE_SKIP_AUTH)")
	rootCmd.Flags().StringVarP(&modelArg, "model", "m", "", "model to use (default follows available API keys)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("runanywhere-agent %s\n", version))

	// Help keeps the same banner the session itself opens with.
	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		printBanner()
		defaultHelp(cmd, args)
	})
}
