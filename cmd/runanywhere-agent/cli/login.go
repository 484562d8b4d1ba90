package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/runanywhereai/runanywhere-agent/internal/credential"
	"github.com/runanywhereai/runanywhere-agent/internal/ui"
)

var loginClear bool

func init() {
	loginCmd.Flags().BoolVar(&loginClear, "clear", false, "remove the saved key instead of storing one")
	rootCmd.AddCommand(loginCmd)
}

var loginCmd = &cobra.Command{
	Use:   "login [provider]",
	Short: "Save an API key in the OS keyring",
	Long: `Save an API key in the OS keyring so it does not have to live in the
environment. Keys saved here are used when the provider's environment
variable is unset. Provider is "anthropic" (default) or "openai".`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		provider := credential.ProviderAnthropic
		if len(args) == 1 {
			provider = credential.Provider(strings.ToLower(args[0]))
		}
		if provider.EnvVar() == "" {
			return fmt.Errorf("unknown provider %q (want anthropic or openai)", provider)
		}

		if loginClear {
			if err := credential.DeleteKey(provider); err != nil {
				return err
			}
			ui.Printf("%s Removed saved %s key", ui.OKTag(), provider)
			return nil
		}

		key, err := readSecret(fmt.Sprintf("%s API key: ", provider.DisplayName()))
		if err != nil {
			return err
		}
		if err := credential.SaveKey(provider, key); err != nil {
			return err
		}
		ui.Printf("%s Saved %s key to the OS keyring", ui.OKTag(), provider)
		return nil
	},
}

// readSecret reads a key from stdin, without echo when attached to a
// terminal.
func readSecret(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	if isatty.IsTerminal(os.Stdin.Fd()) {
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading key: %w", err)
		}
		return strings.TrimSpace(string(raw)), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading key: %w", err)
	}
	return strings.TrimSpace(line), nil
}
