package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runanywhereai/runanywhere-agent/internal/auth"
	"github.com/runanywhereai/runanywhere-agent/internal/config"
	"github.com/runanywhereai/runanywhere-agent/internal/credential"
	"github.com/runanywhereai/runanywhere-agent/internal/host"
	"github.com/runanywhereai/runanywhere-agent/internal/log"
	"github.com/runanywhereai/runanywhere-agent/internal/prompts"
	"github.com/runanywhereai/runanywhere-agent/internal/ui"
)

// newHost constructs the host tool. Swapped out in tests.
var newHost = func(cfg host.PromptConfig) host.Host {
	return host.NewAider(cfg)
}

// runSession is the entry orchestrator: gate, credentials, prompts,
// then hand off to aider.
func runSession(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	envCfg, err := config.ParseEnv()
	if err != nil {
		return err
	}
	globalCfg := config.LoadGlobal()

	printBanner()

	if skipAuth || bool(envCfg.SkipAuth) {
		log.Warn("authentication skipped (non-production mode)")
		ui.Print("[DEV MODE] Skipping authentication\n")
	} else {
		gate := &auth.Gate{
			Verifier: &auth.Verifier{
				BaseURL: envCfg.SupabaseURL,
				APIKey:  envCfg.SupabaseKey,
				DevMode: bool(envCfg.DevMode),
			},
			PresetEmail: envCfg.Email,
		}
		email, err := gate.Authenticate(ctx)
		if err != nil {
			return err
		}
		ui.Printf("\nWelcome, %s!\n", email)
	}

	set := credential.ResolveSet()
	if !set.HasAny() {
		ui.Print("")
		ui.Section("Error: No API Keys Available")
		ui.Print("\nNo API keys are configured. Please set one of:")
		ui.Print("  - ANTHROPIC_API_KEY (for Claude models)")
		ui.Print("  - OPENAI_API_KEY (for GPT models)")
		ui.Print("\nOr contact founders@runanywhere.ai for embedded key access.")
		return fmt.Errorf("no API keys available")
	}

	childEnv, status := set.Inject(os.Environ())
	for p, st := range status {
		log.Debug("provider credential", "provider", string(p),
			"available", st.Available, "injected", st.Injected)
	}
	if verbose {
		printKeyStatus(set)
	}

	h := newHost(host.DefaultPromptConfig())
	prompts.Apply(prompts.BuildBundle(globalCfg.DocsDir), h)

	hostArgs := buildHostArgs(args, modelArg, set, envCfg.DefaultModel)

	ui.Print("\n" + strings.Repeat("-", 60))
	ui.Print("Starting coding session... (type /help for commands)")
	ui.Print(strings.Repeat("-", 60) + "\n")

	err = h.Run(ctx, host.RunOptions{Args: hostArgs, Env: childEnv})
	if errors.Is(err, host.ErrInterrupted) {
		ui.Print("\nSession ended. Goodbye!")
		return nil
	}
	return err
}

// buildHostArgs forwards the passthrough args verbatim and appends a
// model choice exactly once: the explicit --model flag wins, then any
// model flag already present in the passthrough args, then the
// preference-ordered default.
func buildHostArgs(passthrough []string, explicit string, set credential.Set, envDefault string) []string {
	args := append([]string(nil), passthrough...)
	switch {
	case explicit != "":
		args = append(args, "--model", explicit)
	case hasModelFlag(args):
		// Caller chose a model in aider syntax; leave it alone.
	default:
		model := set.DefaultModel(envDefault)
		args = append(args, "--model", model)
		ui.Printf("Using model: %s", model)
	}
	return args
}

// hasModelFlag reports whether args already carry an aider model flag.
func hasModelFlag(args []string) bool {
	for _, a := range args {
		if a == "--model" || a == "-m" ||
			strings.HasPrefix(a, "--model=") || strings.HasPrefix(a, "-m=") {
			return true
		}
	}
	return false
}

// printKeyStatus reports which providers have usable keys, without
// printing the keys themselves.
func printKeyStatus(set credential.Set) {
	ui.Print("")
	ui.Section("API Key Status")
	for _, p := range credential.Providers {
		if _, ok := set.Secret(p); ok {
			ui.Printf("  %s %-20s %s", ui.OKTag(), p.DisplayName(), ui.Dim(string(set.Source(p))))
		} else {
			ui.Printf("  %s %-20s not configured", ui.FailTag(), p.DisplayName())
		}
	}
	ui.Print("")
}

func printBanner() {
	ui.Print("")
	ui.Print(ui.Bold(fmt.Sprintf("RunAnywhere Agent %s", version)))
	ui.Print("AI coding assistant for on-device AI mobile development")
	ui.Print(ui.Dim("Powered by aider - https://aider.chat"))
	ui.Print("")
	ui.Print("SDKs: Swift | Kotlin | React Native | Flutter")
	ui.Print("Docs: https://github.com/RunanywhereAI/runanywhere-sdks")
	ui.Print("")
}
