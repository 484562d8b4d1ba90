package auth

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/runanywhereai/runanywhere-agent/internal/log"
	"github.com/runanywhereai/runanywhere-agent/internal/ui"
)

// ErrDenied is returned when verification fails for any reason. The
// caller must exit non-zero without launching aider.
var ErrDenied = errors.New("access denied")

// Gate runs the authentication flow.
type Gate struct {
	Verifier *Verifier

	// Input is where interactive responses are read from.
	// Defaults to os.Stdin.
	Input io.Reader

	// PresetEmail skips the interactive prompt when set
	// (from RUNANYWHERE_EMAIL).
	PresetEmail string

	// CachePath overrides the identity cache location (for testing).
	CachePath string
}

func (g *Gate) cachePath() string {
	if g.CachePath != "" {
		return g.CachePath
	}
	return CacheFile()
}

func (g *Gate) input() io.Reader {
	if g.Input != nil {
		return g.Input
	}
	return os.Stdin
}

// Authenticate resolves an email, verifies it, and returns the
// normalized (trimmed, lower-cased) address on success. On any denial
// it clears the cached identity, prints signup guidance, and returns
// ErrDenied.
func (g *Gate) Authenticate(ctx context.Context) (string, error) {
	reader := bufio.NewReader(g.input())

	email, err := g.resolveEmail(reader)
	if err != nil {
		return "", fmt.Errorf("reading email: %w", err)
	}
	email = strings.ToLower(strings.TrimSpace(email))

	ui.Print("\nVerifying email...")

	ok, verr := g.Verifier.Verify(ctx, email)
	if ok {
		ui.Printf("%s Email verified: %s", ui.OKTag(), email)
		saveCache(g.cachePath(), email)
		return email, nil
	}

	if serviceFailure(verr) {
		log.Error("allow-list lookup failed", "category", verr.Error(), "email", email)
	} else {
		log.Info("email not on allow-list", "email", email)
	}

	ui.Print("")
	ui.Section("Access Denied")
	ui.Printf("\nThe email %q is not authorized to use RunAnywhere Agent.", email)
	ui.Print("\nTo get access:")
	ui.Print("  1. Visit https://www.runanywhere.ai")
	ui.Print("  2. Sign up for an account")
	ui.Print("  3. Contact founders@runanywhere.ai for agent access")
	ui.Print("")

	clearCache(g.cachePath())
	return "", ErrDenied
}

// resolveEmail walks the identity sources in order: cached value with a
// single confirm/override interaction, then the pre-supplied address,
// then an interactive loop until a plausible email is entered.
func (g *Gate) resolveEmail(reader *bufio.Reader) (string, error) {
	if cached := cachedEmail(g.cachePath()); cached != "" {
		ui.Printf("Using cached email: %s", cached)
		ui.Print("Press Enter to continue, or type 'new' for a different email: ")
		line, err := reader.ReadString('\n')
		// Anything except an explicit "new" keeps the cached identity,
		// including end of input.
		if err != nil && err != io.EOF {
			return "", err
		}
		if strings.ToLower(strings.TrimSpace(line)) != "new" {
			return cached, nil
		}
	}

	if g.PresetEmail != "" {
		ui.Printf("Using email from environment: %s", g.PresetEmail)
		return g.PresetEmail, nil
	}

	ui.Print("")
	ui.Section("RunAnywhere Agent - Authentication Required")
	ui.Print("\nPlease enter your authorized email address.")
	ui.Print("Contact founders@runanywhere.ai if you need access.\n")

	for {
		ui.Print("Email: ")
		line, err := reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", fmt.Errorf("no input available: %w", err)
		}

		email := strings.TrimSpace(line)
		switch {
		case email == "":
			ui.Print("Email cannot be empty. Please try again.")
		case !plausibleEmail(email):
			ui.Print("Please enter a valid email address.")
		default:
			return email, nil
		}

		if err == io.EOF {
			return "", fmt.Errorf("no input available: %w", io.ErrUnexpectedEOF)
		}
	}
}

// plausibleEmail applies the historical weak check: contains '@' and '.'.
// Tightening it would change observable behavior for addresses the
// allow-list already accepts.
func plausibleEmail(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}
