// Package auth gates agent usage behind the RunAnywhere allow-list.
//
// The flow is a short state machine: offer the cached identity, prompt
// for an email if needed, verify it against the remote table, and either
// persist it or wipe the cache and deny. Every verification failure is
// fail-closed.
package auth

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/runanywhereai/runanywhere-agent/internal/config"
	"github.com/runanywhereai/runanywhere-agent/internal/ui"
)

// CacheFile returns the path of the single-line email cache,
// ~/.runanywhere/auth_cache.
func CacheFile() string {
	return filepath.Join(config.Dir(), "auth_cache")
}

// cachedEmail reads the previously verified email from path.
// Returns "" when absent or unreadable.
func cachedEmail(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// saveCache persists the verified email, overwriting any prior value.
// A write failure only costs a re-prompt next run, so it is a warning.
func saveCache(path, email string) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		ui.Warnf("could not save auth cache: %v", err)
		return
	}
	if err := os.WriteFile(path, []byte(email), 0o600); err != nil {
		ui.Warnf("could not save auth cache: %v", err)
	}
}

// clearCache removes the cache file. Idempotent.
func clearCache(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		ui.Warnf("could not clear auth cache: %v", err)
	}
}

// Logout unconditionally clears the cached identity.
func Logout() {
	clearCache(CacheFile())
	ui.Print("Logged out successfully. You will need to re-authenticate next time.")
}
