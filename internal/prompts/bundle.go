// Package prompts assembles the SDK instruction block and applies it to
// the host tool's prompt slots.
package prompts

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/runanywhereai/runanywhere-agent/internal/config"
	"github.com/runanywhereai/runanywhere-agent/internal/host"
	"github.com/runanywhereai/runanywhere-agent/internal/log"
)

//go:embed sdk_reference.md
var embeddedReference string

// sdkFolders are the per-platform documentation subdirectories, in the
// order their content appears in the assembled reference.
var sdkFolders = []string{"swift", "kotlin", "react-native", "flutter"}

// Bundle is the augmented instruction block, built once at startup and
// immutable afterward.
type Bundle struct {
	// Prefix is the role description and usage rules.
	Prefix string
	// Reference is the SDK documentation text.
	Reference string
	// Help replaces the host's help slot.
	Help string
	// CommitSuffix is appended to the commit-message slot.
	CommitSuffix string
	// Examples are appended to the host's example list.
	Examples []host.Exchange
}

// editPrefix returns the text prepended to each edit-instruction slot.
func (b Bundle) editPrefix() string {
	return b.Prefix + "\n" + b.Reference + "\n\n---\n\n"
}

// BuildBundle assembles the prompt bundle. docsDir overrides where SDK
// documentation is looked up; empty means ~/.runanywhere/resources.
// When no documentation exists on disk the built-in reference is used,
// so the bundle is never empty.
func BuildBundle(docsDir string) Bundle {
	if docsDir == "" {
		docsDir = filepath.Join(config.Dir(), "resources")
	}
	return Bundle{
		Prefix:       rolePrefix,
		Reference:    loadReference(docsDir),
		Help:         helpTemplate,
		CommitSuffix: commitSuffix,
		Examples:     exampleExchanges,
	}
}

// loadReference walks the documentation sources in preference order:
// per-SDK folders, then the consolidated file, then the embedded text.
func loadReference(docsDir string) string {
	if parts := loadDocTree(filepath.Join(docsDir, "docs")); len(parts) > 0 {
		log.Debug("loaded SDK reference from docs tree", "dir", docsDir, "sections", len(parts))
		return strings.Join(parts, "\n")
	}

	if data, err := os.ReadFile(filepath.Join(docsDir, "sdk-documentation.md")); err == nil {
		log.Debug("loaded consolidated SDK reference", "dir", docsDir)
		return string(data)
	}

	log.Debug("using embedded SDK reference")
	return embeddedReference
}

// loadDocTree concatenates Documentation.md and ARCHITECTURE.md from
// each per-SDK folder that carries them. Missing folders and files are
// skipped.
func loadDocTree(root string) []string {
	if _, err := os.Stat(root); err != nil {
		return nil
	}

	var parts []string
	for _, sdk := range sdkFolders {
		for _, doc := range []struct{ file, title string }{
			{"Documentation.md", "SDK DOCUMENTATION"},
			{"ARCHITECTURE.md", "SDK ARCHITECTURE"},
		} {
			data, err := os.ReadFile(filepath.Join(root, sdk, doc.file))
			if err != nil {
				continue
			}
			banner := strings.Repeat("=", 80)
			parts = append(parts, fmt.Sprintf("\n\n%s\n%s %s\n%s\n\n%s",
				banner, strings.ToUpper(sdk), doc.title, banner, string(data)))
		}
	}
	return parts
}
