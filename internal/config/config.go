// Package config resolves agent settings from the environment and from
// the optional ~/.runanywhere/config.yaml file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Toggle is a boolean flag read from the environment. "1" and "true"
// (any case) enable it; any other value leaves it off rather than
// failing the whole run.
type Toggle bool

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Toggle) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	*t = s == "1" || s == "true"
	return nil
}

// Env holds every environment variable the agent consumes. Secrets for
// model providers are handled separately by the credential package.
type Env struct {
	// SupabaseURL is the base URL of the allow-list service.
	SupabaseURL string `env:"RUNANYWHERE_SUPABASE_URL" envDefault:"https://your-project.supabase.co"`
	// SupabaseKey is the anon API key for the allow-list service.
	SupabaseKey string `env:"RUNANYWHERE_SUPABASE_KEY" envDefault:"your-anon-key-here"`
	// DevMode short-circuits email verification to always-authorized.
	DevMode Toggle `env:"RUNANYWHERE_DEV_MODE"`
	// SkipAuth bypasses the access gate entirely.
	SkipAuth Toggle `env:"RUNANYWHERE_SKIP_AUTH"`
	// Email pre-supplies the address so no interactive prompt is needed.
	Email string `env:"RUNANYWHERE_EMAIL"`
	// DefaultModel overrides the provider-preference default model.
	DefaultModel string `env:"RUNANYWHERE_DEFAULT_MODEL"`
}

// ParseEnv loads the environment variable surface.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// Global holds settings from ~/.runanywhere/config.yaml.
type Global struct {
	Debug DebugConfig `yaml:"debug"`
	// DocsDir overrides where SDK reference documentation is looked up.
	DocsDir string `yaml:"docs_dir"`
}

// DebugConfig holds debug log file settings.
type DebugConfig struct {
	RetentionDays int `yaml:"retention_days"`
}

// DefaultGlobal returns the default global configuration.
func DefaultGlobal() *Global {
	return &Global{
		Debug: DebugConfig{RetentionDays: 7},
	}
}

// LoadGlobal reads ~/.runanywhere/config.yaml. A missing or malformed
// file yields the defaults.
func LoadGlobal() *Global {
	cfg := DefaultGlobal()
	data, err := os.ReadFile(filepath.Join(Dir(), "config.yaml"))
	if err != nil {
		return cfg
	}
	_ = yaml.Unmarshal(data, cfg)
	return cfg
}

// Dir returns the agent's state directory, ~/.runanywhere.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".runanywhere")
	}
	return filepath.Join(home, ".runanywhere")
}
