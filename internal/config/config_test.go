package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseEnv_Defaults(t *testing.T) {
	for _, name := range []string{
		"RUNANYWHERE_SUPABASE_URL", "RUNANYWHERE_SUPABASE_KEY",
		"RUNANYWHERE_DEV_MODE", "RUNANYWHERE_SKIP_AUTH",
		"RUNANYWHERE_EMAIL", "RUNANYWHERE_DEFAULT_MODEL",
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}

	e, err := ParseEnv()
	if err != nil {
		t.Fatalf("ParseEnv: %v", err)
	}
	if e.SupabaseURL != "https://your-project.supabase.co" {
		t.Errorf("unexpected default SupabaseURL %q", e.SupabaseURL)
	}
	if e.DevMode || e.SkipAuth {
		t.Error("bypass flags should default to off")
	}
	if e.Email != "" || e.DefaultModel != "" {
		t.Error("email and model should default to empty")
	}
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("RUNANYWHERE_SUPABASE_URL", "https://auth.internal")
	t.Setenv("RUNANYWHERE_DEV_MODE", "1")
	t.Setenv("RUNANYWHERE_EMAIL", "user@example.com")

	e, err := ParseEnv()
	if err != nil {
		t.Fatalf("ParseEnv: %v", err)
	}
	if e.SupabaseURL != "https://auth.internal" {
		t.Errorf("env override lost, got %q", e.SupabaseURL)
	}
	if !e.DevMode {
		t.Error("RUNANYWHERE_DEV_MODE=1 should enable dev mode")
	}
	if e.Email != "user@example.com" {
		t.Errorf("unexpected email %q", e.Email)
	}
}

func TestParseEnv_ToggleValues(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"0", false},
		{"yes", false},
		{"garbage", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run("value "+tt.value, func(t *testing.T) {
			t.Setenv("RUNANYWHERE_DEV_MODE", tt.value)

			e, err := ParseEnv()
			if err != nil {
				t.Fatalf("ParseEnv should tolerate %q: %v", tt.value, err)
			}
			if bool(e.DevMode) != tt.want {
				t.Errorf("RUNANYWHERE_DEV_MODE=%q: got %v, want %v", tt.value, e.DevMode, tt.want)
			}
		})
	}
}

func TestLoadGlobal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg := LoadGlobal()
		if cfg.Debug.RetentionDays != 7 {
			t.Errorf("expected default retention 7, got %d", cfg.Debug.RetentionDays)
		}
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		dir := filepath.Join(home, ".runanywhere")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		data := "debug:\n  retention_days: 30\ndocs_dir: /opt/sdk-docs\n"
		if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg := LoadGlobal()
		if cfg.Debug.RetentionDays != 30 {
			t.Errorf("expected retention 30, got %d", cfg.Debug.RetentionDays)
		}
		if cfg.DocsDir != "/opt/sdk-docs" {
			t.Errorf("expected docs dir override, got %q", cfg.DocsDir)
		}
	})
}

func TestDir_UsesHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if got := Dir(); got != filepath.Join(home, ".runanywhere") {
		t.Errorf("unexpected dir %q", got)
	}
}
