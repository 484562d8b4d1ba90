package credential

import (
	"slices"
	"strings"
	"testing"

	"github.com/zalando/go-keyring"
)

func makeSet(secrets map[Provider]string) Set {
	s := Set{
		secrets: make(map[Provider]string),
		sources: make(map[Provider]Source),
	}
	for _, p := range Providers {
		s.secrets[p] = secrets[p]
		if secrets[p] != "" {
			s.sources[p] = SourceEnv
		} else {
			s.sources[p] = SourceNone
		}
	}
	return s
}

func TestSet_HasAny(t *testing.T) {
	tests := []struct {
		name    string
		secrets map[Provider]string
		want    bool
	}{
		{"none", nil, false},
		{"anthropic only", map[Provider]string{ProviderAnthropic: "sk-a"}, true},
		{"openai only", map[Provider]string{ProviderOpenAI: "sk-o"}, true},
		{"both", map[Provider]string{ProviderAnthropic: "sk-a", ProviderOpenAI: "sk-o"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := makeSet(tt.secrets).HasAny(); got != tt.want {
				t.Errorf("HasAny() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSet_DefaultModel(t *testing.T) {
	t.Run("override wins", func(t *testing.T) {
		s := makeSet(map[Provider]string{ProviderAnthropic: "sk-a"})
		if got := s.DefaultModel("haiku"); got != "haiku" {
			t.Errorf("override should win, got %q", got)
		}
	})

	t.Run("prefers anthropic", func(t *testing.T) {
		s := makeSet(map[Provider]string{ProviderAnthropic: "sk-a", ProviderOpenAI: "sk-o"})
		if got := s.DefaultModel(""); got != "sonnet" {
			t.Errorf("expected sonnet, got %q", got)
		}
	})

	t.Run("falls back to openai", func(t *testing.T) {
		s := makeSet(map[Provider]string{ProviderOpenAI: "sk-o"})
		if got := s.DefaultModel(""); got != "gpt-4o" {
			t.Errorf("expected gpt-4o, got %q", got)
		}
	})

	t.Run("no keys still names the preferred default", func(t *testing.T) {
		s := makeSet(nil)
		if got := s.DefaultModel(""); got != "sonnet" {
			t.Errorf("expected sonnet, got %q", got)
		}
	})
}

func TestSet_Inject(t *testing.T) {
	t.Run("adds missing variables", func(t *testing.T) {
		s := makeSet(map[Provider]string{ProviderAnthropic: "sk-a"})
		env, status := s.Inject([]string{"PATH=/usr/bin"})

		if !slices.Contains(env, "ANTHROPIC_API_KEY=sk-a") {
			t.Errorf("expected injected key in env, got %v", env)
		}
		if !status[ProviderAnthropic].Injected || !status[ProviderAnthropic].Available {
			t.Errorf("anthropic should be injected and available: %+v", status)
		}
		if status[ProviderOpenAI].Available {
			t.Errorf("openai should be unavailable: %+v", status)
		}
	})

	t.Run("respects externally set variables", func(t *testing.T) {
		s := makeSet(map[Provider]string{ProviderAnthropic: "sk-resolved"})
		base := []string{"ANTHROPIC_API_KEY=sk-external"}
		env, status := s.Inject(base)

		if slices.Contains(env, "ANTHROPIC_API_KEY=sk-resolved") {
			t.Error("must not override an externally set key")
		}
		st := status[ProviderAnthropic]
		if !st.Available || st.Injected {
			t.Errorf("external key should be available but not injected: %+v", st)
		}
	})

	t.Run("replaces an exported-but-empty variable in place", func(t *testing.T) {
		s := makeSet(map[Provider]string{ProviderAnthropic: "sk-a"})
		env, status := s.Inject([]string{"ANTHROPIC_API_KEY=", "PATH=/usr/bin"})

		// The first entry for a name wins in the child, so the empty
		// export must be overwritten rather than duplicated.
		if env[0] != "ANTHROPIC_API_KEY=sk-a" {
			t.Errorf("expected empty export replaced, got %v", env)
		}
		count := 0
		for _, kv := range env {
			if strings.HasPrefix(kv, "ANTHROPIC_API_KEY=") {
				count++
			}
		}
		if count != 1 {
			t.Errorf("expected exactly one ANTHROPIC_API_KEY entry, got %d in %v", count, env)
		}
		st := status[ProviderAnthropic]
		if !st.Available || !st.Injected {
			t.Errorf("empty export should count as unset: %+v", st)
		}
	})

	t.Run("does not mutate the base slice", func(t *testing.T) {
		s := makeSet(map[Provider]string{ProviderAnthropic: "sk-a"})
		base := []string{"PATH=/usr/bin"}
		s.Inject(base)
		if len(base) != 1 {
			t.Errorf("base environment mutated: %v", base)
		}
	})
}

func TestResolveSet(t *testing.T) {
	keyring.MockInit()
	clearEnv(t)
	stubEmbedded(t, map[Provider]string{
		ProviderAnthropic: EncodeKey("sk-ant"),
	})
	t.Setenv("OPENAI_API_KEY", "sk-openai-env")

	s := ResolveSet()
	if v, ok := s.Secret(ProviderAnthropic); !ok || v != "sk-ant" {
		t.Errorf("anthropic: got %q ok=%v", v, ok)
	}
	if s.Source(ProviderAnthropic) != SourceEmbedded {
		t.Errorf("anthropic source = %s", s.Source(ProviderAnthropic))
	}
	if s.Source(ProviderOpenAI) != SourceEnv {
		t.Errorf("openai source = %s", s.Source(ProviderOpenAI))
	}
}
