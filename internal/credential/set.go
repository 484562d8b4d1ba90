package credential

import "strings"

// Set holds the secrets resolved at startup. It is passed by value down
// to whatever constructs the aider process; nothing in the agent relies
// on process-wide environment mutation.
type Set struct {
	secrets map[Provider]string
	sources map[Provider]Source
}

// Secret returns the resolved secret for a provider.
func (s Set) Secret(p Provider) (string, bool) {
	v, ok := s.secrets[p]
	return v, ok && v != ""
}

// Source reports where a provider's secret came from.
func (s Set) Source(p Provider) Source {
	if src, ok := s.sources[p]; ok {
		return src
	}
	return SourceNone
}

// HasAny reports whether at least one provider resolved to a non-empty
// secret. When false the agent must exit before launching aider.
func (s Set) HasAny() bool {
	for _, p := range Providers {
		if _, ok := s.Secret(p); ok {
			return true
		}
	}
	return false
}

// DefaultModel returns the model to use when the caller specified none.
// The override (from RUNANYWHERE_DEFAULT_MODEL) wins; otherwise the
// first provider in preference order with a usable key decides. With no
// keys at all the top-priority default is returned anyway and fails
// downstream, since there is nothing to authenticate with.
func (s Set) DefaultModel(override string) string {
	if override != "" {
		return override
	}
	for _, p := range Providers {
		if _, ok := s.Secret(p); ok {
			return p.DefaultModel()
		}
	}
	return Providers[0].DefaultModel()
}

// ProviderStatus describes one provider after injection.
type ProviderStatus struct {
	// Available means a usable key exists, whatever its source.
	Available bool
	// Injected means the key was added to the child environment rather
	// than already being present in it.
	Injected bool
}

// Status records the outcome of Inject per provider.
type Status map[Provider]ProviderStatus

// Inject returns a copy of base with each provider's key set when the
// variable is not already set there, plus a per-provider status. An
// exported-but-empty variable counts as unset and is replaced in place,
// since the child process resolves the first entry for a name.
func (s Set) Inject(base []string) ([]string, Status) {
	env := make([]string, len(base), len(base)+len(Providers))
	copy(env, base)

	status := make(Status, len(Providers))
	for _, p := range Providers {
		st := ProviderStatus{}
		if envContains(base, p.EnvVar()) {
			st.Available = true
		} else if secret, ok := s.Secret(p); ok {
			env = setEnv(env, p.EnvVar(), secret)
			st.Available = true
			st.Injected = true
		}
		status[p] = st
	}
	return env, status
}

func envContains(env []string, name string) bool {
	prefix := name + "="
	for _, kv := range env {
		if strings.HasPrefix(kv, prefix) && len(kv) > len(prefix) {
			return true
		}
	}
	return false
}

// setEnv sets name=value in env, overwriting an existing entry for name
// so a stale empty export cannot shadow the new value.
func setEnv(env []string, name, value string) []string {
	prefix := name + "="
	for i, kv := range env {
		if strings.HasPrefix(kv, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}
