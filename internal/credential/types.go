// Package credential resolves model-provider API keys and threads them
// to the aider process as an explicit value, never by mutating the
// agent's own environment.
package credential

// Provider identifies a model API provider.
type Provider string

// Known providers, in default-model preference order.
const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
)

// Providers lists every known provider in preference order. Anthropic is
// preferred when both resolve to a usable key.
var Providers = []Provider{ProviderAnthropic, ProviderOpenAI}

// EnvVar returns the environment variable holding the provider's API key.
func (p Provider) EnvVar() string {
	switch p {
	case ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	}
	return ""
}

// DefaultModel returns the aider model identifier used when this
// provider is the preferred one with a usable key.
func (p Provider) DefaultModel() string {
	switch p {
	case ProviderAnthropic:
		return "sonnet"
	case ProviderOpenAI:
		return "gpt-4o"
	}
	return ""
}

// DisplayName returns the human-readable provider name for status output.
func (p Provider) DisplayName() string {
	switch p {
	case ProviderAnthropic:
		return "Anthropic (Claude)"
	case ProviderOpenAI:
		return "OpenAI (GPT)"
	}
	return string(p)
}

// Source records where a secret was resolved from.
type Source string

// Resolution sources, strongest first.
const (
	SourceEnv      Source = "environment"
	SourceKeyring  Source = "keyring"
	SourceEmbedded Source = "embedded"
	SourceNone     Source = "none"
)
