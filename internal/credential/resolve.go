package credential

import (
	"encoding/base64"
	"os"
	"strings"

	"github.com/runanywhereai/runanywhere-agent/internal/log"
)

// Embedded fallback keys for internal distribution. Values are base64
// encoded to prevent casual viewing only; anyone with the binary can
// recover them. Encode a real key with `runanywhere-agent encode-key`
// and replace the placeholder before building an internal release.
var embeddedKeys = map[Provider]string{
	ProviderAnthropic: "REPLACE_WITH_BASE64_ENCODED_ANTHROPIC_KEY",
	ProviderOpenAI:    "REPLACE_WITH_BASE64_ENCODED_OPENAI_KEY",
}

// unconfiguredPrefix marks embedded placeholders that were never
// replaced with real key material.
const unconfiguredPrefix = "REPLACE_WITH"

// decodeEmbedded decodes a base64-embedded key. Placeholders still
// carrying the unconfigured sentinel, empty values, and malformed
// base64 all decode to absent.
func decodeEmbedded(encoded string) (string, bool) {
	if encoded == "" || strings.HasPrefix(encoded, unconfiguredPrefix) {
		return "", false
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(raw) == 0 {
		return "", false
	}
	return string(raw), true
}

// EncodeKey encodes a raw API key for embedding in embeddedKeys.
func EncodeKey(raw string) string {
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// Resolve returns the usable secret for a provider, if any. The caller's
// environment variable always wins verbatim; then a key saved with
// `runanywhere-agent login`; then the embedded fallback.
func Resolve(p Provider) (string, Source) {
	if v := os.Getenv(p.EnvVar()); v != "" {
		return v, SourceEnv
	}
	if v, err := keyringGet(p); err == nil && v != "" {
		return v, SourceKeyring
	}
	if v, ok := decodeEmbedded(embeddedKeys[p]); ok {
		return v, SourceEmbedded
	}
	return "", SourceNone
}

// ResolveSet resolves every known provider once, at process start.
func ResolveSet() Set {
	s := Set{
		secrets: make(map[Provider]string),
		sources: make(map[Provider]Source),
	}
	for _, p := range Providers {
		secret, source := Resolve(p)
		s.secrets[p] = secret
		s.sources[p] = source
		log.Debug("resolved provider credential", "provider", string(p), "source", string(source))
	}
	return s
}
