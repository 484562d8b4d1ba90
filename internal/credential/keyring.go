package credential

import (
	"fmt"

	"github.com/zalando/go-keyring"
)

// keyringService namespaces entries in the OS keyring.
const keyringService = "runanywhere-agent"

func keyringGet(p Provider) (string, error) {
	return keyring.Get(keyringService, string(p))
}

// SaveKey stores an API key in the OS keyring for later runs.
func SaveKey(p Provider, key string) error {
	if key == "" {
		return fmt.Errorf("API key cannot be empty")
	}
	if err := keyring.Set(keyringService, string(p), key); err != nil {
		return fmt.Errorf("saving %s key to keyring: %w", p, err)
	}
	return nil
}

// DeleteKey removes a provider's API key from the OS keyring.
// Deleting a key that was never saved is not an error.
func DeleteKey(p Provider) error {
	err := keyring.Delete(keyringService, string(p))
	if err != nil && err != keyring.ErrNotFound {
		return fmt.Errorf("deleting %s key from keyring: %w", p, err)
	}
	return nil
}
