package store

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const (
	keyringService = "curados-cli"
	keyringKey     = "api-token"
)

// KeyringStore routes the token key to the OS keychain/credential manager
// and delegates everything else to the wrapped store. Only the credential
// needs keychain protection; the user snapshot and theme are not secrets.
type KeyringStore struct {
	fallback Store
}

func NewKeyringStore(fallback Store) *KeyringStore {
	return &KeyringStore{fallback: fallback}
}

func (s *KeyringStore) Get(key string) (string, error) {
	if key != KeyToken {
		return s.fallback.Get(key)
	}

	token, err := keyring.Get(keyringService, keyringKey)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to load token: %w", err)
	}
	return token, nil
}

func (s *KeyringStore) Set(key, value string) error {
	if key != KeyToken {
		return s.fallback.Set(key, value)
	}

	if err := keyring.Set(keyringService, keyringKey, value); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

func (s *KeyringStore) Delete(key string) error {
	if key != KeyToken {
		return s.fallback.Delete(key)
	}

	if err := keyring.Delete(keyringService, keyringKey); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil // Already deleted
		}
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}
