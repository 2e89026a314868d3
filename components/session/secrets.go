package session

import (
	"errors"

	"github.com/zalando/go-keyring"
)

// ErrSecretNotFound is returned by Secrets when nothing is stored.
var ErrSecretNotFound = errors.New("session: secret not found")

// Secrets keeps sensitive values out of the session file.
type Secrets interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// KeyringSecrets stores secrets in the OS keyring under Service.
type KeyringSecrets struct {
	Service string
}

// DefaultKeyringService names the keyring entry owner.
const DefaultKeyringService = "go-facilities"

func (k KeyringSecrets) service() string {
	if k.Service == "" {
		return DefaultKeyringService
	}
	return k.Service
}

func (k KeyringSecrets) Get(key string) (string, error) {
	value, err := keyring.Get(k.service(), key)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrSecretNotFound
	}
	return value, err
}

func (k KeyringSecrets) Set(key, value string) error {
	return keyring.Set(k.service(), key, value)
}

func (k KeyringSecrets) Delete(key string) error {
	err := keyring.Delete(k.service(), key)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
