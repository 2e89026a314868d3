package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

type stubNavigator struct {
	routes []string
}

func (s *stubNavigator) Navigate(_ context.Context, route string) {
	s.routes = append(s.routes, route)
}

func TestLogoutKeys(t *testing.T) {
	assert.Len(t, LogoutKeys, 21)
	seen := map[string]bool{}
	for _, key := range LogoutKeys {
		assert.False(t, seen[key], key)
		seen[key] = true
	}
}

func TestLogoutRemovesKeysAndNavigates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	store, err := Open(Options{Path: path})
	require.NoError(t, err)

	values := map[string]string{"theme": "dark"}
	for _, key := range LogoutKeys {
		values[key] = "v-" + key
	}
	require.NoError(t, store.SetMany(values))
	assert.True(t, store.LoggedIn())

	nav := &stubNavigator{}
	require.NoError(t, store.Logout(context.Background(), nav))
	for _, key := range LogoutKeys {
		assert.Empty(t, store.Get(key), key)
	}
	assert.Equal(t, []string{"theme"}, store.Keys())
	assert.Equal(t, []string{"/login"}, nav.routes)

	reopened, err := Open(Options{Path: path})
	require.NoError(t, err)
	assert.Equal(t, []string{"theme"}, reopened.Keys())
}

func TestInitialsAndDisplayName(t *testing.T) {
	store, err := Open(Options{})
	require.NoError(t, err)
	assert.Equal(t, "U", store.Initials())
	assert.Empty(t, store.DisplayName())

	require.NoError(t, store.SetMany(map[string]string{KeyName: "asha", KeyLastName: "rao"}))
	assert.Equal(t, "AR", store.Initials())
	assert.Equal(t, "asha rao", store.DisplayName())

	require.NoError(t, store.Delete(KeyLastName))
	assert.Equal(t, "A", store.Initials())
}

func TestTokenGoesToKeyring(t *testing.T) {
	keyring.MockInit()
	path := filepath.Join(t.TempDir(), "session.yaml")
	store, err := Open(Options{Path: path, Secrets: KeyringSecrets{Service: "facilities-test"}})
	require.NoError(t, err)

	require.NoError(t, store.SetMany(map[string]string{KeyToken: "secret", KeySiteID: "12", KeyUserID: "77"}))
	assert.Equal(t, "secret", store.Token())
	assert.Equal(t, "12", store.SiteID())
	assert.Equal(t, "77", store.UserID())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")

	stored, err := keyring.Get("facilities-test", KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "secret", stored)

	require.NoError(t, store.Logout(context.Background(), nil))
	assert.Empty(t, store.Token())
	assert.False(t, store.LoggedIn())
}

func TestOpenRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- not\n- a map\n"), 0o600))
	_, err := Open(Options{Path: path})
	assert.Error(t, err)
}

type failingSecrets struct {
	deletes []string
}

func (f *failingSecrets) Get(string) (string, error) { return "", ErrSecretNotFound }
func (f *failingSecrets) Set(string, string) error   { return nil }
func (f *failingSecrets) Delete(key string) error {
	f.deletes = append(f.deletes, key)
	return errors.New("keyring unavailable")
}

func TestLogoutClearsEverythingWhenSecretsFail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	secrets := &failingSecrets{}
	store, err := Open(Options{Path: path, Secrets: secrets})
	require.NoError(t, err)

	values := map[string]string{"theme": "dark"}
	for _, key := range LogoutKeys {
		values[key] = "v-" + key
	}
	require.NoError(t, store.SetMany(values))

	nav := &stubNavigator{}
	err = store.Logout(context.Background(), nav)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session: delete TOKEN: keyring unavailable")
	assert.Contains(t, err.Error(), "session: delete VIBETOKEN: keyring unavailable")
	assert.ElementsMatch(t, []string{KeyToken, KeyVibeToken}, secrets.deletes)
	assert.Equal(t, []string{"/login"}, nav.routes)
	assert.Equal(t, []string{"theme"}, store.Keys())

	reopened, err := Open(Options{Path: path})
	require.NoError(t, err)
	assert.Equal(t, []string{"theme"}, reopened.Keys())
}
