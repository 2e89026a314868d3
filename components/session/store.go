package session

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// secretKeys are routed to Secrets when one is configured.
var secretKeys = map[string]bool{KeyToken: true, KeyVibeToken: true}

// Navigator moves the caller to a route.
type Navigator interface {
	Navigate(ctx context.Context, route string)
}

// Options configures a Store.
type Options struct {
	// Path of the YAML session file. Empty keeps values in memory.
	Path string
	// Secrets holds the tokens. Nil stores them with the other values.
	Secrets Secrets
	Logger  *slog.Logger
}

// Store holds the identity keys written at login.
type Store struct {
	path    string
	secrets Secrets
	logger  *slog.Logger

	mu     sync.RWMutex
	values map[string]string
}

// Open builds a store and loads its file when present.
func Open(opts Options) (*Store, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		path:    opts.Path,
		secrets: opts.Secrets,
		logger:  logger,
		values:  map[string]string{},
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the value stored for key, or "" when unset.
func (s *Store) Get(key string) string {
	if s.secrets != nil && secretKeys[key] {
		value, err := s.secrets.Get(key)
		if err != nil {
			if !errors.Is(err, ErrSecretNotFound) {
				s.logger.Warn("session secret lookup failed", "key", key, "error", err)
			}
			return ""
		}
		return value
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

// Set stores key and persists the session.
func (s *Store) Set(key, value string) error {
	return s.SetMany(map[string]string{key: value})
}

// SetMany stores several keys and persists once.
func (s *Store) SetMany(values map[string]string) error {
	s.mu.Lock()
	for key, value := range values {
		if s.secrets != nil && secretKeys[key] {
			if err := s.secrets.Set(key, value); err != nil {
				s.mu.Unlock()
				return fmt.Errorf("session: store %s: %w", key, err)
			}
			continue
		}
		s.values[key] = value
	}
	s.mu.Unlock()
	return s.save()
}

// Delete removes every key and persists the session. Secret deletion
// failures do not stop the remaining keys from being removed; they are
// joined into the returned error.
func (s *Store) Delete(keys ...string) error {
	var errs []error
	s.mu.Lock()
	for _, key := range keys {
		if s.secrets != nil && secretKeys[key] {
			if err := s.secrets.Delete(key); err != nil {
				errs = append(errs, fmt.Errorf("session: delete %s: %w", key, err))
			}
			continue
		}
		delete(s.values, key)
	}
	s.mu.Unlock()
	if err := s.save(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Keys returns the stored non-secret keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Token returns the API token.
func (s *Store) Token() string { return s.Get(KeyToken) }

// SiteID returns the active site.
func (s *Store) SiteID() string { return s.Get(KeySiteID) }

// UserID returns the logged-in user id.
func (s *Store) UserID() string { return s.Get(KeyUserID) }

// LoggedIn reports whether a token is present.
func (s *Store) LoggedIn() bool { return s.Token() != "" }

// Initials returns the uppercased first letters of first and last name,
// or "U" when both are blank.
func (s *Store) Initials() string {
	initials := firstRune(s.Get(KeyName)) + firstRune(s.Get(KeyLastName))
	if initials == "" {
		return "U"
	}
	return strings.ToUpper(initials)
}

// DisplayName joins first and last name.
func (s *Store) DisplayName() string {
	return strings.TrimSpace(s.Get(KeyName) + " " + s.Get(KeyLastName))
}

// Logout removes every key in LogoutKeys and navigates to LoginRoute. The
// navigation happens even when some keys could not be cleared.
func (s *Store) Logout(ctx context.Context, nav Navigator) error {
	err := s.Delete(LogoutKeys...)
	if err != nil {
		s.logger.WarnContext(ctx, "session cleared with errors", "error", err)
	} else {
		s.logger.InfoContext(ctx, "session cleared", "keys", len(LogoutKeys))
	}
	if nav != nil {
		nav.Navigate(ctx, LoginRoute)
	}
	return err
}

func (s *Store) load() error {
	if s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("session: read %s: %w", s.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	values := map[string]string{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("session: decode %s: %w", s.path, err)
	}
	s.values = values
	return nil
}

func (s *Store) save() error {
	if s.path == "" {
		return nil
	}
	s.mu.RLock()
	data, err := yaml.Marshal(s.values)
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("session: create dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("session: write %s: %w", s.path, err)
	}
	return nil
}

func firstRune(s string) string {
	for _, r := range strings.TrimSpace(s) {
		return string(r)
	}
	return ""
}
