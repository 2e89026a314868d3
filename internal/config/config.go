// Package config loads facilityctl settings from YAML, then the
// environment, then defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvBaseURL         = "FACILITIES_BASE_URL"
	EnvToken           = "FACILITIES_TOKEN"
	EnvSiteID          = "FACILITIES_SITE_ID"
	EnvTimeout         = "FACILITIES_TIMEOUT"
	EnvRateLimit       = "FACILITIES_RATE_LIMIT"
	EnvSessionPath     = "FACILITIES_SESSION_PATH"
	EnvPreferencesPath = "FACILITIES_PREFERENCES_PATH"
	EnvKeyring         = "FACILITIES_KEYRING"
	EnvLogLevel        = "FACILITIES_LOG_LEVEL"
	EnvLogFormat       = "FACILITIES_LOG_FORMAT"
	EnvServerAddr      = "FACILITIES_SERVER_ADDR"
	EnvMetricsAddr     = "FACILITIES_METRICS_ADDR"
)

// ErrBaseURLRequired is returned by RequireRemote when no backend is set.
var ErrBaseURLRequired = errors.New("config: base_url is required")

// Log selects the slog handler.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Server configures the preview server.
type Server struct {
	Addr        string `yaml:"addr"`
	MetricsAddr string `yaml:"metrics_addr"`
}

// Config holds every facilityctl setting.
type Config struct {
	BaseURL string        `yaml:"base_url"`
	Token   string        `yaml:"token"`
	SiteID  string        `yaml:"site_id"`
	Timeout time.Duration `yaml:"timeout"`
	// RateLimit is requests per second; zero disables limiting.
	RateLimit       float64 `yaml:"rate_limit"`
	SessionPath     string  `yaml:"session_path"`
	PreferencesPath string  `yaml:"preferences_path"`
	// Keyring stores the session token in the OS keyring.
	Keyring bool   `yaml:"keyring"`
	Log     Log    `yaml:"log"`
	Server  Server `yaml:"server"`
}

// Defaults returns the built-in settings rooted at dir (usually the user
// config directory).
func Defaults(dir string) Config {
	return Config{
		Timeout:         10 * time.Second,
		SessionPath:     filepath.Join(dir, "session.yaml"),
		PreferencesPath: filepath.Join(dir, "preferences.yaml"),
		Log:             Log{Level: "info", Format: "text"},
		Server:          Server{Addr: ":8080", MetricsAddr: ":9090"},
	}
}

// DefaultDir is ~/.config/facilities, or ".facilities" when the user config
// dir is unknown.
func DefaultDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".facilities"
	}
	return filepath.Join(base, "facilities")
}

// Load reads path (optional; a missing file is not an error), applies
// environment overrides from getenv and fills defaults.
func Load(path string, getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	dir := DefaultDir()
	if path != "" {
		dir = filepath.Dir(path)
	}
	cfg := Defaults(dir)
	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg, getenv); err != nil {
		return Config{}, err
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return cfg, nil
}

// RequireRemote checks the settings needed to reach the backend.
func (c Config) RequireRemote() error {
	if c.BaseURL == "" {
		return ErrBaseURLRequired
	}
	return nil
}

func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("config: decode %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	strs := map[string]*string{
		EnvBaseURL:         &cfg.BaseURL,
		EnvToken:           &cfg.Token,
		EnvSiteID:          &cfg.SiteID,
		EnvSessionPath:     &cfg.SessionPath,
		EnvPreferencesPath: &cfg.PreferencesPath,
		EnvLogLevel:        &cfg.Log.Level,
		EnvLogFormat:       &cfg.Log.Format,
		EnvServerAddr:      &cfg.Server.Addr,
		EnvMetricsAddr:     &cfg.Server.MetricsAddr,
	}
	for key, dst := range strs {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	if v := strings.TrimSpace(getenv(EnvTimeout)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvTimeout, err)
		}
		cfg.Timeout = d
	}
	if v := strings.TrimSpace(getenv(EnvRateLimit)); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvRateLimit, err)
		}
		cfg.RateLimit = f
	}
	if v := strings.TrimSpace(getenv(EnvKeyring)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvKeyring, err)
		}
		cfg.Keyring = b
	}
	return nil
}
