// Package file provides a TOML file-based implementation of
// driven.ConfigStore.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
	"github.com/pakuni-pk/pakuni-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore persists application settings to a TOML file in the
// PakUni config directory.
type ConfigStore struct {
	mu       sync.Mutex
	filePath string
}

// tomlConfig is the on-disk TOML shape. Durations are stored as
// strings like "300ms" so the file stays hand-editable.
type tomlConfig struct {
	Remote struct {
		URL     string `toml:"url,omitempty"`
		AnonKey string `toml:"anon_key,omitempty"`
	} `toml:"remote,omitempty"`

	Google struct {
		ClientID     string `toml:"client_id,omitempty"`
		ClientSecret string `toml:"client_secret,omitempty"`
	} `toml:"google,omitempty"`

	Cache struct {
		TTL string `toml:"ttl,omitempty"`
	} `toml:"cache,omitempty"`

	UI struct {
		DebounceDelay string `toml:"debounce_delay,omitempty"`
	} `toml:"ui,omitempty"`
}

// NewConfigStore creates a new TOML-based config store.
// If configDir is empty, defaults to ~/.pakuni/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".pakuni")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
	}, nil
}

// Load reads settings from disk. If no config file exists the defaults
// are returned without error.
func (s *ConfigStore) Load() (domain.AppSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := domain.DefaultAppSettings()

	data, err := os.ReadFile(s.filePath)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return domain.AppSettings{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg tomlConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return domain.AppSettings{}, fmt.Errorf("parsing config file: %w", err)
	}

	settings.Remote.URL = cfg.Remote.URL
	settings.Remote.AnonKey = cfg.Remote.AnonKey
	settings.Remote.GoogleClientID = cfg.Google.ClientID
	settings.Remote.GoogleClientSecret = cfg.Google.ClientSecret

	if cfg.Cache.TTL != "" {
		ttl, err := time.ParseDuration(cfg.Cache.TTL)
		if err != nil {
			return domain.AppSettings{}, fmt.Errorf("parsing cache.ttl: %w", err)
		}
		settings.Cache.TTL = ttl
	}
	if cfg.UI.DebounceDelay != "" {
		delay, err := time.ParseDuration(cfg.UI.DebounceDelay)
		if err != nil {
			return domain.AppSettings{}, fmt.Errorf("parsing ui.debounce_delay: %w", err)
		}
		settings.UI.DebounceDelay = delay
	}

	return settings, nil
}

// Save writes settings to disk with restricted permissions. The anon
// key and client secret live here, so the file is not world-readable.
func (s *ConfigStore) Save(settings domain.AppSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cfg tomlConfig
	cfg.Remote.URL = settings.Remote.URL
	cfg.Remote.AnonKey = settings.Remote.AnonKey
	cfg.Google.ClientID = settings.Remote.GoogleClientID
	cfg.Google.ClientSecret = settings.Remote.GoogleClientSecret
	cfg.Cache.TTL = settings.Cache.TTL.String()
	cfg.UI.DebounceDelay = settings.UI.DebounceDelay.String()

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
