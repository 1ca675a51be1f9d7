package driving

import (
	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
)

// SettingsService manages persistent application settings.
type SettingsService interface {
	// Get returns the current settings.
	Get() (domain.AppSettings, error)

	// Update validates and persists the given settings.
	Update(settings domain.AppSettings) error

	// ConfigPath returns the location of the config file.
	ConfigPath() string
}
