package driven

import (
	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
)

// ConfigStore persists application settings between runs.
type ConfigStore interface {
	// Load reads settings from disk. If no config file exists the
	// defaults are returned without error.
	Load() (domain.AppSettings, error)

	// Save writes settings to disk, creating the config directory
	// if needed.
	Save(settings domain.AppSettings) error

	// Path returns the location of the config file.
	Path() string
}
