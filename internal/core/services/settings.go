package services

import (
	"fmt"

	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
	"github.com/pakuni-pk/pakuni-cli/internal/core/ports/driven"
	"github.com/pakuni-pk/pakuni-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages persistent application settings.
type SettingsService struct {
	store driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(store driven.ConfigStore) *SettingsService {
	return &SettingsService{store: store}
}

// Get returns the current settings.
func (s *SettingsService) Get() (domain.AppSettings, error) {
	settings, err := s.store.Load()
	if err != nil {
		return domain.AppSettings{}, fmt.Errorf("load settings: %w", err)
	}
	return settings, nil
}

// Update validates and persists the given settings.
func (s *SettingsService) Update(settings domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("validate settings: %w", err)
	}
	if err := s.store.Save(settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// ConfigPath returns the location of the config file.
func (s *SettingsService) ConfigPath() string {
	return s.store.Path()
}
