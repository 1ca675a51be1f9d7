package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
)

// mockConfigStore implements driven.ConfigStore for testing.
type mockConfigStore struct {
	settings domain.AppSettings
	loadErr  error
	saveErr  error
	saved    bool
}

func (m *mockConfigStore) Load() (domain.AppSettings, error) {
	if m.loadErr != nil {
		return domain.AppSettings{}, m.loadErr
	}
	return m.settings, nil
}

func (m *mockConfigStore) Save(settings domain.AppSettings) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.settings = settings
	m.saved = true
	return nil
}

func (m *mockConfigStore) Path() string {
	return "/tmp/pakuni/config.toml"
}

func TestSettingsService_Get(t *testing.T) {
	store := &mockConfigStore{settings: domain.DefaultAppSettings()}
	svc := NewSettingsService(store)

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, 300*time.Millisecond, settings.UI.DebounceDelay)

	store.loadErr = errors.New("corrupt file")
	_, err = svc.Get()
	assert.Error(t, err)
}

func TestSettingsService_Update(t *testing.T) {
	store := &mockConfigStore{settings: domain.DefaultAppSettings()}
	svc := NewSettingsService(store)

	updated := domain.DefaultAppSettings()
	updated.UI.DebounceDelay = 500 * time.Millisecond
	require.NoError(t, svc.Update(updated))
	assert.True(t, store.saved)
	assert.Equal(t, 500*time.Millisecond, store.settings.UI.DebounceDelay)

	// Invalid settings never reach the store.
	store.saved = false
	invalid := domain.DefaultAppSettings()
	invalid.Cache.TTL = -time.Hour
	assert.Error(t, svc.Update(invalid))
	assert.False(t, store.saved)
}

func TestSettingsService_ConfigPath(t *testing.T) {
	svc := NewSettingsService(&mockConfigStore{})
	assert.Equal(t, "/tmp/pakuni/config.toml", svc.ConfigPath())
}
