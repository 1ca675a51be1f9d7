package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
)

func TestConfigStore_LoadDefaultsWhenNoFile(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), settings)
}

func TestConfigStore_SaveAndLoad(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	settings := domain.DefaultAppSettings()
	settings.Remote.URL = "https://abc.supabase.co"
	settings.Remote.AnonKey = "anon-key"
	settings.Remote.GoogleClientID = "client-id.apps.googleusercontent.com"
	settings.Cache.TTL = 6 * time.Hour
	settings.UI.DebounceDelay = 500 * time.Millisecond

	require.NoError(t, store.Save(settings))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save(domain.DefaultAppSettings()))

	info, err := os.Stat(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	content := "[remote]\nurl = \"https://abc.supabase.co\"\nanon_key = \"anon\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "https://abc.supabase.co", settings.Remote.URL)
	assert.Equal(t, 24*time.Hour, settings.Cache.TTL)
	assert.Equal(t, 300*time.Millisecond, settings.UI.DebounceDelay)
}

func TestConfigStore_InvalidDuration(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	content := "[ui]\ndebounce_delay = \"not-a-duration\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	_, err = store.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "debounce_delay")
}

func TestConfigStore_Path(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}
