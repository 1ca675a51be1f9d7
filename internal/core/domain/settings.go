package domain

import "time"

// RemoteSettings holds the remote directory source configuration.
// The remote is a Supabase project exposing the directory tables over
// its REST API and Google sign-in over its auth API.
type RemoteSettings struct {
	// URL is the Supabase project URL, e.g. https://xyz.supabase.co.
	URL string

	// AnonKey is the project's public (anon) API key.
	AnonKey string

	// GoogleClientID is the OAuth client for native Google sign-in.
	GoogleClientID string

	// GoogleClientSecret is the matching OAuth client secret.
	GoogleClientSecret string
}

// IsConfigured returns true if the remote source can be used.
func (r RemoteSettings) IsConfigured() bool {
	return r.URL != "" && r.AnonKey != ""
}

// SupportsSignIn returns true if Google sign-in can be attempted.
func (r RemoteSettings) SupportsSignIn() bool {
	return r.IsConfigured() && r.GoogleClientID != ""
}

// CacheSettings holds local cache behaviour configuration.
type CacheSettings struct {
	// TTL is how long cached directory data is considered fresh.
	TTL time.Duration
}

// Stale returns true if data refreshed at the given time is older than
// the TTL. A zero refresh time always counts as stale.
func (c CacheSettings) Stale(refreshedAt time.Time) bool {
	if refreshedAt.IsZero() {
		return true
	}
	return time.Since(refreshedAt) > c.TTL
}

// UISettings holds interactive behaviour configuration.
type UISettings struct {
	// DebounceDelay is the quiet period applied to live search input.
	DebounceDelay time.Duration
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Remote holds the remote directory source settings.
	Remote RemoteSettings

	// Cache holds local cache settings.
	Cache CacheSettings

	// UI holds interactive behaviour settings.
	UI UISettings
}

// DefaultAppSettings returns settings with sensible defaults.
// The remote source is left unconfigured; the app works from the
// bundled dataset until one is set up.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Remote: RemoteSettings{},
		Cache: CacheSettings{
			TTL: 24 * time.Hour,
		},
		UI: UISettings{
			DebounceDelay: 300 * time.Millisecond,
		},
	}
}

// Validate checks settings for configuration errors.
func (s AppSettings) Validate() error {
	if s.UI.DebounceDelay <= 0 {
		return ErrInvalidInput
	}
	if s.Cache.TTL <= 0 {
		return ErrInvalidInput
	}
	return nil
}
