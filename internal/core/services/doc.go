// Package services implements the application's core use cases:
// directory search, cache synchronisation, favourites, authentication
// and settings. Services depend only on the ports defined under
// internal/core/ports and the domain package.
package services
