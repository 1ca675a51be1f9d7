// Package tui provides an interactive terminal user interface for pakuni.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/pakuni-pk/pakuni-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Directory provides filtered access to the directory.
	Directory driving.DirectoryService

	// Favourites manages favourite records.
	Favourites driving.FavouritesService

	// Sync refreshes the local cache. Optional.
	Sync driving.SyncService

	// Settings manages application settings. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	directory driving.DirectoryService,
	favourites driving.FavouritesService,
	sync driving.SyncService,
) *Ports {
	return &Ports{
		Directory:  directory,
		Favourites: favourites,
		Sync:       sync,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Directory == nil {
		return ErrMissingDirectoryService
	}
	if p.Favourites == nil {
		return ErrMissingFavouritesService
	}
	return nil
}
