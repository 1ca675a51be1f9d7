package mcp

import (
	"github.com/pakuni-pk/pakuni-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP
// server. This provides a single injection point.
type Ports struct {
	// Directory provides filtered access to the directory.
	Directory driving.DirectoryService

	// Favourites manages favourite records. Optional.
	Favourites driving.FavouritesService

	// Sync reports cache freshness. Optional.
	Sync driving.SyncService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Directory == nil {
		return ErrMissingDirectoryService
	}
	return nil
}
