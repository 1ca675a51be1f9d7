package tui

import "errors"

// ErrMissingDirectoryService is returned when the directory service is not provided.
var ErrMissingDirectoryService = errors.New("tui: directory service is required")

// ErrMissingFavouritesService is returned when the favourites service is not provided.
var ErrMissingFavouritesService = errors.New("tui: favourites service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
