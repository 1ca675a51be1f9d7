package search

import "errors"

// ErrNoDirectoryService is returned when no directory service is configured.
var ErrNoDirectoryService = errors.New("search: no directory service configured")
