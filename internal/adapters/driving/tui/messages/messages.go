// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
	"github.com/pakuni-pk/pakuni-cli/internal/core/ports/driving"
)

// QueryChanged is sent when the search query input changes.
type QueryChanged struct {
	Query string
}

// ResultsLoaded carries filtered directory records back to the model.
// Only the slice matching the active record type is populated.
type ResultsLoaded struct {
	Query        string
	Universities []domain.University
	Scholarships []domain.Scholarship
	Err          error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewSearch is the live search input and results view.
	ViewSearch
	// ViewFavourites lists favourited records.
	ViewFavourites
	// ViewDetail shows a single record in full.
	ViewDetail
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSearch:
		return "search"
	case ViewFavourites:
		return "favourites"
	case ViewDetail:
		return "detail"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// UniversitySelected signals a university was selected for detail view.
type UniversitySelected struct {
	University domain.University
}

// ScholarshipSelected signals a scholarship was selected for detail view.
type ScholarshipSelected struct {
	Scholarship domain.Scholarship
}

// FavouritesLoaded carries the favourited records from the service.
type FavouritesLoaded struct {
	Universities []domain.University
	Scholarships []domain.Scholarship
	Err          error
}

// FavouriteToggled signals a record's favourite state was flipped.
type FavouriteToggled struct {
	RecordID   string
	RecordType domain.RecordType
	Favourited bool
	Err        error
}

// SyncCompleted signals a cache refresh finished.
type SyncCompleted struct {
	Result driving.SyncResult
	Err    error
}
