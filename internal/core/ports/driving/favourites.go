package driving

import (
	"context"

	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
)

// FavouritesService manages the user's favourite directory records.
type FavouritesService interface {
	// ListUniversities returns the favourited universities, newest
	// favourite first.
	ListUniversities(ctx context.Context) ([]domain.University, error)

	// ListScholarships returns the favourited scholarships, newest
	// favourite first.
	ListScholarships(ctx context.Context) ([]domain.Scholarship, error)

	// Add favourites the given record. Returns
	// domain.ErrAlreadyExists if it is already favourited and
	// domain.ErrNotFound if no such record exists in the directory.
	Add(ctx context.Context, recordID string, recordType domain.RecordType) error

	// Remove unfavourites the given record. Returns
	// domain.ErrNotFound if it is not favourited.
	Remove(ctx context.Context, recordID string, recordType domain.RecordType) error

	// Toggle favourites the record if it is not favourited and
	// unfavourites it otherwise. Returns true if the record is
	// favourited after the call.
	Toggle(ctx context.Context, recordID string, recordType domain.RecordType) (bool, error)

	// IsFavourite reports whether the given record is favourited.
	IsFavourite(ctx context.Context, recordID string, recordType domain.RecordType) (bool, error)
}
