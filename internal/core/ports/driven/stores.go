package driven

import (
	"context"
	"time"

	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
)

// UniversityStore persists university records in the local cache.
type UniversityStore interface {
	// List returns all cached universities in insertion order.
	List(ctx context.Context) ([]domain.University, error)

	// Get returns the university with the given ID, or
	// domain.ErrNotFound if it is not cached.
	Get(ctx context.Context, id string) (domain.University, error)

	// ReplaceAll atomically replaces the cached set with the given
	// records and stamps the refresh time.
	ReplaceAll(ctx context.Context, records []domain.University, refreshedAt time.Time) error

	// RefreshedAt returns when the cached set was last replaced. A
	// zero time means the cache has never been populated.
	RefreshedAt(ctx context.Context) (time.Time, error)
}

// ScholarshipStore persists scholarship records in the local cache.
type ScholarshipStore interface {
	List(ctx context.Context) ([]domain.Scholarship, error)
	Get(ctx context.Context, id string) (domain.Scholarship, error)
	ReplaceAll(ctx context.Context, records []domain.Scholarship, refreshedAt time.Time) error
	RefreshedAt(ctx context.Context) (time.Time, error)
}

// FavouriteStore persists the user's favourite records.
type FavouriteStore interface {
	// List returns all favourites, newest first.
	List(ctx context.Context) ([]domain.Favourite, error)

	// Add saves a favourite. Returns domain.ErrAlreadyExists if the
	// record is already favourited.
	Add(ctx context.Context, fav domain.Favourite) error

	// Remove deletes the favourite for the given record. Returns
	// domain.ErrNotFound if it does not exist.
	Remove(ctx context.Context, recordID string, recordType domain.RecordType) error

	// Exists reports whether the given record is favourited.
	Exists(ctx context.Context, recordID string, recordType domain.RecordType) (bool, error)
}

// SessionStore persists the signed-in user session.
type SessionStore interface {
	// Get returns the stored session, or domain.ErrNotSignedIn if
	// no session exists.
	Get(ctx context.Context) (domain.Session, error)

	// Put replaces the stored session.
	Put(ctx context.Context, session domain.Session) error

	// Delete removes the stored session. Deleting an absent session
	// is not an error.
	Delete(ctx context.Context) error
}
