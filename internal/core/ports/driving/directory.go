package driving

import (
	"context"
	"time"

	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
)

// DirectoryService provides filtered access to the university and
// scholarship directory, served from the local cache and refreshed from
// the remote source when stale.
type DirectoryService interface {
	// SearchUniversities returns the universities matching the given
	// criteria, in stable directory order.
	SearchUniversities(ctx context.Context, criteria domain.FilterCriteria) ([]domain.University, error)

	// SearchScholarships returns the scholarships matching the given
	// criteria, in stable directory order.
	SearchScholarships(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Scholarship, error)

	// GetUniversity returns a single university by ID.
	GetUniversity(ctx context.Context, id string) (domain.University, error)

	// GetScholarship returns a single scholarship by ID.
	GetScholarship(ctx context.Context, id string) (domain.Scholarship, error)

	// Cities returns the distinct cities present in the directory,
	// sorted alphabetically.
	Cities(ctx context.Context) ([]string, error)
}

// SyncService refreshes the local cache from the remote source.
type SyncService interface {
	// Refresh fetches the directory from the remote source and
	// replaces the local cache. If force is false and the cache is
	// still fresh, the refresh is skipped.
	Refresh(ctx context.Context, force bool) (SyncResult, error)

	// Status reports the current cache freshness.
	Status(ctx context.Context) (SyncStatus, error)
}

// SyncResult describes the outcome of a refresh.
type SyncResult struct {
	// Skipped is true when the cache was still fresh and force was
	// not set.
	Skipped bool

	// Universities and Scholarships are the record counts written.
	Universities int
	Scholarships int

	// Source names where the records came from, "remote" or
	// "bundled".
	Source string

	// Duration is how long the refresh took.
	Duration time.Duration
}

// SyncStatus describes cache freshness.
type SyncStatus struct {
	// RefreshedAt is when the cache was last populated. Zero when
	// never populated.
	RefreshedAt time.Time

	// Stale is true when the cache is older than the configured TTL.
	Stale bool

	// Universities and Scholarships are the cached record counts.
	Universities int
	Scholarships int
}
