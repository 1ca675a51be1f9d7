package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
	"github.com/pakuni-pk/pakuni-cli/internal/core/ports/driven"
	"github.com/pakuni-pk/pakuni-cli/internal/core/ports/driving"
	"github.com/pakuni-pk/pakuni-cli/internal/logger"
)

// Ensure SyncService implements the interface.
var _ driving.SyncService = (*SyncService)(nil)

// SyncService refreshes the local cache from the remote directory,
// falling back to the bundled dataset when the remote is unavailable.
type SyncService struct {
	universities driven.UniversityStore
	scholarships driven.ScholarshipStore
	remote       driven.DirectorySource
	bundled      driven.DirectorySource
	cache        domain.CacheSettings

	// mu serialises refreshes so concurrent callers do not race on
	// ReplaceAll.
	mu sync.Mutex
}

// NewSyncService creates a new sync service. remote may be nil when no
// remote backend is configured; bundled must not be nil.
func NewSyncService(
	universities driven.UniversityStore,
	scholarships driven.ScholarshipStore,
	remote driven.DirectorySource,
	bundled driven.DirectorySource,
	cache domain.CacheSettings,
) *SyncService {
	return &SyncService{
		universities: universities,
		scholarships: scholarships,
		remote:       remote,
		bundled:      bundled,
		cache:        cache,
	}
}

// Refresh fetches the directory and replaces the local cache. If force
// is false and the cache is still fresh, the refresh is skipped.
func (s *SyncService) Refresh(ctx context.Context, force bool) (driving.SyncResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !force {
		refreshedAt, err := s.universities.RefreshedAt(ctx)
		if err != nil {
			return driving.SyncResult{}, fmt.Errorf("check cache freshness: %w", err)
		}
		if !s.cache.Stale(refreshedAt) {
			logger.Debug("Cache is fresh (refreshed %s), skipping refresh",
				refreshedAt.Format(time.RFC3339))
			return driving.SyncResult{Skipped: true}, nil
		}
	}

	start := time.Now()

	universities, scholarships, source, err := s.fetch(ctx)
	if err != nil {
		return driving.SyncResult{}, err
	}

	universities = validUniversities(universities)
	scholarships = validScholarships(scholarships)

	now := time.Now()
	if err := s.universities.ReplaceAll(ctx, universities, now); err != nil {
		return driving.SyncResult{}, fmt.Errorf("store universities: %w", err)
	}
	if err := s.scholarships.ReplaceAll(ctx, scholarships, now); err != nil {
		return driving.SyncResult{}, fmt.Errorf("store scholarships: %w", err)
	}

	result := driving.SyncResult{
		Universities: len(universities),
		Scholarships: len(scholarships),
		Source:       source,
		Duration:     time.Since(start),
	}

	logger.Info("Refreshed directory from %s: %d universities, %d scholarships in %v",
		result.Source, result.Universities, result.Scholarships, result.Duration.Round(time.Millisecond))

	return result, nil
}

// Status reports the current cache freshness.
func (s *SyncService) Status(ctx context.Context) (driving.SyncStatus, error) {
	refreshedAt, err := s.universities.RefreshedAt(ctx)
	if err != nil {
		return driving.SyncStatus{}, fmt.Errorf("check cache freshness: %w", err)
	}

	universities, err := s.universities.List(ctx)
	if err != nil {
		return driving.SyncStatus{}, fmt.Errorf("list universities: %w", err)
	}
	scholarships, err := s.scholarships.List(ctx)
	if err != nil {
		return driving.SyncStatus{}, fmt.Errorf("list scholarships: %w", err)
	}

	return driving.SyncStatus{
		RefreshedAt:  refreshedAt,
		Stale:        s.cache.Stale(refreshedAt),
		Universities: len(universities),
		Scholarships: len(scholarships),
	}, nil
}

// fetch returns the directory records from the remote source, falling
// back to the bundled dataset when the remote is missing or fails.
func (s *SyncService) fetch(ctx context.Context) ([]domain.University, []domain.Scholarship, string, error) {
	if s.remote != nil {
		universities, uErr := s.remote.ListUniversities(ctx)
		if uErr == nil {
			scholarships, sErr := s.remote.ListScholarships(ctx)
			if sErr == nil {
				return universities, scholarships, "remote", nil
			}
			logger.Warn("Remote scholarship fetch failed: %v", sErr)
		} else {
			logger.Warn("Remote university fetch failed: %v", uErr)
		}
	}

	universities, err := s.bundled.ListUniversities(ctx)
	if err != nil {
		return nil, nil, "", fmt.Errorf("load bundled universities: %w", err)
	}
	scholarships, err := s.bundled.ListScholarships(ctx)
	if err != nil {
		return nil, nil, "", fmt.Errorf("load bundled scholarships: %w", err)
	}
	return universities, scholarships, "bundled", nil
}

// validUniversities drops malformed records before they enter the
// cache.
func validUniversities(records []domain.University) []domain.University {
	valid := make([]domain.University, 0, len(records))
	for _, r := range records {
		if !r.IsValid() {
			logger.Warn("Skipping malformed university record %q", r.ID)
			continue
		}
		valid = append(valid, r)
	}
	return valid
}

func validScholarships(records []domain.Scholarship) []domain.Scholarship {
	valid := make([]domain.Scholarship, 0, len(records))
	for _, r := range records {
		if !r.IsValid() {
			logger.Warn("Skipping malformed scholarship record %q", r.ID)
			continue
		}
		valid = append(valid, r)
	}
	return valid
}
