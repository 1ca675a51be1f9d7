package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
	"github.com/pakuni-pk/pakuni-cli/internal/core/ports/driven"
	"github.com/pakuni-pk/pakuni-cli/internal/core/ports/driving"
	"github.com/pakuni-pk/pakuni-cli/internal/logger"
)

// Ensure DirectoryService implements the interface.
var _ driving.DirectoryService = (*DirectoryService)(nil)

// DirectoryService serves filtered directory queries from the local
// cache, refreshing it through the sync service when stale.
type DirectoryService struct {
	universities driven.UniversityStore
	scholarships driven.ScholarshipStore
	syncer       driving.SyncService
}

// NewDirectoryService creates a new directory service.
func NewDirectoryService(
	universities driven.UniversityStore,
	scholarships driven.ScholarshipStore,
	syncer driving.SyncService,
) *DirectoryService {
	return &DirectoryService{
		universities: universities,
		scholarships: scholarships,
		syncer:       syncer,
	}
}

// SearchUniversities returns universities matching the criteria.
func (s *DirectoryService) SearchUniversities(ctx context.Context, criteria domain.FilterCriteria) ([]domain.University, error) {
	if err := s.ensureFresh(ctx); err != nil {
		return nil, err
	}

	records, err := s.universities.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list universities: %w", err)
	}

	return domain.FilterUniversities(records, criteria), nil
}

// SearchScholarships returns scholarships matching the criteria.
func (s *DirectoryService) SearchScholarships(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Scholarship, error) {
	if err := s.ensureFresh(ctx); err != nil {
		return nil, err
	}

	records, err := s.scholarships.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scholarships: %w", err)
	}

	return domain.FilterScholarships(records, criteria), nil
}

// GetUniversity returns a single university by ID.
func (s *DirectoryService) GetUniversity(ctx context.Context, id string) (domain.University, error) {
	if id == "" {
		return domain.University{}, fmt.Errorf("%w: university ID is required", domain.ErrInvalidInput)
	}
	if err := s.ensureFresh(ctx); err != nil {
		return domain.University{}, err
	}
	return s.universities.Get(ctx, id)
}

// GetScholarship returns a single scholarship by ID.
func (s *DirectoryService) GetScholarship(ctx context.Context, id string) (domain.Scholarship, error) {
	if id == "" {
		return domain.Scholarship{}, fmt.Errorf("%w: scholarship ID is required", domain.ErrInvalidInput)
	}
	if err := s.ensureFresh(ctx); err != nil {
		return domain.Scholarship{}, err
	}
	return s.scholarships.Get(ctx, id)
}

// Cities returns the distinct cities present in the directory, sorted
// alphabetically.
func (s *DirectoryService) Cities(ctx context.Context) ([]string, error) {
	if err := s.ensureFresh(ctx); err != nil {
		return nil, err
	}

	records, err := s.universities.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list universities: %w", err)
	}

	seen := make(map[string]bool)
	var cities []string
	for _, r := range records {
		if r.City == "" || seen[r.City] {
			continue
		}
		seen[r.City] = true
		cities = append(cities, r.City)
	}
	sort.Strings(cities)
	return cities, nil
}

// ensureFresh refreshes the cache when stale. A failed refresh is
// tolerated as long as the cache holds data from an earlier run.
func (s *DirectoryService) ensureFresh(ctx context.Context) error {
	result, err := s.syncer.Refresh(ctx, false)
	if err == nil {
		if !result.Skipped {
			logger.Debug("Directory refreshed from %s: %d universities, %d scholarships",
				result.Source, result.Universities, result.Scholarships)
		}
		return nil
	}

	refreshedAt, refErr := s.universities.RefreshedAt(ctx)
	if refErr != nil || refreshedAt.IsZero() {
		// No cached data to fall back on either.
		return fmt.Errorf("%w: refresh failed: %v", domain.ErrDirectoryEmpty, err)
	}

	logger.Warn("Refresh failed, serving cached directory from %s: %v",
		refreshedAt.Format("2006-01-02 15:04"), err)
	return nil
}
