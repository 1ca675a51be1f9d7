package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
	"github.com/pakuni-pk/pakuni-cli/internal/core/ports/driven"
	"github.com/pakuni-pk/pakuni-cli/internal/core/ports/driving"
)

// Ensure FavouritesService implements the interface.
var _ driving.FavouritesService = (*FavouritesService)(nil)

// FavouritesService manages the user's favourite directory records.
type FavouritesService struct {
	favourites   driven.FavouriteStore
	universities driven.UniversityStore
	scholarships driven.ScholarshipStore
}

// NewFavouritesService creates a new favourites service.
func NewFavouritesService(
	favourites driven.FavouriteStore,
	universities driven.UniversityStore,
	scholarships driven.ScholarshipStore,
) *FavouritesService {
	return &FavouritesService{
		favourites:   favourites,
		universities: universities,
		scholarships: scholarships,
	}
}

// ListUniversities returns the favourited universities, newest
// favourite first. Favourites whose record has left the directory are
// silently skipped.
func (s *FavouritesService) ListUniversities(ctx context.Context) ([]domain.University, error) {
	favs, err := s.favourites.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list favourites: %w", err)
	}

	var records []domain.University
	for _, f := range favs {
		if f.Type != domain.RecordTypeUniversity {
			continue
		}
		record, err := s.universities.Get(ctx, f.RecordID)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get university %s: %w", f.RecordID, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// ListScholarships returns the favourited scholarships, newest
// favourite first.
func (s *FavouritesService) ListScholarships(ctx context.Context) ([]domain.Scholarship, error) {
	favs, err := s.favourites.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list favourites: %w", err)
	}

	var records []domain.Scholarship
	for _, f := range favs {
		if f.Type != domain.RecordTypeScholarship {
			continue
		}
		record, err := s.scholarships.Get(ctx, f.RecordID)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get scholarship %s: %w", f.RecordID, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// Add favourites the given record.
func (s *FavouritesService) Add(ctx context.Context, recordID string, recordType domain.RecordType) error {
	if recordID == "" {
		return fmt.Errorf("%w: record ID is required", domain.ErrInvalidInput)
	}
	if !recordType.IsValid() {
		return fmt.Errorf("%w: unknown record type %q", domain.ErrInvalidInput, recordType)
	}

	if err := s.recordExists(ctx, recordID, recordType); err != nil {
		return err
	}

	fav := domain.Favourite{
		ID:        uuid.NewString(),
		RecordID:  recordID,
		Type:      recordType,
		CreatedAt: time.Now(),
	}
	if err := s.favourites.Add(ctx, fav); err != nil {
		return fmt.Errorf("add favourite: %w", err)
	}
	return nil
}

// Remove unfavourites the given record.
func (s *FavouritesService) Remove(ctx context.Context, recordID string, recordType domain.RecordType) error {
	if recordID == "" {
		return fmt.Errorf("%w: record ID is required", domain.ErrInvalidInput)
	}
	if err := s.favourites.Remove(ctx, recordID, recordType); err != nil {
		return fmt.Errorf("remove favourite: %w", err)
	}
	return nil
}

// Toggle favourites the record if not favourited and unfavourites it
// otherwise. Returns true if the record is favourited after the call.
func (s *FavouritesService) Toggle(ctx context.Context, recordID string, recordType domain.RecordType) (bool, error) {
	exists, err := s.favourites.Exists(ctx, recordID, recordType)
	if err != nil {
		return false, fmt.Errorf("check favourite: %w", err)
	}

	if exists {
		if err := s.Remove(ctx, recordID, recordType); err != nil {
			return true, err
		}
		return false, nil
	}

	if err := s.Add(ctx, recordID, recordType); err != nil {
		return false, err
	}
	return true, nil
}

// IsFavourite reports whether the given record is favourited.
func (s *FavouritesService) IsFavourite(ctx context.Context, recordID string, recordType domain.RecordType) (bool, error) {
	return s.favourites.Exists(ctx, recordID, recordType)
}

// recordExists verifies the record is present in the directory before
// it can be favourited.
func (s *FavouritesService) recordExists(ctx context.Context, recordID string, recordType domain.RecordType) error {
	var err error
	switch recordType {
	case domain.RecordTypeUniversity:
		_, err = s.universities.Get(ctx, recordID)
	case domain.RecordTypeScholarship:
		_, err = s.scholarships.Get(ctx, recordID)
	}
	if err != nil {
		return fmt.Errorf("look up %s %s: %w", recordType, recordID, err)
	}
	return nil
}
