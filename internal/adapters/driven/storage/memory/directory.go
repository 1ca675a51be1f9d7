// Package memory provides in-memory implementations of the storage
// ports, used for tests and as a fallback when SQLite is unavailable.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
	"github.com/pakuni-pk/pakuni-cli/internal/core/ports/driven"
)

// Ensure UniversityStore implements the interface.
var _ driven.UniversityStore = (*UniversityStore)(nil)

// UniversityStore is an in-memory implementation of
// driven.UniversityStore.
type UniversityStore struct {
	mu          sync.RWMutex
	records     []domain.University
	refreshedAt time.Time
}

// NewUniversityStore creates a new in-memory university store.
func NewUniversityStore() *UniversityStore {
	return &UniversityStore{}
}

// List returns all cached universities in insertion order.
func (s *UniversityStore) List(_ context.Context) ([]domain.University, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.University, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Get retrieves a university by ID.
func (s *UniversityStore) Get(_ context.Context, id string) (domain.University, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.University{}, domain.ErrNotFound
}

// ReplaceAll atomically replaces the cached set.
func (s *UniversityStore) ReplaceAll(_ context.Context, records []domain.University, refreshedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make([]domain.University, len(records))
	copy(s.records, records)
	s.refreshedAt = refreshedAt
	return nil
}

// RefreshedAt returns when the cached set was last replaced.
func (s *UniversityStore) RefreshedAt(_ context.Context) (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshedAt, nil
}

// Ensure ScholarshipStore implements the interface.
var _ driven.ScholarshipStore = (*ScholarshipStore)(nil)

// ScholarshipStore is an in-memory implementation of
// driven.ScholarshipStore.
type ScholarshipStore struct {
	mu          sync.RWMutex
	records     []domain.Scholarship
	refreshedAt time.Time
}

// NewScholarshipStore creates a new in-memory scholarship store.
func NewScholarshipStore() *ScholarshipStore {
	return &ScholarshipStore{}
}

// List returns all cached scholarships in insertion order.
func (s *ScholarshipStore) List(_ context.Context) ([]domain.Scholarship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Scholarship, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Get retrieves a scholarship by ID.
func (s *ScholarshipStore) Get(_ context.Context, id string) (domain.Scholarship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Scholarship{}, domain.ErrNotFound
}

// ReplaceAll atomically replaces the cached set.
func (s *ScholarshipStore) ReplaceAll(_ context.Context, records []domain.Scholarship, refreshedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make([]domain.Scholarship, len(records))
	copy(s.records, records)
	s.refreshedAt = refreshedAt
	return nil
}

// RefreshedAt returns when the cached set was last replaced.
func (s *ScholarshipStore) RefreshedAt(_ context.Context) (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshedAt, nil
}
