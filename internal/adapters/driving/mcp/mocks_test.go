package mcp

import (
	"context"

	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
	"github.com/pakuni-pk/pakuni-cli/internal/core/ports/driving"
)

// --- Mock implementations ---

// mockDirectoryService is a mock implementation of
// driving.DirectoryService.
type mockDirectoryService struct {
	universities []domain.University
	scholarships []domain.Scholarship
	university   domain.University
	scholarship  domain.Scholarship
	cities       []string
	err          error

	gotCriteria domain.FilterCriteria
}

func (m *mockDirectoryService) SearchUniversities(
	_ context.Context,
	criteria domain.FilterCriteria,
) ([]domain.University, error) {
	m.gotCriteria = criteria
	return m.universities, m.err
}

func (m *mockDirectoryService) SearchScholarships(
	_ context.Context,
	criteria domain.FilterCriteria,
) ([]domain.Scholarship, error) {
	m.gotCriteria = criteria
	return m.scholarships, m.err
}

func (m *mockDirectoryService) GetUniversity(_ context.Context, _ string) (domain.University, error) {
	return m.university, m.err
}

func (m *mockDirectoryService) GetScholarship(_ context.Context, _ string) (domain.Scholarship, error) {
	return m.scholarship, m.err
}

func (m *mockDirectoryService) Cities(_ context.Context) ([]string, error) {
	return m.cities, m.err
}

// mockFavouritesService is a mock implementation of
// driving.FavouritesService.
type mockFavouritesService struct {
	universities []domain.University
	scholarships []domain.Scholarship
	err          error
}

func (m *mockFavouritesService) ListUniversities(_ context.Context) ([]domain.University, error) {
	return m.universities, m.err
}

func (m *mockFavouritesService) ListScholarships(_ context.Context) ([]domain.Scholarship, error) {
	return m.scholarships, m.err
}

func (m *mockFavouritesService) Add(_ context.Context, _ string, _ domain.RecordType) error {
	return m.err
}

func (m *mockFavouritesService) Remove(_ context.Context, _ string, _ domain.RecordType) error {
	return m.err
}

func (m *mockFavouritesService) Toggle(_ context.Context, _ string, _ domain.RecordType) (bool, error) {
	return false, m.err
}

func (m *mockFavouritesService) IsFavourite(_ context.Context, _ string, _ domain.RecordType) (bool, error) {
	return false, m.err
}

// mockSyncService is a mock implementation of driving.SyncService.
type mockSyncService struct {
	result driving.SyncResult
	status driving.SyncStatus
	err    error
}

func (m *mockSyncService) Refresh(_ context.Context, _ bool) (driving.SyncResult, error) {
	return m.result, m.err
}

func (m *mockSyncService) Status(_ context.Context) (driving.SyncStatus, error) {
	return m.status, m.err
}

var (
	_ driving.DirectoryService  = (*mockDirectoryService)(nil)
	_ driving.FavouritesService = (*mockFavouritesService)(nil)
	_ driving.SyncService       = (*mockSyncService)(nil)
)
