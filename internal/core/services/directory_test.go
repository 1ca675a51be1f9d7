package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driven/storage/memory"
	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
	"github.com/pakuni-pk/pakuni-cli/internal/core/ports/driving"
)

// mockSyncService implements driving.SyncService for testing.
type mockSyncService struct {
	result     driving.SyncResult
	refreshErr error
	calls      int
}

func (m *mockSyncService) Refresh(_ context.Context, _ bool) (driving.SyncResult, error) {
	m.calls++
	if m.refreshErr != nil {
		return driving.SyncResult{}, m.refreshErr
	}
	return m.result, nil
}

func (m *mockSyncService) Status(_ context.Context) (driving.SyncStatus, error) {
	return driving.SyncStatus{}, nil
}

func newTestDirectory(t *testing.T) (*DirectoryService, *memory.UniversityStore, *memory.ScholarshipStore, *mockSyncService) {
	t.Helper()

	uniStore := memory.NewUniversityStore()
	schStore := memory.NewScholarshipStore()
	syncer := &mockSyncService{result: driving.SyncResult{Skipped: true}}

	ctx := context.Background()
	require.NoError(t, uniStore.ReplaceAll(ctx, []domain.University{
		{ID: "u1", Name: "Lahore University of Management Sciences", ShortName: "LUMS", City: "Lahore", Category: domain.CategoryPrivate},
		{ID: "u2", Name: "National University of Sciences and Technology", ShortName: "NUST", City: "Islamabad", Category: domain.CategoryPublic},
		{ID: "u3", Name: "Quaid-i-Azam University", ShortName: "QAU", City: "Islamabad", Category: domain.CategoryPublic},
	}, time.Now()))
	require.NoError(t, schStore.ReplaceAll(ctx, []domain.Scholarship{
		{ID: "s1", Title: "Ehsaas Undergraduate Scholarship", Provider: "HEC", Level: domain.LevelUndergraduate},
		{ID: "s2", Title: "Fulbright Program", Provider: "USEFP", Level: domain.LevelGraduate},
	}, time.Now()))

	return NewDirectoryService(uniStore, schStore, syncer), uniStore, schStore, syncer
}

func TestDirectoryService_SearchUniversities(t *testing.T) {
	ctx := context.Background()
	svc, _, _, syncer := newTestDirectory(t)

	results, err := svc.SearchUniversities(ctx, domain.FilterCriteria{Query: "lums"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "u1", results[0].ID)
	assert.Equal(t, 1, syncer.calls)

	results, err = svc.SearchUniversities(ctx, domain.FilterCriteria{Category: domain.CategoryPublic})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestDirectoryService_SearchScholarships(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestDirectory(t)

	results, err := svc.SearchScholarships(ctx, domain.FilterCriteria{Level: domain.LevelGraduate})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "s2", results[0].ID)
}

func TestDirectoryService_Get(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestDirectory(t)

	uni, err := svc.GetUniversity(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, "NUST", uni.ShortName)

	_, err = svc.GetUniversity(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetUniversity(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	sch, err := svc.GetScholarship(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "HEC", sch.Provider)
}

func TestDirectoryService_Cities(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestDirectory(t)

	cities, err := svc.Cities(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Islamabad", "Lahore"}, cities)
}

func TestDirectoryService_ServesCacheWhenRefreshFails(t *testing.T) {
	ctx := context.Background()
	svc, _, _, syncer := newTestDirectory(t)
	syncer.refreshErr = errors.New("remote unavailable")

	// The cache holds data, so a failed refresh is tolerated.
	results, err := svc.SearchUniversities(ctx, domain.FilterCriteria{})
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestDirectoryService_FailsWhenRefreshFailsAndCacheEmpty(t *testing.T) {
	ctx := context.Background()
	uniStore := memory.NewUniversityStore()
	schStore := memory.NewScholarshipStore()
	syncer := &mockSyncService{refreshErr: errors.New("remote unavailable")}

	svc := NewDirectoryService(uniStore, schStore, syncer)

	// With nothing in the cache the failure surfaces as an explicit
	// empty-directory error, not a silent empty result.
	_, err := svc.SearchUniversities(ctx, domain.FilterCriteria{})
	assert.ErrorIs(t, err, domain.ErrDirectoryEmpty)

	_, err = svc.Cities(ctx)
	assert.ErrorIs(t, err, domain.ErrDirectoryEmpty)
}
