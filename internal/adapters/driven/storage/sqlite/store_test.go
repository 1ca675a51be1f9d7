package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_MigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening the same database runs no migration twice.
	store, err = NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Close())
}

func TestUniversityStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	universities := store.UniversityStore()

	records, err := universities.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	refreshedAt, err := universities.RefreshedAt(ctx)
	require.NoError(t, err)
	assert.True(t, refreshedAt.IsZero())

	now := time.Now().UTC().Truncate(time.Second)
	input := []domain.University{
		{
			ID: "u1", Name: "Lahore University of Management Sciences",
			ShortName: "LUMS", City: "Lahore", Category: domain.CategoryPrivate,
			Website: "https://lums.edu.pk", FoundedYear: 1984, Ranking: 1,
			UpdatedAt: now,
		},
		{ID: "u2", Name: "NUST", ShortName: "NUST", City: "Islamabad", Category: domain.CategoryPublic},
	}
	require.NoError(t, universities.ReplaceAll(ctx, input, now))

	records, err = universities.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "u1", records[0].ID)
	assert.Equal(t, domain.CategoryPrivate, records[0].Category)
	assert.Equal(t, 1984, records[0].FoundedYear)
	assert.True(t, records[1].UpdatedAt.IsZero())

	got, err := universities.Get(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, "NUST", got.ShortName)

	_, err = universities.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	stamp, err := universities.RefreshedAt(ctx)
	require.NoError(t, err)
	assert.WithinDuration(t, now, stamp, time.Second)
}

func TestUniversityStore_ReplacePreservesOrder(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	universities := store.UniversityStore()

	// IDs deliberately out of lexical order.
	input := []domain.University{
		{ID: "z9", Name: "Ziauddin", ShortName: "ZU", City: "Karachi", Category: domain.CategoryPrivate},
		{ID: "a1", Name: "Aga Khan", ShortName: "AKU", City: "Karachi", Category: domain.CategoryPrivate},
		{ID: "m5", Name: "MAJU", ShortName: "MAJU", City: "Karachi", Category: domain.CategoryPrivate},
	}
	require.NoError(t, universities.ReplaceAll(ctx, input, time.Now()))

	records, err := universities.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "z9", records[0].ID)
	assert.Equal(t, "a1", records[1].ID)
	assert.Equal(t, "m5", records[2].ID)
}

func TestScholarshipStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	scholarships := store.ScholarshipStore()

	now := time.Now().UTC().Truncate(time.Second)
	input := []domain.Scholarship{
		{
			ID: "s1", Title: "Ehsaas Undergraduate Scholarship", Provider: "HEC",
			Level: domain.LevelUndergraduate, Amount: "Full tuition", Deadline: "2026-10-31",
		},
	}
	require.NoError(t, scholarships.ReplaceAll(ctx, input, now))

	records, err := scholarships.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.LevelUndergraduate, records[0].Level)
	assert.Equal(t, "Full tuition", records[0].Amount)

	_, err = scholarships.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFavouriteStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	favourites := store.FavouriteStore()

	base := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, favourites.Add(ctx, domain.Favourite{
		ID: "f1", RecordID: "u1", Type: domain.RecordTypeUniversity, CreatedAt: base,
	}))
	require.NoError(t, favourites.Add(ctx, domain.Favourite{
		ID: "f2", RecordID: "s1", Type: domain.RecordTypeScholarship, CreatedAt: base.Add(time.Minute),
	}))

	// Duplicate record/type pair is rejected.
	err := favourites.Add(ctx, domain.Favourite{
		ID: "f3", RecordID: "u1", Type: domain.RecordTypeUniversity, CreatedAt: base,
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	favs, err := favourites.List(ctx)
	require.NoError(t, err)
	require.Len(t, favs, 2)
	assert.Equal(t, "f2", favs[0].ID)

	exists, err := favourites.Exists(ctx, "u1", domain.RecordTypeUniversity)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, favourites.Remove(ctx, "u1", domain.RecordTypeUniversity))
	assert.ErrorIs(t, favourites.Remove(ctx, "u1", domain.RecordTypeUniversity), domain.ErrNotFound)
}

func TestSessionStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	sessions := store.SessionStore()

	_, err := sessions.Get(ctx)
	assert.ErrorIs(t, err, domain.ErrNotSignedIn)

	now := time.Now().UTC().Truncate(time.Second)
	session := domain.Session{
		ID:           "sess-1",
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresAt:    now.Add(time.Hour),
		User: domain.UserProfile{
			ID:    "user-1",
			Email: "student@example.pk",
			Name:  "Student",
		},
		CreatedAt: now,
	}
	require.NoError(t, sessions.Put(ctx, session))

	got, err := sessions.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", got.ID)
	assert.Equal(t, "student@example.pk", got.User.Email)

	// Put replaces any existing session.
	session.ID = "sess-2"
	require.NoError(t, sessions.Put(ctx, session))
	got, err = sessions.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sess-2", got.ID)

	require.NoError(t, sessions.Delete(ctx))
	_, err = sessions.Get(ctx)
	assert.ErrorIs(t, err, domain.ErrNotSignedIn)
}
