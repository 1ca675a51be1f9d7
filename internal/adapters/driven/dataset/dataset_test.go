package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
)

func TestSource_BundledDataset(t *testing.T) {
	ctx := context.Background()
	source, err := NewSource()
	require.NoError(t, err)

	universities, err := source.ListUniversities(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, universities)

	// Every bundled record is well formed.
	for _, u := range universities {
		assert.True(t, u.IsValid(), "bundled university %q is malformed", u.ID)
	}

	scholarships, err := source.ListScholarships(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, scholarships)
	for _, s := range scholarships {
		assert.True(t, s.IsValid(), "bundled scholarship %q is malformed", s.ID)
	}
}

func TestSource_BundledContainsKnownRecords(t *testing.T) {
	ctx := context.Background()
	source, err := NewSource()
	require.NoError(t, err)

	universities, err := source.ListUniversities(ctx)
	require.NoError(t, err)

	byID := make(map[string]domain.University)
	for _, u := range universities {
		byID[u.ID] = u
	}

	lums, ok := byID["lums"]
	require.True(t, ok)
	assert.Equal(t, "LUMS", lums.ShortName)
	assert.Equal(t, "Lahore", lums.City)
	assert.Equal(t, domain.CategoryPrivate, lums.Category)

	nust, ok := byID["nust"]
	require.True(t, ok)
	assert.Equal(t, domain.CategoryPublic, nust.Category)
}

func TestSource_OverrideReplacesBundled(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	override := `[{"id": "custom", "name": "Custom University", "short_name": "CU", "city": "Lahore", "category": "private"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "universities.json"), []byte(override), 0600))

	source, err := NewSourceWithOverride(dir)
	require.NoError(t, err)
	defer source.Close()

	universities, err := source.ListUniversities(ctx)
	require.NoError(t, err)
	require.Len(t, universities, 1)
	assert.Equal(t, "custom", universities[0].ID)

	// Scholarships have no override file, so the bundled set is used.
	scholarships, err := source.ListScholarships(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, scholarships)
}

func TestSource_WatcherPicksUpChanges(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	source, err := NewSourceWithOverride(dir)
	require.NoError(t, err)
	defer source.Close()

	before, err := source.ListUniversities(ctx)
	require.NoError(t, err)
	assert.Greater(t, len(before), 1)

	override := `[{"id": "custom", "name": "Custom University", "short_name": "CU", "city": "Lahore", "category": "private"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "universities.json"), []byte(override), 0600))

	assert.Eventually(t, func() bool {
		after, err := source.ListUniversities(ctx)
		return err == nil && len(after) == 1 && after[0].ID == "custom"
	}, 5*time.Second, 50*time.Millisecond)
}

func TestSource_RelevantEvent(t *testing.T) {
	source := &Source{}

	tests := []struct {
		name     string
		event    fsnotify.Event
		expected bool
	}{
		{
			name:     "write to universities file",
			event:    fsnotify.Event{Name: "/data/universities.json", Op: fsnotify.Write},
			expected: true,
		},
		{
			name:     "create scholarships file",
			event:    fsnotify.Event{Name: "/data/scholarships.json", Op: fsnotify.Create},
			expected: true,
		},
		{
			name:     "remove universities file",
			event:    fsnotify.Event{Name: "/data/universities.json", Op: fsnotify.Remove},
			expected: true,
		},
		{
			name:     "chmod is ignored",
			event:    fsnotify.Event{Name: "/data/universities.json", Op: fsnotify.Chmod},
			expected: false,
		},
		{
			name:     "unrelated file is ignored",
			event:    fsnotify.Event{Name: "/data/notes.txt", Op: fsnotify.Write},
			expected: false,
		},
		{
			name:     "editor temp file is ignored",
			event:    fsnotify.Event{Name: "/data/.universities.json.swp", Op: fsnotify.Write},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, source.relevantEvent(tt.event))
		})
	}
}

func TestSource_CloseWithoutWatcher(t *testing.T) {
	source, err := NewSource()
	require.NoError(t, err)
	assert.NoError(t, source.Close())
}
