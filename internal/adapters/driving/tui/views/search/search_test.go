package search

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driving/tui/components/input"
	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driving/tui/messages"
	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
)

// MockDirectoryService implements driving.DirectoryService for testing.
type MockDirectoryService struct {
	SearchUniversitiesFunc func(
		ctx context.Context, criteria domain.FilterCriteria,
	) ([]domain.University, error)
	SearchScholarshipsFunc func(
		ctx context.Context, criteria domain.FilterCriteria,
	) ([]domain.Scholarship, error)
}

func (m *MockDirectoryService) SearchUniversities(
	ctx context.Context, criteria domain.FilterCriteria,
) ([]domain.University, error) {
	if m.SearchUniversitiesFunc != nil {
		return m.SearchUniversitiesFunc(ctx, criteria)
	}
	return nil, nil
}

func (m *MockDirectoryService) SearchScholarships(
	ctx context.Context, criteria domain.FilterCriteria,
) ([]domain.Scholarship, error) {
	if m.SearchScholarshipsFunc != nil {
		return m.SearchScholarshipsFunc(ctx, criteria)
	}
	return nil, nil
}

func (m *MockDirectoryService) GetUniversity(_ context.Context, _ string) (domain.University, error) {
	return domain.University{}, nil
}

func (m *MockDirectoryService) GetScholarship(_ context.Context, _ string) (domain.Scholarship, error) {
	return domain.Scholarship{}, nil
}

func (m *MockDirectoryService) Cities(_ context.Context) ([]string, error) {
	return nil, nil
}

// MockFavouritesService implements driving.FavouritesService for testing.
type MockFavouritesService struct {
	ToggleFunc func(ctx context.Context, id string, rt domain.RecordType) (bool, error)
}

func (m *MockFavouritesService) ListUniversities(_ context.Context) ([]domain.University, error) {
	return nil, nil
}

func (m *MockFavouritesService) ListScholarships(_ context.Context) ([]domain.Scholarship, error) {
	return nil, nil
}

func (m *MockFavouritesService) Add(_ context.Context, _ string, _ domain.RecordType) error {
	return nil
}

func (m *MockFavouritesService) Remove(_ context.Context, _ string, _ domain.RecordType) error {
	return nil
}

func (m *MockFavouritesService) Toggle(ctx context.Context, id string, rt domain.RecordType) (bool, error) {
	if m.ToggleFunc != nil {
		return m.ToggleFunc(ctx, id, rt)
	}
	return false, nil
}

func (m *MockFavouritesService) IsFavourite(_ context.Context, _ string, _ domain.RecordType) (bool, error) {
	return false, nil
}

func testUniversities() []domain.University {
	return []domain.University{
		{ID: "lums", Name: "LUMS", City: "Lahore", Category: domain.CategoryPrivate},
		{ID: "nust", Name: "NUST", City: "Islamabad", Category: domain.CategoryPublic},
	}
}

func TestNewView(t *testing.T) {
	view := NewView(nil, nil, &MockDirectoryService{}, nil, 0)

	require.NotNil(t, view)
	assert.False(t, view.Ready())
	assert.Equal(t, "", view.Query())
	assert.True(t, view.InputFocused())
	assert.Equal(t, domain.RecordTypeUniversity, view.RecordType())
}

func TestNewView_NilStyles(t *testing.T) {
	view := NewView(nil, nil, nil, nil, 0)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
	assert.NotNil(t, view.keymap)
	assert.NotNil(t, view.debouncer)
}

func TestView_Update_WindowSize(t *testing.T) {
	view := NewView(nil, nil, nil, nil, 0)

	updated, cmd := view.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, view, updated)
	assert.Nil(t, cmd)
	assert.True(t, view.Ready())
	assert.Equal(t, 80, view.Width())
}

func TestView_Update_ResultsLoaded(t *testing.T) {
	view := NewView(nil, nil, nil, nil, 0)
	view.SetDimensions(80, 24)

	msg := messages.ResultsLoaded{Universities: testUniversities()}
	updated, cmd := view.Update(msg)

	assert.Equal(t, view, updated)
	// The listener is re-armed after each delivery.
	assert.NotNil(t, cmd)
	assert.Len(t, view.Universities(), 2)
	assert.NoError(t, view.Err())
}

func TestView_Update_ResultsLoaded_WithError(t *testing.T) {
	view := NewView(nil, nil, nil, nil, 0)
	view.SetDimensions(80, 24)

	msg := messages.ResultsLoaded{Err: errors.New("cache empty")}
	view.Update(msg)

	assert.Error(t, view.Err())
}

func TestView_TypingDebouncesSearch(t *testing.T) {
	searched := make(chan string, 4)
	mock := &MockDirectoryService{
		SearchUniversitiesFunc: func(
			_ context.Context, criteria domain.FilterCriteria,
		) ([]domain.University, error) {
			searched <- criteria.Query
			return testUniversities(), nil
		},
	}
	view := NewView(nil, nil, mock, nil, 30*time.Millisecond)
	view.SetDimensions(80, 24)

	// A burst of keystrokes inside the quiet period collapses into one
	// search for the final query.
	for _, r := range "lums" {
		view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	select {
	case query := <-searched:
		assert.Equal(t, "lums", query)
	case <-time.After(2 * time.Second):
		t.Fatal("debounced search never fired")
	}
	assert.Empty(t, searched)

	// The result is waiting on the channel for the listener command.
	msg := view.waitForResults()()
	loaded, ok := msg.(messages.ResultsLoaded)
	require.True(t, ok)
	assert.Equal(t, "lums", loaded.Query)
	assert.Len(t, loaded.Universities, 2)
}

func TestView_SwitchingTypeDoesNotDisturbPendingSearch(t *testing.T) {
	universitySearches := make(chan string, 4)
	scholarshipSearches := make(chan string, 4)
	mock := &MockDirectoryService{
		SearchUniversitiesFunc: func(
			_ context.Context, criteria domain.FilterCriteria,
		) ([]domain.University, error) {
			universitySearches <- criteria.Query
			return testUniversities(), nil
		},
		SearchScholarshipsFunc: func(
			_ context.Context, criteria domain.FilterCriteria,
		) ([]domain.Scholarship, error) {
			scholarshipSearches <- criteria.Query
			return nil, nil
		},
	}
	view := NewView(nil, nil, mock, nil, 30*time.Millisecond)
	view.SetDimensions(80, 24)

	// A keystroke schedules a university search, then Tab flips the
	// record type before the quiet period elapses. The pending search
	// must keep the collection it was scheduled against.
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, cmd)
	cmd()

	select {
	case query := <-scholarshipSearches:
		assert.Equal(t, "l", query)
	case <-time.After(2 * time.Second):
		t.Fatal("tab-triggered scholarship search never ran")
	}

	select {
	case query := <-universitySearches:
		assert.Equal(t, "l", query)
	case <-time.After(2 * time.Second):
		t.Fatal("debounced university search never fired")
	}
}

func TestView_WaitForResults_ArmsSingleListener(t *testing.T) {
	view := NewView(nil, nil, &MockDirectoryService{}, nil, 0)
	view.SetDimensions(80, 24)

	first := view.waitForResults()
	require.NotNil(t, first)

	// A second arm while the first receiver is still blocked is a
	// no-op, so menu round-trips do not stack goroutines.
	assert.Nil(t, view.waitForResults())

	// Delivery releases the receiver; the update loop re-arms exactly
	// one replacement.
	go view.deliver(messages.ResultsLoaded{Universities: testUniversities()})
	msg := first()
	_, cmd := view.Update(msg)
	assert.NotNil(t, cmd)
	assert.Nil(t, view.waitForResults())
}

func TestView_Update_KeyEsc_BackToMenu(t *testing.T) {
	view := NewView(nil, nil, nil, nil, 0)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}

func TestView_Update_KeyEnter_MovesToResults(t *testing.T) {
	view := NewView(nil, nil, nil, nil, 0)
	view.SetDimensions(80, 24)

	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, view.InputFocused())
}

func TestView_Update_KeyTab_SwitchesRecordType(t *testing.T) {
	scholarshipSearches := 0
	mock := &MockDirectoryService{
		SearchScholarshipsFunc: func(
			_ context.Context, _ domain.FilterCriteria,
		) ([]domain.Scholarship, error) {
			scholarshipSearches++
			return nil, nil
		},
	}
	view := NewView(nil, nil, mock, nil, 0)
	view.SetDimensions(80, 24)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyTab})

	assert.Equal(t, domain.RecordTypeScholarship, view.RecordType())
	assert.Equal(t, input.PlaceholderScholarships, view.input.Placeholder())
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, 1, scholarshipSearches)
}

func TestView_Update_KeyN_NewSearch(t *testing.T) {
	view := NewView(nil, nil, &MockDirectoryService{}, nil, 0)
	view.SetDimensions(80, 24)
	view.Update(messages.ResultsLoaded{Universities: testUniversities()})
	view.focusInput = false
	view.input.SetValue("old query")

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})

	assert.True(t, view.InputFocused())
	assert.Equal(t, "", view.Query())
}

func TestView_Update_KeyF_TogglesFavourite(t *testing.T) {
	favourites := &MockFavouritesService{
		ToggleFunc: func(_ context.Context, id string, rt domain.RecordType) (bool, error) {
			assert.Equal(t, "lums", id)
			assert.Equal(t, domain.RecordTypeUniversity, rt)
			return true, nil
		},
	}
	view := NewView(nil, nil, &MockDirectoryService{}, favourites, 0)
	view.SetDimensions(80, 24)
	view.Update(messages.ResultsLoaded{Universities: testUniversities()})
	view.focusInput = false

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})

	require.NotNil(t, cmd)
	toggled, ok := cmd().(messages.FavouriteToggled)
	require.True(t, ok)
	assert.Equal(t, "lums", toggled.RecordID)
	assert.True(t, toggled.Favourited)

	view.Update(toggled)
	assert.True(t, view.list.Items()[0].Favourite)
}

func TestView_Update_KeyEnter_InResultsMode_SelectsRecord(t *testing.T) {
	view := NewView(nil, nil, &MockDirectoryService{}, nil, 0)
	view.SetDimensions(80, 24)
	view.Update(messages.ResultsLoaded{Universities: testUniversities()})
	view.focusInput = false
	view.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	selected, ok := cmd().(messages.UniversitySelected)
	require.True(t, ok)
	assert.Equal(t, "nust", selected.University.ID)
}

func TestView_RunSearch_NoDirectoryService(t *testing.T) {
	view := NewView(nil, nil, nil, nil, 0)

	view.runSearch(searchRequest{query: "anything"})

	msg := view.waitForResults()()
	loaded, ok := msg.(messages.ResultsLoaded)
	require.True(t, ok)
	assert.ErrorIs(t, loaded.Err, ErrNoDirectoryService)
}

func TestView_Reset(t *testing.T) {
	view := NewView(nil, nil, &MockDirectoryService{}, nil, 0)
	view.SetDimensions(80, 24)
	view.Update(messages.ResultsLoaded{Universities: testUniversities()})
	view.focusInput = false

	view.Reset()

	assert.True(t, view.InputFocused())
	assert.Equal(t, "", view.Query())
	assert.Empty(t, view.list.Items())
}

func TestView_View_RendersSections(t *testing.T) {
	view := NewView(nil, nil, &MockDirectoryService{}, nil, 0)
	view.SetDimensions(80, 24)
	view.Update(messages.ResultsLoaded{Universities: testUniversities()})

	rendered := view.View()

	assert.Contains(t, rendered, "PakUni")
	assert.Contains(t, rendered, "LUMS")
	assert.Contains(t, rendered, "Lahore")
}
