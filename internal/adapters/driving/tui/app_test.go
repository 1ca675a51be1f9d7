package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driving/tui/messages"
	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
)

func newTestPorts() *Ports {
	return &Ports{
		Directory:  &MockDirectoryService{},
		Favourites: &MockFavouritesService{},
		Sync:       &MockSyncService{},
	}
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(newTestPorts())

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	ports := &Ports{
		Directory:  nil,
		Favourites: &MockFavouritesService{},
	}

	app, err := NewApp(ports)

	assert.Error(t, err)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")
	result := app.WithContext(ctx)

	assert.Equal(t, app, result)
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	msg := tea.WindowSizeMsg{Width: 80, Height: 24}
	model, cmd := app.Update(msg)

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
}

func TestApp_Update_CtrlC_Quits(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	app.SetDimensions(80, 24)

	msg := tea.KeyMsg{Type: tea.KeyCtrlC}
	_, cmd := app.Update(msg)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_Update_ViewChanged(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	app.SetDimensions(80, 24)

	_, cmd := app.Update(messages.ViewChanged{View: messages.ViewSearch})

	assert.Equal(t, messages.ViewSearch, app.CurrentView())
	assert.NotNil(t, cmd)
}

func TestApp_Update_UniversitySelected_ShowsDetail(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	app.SetDimensions(80, 24)
	app.Update(messages.ViewChanged{View: messages.ViewSearch})

	u := domain.University{ID: "lums", Name: "LUMS", City: "Lahore"}
	app.Update(messages.UniversitySelected{University: u})

	assert.Equal(t, messages.ViewDetail, app.CurrentView())
	assert.Contains(t, app.View(), "LUMS")
}

func TestApp_Update_DetailEsc_ReturnsToPreviousView(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	app.SetDimensions(80, 24)
	app.Update(messages.ViewChanged{View: messages.ViewFavourites})
	app.Update(messages.ScholarshipSelected{
		Scholarship: domain.Scholarship{ID: "ehsaas-ug", Title: "Ehsaas"},
	})
	require.Equal(t, messages.ViewDetail, app.CurrentView())

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	app.Update(cmd())

	assert.Equal(t, messages.ViewFavourites, app.CurrentView())
}

func TestApp_Update_SyncCompleted_ReachesMenu(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	app.SetDimensions(80, 24)

	app.Update(messages.SyncCompleted{})

	assert.False(t, app.menuView.Syncing())
}

func TestApp_View_NotReady(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_View_Help(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	app.SetDimensions(80, 24)
	app.Update(messages.ViewChanged{View: messages.ViewHelp})

	view := app.View()

	assert.Contains(t, view, "Help")
	assert.Contains(t, view, "Toggle favourite")
}
