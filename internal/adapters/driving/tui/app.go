package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driving/tui/messages"
	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driving/tui/styles"
	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driving/tui/views/detail"
	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driving/tui/views/favourites"
	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driving/tui/views/menu"
	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driving/tui/views/search"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// menuView is the main navigation menu.
	menuView *menu.View

	// searchView is the live search view component.
	searchView *search.View

	// favouritesView lists favourited records.
	favouritesView *favourites.View

	// detailView shows a single record.
	detailView *detail.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	var delay time.Duration
	if ports.Settings != nil {
		if settings, err := ports.Settings.Get(); err == nil {
			delay = settings.UI.DebounceDelay
		}
	}

	s := styles.DefaultStyles()
	menuView := menu.NewView(s, ports.Sync)
	searchView := search.NewView(s, nil, ports.Directory, ports.Favourites, delay)
	favouritesView := favourites.NewView(s, nil, ports.Favourites)
	detailView := detail.NewView(s)

	return &App{
		ports:          ports,
		ctx:            context.Background(),
		styles:         s,
		menuView:       menuView,
		searchView:     searchView,
		favouritesView: favouritesView,
		detailView:     detailView,
		currentView:    messages.ViewMenu, // Start with menu
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.menuView.WithContext(ctx)
	a.searchView.WithContext(ctx)
	a.favouritesView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("pakuni - Universities & Scholarships"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.searchView.SetDimensions(msg.Width, msg.Height)
		a.favouritesView.SetDimensions(msg.Width, msg.Height)
		a.detailView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
			a.err = a.searchView.Err()
			return a, cmd

		case messages.ViewFavourites:
			a.favouritesView, cmd = a.favouritesView.Update(msg)
			return a, cmd

		case messages.ViewDetail:
			a.detailView, cmd = a.detailView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Esc from help goes to menu
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.ResultsLoaded:
		a.searchView, cmd = a.searchView.Update(msg)
		a.err = a.searchView.Err()
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewSearch:
			a.searchView.Reset()
			return a, a.searchView.Init()
		case messages.ViewFavourites:
			return a, a.favouritesView.Init()
		case messages.ViewMenu, messages.ViewDetail, messages.ViewHelp:
			// Other views don't need special initialisation
		}
		return a, nil

	case messages.UniversitySelected:
		a.detailView.SetUniversity(msg.University)
		a.detailView.SetReturnView(a.currentView)
		a.currentView = messages.ViewDetail
		return a, nil

	case messages.ScholarshipSelected:
		a.detailView.SetScholarship(msg.Scholarship)
		a.detailView.SetReturnView(a.currentView)
		a.currentView = messages.ViewDetail
		return a, nil

	case messages.FavouritesLoaded:
		a.favouritesView, cmd = a.favouritesView.Update(msg)
		return a, cmd

	case messages.FavouriteToggled:
		switch a.currentView {
		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
		case messages.ViewFavourites:
			a.favouritesView, cmd = a.favouritesView.Update(msg)
		case messages.ViewMenu, messages.ViewDetail, messages.ViewHelp:
			// Other views don't handle favourite toggles
		}
		return a, cmd

	case messages.SyncCompleted:
		a.menuView, cmd = a.menuView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		if a.currentView == messages.ViewSearch {
			a.searchView, cmd = a.searchView.Update(msg)
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewFavourites:
		a.favouritesView, cmd = a.favouritesView.Update(msg)
	case messages.ViewDetail:
		a.detailView, cmd = a.detailView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewFavourites:
		return a.favouritesView.View()
	case messages.ViewDetail:
		return a.detailView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Search:
  (type)      Filter as you type
  enter       Move to results
  tab         Switch universities/scholarships
  esc         Back to Menu

Results:
  j/k, ↑/↓    Navigate results
  enter       Show details
  f           Toggle favourite
  n           New search
  esc         Back to Menu

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.searchView.SetDimensions(width, height)
	a.favouritesView.SetDimensions(width, height)
	a.detailView.SetDimensions(width, height)
}
