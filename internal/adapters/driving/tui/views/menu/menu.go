// Package menu provides the main navigation menu view for the TUI.
package menu

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driving/tui/messages"
	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driving/tui/styles"
	"github.com/pakuni-pk/pakuni-cli/internal/core/ports/driving"
)

// Item represents a single menu option.
type Item struct {
	Label string
	View  messages.ViewType
	Sync  bool // If true, selecting this item triggers a cache refresh
	Quit  bool // If true, selecting this item quits the app
}

// View represents the main menu view.
type View struct {
	styles *styles.Styles
	sync   driving.SyncService
	ctx    context.Context

	items    []Item
	selected int
	status   string
	syncing  bool
	width    int
	height   int
	ready    bool
}

// NewView creates a new menu view. The sync service may be nil, in
// which case the sync item reports unavailability.
func NewView(s *styles.Styles, sync driving.SyncService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		sync:   sync,
		ctx:    context.Background(),
		items: []Item{
			{Label: "Search", View: messages.ViewSearch},
			{Label: "Favourites", View: messages.ViewFavourites},
			{Label: "Sync now", Sync: true},
			{Label: "Help", View: messages.ViewHelp},
			{Label: "Quit", Quit: true},
		},
		selected: 0,
		width:    80,
		height:   24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case messages.SyncCompleted:
		v.syncing = false
		v.status = syncStatusLine(msg)
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			item := v.items[v.selected]
			switch {
			case item.Quit:
				return v, tea.Quit
			case item.Sync:
				return v, v.startSync()
			default:
				return v, func() tea.Msg {
					return messages.ViewChanged{View: item.View}
				}
			}

		case "q":
			return v, tea.Quit
		}
	}

	return v, nil
}

// startSync kicks off a cache refresh in the background.
func (v *View) startSync() tea.Cmd {
	if v.sync == nil {
		v.status = "Sync unavailable"
		return nil
	}
	if v.syncing {
		return nil
	}

	v.syncing = true
	v.status = "Syncing..."
	return func() tea.Msg {
		result, err := v.sync.Refresh(v.ctx, false)
		return messages.SyncCompleted{Result: result, Err: err}
	}
}

// syncStatusLine summarises a completed refresh for the status line.
func syncStatusLine(msg messages.SyncCompleted) string {
	if msg.Err != nil {
		return "Sync failed: " + msg.Err.Error()
	}
	if msg.Result.Skipped {
		return "Cache is already fresh"
	}
	return fmt.Sprintf(
		"Synced %d universities and %d scholarships from %s",
		msg.Result.Universities, msg.Result.Scholarships, msg.Result.Source,
	)
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	title := v.styles.Title.Render("PakUni")
	b.WriteString(title)
	b.WriteString("\n\n")

	subtitle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render("Pakistani Universities & Scholarships")
	b.WriteString(subtitle)
	b.WriteString("\n\n")

	for i, item := range v.items {
		cursor := "  "
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

		if i == v.selected {
			cursor = "> "
			style = lipgloss.NewStyle().
				Foreground(lipgloss.Color("86")).
				Bold(true)
		}

		b.WriteString(cursor + style.Render(item.Label))
		b.WriteString("\n")
	}

	if v.status != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(v.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render("[j/k] Navigate  [Enter] Select  [q] Quit")
	b.WriteString(footer)

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Status returns the current status line.
func (v *View) Status() string {
	return v.status
}

// Syncing reports whether a refresh is in flight.
func (v *View) Syncing() bool {
	return v.syncing
}
