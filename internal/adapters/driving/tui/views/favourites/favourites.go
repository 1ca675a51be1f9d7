// Package favourites provides the favourites list view for the TUI.
package favourites

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driving/tui/components/list"
	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driving/tui/components/status"
	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driving/tui/keymap"
	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driving/tui/messages"
	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driving/tui/styles"
	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
	"github.com/pakuni-pk/pakuni-cli/internal/core/ports/driving"
)

// View lists favourited records with removal and detail navigation.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	list      *list.RecordList
	statusbar *status.Bar

	favourites driving.FavouritesService
	ctx        context.Context

	recordType   domain.RecordType
	universities []domain.University
	scholarships []domain.Scholarship

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new favourites view.
func NewView(s *styles.Styles, km *keymap.KeyMap, favourites driving.FavouritesService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:     s,
		keymap:     km,
		list:       list.NewRecordList(s),
		statusbar:  status.NewBar(s, km),
		favourites: favourites,
		ctx:        context.Background(),
		recordType: domain.RecordTypeUniversity,
		width:      80,
		height:     24,
	}
	v.list.SetTitle("Favourite universities")

	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the favourites.
func (v *View) Init() tea.Cmd {
	return v.load()
}

// load fetches both favourite collections from the service.
func (v *View) load() tea.Cmd {
	return func() tea.Msg {
		universities, err := v.favourites.ListUniversities(v.ctx)
		if err != nil {
			return messages.FavouritesLoaded{Err: err}
		}
		scholarships, err := v.favourites.ListScholarships(v.ctx)
		if err != nil {
			return messages.FavouritesLoaded{Err: err}
		}
		return messages.FavouritesLoaded{
			Universities: universities,
			Scholarships: scholarships,
		}
	}
}

// Update handles messages for the favourites view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.FavouritesLoaded:
		v.handleLoaded(msg)
		return v, nil

	case messages.FavouriteToggled:
		if msg.Err != nil {
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.statusbar.SetMessage("Removed from favourites")
		return v, v.load()
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if msg.Type == tea.KeyTab {
		v.switchRecordType()
		return v, nil
	}

	if msg.Type == tea.KeyEnter {
		return v, v.selectCurrent()
	}

	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyUp:
		v.list.MoveUp()
		return v, nil
	case tea.KeyDown:
		v.list.MoveDown()
		return v, nil
	}

	switch msg.String() {
	case "k":
		v.list.MoveUp()
	case "j":
		v.list.MoveDown()
	case "f", "d":
		return v, v.removeCurrent()
	}

	return v, nil
}

// switchRecordType flips between the two favourite collections.
func (v *View) switchRecordType() {
	if v.recordType == domain.RecordTypeUniversity {
		v.recordType = domain.RecordTypeScholarship
		v.list.SetTitle("Favourite scholarships")
	} else {
		v.recordType = domain.RecordTypeUniversity
		v.list.SetTitle("Favourite universities")
	}
	v.refreshItems()
}

// handleLoaded stores the loaded favourites and refreshes the list.
func (v *View) handleLoaded(msg messages.FavouritesLoaded) {
	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}

	v.err = nil
	v.universities = msg.Universities
	v.scholarships = msg.Scholarships
	v.refreshItems()
}

// refreshItems rebuilds the list for the active record type.
func (v *View) refreshItems() {
	var items []list.Item

	if v.recordType == domain.RecordTypeScholarship {
		items = make([]list.Item, len(v.scholarships))
		for i := range v.scholarships {
			s := &v.scholarships[i]
			items[i] = list.Item{
				ID:        s.ID,
				Title:     s.Title,
				Subtitle:  s.Provider,
				Meta:      string(s.Level),
				Favourite: true,
			}
		}
	} else {
		items = make([]list.Item, len(v.universities))
		for i := range v.universities {
			u := &v.universities[i]
			items[i] = list.Item{
				ID:        u.ID,
				Title:     u.Name,
				Subtitle:  u.City,
				Meta:      string(u.Category),
				Favourite: true,
			}
		}
	}

	v.list.SetItems(items)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetResultCount(len(items))
}

// removeCurrent unfavourites the selected record.
func (v *View) removeCurrent() tea.Cmd {
	item := v.list.SelectedItem()
	if item == nil {
		return nil
	}

	id := item.ID
	recordType := v.recordType
	return func() tea.Msg {
		err := v.favourites.Remove(v.ctx, id, recordType)
		return messages.FavouriteToggled{
			RecordID:   id,
			RecordType: recordType,
			Favourited: false,
			Err:        err,
		}
	}
}

// selectCurrent emits a selection message for the highlighted record.
func (v *View) selectCurrent() tea.Cmd {
	item := v.list.SelectedItem()
	if item == nil {
		return nil
	}

	if v.recordType == domain.RecordTypeScholarship {
		for i := range v.scholarships {
			if v.scholarships[i].ID == item.ID {
				s := v.scholarships[i]
				return func() tea.Msg {
					return messages.ScholarshipSelected{Scholarship: s}
				}
			}
		}
		return nil
	}

	for i := range v.universities {
		if v.universities[i].ID == item.ID {
			u := v.universities[i]
			return func() tea.Msg {
				return messages.UniversitySelected{University: u}
			}
		}
	}
	return nil
}

// View renders the favourites view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 6)

	header := v.styles.Title.Render("Favourites")
	sections = append(sections, header, "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	sections = append(sections, v.list.View())
	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.list.SetDimensions(width, height-8)
	v.statusbar.SetWidth(width)
}

// RecordType returns the collection currently shown.
func (v *View) RecordType() domain.RecordType {
	return v.recordType
}

// Universities returns the loaded favourite universities.
func (v *View) Universities() []domain.University {
	return v.universities
}

// Scholarships returns the loaded favourite scholarships.
func (v *View) Scholarships() []domain.Scholarship {
	return v.scholarships
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}
