// Package search provides the live search view for the TUI. Keystrokes
// are debounced before the directory is re-filtered, so a fast typist
// triggers one search per pause rather than one per key.
package search

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driving/tui/components/input"
	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driving/tui/components/list"
	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driving/tui/components/status"
	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driving/tui/keymap"
	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driving/tui/messages"
	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driving/tui/styles"
	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
	"github.com/pakuni-pk/pakuni-cli/internal/core/ports/driving"
	"github.com/pakuni-pk/pakuni-cli/internal/debounce"
)

// defaultDelay is used when no debounce delay is configured.
const defaultDelay = 300 * time.Millisecond

// searchRequest is what the debouncer carries. The record type is
// captured when the search is scheduled, on the Bubbletea loop, so the
// debounced callback never reads view state from its own goroutine.
type searchRequest struct {
	query      string
	recordType domain.RecordType
}

// View represents the search view with input, results list, and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.RecordList
	statusbar *status.Bar

	directory  driving.DirectoryService
	favourites driving.FavouritesService
	ctx        context.Context

	// debouncer delays re-filtering until typing pauses. Its callback
	// runs off the Bubbletea loop and delivers results through resultCh.
	debouncer *debounce.Callback[searchRequest]
	resultCh  chan tea.Msg

	// listening is true while a waitForResults command is blocked on
	// resultCh. Guards against arming a second receiver on re-entry.
	listening bool

	// recordType selects which collection is searched.
	recordType domain.RecordType

	universities []domain.University
	scholarships []domain.Scholarship

	width      int
	height     int
	ready      bool
	err        error
	focusInput bool
}

// NewView creates a new search view. A non-positive delay falls back to
// the default.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	directory driving.DirectoryService,
	favourites driving.FavouritesService,
	delay time.Duration,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	if delay <= 0 {
		delay = defaultDelay
	}

	v := &View{
		styles:     s,
		keymap:     km,
		input:      input.NewSearchInput(s),
		list:       list.NewRecordList(s),
		statusbar:  status.NewBar(s, km),
		directory:  directory,
		favourites: favourites,
		ctx:        context.Background(),
		resultCh:   make(chan tea.Msg, 1),
		recordType: domain.RecordTypeUniversity,
		width:      80,
		height:     24,
		focusInput: true,
	}
	v.list.SetTitle("Universities")

	// Delay is validated above, so construction cannot fail.
	v.debouncer, _ = debounce.NewCallback(delay, v.runSearch)

	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view and arms the result listener.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Init(), v.waitForResults(), v.search(""))
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ResultsLoaded:
		v.handleResultsLoaded(msg)
		// The receiver that produced this message has finished.
		// Re-arm the listener for the next debounced search.
		v.listening = false
		return v, v.waitForResults()

	case messages.FavouriteToggled:
		v.handleFavouriteToggled(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Esc signals to go back to menu.
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	// Tab switches record type in either mode.
	if msg.Type == tea.KeyTab {
		v.switchRecordType()
		return v, v.search(v.input.Value())
	}

	// Enter in input mode moves focus to the results.
	if msg.Type == tea.KeyEnter && v.focusInput {
		v.focusInput = false
		v.input.Blur()
		return v, nil
	}

	// Input mode: keys feed the query, each change reschedules the
	// debounced search.
	if v.focusInput {
		before := v.input.Value()
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		if v.input.Value() != before {
			v.statusbar.SetState(status.StateFiltering)
			v.debouncer.Call(searchRequest{
				query:      v.input.Value(),
				recordType: v.recordType,
			})
		}
		return v, cmd
	}

	// Results mode.
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
		return v, nil
	case "j":
		v.list.MoveDown()
		return v, nil
	case "f":
		return v, v.toggleFavourite()
	case "n":
		v.focusInput = true
		v.input.Focus()
		v.input.SetValue("")
		return v, v.search("")
	}

	return v, nil
}

// switchRecordType flips between university and scholarship searches.
func (v *View) switchRecordType() {
	if v.recordType == domain.RecordTypeUniversity {
		v.recordType = domain.RecordTypeScholarship
		v.list.SetTitle("Scholarships")
		v.input.SetPlaceholder(input.PlaceholderScholarships)
	} else {
		v.recordType = domain.RecordTypeUniversity
		v.list.SetTitle("Universities")
		v.input.SetPlaceholder(input.PlaceholderUniversities)
	}
}

// search runs a query immediately, bypassing the debouncer. Used for
// initial load and type switches where no typing burst is in flight.
// The request is built here, on the Bubbletea loop, before the command
// goroutine starts.
func (v *View) search(query string) tea.Cmd {
	req := searchRequest{query: query, recordType: v.recordType}
	return func() tea.Msg {
		v.runSearch(req)
		return nil
	}
}

// runSearch filters the directory and delivers the outcome through
// resultCh. Called from the debouncer goroutine and from search; it
// must only touch fields that are fixed after construction.
func (v *View) runSearch(req searchRequest) {
	if v.directory == nil {
		v.deliver(messages.ResultsLoaded{Query: req.query, Err: ErrNoDirectoryService})
		return
	}

	criteria := domain.DefaultFilterCriteria()
	criteria.Query = req.query

	var msg messages.ResultsLoaded
	msg.Query = req.query

	if req.recordType == domain.RecordTypeScholarship {
		results, err := v.directory.SearchScholarships(v.ctx, criteria)
		msg.Scholarships = results
		msg.Err = err
	} else {
		results, err := v.directory.SearchUniversities(v.ctx, criteria)
		msg.Universities = results
		msg.Err = err
	}

	v.deliver(msg)
}

// deliver replaces any pending result rather than blocking: only the
// latest search of a burst matters.
func (v *View) deliver(msg tea.Msg) {
	select {
	case v.resultCh <- msg:
	default:
		select {
		case <-v.resultCh:
		default:
		}
		v.resultCh <- msg
	}
}

// waitForResults blocks until the next debounced search completes. At
// most one receiver is armed at a time; re-entering the view through
// Init must not stack another goroutine on the channel.
func (v *View) waitForResults() tea.Cmd {
	if v.listening {
		return nil
	}
	v.listening = true
	return func() tea.Msg {
		return <-v.resultCh
	}
}

// handleResultsLoaded updates the list with fresh results.
func (v *View) handleResultsLoaded(msg messages.ResultsLoaded) {
	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}

	v.err = nil
	v.universities = msg.Universities
	v.scholarships = msg.Scholarships

	items := make([]list.Item, 0, len(msg.Universities)+len(msg.Scholarships))
	for i := range msg.Universities {
		u := &msg.Universities[i]
		items = append(items, list.Item{
			ID:       u.ID,
			Title:    u.Name,
			Subtitle: u.City,
			Meta:     string(u.Category),
		})
	}
	for i := range msg.Scholarships {
		s := &msg.Scholarships[i]
		items = append(items, list.Item{
			ID:       s.ID,
			Title:    s.Title,
			Subtitle: s.Provider,
			Meta:     string(s.Level),
		})
	}

	v.list.SetItems(items)
	v.markFavourites(items)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetMessage("")
	v.statusbar.SetResultCount(len(items))
}

// markFavourites annotates listed records that are already favourited.
func (v *View) markFavourites(items []list.Item) {
	if v.favourites == nil {
		return
	}
	for i := range items {
		fav, err := v.favourites.IsFavourite(v.ctx, items[i].ID, v.recordType)
		if err == nil && fav {
			v.list.SetFavourite(items[i].ID, true)
		}
	}
}

// toggleFavourite flips the favourite state of the selected record.
func (v *View) toggleFavourite() tea.Cmd {
	item := v.list.SelectedItem()
	if item == nil || v.favourites == nil {
		return nil
	}

	id := item.ID
	recordType := v.recordType
	return func() tea.Msg {
		favourited, err := v.favourites.Toggle(v.ctx, id, recordType)
		return messages.FavouriteToggled{
			RecordID:   id,
			RecordType: recordType,
			Favourited: favourited,
			Err:        err,
		}
	}
}

// handleFavouriteToggled reflects a toggle in the list and status bar.
func (v *View) handleFavouriteToggled(msg messages.FavouriteToggled) {
	if msg.Err != nil {
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}

	v.list.SetFavourite(msg.RecordID, msg.Favourited)
	if msg.Favourited {
		v.statusbar.SetMessage("Added to favourites")
	} else {
		v.statusbar.SetMessage("Removed from favourites")
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

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)

	header := v.styles.Title.Render("PakUni")
	sections = append(sections, header, "")

	sections = append(sections, v.input.View(), "")

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

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-10)
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current search query.
func (v *View) Query() string {
	return v.input.Value()
}

// RecordType returns the collection currently being searched.
func (v *View) RecordType() domain.RecordType {
	return v.recordType
}

// Universities returns the current university results.
func (v *View) Universities() []domain.University {
	return v.universities
}

// Scholarships returns the current scholarship results.
func (v *View) Scholarships() []domain.Scholarship {
	return v.scholarships
}

// SelectedIndex returns the index of the selected result.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// Reset returns the view to initial input mode with an empty query.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.list.SetItems(nil)
	v.err = nil
	v.statusbar.Clear()
}

// Close releases the debouncer. The view must not be used afterwards.
func (v *View) Close() {
	v.debouncer.Cancel()
}
