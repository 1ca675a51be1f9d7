// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driving/tui/styles"
)

// Item is a single displayable directory record. Views translate
// domain records into items before handing them to the list.
type Item struct {
	// ID is the record identifier.
	ID string

	// Title is the primary display line.
	Title string

	// Subtitle is shown below the title in muted style.
	Subtitle string

	// Meta is short trailing text, like a category or level.
	Meta string

	// Favourite marks the record as favourited.
	Favourite bool
}

// RecordList displays directory records in a navigable list.
type RecordList struct {
	items    []Item
	selected int
	styles   *styles.Styles
	title    string
	width    int
	height   int
}

// NewRecordList creates a new record list component.
func NewRecordList(s *styles.Styles) *RecordList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &RecordList{
		items:    nil,
		selected: 0,
		styles:   s,
		title:    "Results",
		width:    80,
		height:   10,
	}
}

// Init initialises the record list.
func (r *RecordList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *RecordList) Update(msg tea.Msg) (*RecordList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			r.MoveUp()
		case tea.KeyDown:
			r.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			r.MoveUp()
		case "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the record list.
func (r *RecordList) View() string {
	if len(r.items) == 0 {
		return r.styles.Muted.Render("No results")
	}

	lines := make([]string, 0, len(r.items)*2+2)

	header := r.styles.Subtitle.Render(fmt.Sprintf("%s (%d)", r.title, len(r.items)))
	lines = append(lines, header, "")

	// Each item takes two lines, keep a margin for the header.
	visibleCount := (r.height - 4) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.items) {
		end = len(r.items)
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.renderItem(i, &r.items[i]))
	}

	return strings.Join(lines, "\n")
}

// renderItem formats a single record with its subtitle.
func (r *RecordList) renderItem(index int, item *Item) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	marker := "  "
	if item.Favourite {
		marker = "★ "
	}

	title := item.Title
	if title == "" {
		title = "(Untitled)"
	}

	maxTitleLen := r.width - 20
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}

	var titleLine string
	if index == r.selected {
		// The marker stays unstyled here so it does not break the
		// selection background mid-line.
		titleLine = r.styles.Selected.Render(fmt.Sprintf("%s%s%-*s  %s", indicator, marker, maxTitleLen, title, item.Meta))
	} else {
		if item.Favourite {
			marker = r.styles.Favourite.Render("★") + " "
		}
		titleLine = indicator + marker +
			r.styles.Normal.Render(fmt.Sprintf("%-*s  ", maxTitleLen, title)) +
			r.styles.Muted.Render(item.Meta)
	}

	subtitle := item.Subtitle
	maxSubtitleLen := r.width - 6
	if maxSubtitleLen < 20 {
		maxSubtitleLen = 20
	}
	if len(subtitle) > maxSubtitleLen {
		subtitle = subtitle[:maxSubtitleLen-3] + "..."
	}
	subtitleLine := r.styles.Muted.Render("      " + subtitle)

	return titleLine + "\n" + subtitleLine
}

// SetTitle sets the list header title.
func (r *RecordList) SetTitle(title string) {
	r.title = title
}

// SetItems updates the list contents and resets the selection.
func (r *RecordList) SetItems(items []Item) {
	r.items = items
	r.selected = 0
}

// Items returns the current items.
func (r *RecordList) Items() []Item {
	return r.items
}

// Selected returns the index of the selected item.
func (r *RecordList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *RecordList) SetSelected(index int) {
	if index >= 0 && index < len(r.items) {
		r.selected = index
	}
}

// SelectedItem returns the currently selected item, or nil if none.
func (r *RecordList) SelectedItem() *Item {
	if len(r.items) == 0 || r.selected < 0 || r.selected >= len(r.items) {
		return nil
	}
	return &r.items[r.selected]
}

// SetFavourite updates the favourite marker of the item with the given ID.
func (r *RecordList) SetFavourite(id string, favourite bool) {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Favourite = favourite
			return
		}
	}
}

// MoveUp moves selection up.
func (r *RecordList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *RecordList) MoveDown() {
	if r.selected < len(r.items)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *RecordList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the current width.
func (r *RecordList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *RecordList) Height() int {
	return r.height
}
