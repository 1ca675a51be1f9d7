// Package detail provides the record detail view component for the TUI.
package detail

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driving/tui/messages"
	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driving/tui/styles"
	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
)

// View shows a single university or scholarship in full.
type View struct {
	styles *styles.Styles

	university  *domain.University
	scholarship *domain.Scholarship

	// returnTo is the view to navigate back to on Esc.
	returnTo messages.ViewType

	width  int
	height int
	ready  bool
}

// NewView creates a new detail view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:   s,
		returnTo: messages.ViewSearch,
	}
}

// SetUniversity sets the university to display.
func (v *View) SetUniversity(u domain.University) {
	v.university = &u
	v.scholarship = nil
}

// SetScholarship sets the scholarship to display.
func (v *View) SetScholarship(s domain.Scholarship) {
	v.scholarship = &s
	v.university = nil
}

// SetReturnView sets where Esc navigates back to.
func (v *View) SetReturnView(view messages.ViewType) {
	v.returnTo = view
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the detail view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc || msg.String() == "q" {
			returnTo := v.returnTo
			return v, func() tea.Msg {
				return messages.ViewChanged{View: returnTo}
			}
		}
	}

	return v, nil
}

// View renders the detail view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	if v.university != nil {
		return v.renderUniversity()
	}
	if v.scholarship != nil {
		return v.renderScholarship()
	}
	return v.styles.Muted.Render("Nothing selected")
}

// renderUniversity formats the university fields.
func (v *View) renderUniversity() string {
	u := v.university

	var b strings.Builder
	b.WriteString(v.styles.Title.Render(u.Name))
	b.WriteString("\n")
	if u.ShortName != "" {
		b.WriteString(v.styles.Subtitle.Render(u.ShortName))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	v.writeField(&b, "City", u.City)
	v.writeField(&b, "Category", string(u.Category))
	v.writeField(&b, "Address", u.Address)
	v.writeField(&b, "Phone", u.Phone)
	v.writeField(&b, "Email", u.Email)
	v.writeField(&b, "Website", u.Website)
	if u.FoundedYear > 0 {
		v.writeField(&b, "Founded", fmt.Sprintf("%d", u.FoundedYear))
	}
	if u.Ranking > 0 {
		v.writeField(&b, "Ranking", fmt.Sprintf("#%d", u.Ranking))
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[esc] back"))
	return b.String()
}

// renderScholarship formats the scholarship fields.
func (v *View) renderScholarship() string {
	s := v.scholarship

	var b strings.Builder
	b.WriteString(v.styles.Title.Render(s.Title))
	b.WriteString("\n")
	b.WriteString(v.styles.Subtitle.Render(s.Provider))
	b.WriteString("\n\n")

	v.writeField(&b, "Level", string(s.Level))
	v.writeField(&b, "City", s.City)
	v.writeField(&b, "Amount", s.Amount)
	v.writeField(&b, "Deadline", s.Deadline)
	v.writeField(&b, "URL", s.URL)

	if s.Description != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Normal.Render(s.Description))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[esc] back"))
	return b.String()
}

// writeField appends a labelled field, skipping empty values.
func (v *View) writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%-10s", label+":")))
	b.WriteString(" ")
	b.WriteString(v.styles.Normal.Render(value))
	b.WriteString("\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// University returns the displayed university, if any.
func (v *View) University() *domain.University {
	return v.university
}

// Scholarship returns the displayed scholarship, if any.
func (v *View) Scholarship() *domain.Scholarship {
	return v.scholarship
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}
