package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driving/tui/styles"
)

func TestNewSearchInput(t *testing.T) {
	s := styles.DefaultStyles()
	input := NewSearchInput(s)

	require.NotNil(t, input)
	assert.Equal(t, "", input.Value())
	assert.True(t, input.Focused())
}

func TestNewSearchInput_NilStyles(t *testing.T) {
	input := NewSearchInput(nil)

	require.NotNil(t, input)
	assert.NotNil(t, input.styles)
}

func TestSearchInput_Update(t *testing.T) {
	input := NewSearchInput(nil)

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}
	updated, _ := input.Update(msg)

	assert.Equal(t, input, updated)
	assert.Equal(t, "a", input.Value())
}

func TestSearchInput_View(t *testing.T) {
	input := NewSearchInput(nil)

	view := input.View()

	assert.NotEmpty(t, view)
	assert.Contains(t, view, "Search")
}

func TestSearchInput_FocusBlur(t *testing.T) {
	input := NewSearchInput(nil)

	input.Blur()
	assert.False(t, input.Focused())

	input.Focus()
	assert.True(t, input.Focused())
}

func TestSearchInput_SetValue(t *testing.T) {
	input := NewSearchInput(nil)

	input.SetValue("karachi")
	assert.Equal(t, "karachi", input.Value())

	input.Reset()
	assert.Equal(t, "", input.Value())
}

func TestSearchInput_SetPlaceholder(t *testing.T) {
	input := NewSearchInput(nil)
	assert.Equal(t, PlaceholderUniversities, input.Placeholder())

	input.SetPlaceholder(PlaceholderScholarships)
	assert.Equal(t, PlaceholderScholarships, input.Placeholder())
}

func TestSearchInput_SetWidth_MinimumEnforced(t *testing.T) {
	input := NewSearchInput(nil)

	input.SetWidth(5)

	assert.Equal(t, 5, input.Width())
	assert.Equal(t, 20, input.textinput.Width)
}
