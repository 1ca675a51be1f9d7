package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_QuitBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Quit.Keys()
	assert.Contains(t, keys, "q")
	assert.Contains(t, keys, "ctrl+c")
}

func TestDefaultKeyMap_FavouriteBinding(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Favourite.Keys(), "f")
}

func TestDefaultKeyMap_SwitchTypeBinding(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.SwitchType.Keys(), "tab")
}

func TestDefaultKeyMap_BackBinding(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Back.Keys(), "esc")
}

func TestKeyMap_ShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ShortHelp()

	assert.Len(t, bindings, 2)
}

func TestKeyMap_ResultsHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ResultsHelp()

	assert.Len(t, bindings, 4)
}

func TestKeyMap_FullHelp(t *testing.T) {
	km := DefaultKeyMap()

	groups := km.FullHelp()

	assert.Len(t, groups, 3)
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.False(t, Matches("x", km.Quit))
}
