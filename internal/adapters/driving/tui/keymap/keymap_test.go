package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"quit", km.Quit, []string{"q", "ctrl+c"}},
		{"help", km.Help, []string{"?"}},
		{"back", km.Back, []string{"esc"}},
		{"up", km.Up, []string{"up", "k"}},
		{"down", km.Down, []string{"down", "j"}},
		{"page up", km.PageUp, []string{"pgup", "ctrl+u"}},
		{"page down", km.PageDown, []string{"pgdown", "ctrl+d"}},
		{"select", km.Select, []string{"enter"}},
		{"save", km.Save, []string{"s"}},
		{"accept", km.Accept, []string{"a"}},
		{"revert", km.Revert, []string{"r"}},
		{"edit", km.Edit, []string{"e"}},
		{"restore", km.Restore, []string{"x"}},
		{"toggle", km.Toggle, []string{"t"}},
		{"filter", km.Filter, []string{"tab"}},
		{"submit", km.Submit, []string{"ctrl+s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range tt.keys {
				assert.Contains(t, tt.binding.Keys(), k)
			}
			assert.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

func TestKeyMap_ShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	help := km.ShortHelp()

	assert.Len(t, help, 2)
}

func TestKeyMap_ContextHelp(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.SectionsHelp(), 3)
	assert.Len(t, km.SectionHelp(), 7)
	assert.Len(t, km.VariablesHelp(), 5)
	assert.Len(t, km.EditHelp(), 2)
}

func TestKeyMap_FullHelp(t *testing.T) {
	km := DefaultKeyMap()

	help := km.FullHelp()

	require.Len(t, help, 4)
	assert.Len(t, help[0], 5)
	assert.Len(t, help[3], 2)
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		keyStr   string
		binding  key.Binding
		expected bool
	}{
		{"q matches quit", "q", km.Quit, true},
		{"ctrl+c matches quit", "ctrl+c", km.Quit, true},
		{"a matches accept", "a", km.Accept, true},
		{"k matches up", "k", km.Up, true},
		{"x does not match quit", "x", km.Quit, false},
		{"empty matches nothing", "", km.Select, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Matches(tt.keyStr, tt.binding))
		})
	}
}
