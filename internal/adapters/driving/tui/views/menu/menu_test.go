package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

func TestNewView(t *testing.T) {
	view := NewView(styles.DefaultStyles(), true)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
	assert.Len(t, view.Items(), 6)
	assert.Equal(t, 0, view.Selected())
	assert.Equal(t, 80, view.width)
	assert.Equal(t, 24, view.height)
}

func TestNewView_WithoutFinal(t *testing.T) {
	view := NewView(nil, false)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
	assert.Len(t, view.Items(), 5)
	for _, item := range view.Items() {
		assert.NotEqual(t, messages.ViewFinal, item.View)
	}
}

func TestView_Init(t *testing.T) {
	view := NewView(nil, true)

	assert.Nil(t, view.Init())
}

func TestView_Update_WindowSize(t *testing.T) {
	view := NewView(nil, true)

	updated, cmd := view.Update(tea.WindowSizeMsg{Width: 100, Height: 50})

	assert.Equal(t, view, updated)
	assert.Nil(t, cmd)
	assert.True(t, view.ready)
	assert.Equal(t, 100, view.width)
	assert.Equal(t, 50, view.height)
}

func TestView_Update_Navigate(t *testing.T) {
	view := NewView(nil, true)

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, view.Selected())

	j := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	for i := 0; i < 10; i++ {
		view.Update(j)
	}
	assert.Equal(t, 5, view.Selected())

	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 4, view.Selected())

	k := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	for i := 0; i < 10; i++ {
		view.Update(k)
	}
	assert.Equal(t, 0, view.Selected())
}

func TestView_Update_Enter_ViewChange(t *testing.T) {
	tests := []struct {
		index int
		view  messages.ViewType
	}{
		{0, messages.ViewSections},
		{1, messages.ViewVariables},
		{2, messages.ViewFinal},
		{3, messages.ViewSettings},
		{4, messages.ViewHelp},
	}

	for _, tt := range tests {
		t.Run(tt.view.String(), func(t *testing.T) {
			view := NewView(nil, true)
			view.selected = tt.index

			_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

			require.NotNil(t, cmd)
			changed, ok := cmd().(messages.ViewChanged)
			require.True(t, ok)
			assert.Equal(t, tt.view, changed.View)
		})
	}
}

func TestView_Update_Enter_Quit(t *testing.T) {
	view := NewView(nil, true)
	view.selected = 5

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestView_Update_Q(t *testing.T) {
	view := NewView(nil, true)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
}

func TestView_View_NotReady(t *testing.T) {
	view := NewView(nil, true)

	assert.Contains(t, view.View(), "Initialising")
}

func TestView_View_Ready(t *testing.T) {
	view := NewView(nil, true)
	view.SetDimensions(80, 24)
	view.SetSession("abc123")
	view.SetProgress(domain.Progress{Total: 26, Changed: 4, Overridden: 1})

	output := view.View()

	assert.Contains(t, output, "suppdraft")
	assert.Contains(t, output, "session abc123")
	assert.Contains(t, output, "4 of 26 variables changed, 1 sections edited")
	assert.Contains(t, output, "Sections")
	assert.Contains(t, output, "Final document")
	assert.Contains(t, output, "Quit")
	assert.Contains(t, output, ">")
}
