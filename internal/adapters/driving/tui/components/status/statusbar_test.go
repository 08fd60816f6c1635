package status

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, domain.Progress{}, bar.Progress())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilStyles(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestStatusBar_InitAndUpdate(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Nil(t, bar.Init())

	updated, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestStatusBar_View(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(*Bar)
		contains []string
	}{
		{
			name:     "ready",
			setup:    func(*Bar) {},
			contains: []string{"Ready", "quit"},
		},
		{
			name: "progress",
			setup: func(b *Bar) {
				b.SetProgress(domain.Progress{Total: 4, Changed: 1, Overridden: 2})
			},
			contains: []string{"1/4 changed (25%)", "2 edited"},
		},
		{
			name: "editing",
			setup: func(b *Bar) {
				b.SetState(StateEditing)
				b.SetMessage("asof")
			},
			contains: []string{"Editing asof"},
		},
		{
			name: "saved",
			setup: func(b *Bar) {
				b.SetState(StateSaved)
				b.SetMessage("session abc")
			},
			contains: []string{"Saved session abc"},
		},
		{
			name:     "error",
			setup:    func(b *Bar) { b.SetError(errors.New("unknown variable")) },
			contains: []string{"Error: unknown variable"},
		},
		{
			name: "custom hints",
			setup: func(b *Bar) {
				b.SetHints(keymap.DefaultKeyMap().VariablesHelp())
			},
			contains: []string{"accept suggestion", "filter source"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(160)
			tt.setup(bar)

			view := bar.View()
			for _, s := range tt.contains {
				assert.Contains(t, view, s)
			}
		})
	}
}

func TestStatusBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetProgress(domain.Progress{Total: 2})
	bar.SetError(errors.New("boom"))

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 2, bar.Progress().Total)
}

func TestState_Constants(t *testing.T) {
	assert.Equal(t, State("ready"), StateReady)
	assert.Equal(t, State("editing"), StateEditing)
	assert.Equal(t, State("saved"), StateSaved)
	assert.Equal(t, State("error"), StateError)
}
