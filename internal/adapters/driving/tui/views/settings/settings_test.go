package settings

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/tuitest"
	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

func drive(v *View, msg tea.Msg) {
	for msg != nil {
		_, cmd := v.Update(msg)
		msg = tuitest.Exec(cmd)
	}
}

func newView(t *testing.T) (*View, *tuitest.Services) {
	t.Helper()

	svc := tuitest.NewServices(t)
	view := NewView(nil, svc.Settings)
	drive(view, tuitest.Exec(view.Init()))
	return view, svc
}

func TestView_Init_LoadsSettings(t *testing.T) {
	view, _ := newView(t)

	require.NotNil(t, view.Settings())
	assert.Equal(t, domain.ColorAuto, view.Settings().Render.Color)

	out := view.View()
	assert.Contains(t, out, "Redline colour")
	assert.Contains(t, out, "Auto (colour when writing to a terminal)")
	assert.Contains(t, out, "(built-in)")
}

func TestView_NilService(t *testing.T) {
	view := NewView(nil, nil)

	drive(view, tuitest.Exec(view.Init()))

	require.Error(t, view.Err())
	assert.Contains(t, view.View(), "settings service not available")
	assert.Contains(t, view.View(), "Loading settings...")
}

func TestView_CycleColor(t *testing.T) {
	view, svc := newView(t)

	want := []domain.ColorMode{domain.ColorAlways, domain.ColorNever, domain.ColorAuto}
	for _, mode := range want {
		_, cmd := view.Update(tuitest.Key("enter"))
		drive(view, tuitest.Exec(cmd))

		got, err := svc.Settings.Get()
		require.NoError(t, err)
		assert.Equal(t, mode, got.Render.Color)
		assert.Equal(t, mode, view.Settings().Render.Color)
	}
}

func TestView_ToggleRows(t *testing.T) {
	view, svc := newView(t)
	before, err := svc.Settings.Get()
	require.NoError(t, err)

	view.Update(tuitest.Key("j"))
	_, cmd := view.Update(tuitest.Key(" "))
	drive(view, tuitest.Exec(cmd))

	view.Update(tuitest.Key("j"))
	_, cmd = view.Update(tuitest.Key("enter"))
	drive(view, tuitest.Exec(cmd))

	after, err := svc.Settings.Get()
	require.NoError(t, err)
	assert.Equal(t, !before.Render.ShowNotes, after.Render.ShowNotes)
	assert.Equal(t, !before.Lint.Strict, after.Lint.Strict)
}

func TestView_Navigation_Bounds(t *testing.T) {
	view, _ := newView(t)

	view.Update(tuitest.Key("k"))
	assert.Equal(t, 0, view.selected)

	for i := 0; i < 5; i++ {
		view.Update(tuitest.Key("j"))
	}
	assert.Equal(t, int(rowCount)-1, view.selected)
}

func TestView_SaveError(t *testing.T) {
	view, _ := newView(t)

	view.Update(messages.SettingsSaved{Err: errors.New("read-only")})

	assert.EqualError(t, view.Err(), "read-only")
}

func TestView_Back(t *testing.T) {
	view, _ := newView(t)

	_, cmd := view.Update(tuitest.Key("esc"))

	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, tuitest.Exec(cmd))
}

func TestView_Reset(t *testing.T) {
	view, _ := newView(t)
	view.selected = 2
	view.err = errors.New("x")

	view.Reset()

	assert.Equal(t, 0, view.selected)
	assert.NoError(t, view.Err())
}
