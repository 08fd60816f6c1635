package final

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/suppdraft/internal/adapters/driving/format"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/tuitest"
	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

func newView(t *testing.T) *View {
	t.Helper()

	svc := tuitest.NewServices(t)
	view := NewView(nil, svc.Final)
	view.SetFormatter(format.New(new(bytes.Buffer), format.Options{Color: domain.ColorNever, ShowNotes: true}))
	view.SetDimensions(100, 40)
	view.Update(view.Init()())
	return view
}

func TestView_Init_LoadsFinal(t *testing.T) {
	view := newView(t)

	require.NoError(t, view.Err())
	require.Len(t, view.Redlines(), 2)

	out := view.View()
	assert.Contains(t, out, "Final document - Pricing term sheet")
	assert.Contains(t, out, "## Pricing")
	assert.Contains(t, out, "{+Coupon 4.600%.+}")
	assert.NotContains(t, out, "## Ranking")
}

func TestView_ToggleShowsAll(t *testing.T) {
	view := newView(t)

	view.Update(tuitest.Key("t"))

	out := view.View()
	assert.Contains(t, out, "All sections")
	assert.Contains(t, out, "## Ranking")
	assert.Contains(t, out, "(no changes)")
}

func TestView_NilService(t *testing.T) {
	view := NewView(nil, nil)

	view.Update(view.Init()())

	require.Error(t, view.Err())
	assert.True(t, errors.Is(view.Err(), domain.ErrNotFound))
	assert.Contains(t, view.View(), "Error:")
}

func TestView_Scroll(t *testing.T) {
	view := newView(t)
	view.Update(tuitest.Key("t"))
	view.SetDimensions(100, 8)

	view.Update(tuitest.Key("j"))
	assert.Equal(t, 1, view.scroll)

	view.Update(tuitest.Key("pgdown"))
	view.Update(tuitest.Key("pgdown"))
	assert.Equal(t, view.maxScroll(), view.scroll)
	assert.Positive(t, view.scroll)

	view.Update(tuitest.Key("k"))
	assert.Equal(t, view.maxScroll()-1, view.scroll)
}

func TestView_Back(t *testing.T) {
	view := newView(t)

	_, cmd := view.Update(tuitest.Key("esc"))

	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, tuitest.Exec(cmd))
}
