// Package sections provides the section list view for the TUI.
package sections

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/suppdraft/internal/core/domain"
	"github.com/custodia-labs/suppdraft/internal/core/ports/driving"
)

// View lists the draft sections with their change state.
type View struct {
	styles *styles.Styles
	keys   *keymap.KeyMap
	draft  driving.DraftService

	list     *list.List
	status   *status.Bar
	redlines []domain.SectionRedline
	err      error

	width  int
	height int
	ready  bool
}

// NewView creates a new sections view.
func NewView(s *styles.Styles, draft driving.DraftService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()

	l := list.New(s, "Sections")
	l.SetEmptyText("No sections in the library")
	bar := status.NewBar(s, km)
	bar.SetHints(km.SectionsHelp())

	return &View{
		styles: s,
		keys:   km,
		draft:  draft,
		list:   l,
		status: bar,
		width:  80,
		height: 24,
	}
}

// Init loads the section redlines.
func (v *View) Init() tea.Cmd {
	return v.load()
}

func (v *View) load() tea.Cmd {
	return func() tea.Msg {
		return messages.RedlinesLoaded{
			Redlines: v.draft.RedlineAll(),
			Progress: v.draft.Progress(),
		}
	}
}

func (v *View) save() tea.Cmd {
	return func() tea.Msg {
		err := v.draft.Save(context.Background())
		return messages.SessionSaved{ID: v.draft.SessionID(), Err: err}
	}
}

// Update handles messages for the sections view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.RedlinesLoaded:
		v.setRedlines(msg.Redlines)
		v.status.SetProgress(msg.Progress)
		return v, nil

	case messages.SessionSaved:
		if msg.Err != nil {
			v.err = msg.Err
			v.status.SetError(msg.Err)
			return v, nil
		}
		v.err = nil
		v.status.SetState(status.StateSaved)
		v.status.SetMessage("session " + msg.ID)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.status.SetError(msg.Err)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case key.Matches(msg, v.keys.Select):
		item := v.list.SelectedItem()
		if item == nil {
			return v, nil
		}
		sectionKey := item.Key
		return v, func() tea.Msg {
			return messages.SectionSelected{Key: sectionKey}
		}
	case key.Matches(msg, v.keys.Save):
		return v, v.save()
	}

	v.status.Clear()
	v.list, _ = v.list.Update(msg)
	return v, nil
}

func (v *View) setRedlines(redlines []domain.SectionRedline) {
	v.redlines = redlines
	tmpl := v.draft.Template()

	items := make([]list.Item, 0, len(redlines))
	for _, r := range redlines {
		item := list.Item{
			Key:    r.Key,
			Title:  r.Title,
			Marked: r.Changed,
		}
		if r.Overridden {
			item.Tag = v.styles.Edited.Render("(edited)")
		}
		if sec, ok := tmpl.Section(r.Key); ok {
			item.Detail = strings.Join(domain.VariableRefs(sec.Text), ", ")
		}
		items = append(items, item)
	}
	v.list.SetItems(items)
}

// View renders the sections view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Draft sections"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%d changed since the prior supplement", v.changedCount())))
	b.WriteString("\n\n")
	b.WriteString(v.list.View())
	b.WriteString("\n\n")
	b.WriteString(v.status.View())

	return b.String()
}

func (v *View) changedCount() int {
	n := 0
	for _, r := range v.redlines {
		if r.Changed {
			n++
		}
	}
	return n
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.list.SetDimensions(width, height-6)
	v.status.SetWidth(width)
}

// Redlines returns the loaded section redlines.
func (v *View) Redlines() []domain.SectionRedline {
	return v.redlines
}

// Selected returns the key of the highlighted section.
func (v *View) Selected() string {
	if item := v.list.SelectedItem(); item != nil {
		return item.Key
	}
	return ""
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
