// Package variables provides the variable list and editing view.
package variables

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/suppdraft/internal/core/domain"
	"github.com/custodia-labs/suppdraft/internal/core/ports/driving"
)

// View lists every variable with its source, value and change state.
type View struct {
	styles *styles.Styles
	keys   *keymap.KeyMap
	draft  driving.DraftService

	all     []domain.VariableState
	shown   []domain.VariableState
	filter  domain.VariableSource
	editing bool
	err     error

	list   *list.List
	input  *input.ValueInput
	status *status.Bar

	width  int
	height int
	ready  bool
}

// NewView creates a new variables view.
func NewView(s *styles.Styles, draft driving.DraftService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()

	l := list.New(s, "Variables")
	l.SetEmptyText("No variables for this source")
	bar := status.NewBar(s, km)
	bar.SetHints(km.VariablesHelp())

	return &View{
		styles: s,
		keys:   km,
		draft:  draft,
		list:   l,
		input:  input.NewValueInput(s),
		status: bar,
		width:  80,
		height: 24,
	}
}

// Init loads the variables.
func (v *View) Init() tea.Cmd {
	return v.load()
}

func (v *View) load() tea.Cmd {
	return func() tea.Msg {
		return messages.VariablesLoaded{Variables: v.draft.Variables()}
	}
}

func (v *View) setValue(id, text string) tea.Cmd {
	return func() tea.Msg {
		return messages.ValueSaved{ID: id, Err: v.draft.SetValue(id, text)}
	}
}

func (v *View) clearValue(id string) tea.Cmd {
	return func() tea.Msg {
		return messages.ValueSaved{ID: id, Err: v.draft.ClearValue(id)}
	}
}

// Update handles messages for the variables view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.VariablesLoaded:
		v.all = msg.Variables
		v.applyFilter()
		v.status.SetProgress(v.draft.Progress())
		return v, nil

	case messages.ValueSaved:
		if msg.Err != nil {
			v.err = msg.Err
			v.status.SetError(msg.Err)
			return v, nil
		}
		v.err = nil
		v.status.SetState(status.StateSaved)
		v.status.SetMessage("value " + msg.ID)
		return v, v.load()

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.status.SetError(msg.Err)
		return v, nil

	case tea.KeyMsg:
		if v.editing {
			return v.handleEditKeys(msg)
		}
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if key.Matches(msg, v.keys.Back) {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}
	if key.Matches(msg, v.keys.Filter) {
		v.cycleFilter()
		return v, nil
	}

	state := v.Selected()
	switch {
	case state == nil:
	case key.Matches(msg, v.keys.Select):
		v.editing = true
		v.status.SetState(status.StateEditing)
		v.status.SetMessage(state.Definition.ID)
		v.status.SetHints(v.keys.EditHelp())
		return v, v.input.Start(state.Definition.ID, state.Value)
	case key.Matches(msg, v.keys.Accept):
		if !state.Definition.HasSuggestion() {
			return v, nil
		}
		return v, v.setValue(state.Definition.ID, state.Definition.Suggested)
	case key.Matches(msg, v.keys.Revert):
		return v, v.clearValue(state.Definition.ID)
	}

	v.status.Clear()
	v.list, _ = v.list.Update(msg)
	return v, nil
}

func (v *View) handleEditKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.endEdit()
		return v, nil
	case tea.KeyEnter:
		id, text := v.input.Label(), v.input.Value()
		v.endEdit()
		return v, v.setValue(id, text)
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) endEdit() {
	v.editing = false
	v.input.Reset()
	v.status.Clear()
	v.status.SetHints(v.keys.VariablesHelp())
}

// cycleFilter steps through all sources, then back to no filter.
func (v *View) cycleFilter() {
	sources := domain.AllSources()
	next := domain.VariableSource("")
	if v.filter == "" {
		next = sources[0]
	} else {
		for i, src := range sources {
			if src == v.filter && i+1 < len(sources) {
				next = sources[i+1]
			}
		}
	}
	v.filter = next
	v.list.SetSelected(0)
	v.applyFilter()
}

func (v *View) applyFilter() {
	v.shown = v.shown[:0]
	for _, st := range v.all {
		if v.filter == "" || st.Definition.Source == v.filter {
			v.shown = append(v.shown, st)
		}
	}

	items := make([]list.Item, 0, len(v.shown))
	for _, st := range v.shown {
		items = append(items, list.Item{
			Key:    st.Definition.ID,
			Title:  st.Definition.ID,
			Detail: st.Value,
			Marked: st.Changed,
			Tag:    v.styles.Source(st.Definition.Source).Render(fmt.Sprintf("%-10s", st.Definition.Source.Label())),
		})
	}
	v.list.SetItems(items)
}

// View renders the variables view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Variables"))
	b.WriteString("  ")
	if v.filter == "" {
		b.WriteString(v.styles.Muted.Render("all sources"))
	} else {
		b.WriteString(v.styles.Source(v.filter).Render(v.filter.Label()))
	}
	b.WriteString("\n\n")
	b.WriteString(v.list.View())
	b.WriteString("\n\n")
	b.WriteString(v.renderDetail())

	if v.editing {
		b.WriteString("\n")
		b.WriteString(v.input.View())
	}
	b.WriteString("\n\n")
	b.WriteString(v.status.View())

	return b.String()
}

func (v *View) renderDetail() string {
	st := v.Selected()
	if st == nil {
		return ""
	}
	def := st.Definition
	lines := []string{
		v.styles.Subtitle.Render(def.ID),
		v.styles.Muted.Render("Prior:     ") + def.Prior,
		v.styles.Muted.Render("Current:   ") + st.Value,
	}
	if def.HasSuggestion() {
		lines = append(lines, v.styles.Muted.Render("Suggested: ")+def.Suggested)
	}
	if def.Hint != "" {
		lines = append(lines, v.styles.Muted.Render("Hint:      ")+def.Hint)
	}
	if def.AutoSource != "" {
		lines = append(lines, v.styles.Muted.Render("Found in:  ")+def.AutoSource)
	}
	lines = append(lines, v.styles.Muted.Render("Task:      ")+def.Task.String())
	return strings.Join(lines, "\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.list.SetDimensions(width, height-14)
	v.input.SetWidth(width)
	v.status.SetWidth(width)
}

// Selected returns the highlighted variable, or nil if none.
func (v *View) Selected() *domain.VariableState {
	i := v.list.Selected()
	if i < 0 || i >= len(v.shown) {
		return nil
	}
	return &v.shown[i]
}

// Filter returns the active source filter, empty for all sources.
func (v *View) Filter() domain.VariableSource {
	return v.filter
}

// Shown returns the variables passing the filter.
func (v *View) Shown() []domain.VariableState {
	return v.shown
}

// Editing reports whether a value is being edited.
func (v *View) Editing() bool {
	return v.editing
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
