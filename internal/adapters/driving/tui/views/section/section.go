// Package section provides the single-section redline and editing view.
package section

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/suppdraft/internal/adapters/driving/format"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/suppdraft/internal/core/domain"
	"github.com/custodia-labs/suppdraft/internal/core/ports/driving"
)

// Mode is what the view is currently doing.
type Mode int

const (
	// ModeBrowse shows the redline and the section's variables.
	ModeBrowse Mode = iota
	// ModeEditValue edits the selected variable's value.
	ModeEditValue
	// ModeEditText edits the whole section text as a block override.
	ModeEditText
)

// View shows one section's redline and lets the drafter edit it.
type View struct {
	styles    *styles.Styles
	keys      *keymap.KeyMap
	draft     driving.DraftService
	formatter *format.Formatter

	key       string
	redline   domain.SectionRedline
	variables []domain.VariableState
	lines     []string
	scroll    int
	clean     bool
	mode      Mode
	err       error

	vars   *list.List
	input  *input.ValueInput
	editor textarea.Model
	status *status.Bar

	width  int
	height int
	ready  bool
}

// NewView creates a new section view.
func NewView(s *styles.Styles, draft driving.DraftService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()

	vars := list.New(s, "Variables")
	vars.SetEmptyText("No variables in this section")

	editor := textarea.New()
	editor.ShowLineNumbers = false
	editor.CharLimit = 0
	editor.Placeholder = "Section text"

	bar := status.NewBar(s, km)
	bar.SetHints(km.SectionHelp())

	return &View{
		styles:    s,
		keys:      km,
		draft:     draft,
		formatter: format.New(io.Discard, format.Options{Color: domain.ColorAlways, ShowNotes: true}),
		vars:      vars,
		input:     input.NewValueInput(s),
		editor:    editor,
		status:    bar,
		width:     80,
		height:    24,
	}
}

// SetFormatter replaces the redline formatter.
func (v *View) SetFormatter(f *format.Formatter) {
	if f != nil {
		v.formatter = f
		v.wrap()
	}
}

// SetSection switches to the section with key and loads it.
func (v *View) SetSection(key string) tea.Cmd {
	v.key = key
	v.scroll = 0
	v.mode = ModeBrowse
	v.err = nil
	v.vars.SetSelected(0)
	v.status.Clear()
	return v.load()
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

func (v *View) load() tea.Cmd {
	sectionKey := v.key
	return func() tea.Msg {
		redline, err := v.draft.RedlineSection(sectionKey)
		if err != nil {
			return messages.SectionLoaded{Err: err}
		}
		vars, err := v.draft.SectionVariables(sectionKey)
		return messages.SectionLoaded{Redline: redline, Variables: vars, Err: err}
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

func (v *View) setOverride(text string) tea.Cmd {
	sectionKey := v.key
	return func() tea.Msg {
		err := v.draft.SetOverride(sectionKey, text)
		_, still := v.draft.Override(sectionKey)
		return messages.OverrideSaved{Key: sectionKey, Cleared: !still, Err: err}
	}
}

func (v *View) clearOverride() tea.Cmd {
	sectionKey := v.key
	return func() tea.Msg {
		return messages.OverrideSaved{Key: sectionKey, Cleared: true, Err: v.draft.ClearOverride(sectionKey)}
	}
}

// Update handles messages for the section view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SectionLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			v.status.SetError(msg.Err)
			return v, nil
		}
		v.redline = msg.Redline
		v.setVariables(msg.Variables)
		v.wrap()
		return v, nil

	case messages.ValueSaved:
		return v.afterSave(msg.Err, "value "+msg.ID)

	case messages.OverrideSaved:
		what := "section text"
		if msg.Cleared {
			what = "section restored to template"
		}
		return v.afterSave(msg.Err, what)

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.status.SetError(msg.Err)
		return v, nil

	case tea.KeyMsg:
		switch v.mode {
		case ModeEditValue:
			return v.handleEditValueKeys(msg)
		case ModeEditText:
			return v.handleEditTextKeys(msg)
		case ModeBrowse:
			return v.handleBrowseKeys(msg)
		}
	}

	return v, nil
}

func (v *View) afterSave(err error, what string) (*View, tea.Cmd) {
	if err != nil {
		v.err = err
		v.status.SetError(err)
		return v, nil
	}
	v.err = nil
	v.status.SetState(status.StateSaved)
	v.status.SetMessage(what)
	return v, v.load()
}

func (v *View) handleBrowseKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewSections}
		}
	case key.Matches(msg, v.keys.PageDown):
		v.scroll += v.visibleLines()
		if v.scroll > v.maxScroll() {
			v.scroll = v.maxScroll()
		}
		return v, nil
	case key.Matches(msg, v.keys.PageUp):
		v.scroll -= v.visibleLines()
		if v.scroll < 0 {
			v.scroll = 0
		}
		return v, nil
	case key.Matches(msg, v.keys.Toggle):
		v.clean = !v.clean
		v.scroll = 0
		v.wrap()
		return v, nil
	case key.Matches(msg, v.keys.Edit):
		v.mode = ModeEditText
		v.editor.SetValue(v.redline.Current)
		v.status.SetState(status.StateEditing)
		v.status.SetMessage(v.redline.Title)
		v.status.SetHints(v.keys.EditHelp())
		return v, v.editor.Focus()
	case key.Matches(msg, v.keys.Restore):
		if !v.redline.Overridden {
			return v, nil
		}
		return v, v.clearOverride()
	}

	state := v.selectedVariable()
	switch {
	case state == nil:
	case key.Matches(msg, v.keys.Select):
		v.mode = ModeEditValue
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

	v.vars, _ = v.vars.Update(msg)
	return v, nil
}

func (v *View) handleEditValueKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
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

func (v *View) handleEditTextKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc:
		v.endEdit()
		return v, nil
	case key.Matches(msg, v.keys.Submit):
		text := v.editor.Value()
		v.endEdit()
		return v, v.setOverride(text)
	}
	var cmd tea.Cmd
	v.editor, cmd = v.editor.Update(msg)
	return v, cmd
}

func (v *View) endEdit() {
	v.mode = ModeBrowse
	v.input.Reset()
	v.editor.Blur()
	v.status.Clear()
	v.status.SetHints(v.keys.SectionHelp())
}

func (v *View) setVariables(vars []domain.VariableState) {
	v.variables = vars
	items := make([]list.Item, 0, len(vars))
	for _, st := range vars {
		items = append(items, list.Item{
			Key:    st.Definition.ID,
			Title:  st.Definition.ID,
			Detail: st.Value,
			Marked: st.Changed,
			Tag:    v.styles.Source(st.Definition.Source).Render(fmt.Sprintf("%-10s", st.Definition.Source.Label())),
		})
	}
	v.vars.SetItems(items)
}

func (v *View) selectedVariable() *domain.VariableState {
	i := v.vars.Selected()
	if i < 0 || i >= len(v.variables) {
		return nil
	}
	return &v.variables[i]
}

// wrap renders the current text and splits it into display lines.
func (v *View) wrap() {
	if v.redline.Key == "" {
		v.lines = nil
		return
	}
	var text string
	if v.clean {
		text = v.formatter.Section(domain.RenderedSection{
			Title:      v.redline.Title,
			Text:       v.redline.Current,
			Overridden: v.redline.Overridden,
		})
	} else {
		text = v.formatter.Redline(v.redline)
	}

	width := v.width - 4
	if width < 20 {
		width = 20
	}
	wrapped := lipgloss.NewStyle().Width(width).Render(text)
	v.lines = strings.Split(wrapped, "\n")
	if v.scroll > v.maxScroll() {
		v.scroll = v.maxScroll()
	}
}

// visibleLines is the number of text lines shown above the variable list.
func (v *View) visibleLines() int {
	available := (v.height - 6) / 2
	if available < 3 {
		available = 3
	}
	return available
}

func (v *View) maxScroll() int {
	m := len(v.lines) - v.visibleLines()
	if m < 0 {
		m = 0
	}
	return m
}

// View renders the section view.
func (v *View) View() string {
	var b strings.Builder

	if v.redline.Key == "" {
		if v.err != nil {
			b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
			b.WriteString("\n\n")
		}
		b.WriteString(v.styles.Muted.Render("No section selected"))
		return b.String()
	}

	if v.mode == ModeEditText {
		b.WriteString(v.styles.Title.Render("Editing " + v.redline.Title))
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("The edited text replaces the template until restored."))
		b.WriteString("\n\n")
		b.WriteString(v.editor.View())
		b.WriteString("\n\n")
		b.WriteString(v.status.View())
		return b.String()
	}

	end := v.scroll + v.visibleLines()
	if end > len(v.lines) {
		end = len(v.lines)
	}
	for _, line := range v.lines[v.scroll:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(v.lines) > v.visibleLines() {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  Line %d-%d of %d", v.scroll+1, end, len(v.lines))))
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat("─", minInt(v.width-4, 60)))
	b.WriteString("\n")

	b.WriteString(v.vars.View())
	b.WriteString("\n\n")
	b.WriteString(v.renderDetail())

	if v.mode == ModeEditValue {
		b.WriteString("\n")
		b.WriteString(v.input.View())
	}
	b.WriteString("\n\n")
	b.WriteString(v.status.View())

	return b.String()
}

func (v *View) renderDetail() string {
	st := v.selectedVariable()
	if st == nil {
		return ""
	}
	def := st.Definition
	lines := []string{
		v.styles.Muted.Render("Prior:     ") + def.Prior,
	}
	if def.HasSuggestion() {
		lines = append(lines, v.styles.Muted.Render("Suggested: ")+def.Suggested)
	}
	if def.Hint != "" {
		lines = append(lines, v.styles.Muted.Render("Hint:      ")+def.Hint)
	}
	lines = append(lines, v.styles.Muted.Render("Task:      ")+def.Task.String())
	return strings.Join(lines, "\n")
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.vars.SetDimensions(width, (height-6)/2)
	v.input.SetWidth(width)
	v.editor.SetWidth(width - 4)
	v.editor.SetHeight(height - 8)
	v.status.SetWidth(width)
	v.wrap()
}

// Key returns the key of the section being shown.
func (v *View) Key() string {
	return v.key
}

// Redline returns the loaded redline.
func (v *View) Redline() domain.SectionRedline {
	return v.redline
}

// Mode returns the current mode.
func (v *View) Mode() Mode {
	return v.mode
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
