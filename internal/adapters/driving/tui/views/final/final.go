// Package final provides the final document redline view for the TUI.
package final

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/suppdraft/internal/adapters/driving/format"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/suppdraft/internal/core/domain"
	"github.com/custodia-labs/suppdraft/internal/core/ports/driving"
)

// View shows how the final document differs from the draft.
type View struct {
	styles    *styles.Styles
	keys      *keymap.KeyMap
	final     driving.FinalService
	formatter *format.Formatter

	redlines    []domain.SectionRedline
	lines       []string
	scroll      int
	changedOnly bool
	err         error

	width  int
	height int
	ready  bool
}

// NewView creates a new final view. final may be nil.
func NewView(s *styles.Styles, final driving.FinalService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:      s,
		keys:        keymap.DefaultKeyMap(),
		final:       final,
		formatter:   format.New(io.Discard, format.Options{Color: domain.ColorAlways, ShowNotes: true}),
		changedOnly: true,
		width:       80,
		height:      24,
	}
}

// SetFormatter replaces the redline formatter.
func (v *View) SetFormatter(f *format.Formatter) {
	if f != nil {
		v.formatter = f
		v.wrap()
	}
}

// Init loads the final redline.
func (v *View) Init() tea.Cmd {
	v.scroll = 0
	return func() tea.Msg {
		if v.final == nil || !v.final.Available() {
			return messages.FinalLoaded{Err: fmt.Errorf("final template: %w", domain.ErrNotFound)}
		}
		redlines, err := v.final.RedlineFinal()
		return messages.FinalLoaded{Redlines: redlines, Err: err}
	}
}

// Update handles messages for the final view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.FinalLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			v.redlines = nil
		} else {
			v.err = nil
			v.redlines = msg.Redlines
		}
		v.wrap()
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
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
	case key.Matches(msg, v.keys.Up):
		if v.scroll > 0 {
			v.scroll--
		}
	case key.Matches(msg, v.keys.Down):
		if v.scroll < v.maxScroll() {
			v.scroll++
		}
	case key.Matches(msg, v.keys.PageUp):
		v.scroll -= v.visibleLines()
		if v.scroll < 0 {
			v.scroll = 0
		}
	case key.Matches(msg, v.keys.PageDown):
		v.scroll += v.visibleLines()
		if v.scroll > v.maxScroll() {
			v.scroll = v.maxScroll()
		}
	case key.Matches(msg, v.keys.Toggle):
		v.changedOnly = !v.changedOnly
		v.scroll = 0
		v.wrap()
	}
	return v, nil
}

func (v *View) wrap() {
	if len(v.redlines) == 0 {
		v.lines = nil
		return
	}
	var b strings.Builder
	_ = v.formatter.Redlines(&b, v.redlines, v.changedOnly)

	width := v.width - 4
	if width < 20 {
		width = 20
	}
	v.lines = strings.Split(lipgloss.NewStyle().Width(width).Render(strings.TrimRight(b.String(), "\n")), "\n")
	if v.scroll > v.maxScroll() {
		v.scroll = v.maxScroll()
	}
}

func (v *View) visibleLines() int {
	available := v.height - 6
	if available < 1 {
		available = 1
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

// View renders the final view.
func (v *View) View() string {
	var b strings.Builder

	title := "Final document"
	if v.final != nil && v.final.TermSheet() != nil {
		title += " - " + v.final.TermSheet().Title
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n")
	if v.changedOnly {
		b.WriteString(v.styles.Muted.Render("Sections that differ from the draft"))
	} else {
		b.WriteString(v.styles.Muted.Render("All sections"))
	}
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
	case len(v.lines) == 0:
		b.WriteString(v.styles.Muted.Render("No changes."))
	default:
		end := v.scroll + v.visibleLines()
		if end > len(v.lines) {
			end = len(v.lines)
		}
		b.WriteString(strings.Join(v.lines[v.scroll:end], "\n"))
		if len(v.lines) > v.visibleLines() {
			b.WriteString("\n")
			b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  Line %d-%d of %d", v.scroll+1, end, len(v.lines))))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[j/k] Scroll  [t] Changed/all  [esc] Back"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.wrap()
}

// Redlines returns the loaded final redlines.
func (v *View) Redlines() []domain.SectionRedline {
	return v.redlines
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
