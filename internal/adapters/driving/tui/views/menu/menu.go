// Package menu provides the main navigation menu view for the TUI.
package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

// Item represents a single menu option.
type Item struct {
	Label string
	View  messages.ViewType
	Quit  bool // If true, selecting this item quits the app
}

// View represents the main menu view.
type View struct {
	styles   *styles.Styles
	items    []Item
	selected int
	session  string
	progress domain.Progress
	width    int
	height   int
	ready    bool
}

// NewView creates a new menu view. The final document entry is only
// offered when withFinal is set.
func NewView(s *styles.Styles, withFinal bool) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	items := []Item{
		{Label: "Sections", View: messages.ViewSections},
		{Label: "Variables", View: messages.ViewVariables},
	}
	if withFinal {
		items = append(items, Item{Label: "Final document", View: messages.ViewFinal})
	}
	items = append(items,
		Item{Label: "Settings", View: messages.ViewSettings},
		Item{Label: "Help", View: messages.ViewHelp},
		Item{Label: "Quit", Quit: true},
	)

	return &View{
		styles:   s,
		items:    items,
		selected: 0,
		width:    80,
		height:   24,
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			item := v.items[v.selected]
			if item.Quit {
				return v, tea.Quit
			}
			return v, func() tea.Msg {
				return messages.ViewChanged{View: item.View}
			}

		case "q":
			return v, tea.Quit
		}
	}

	return v, nil
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("suppdraft"))
	b.WriteString("\n\n")

	subtitle := "Offering supplement drafting"
	if v.session != "" {
		subtitle += " - session " + v.session
	}
	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render(subtitle))
	b.WriteString("\n")
	if v.progress.Total > 0 {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%d of %d variables changed, %d sections edited",
			v.progress.Changed, v.progress.Total, v.progress.Overridden)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range v.items {
		cursor := "  "
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

		if i == v.selected {
			cursor = "> "
			style = lipgloss.NewStyle().
				Foreground(lipgloss.Color("86")).
				Bold(true)
		}

		b.WriteString(cursor + style.Render(item.Label))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render("[j/k] Navigate  [Enter] Select  [q] Quit")
	b.WriteString(footer)

	return b.String()
}

// SetSession sets the session shown under the title.
func (v *View) SetSession(id string) {
	v.session = id
}

// SetProgress sets the progress summary shown under the title.
func (v *View) SetProgress(p domain.Progress) {
	v.progress = p
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Items returns the menu items.
func (v *View) Items() []Item {
	return v.items
}
