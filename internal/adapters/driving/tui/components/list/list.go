// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/styles"
)

// Item is one row of a List.
type Item struct {
	// Key identifies the item to the owning view.
	Key string

	// Title is the main label.
	Title string

	// Detail is shown muted after the title.
	Detail string

	// Marked flags a changed item with a leading asterisk.
	Marked bool

	// Tag is pre-rendered text shown between the marker and the title.
	Tag string
}

// List displays items in a navigable, scrolling list.
type List struct {
	items    []Item
	selected int
	header   string
	empty    string
	styles   *styles.Styles
	width    int
	height   int
}

// New creates a new list component.
func New(s *styles.Styles, header string) *List {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &List{
		header: header,
		empty:  "Nothing to show",
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the list.
func (l *List) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *List) Update(msg tea.Msg) (*List, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		case "home", "g":
			l.selected = 0
		case "end", "G":
			if len(l.items) > 0 {
				l.selected = len(l.items) - 1
			}
		}
	}
	return l, nil
}

// View renders the list.
func (l *List) View() string {
	if len(l.items) == 0 {
		return l.styles.Muted.Render(l.empty)
	}

	lines := make([]string, 0, len(l.items)+2)
	if l.header != "" {
		lines = append(lines, l.styles.Subtitle.Render(fmt.Sprintf("%s (%d)", l.header, len(l.items))), "")
	}

	start, end := l.window()
	for i := start; i < end; i++ {
		lines = append(lines, l.renderItem(i, &l.items[i]))
	}
	if end-start < len(l.items) {
		lines = append(lines, l.styles.Muted.Render(fmt.Sprintf("  %d-%d of %d", start+1, end, len(l.items))))
	}

	return strings.Join(lines, "\n")
}

// window returns the visible item range keeping the selection on screen.
func (l *List) window() (int, int) {
	visible := l.height - 3
	if visible < 1 {
		visible = 1
	}
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.items) {
		end = len(l.items)
	}
	return start, end
}

func (l *List) renderItem(index int, item *Item) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}
	marker := " "
	if item.Marked {
		marker = l.styles.Changed.Render("*")
	}

	title := item.Title
	maxTitle := l.width - lipgloss.Width(item.Tag) - 8
	if maxTitle < 10 {
		maxTitle = 10
	}
	if len(title) > maxTitle {
		title = title[:maxTitle-3] + "..."
	}

	var b strings.Builder
	b.WriteString(indicator)
	b.WriteString(marker)
	b.WriteString(" ")
	if item.Tag != "" {
		b.WriteString(item.Tag)
		b.WriteString(" ")
	}
	if index == l.selected {
		b.WriteString(l.styles.Selected.Render(title))
	} else {
		b.WriteString(l.styles.Normal.Render(title))
	}
	if item.Detail != "" {
		detail := item.Detail
		room := l.width - lipgloss.Width(b.String()) - 3
		if room < 10 {
			room = 10
		}
		if len(detail) > room {
			detail = detail[:room-3] + "..."
		}
		b.WriteString("  ")
		b.WriteString(l.styles.Muted.Render(detail))
	}
	return b.String()
}

// SetItems replaces the items, keeping the selection in range.
func (l *List) SetItems(items []Item) {
	l.items = items
	if l.selected >= len(items) {
		l.selected = len(items) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
}

// Items returns the current items.
func (l *List) Items() []Item {
	return l.items
}

// SetEmptyText sets the text shown when the list has no items.
func (l *List) SetEmptyText(text string) {
	l.empty = text
}

// Selected returns the index of the selected item.
func (l *List) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *List) SetSelected(index int) {
	if index >= 0 && index < len(l.items) {
		l.selected = index
	}
}

// SelectedItem returns the currently selected item, or nil if none.
func (l *List) SelectedItem() *Item {
	if len(l.items) == 0 || l.selected < 0 || l.selected >= len(l.items) {
		return nil
	}
	return &l.items[l.selected]
}

// MoveUp moves selection up.
func (l *List) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *List) MoveDown() {
	if l.selected < len(l.items)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *List) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of items.
func (l *List) Count() int {
	return len(l.items)
}

// IsEmpty returns whether the list is empty.
func (l *List) IsEmpty() bool {
	return len(l.items) == 0
}
