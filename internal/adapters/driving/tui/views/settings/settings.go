// Package settings provides the settings configuration view for the TUI.
package settings

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/suppdraft/internal/core/domain"
	"github.com/custodia-labs/suppdraft/internal/core/ports/driving"
)

// Row identifies an editable setting.
type Row int

const (
	RowColor Row = iota
	RowNotes
	RowStrict
	rowCount
)

// Key constants for key handling.
const (
	keyDown  = "down"
	keyEnter = "enter"
	keySpace = " "
)

// View is the settings configuration view.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	settings *domain.AppSettings
	err      error
	selected int

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:          s,
		settingsService: settingsService,
	}
}

// Init initialises the view and loads settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

// loadSettings returns a command that loads current settings.
func (v *View) loadSettings() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsLoaded{Err: fmt.Errorf("settings service not available")}
		}
		settings, err := v.settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// saveSettings returns a command that persists updated settings.
func (v *View) saveSettings(updated domain.AppSettings) tea.Cmd {
	return func() tea.Msg {
		return messages.SettingsSaved{Err: v.settingsService.Save(&updated)}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.settings = msg.Settings
			v.err = nil
		}
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		// Reload settings after save
		return v, v.loadSettings()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < int(rowCount)-1 {
			v.selected++
		}
	case keyEnter, keySpace:
		if v.settings == nil {
			return v, nil
		}
		return v, v.saveSettings(v.cycle(Row(v.selected)))
	}
	return v, nil
}

// cycle returns a copy of the settings with row advanced to its next value.
func (v *View) cycle(row Row) domain.AppSettings {
	updated := *v.settings
	switch row {
	case RowColor:
		updated.Render.Color = nextColorMode(updated.Render.Color)
	case RowNotes:
		updated.Render.ShowNotes = !updated.Render.ShowNotes
	case RowStrict:
		updated.Lint.Strict = !updated.Lint.Strict
	case rowCount:
	}
	return updated
}

func nextColorMode(m domain.ColorMode) domain.ColorMode {
	switch m {
	case domain.ColorAuto:
		return domain.ColorAlways
	case domain.ColorAlways:
		return domain.ColorNever
	default:
		return domain.ColorAuto
	}
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if v.settings == nil {
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
		b.WriteString("\n")
		return b.String()
	}

	rows := []struct {
		label string
		value string
	}{
		{"Redline colour", v.settings.Render.Color.Description()},
		{"Show notes", onOff(v.settings.Render.ShowNotes)},
		{"Strict lint", onOff(v.settings.Lint.Strict)},
	}
	for i, row := range rows {
		cursor := "  "
		line := fmt.Sprintf("%-16s %s", row.label, row.value)
		if i == v.selected {
			cursor = "> "
			line = v.styles.Selected.Render(line)
		} else {
			line = v.styles.Normal.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n")
	library := v.settings.Library.Path
	if library == "" {
		library = "(built-in)"
	}
	b.WriteString(v.styles.Muted.Render("Library:    " + library))
	b.WriteString("\n")
	if v.settings.Library.TermSheetPath != "" {
		b.WriteString(v.styles.Muted.Render("Term sheet: " + v.settings.Library.TermSheetPath))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [enter] Change  [esc] Back"))

	return b.String()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Reset clears transient state before the view is shown again.
func (v *View) Reset() {
	v.selected = 0
	v.err = nil
}

// Settings returns the loaded settings.
func (v *View) Settings() *domain.AppSettings {
	return v.settings
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
