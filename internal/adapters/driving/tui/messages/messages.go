// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewSections lists the draft sections with their change state.
	ViewSections
	// ViewSection shows one section's redline and its variables.
	ViewSection
	// ViewVariables lists every variable for editing.
	ViewVariables
	// ViewFinal shows the final document redline.
	ViewFinal
	// ViewSettings is the settings configuration view.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSections:
		return "sections"
	case ViewSection:
		return "section"
	case ViewVariables:
		return "variables"
	case ViewFinal:
		return "final"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// RedlinesLoaded carries the redline of every draft section.
type RedlinesLoaded struct {
	Redlines []domain.SectionRedline
	Progress domain.Progress
}

// SectionSelected signals a section was chosen for the detail view.
type SectionSelected struct {
	Key string
}

// SectionLoaded carries one section's redline and referenced variables.
type SectionLoaded struct {
	Redline   domain.SectionRedline
	Variables []domain.VariableState
	Err       error
}

// VariablesLoaded carries every variable state in catalog order.
type VariablesLoaded struct {
	Variables []domain.VariableState
}

// ValueSaved signals a variable value was set, accepted or cleared.
type ValueSaved struct {
	ID  string
	Err error
}

// OverrideSaved signals a section override was set or cleared.
type OverrideSaved struct {
	Key     string
	Cleared bool
	Err     error
}

// SessionSaved signals the working session was persisted.
type SessionSaved struct {
	ID  string
	Err error
}

// FinalLoaded carries the final template redline against the draft.
type FinalLoaded struct {
	Redlines []domain.SectionRedline
	Err      error
}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsSaved signals settings were saved.
type SettingsSaved struct {
	Err error
}
