// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// PageUp scrolls text up one page.
	PageUp key.Binding

	// PageDown scrolls text down one page.
	PageDown key.Binding

	// Select confirms a selection.
	Select key.Binding

	// Cancel cancels the current edit.
	Cancel key.Binding

	// Save persists the working session.
	Save key.Binding

	// Accept takes a variable's suggested value.
	Accept key.Binding

	// Revert clears a variable back to its default.
	Revert key.Binding

	// Edit opens a section's text for a block override.
	Edit key.Binding

	// Restore clears a section's block override.
	Restore key.Binding

	// Toggle switches between redline and clean text.
	Toggle key.Binding

	// Filter cycles the variable source filter.
	Filter key.Binding

	// Submit confirms a multi-line edit.
	Submit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save session"),
		),
		Accept: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "accept suggestion"),
		),
		Revert: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "revert"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit text"),
		),
		Restore: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "restore template"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "redline/clean"),
		),
		Filter: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "filter source"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "apply edit"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Help}
}

// SectionsHelp returns keybindings for the section list.
func (k *KeyMap) SectionsHelp() []key.Binding {
	return []key.Binding{k.Select, k.Save, k.Back}
}

// SectionHelp returns keybindings for a single section.
func (k *KeyMap) SectionHelp() []key.Binding {
	return []key.Binding{k.Select, k.Accept, k.Revert, k.Edit, k.Restore, k.Toggle, k.Back}
}

// VariablesHelp returns keybindings for the variable list.
func (k *KeyMap) VariablesHelp() []key.Binding {
	return []key.Binding{k.Select, k.Accept, k.Revert, k.Filter, k.Back}
}

// EditHelp returns keybindings while text is being edited.
func (k *KeyMap) EditHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Select},
		{k.Accept, k.Revert, k.Edit, k.Restore, k.Toggle, k.Filter},
		{k.Save, k.Submit, k.Back, k.Cancel},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
