// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

// Theme defines the colour palette and styling for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Background is the background colour.
	Background lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Inserted marks text added since the prior document.
	Inserted lipgloss.Color

	// Deleted marks text removed since the prior document.
	Deleted lipgloss.Color

	// Edited marks sections whose text was replaced by hand.
	Edited lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#1E3A8A"), // Navy
		Secondary:  lipgloss.Color("#0E7490"), // Teal
		Background: lipgloss.Color("#1C1C1C"), // Charcoal
		Foreground: lipgloss.Color("#E5E5E5"), // Paper
		Muted:      lipgloss.Color("#737373"), // Gray
		Inserted:   lipgloss.Color("#22C55E"), // Green
		Deleted:    lipgloss.Color("#EF4444"), // Red
		Edited:     lipgloss.Color("#F59E0B"), // Amber
		Error:      lipgloss.Color("#F472B6"), // Pink
		Border:     lipgloss.Color("#404040"), // Border gray
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Subtitle style for secondary headers.
	Subtitle lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for highlighted items.
	Selected lipgloss.Style

	// Changed style for variables and sections that differ from the prior.
	Changed lipgloss.Style

	// Edited style for the edited-section marker.
	Edited lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// InputField style for input areas.
	InputField lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style

	// Border style for bordered containers.
	Border lipgloss.Style

	sources map[domain.VariableSource]lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Changed: lipgloss.NewStyle().
			Foreground(theme.Inserted),

		Edited: lipgloss.NewStyle().
			Italic(true).
			Foreground(theme.Edited),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#111111")).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),

		sources: map[domain.VariableSource]lipgloss.Style{
			domain.SourceSystem:      lipgloss.NewStyle().Foreground(lipgloss.Color("#60A5FA")),
			domain.SourceCounsel:     lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA")),
			domain.SourceClient:      lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399")),
			domain.SourceUnderwriter: lipgloss.NewStyle().Foreground(lipgloss.Color("#FBBF24")),
			domain.SourceTermSheet:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171")),
		},
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Source returns the legend style for a variable source.
func (s *Styles) Source(src domain.VariableSource) lipgloss.Style {
	if st, ok := s.sources[src]; ok {
		return st
	}
	return s.Muted
}
