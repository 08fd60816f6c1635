package domain

// ColorMode controls whether redlines are rendered with ANSI styling.
type ColorMode string

// Available colour modes.
const (
	// ColorAuto styles output only when writing to a terminal.
	ColorAuto ColorMode = "auto"

	// ColorAlways styles output unconditionally.
	ColorAlways ColorMode = "always"

	// ColorNever prints plain [-deleted-]{+inserted+} markers.
	ColorNever ColorMode = "never"
)

// IsValid returns true if the colour mode is recognised.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m ColorMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m ColorMode) Description() string {
	switch m {
	case ColorAuto:
		return "Auto (colour when writing to a terminal)"
	case ColorAlways:
		return "Always"
	case ColorNever:
		return "Never (plain markers)"
	default:
		return unknownDescription
	}
}

// RenderSettings holds output behaviour configuration.
type RenderSettings struct {
	// Color is the redline colour mode.
	Color ColorMode

	// ShowNotes keeps [Note: ...] annotations in rendered output.
	ShowNotes bool
}

// LibrarySettings holds where the section library lives.
type LibrarySettings struct {
	// Path is a YAML library file. Empty means the built-in library.
	Path string

	// TermSheetPath is an optional YAML term sheet overriding the library's.
	TermSheetPath string
}

// LintSettings holds template validation behaviour.
type LintSettings struct {
	// Strict treats unknown variable references as errors.
	Strict bool
}

// AppSettings holds all application settings.
type AppSettings struct {
	Render  RenderSettings
	Library LibrarySettings
	Lint    LintSettings

	// DefaultSession is the session loaded when --session is not given.
	DefaultSession string
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Render: RenderSettings{
			Color:     ColorAuto,
			ShowNotes: true,
		},
	}
}
