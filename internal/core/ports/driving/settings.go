package driving

import "github.com/custodia-labs/suppdraft/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetColorMode updates the redline colour mode.
	SetColorMode(mode domain.ColorMode) error

	// SetLibraryPath points the application at a library file.
	// Empty path restores the built-in library.
	SetLibraryPath(path string) error

	// SetDefaultSession sets the session loaded at startup.
	SetDefaultSession(id string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
