package services

import (
	"fmt"

	"github.com/custodia-labs/suppdraft/internal/core/domain"
	"github.com/custodia-labs/suppdraft/internal/core/ports/driven"
	"github.com/custodia-labs/suppdraft/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyLibraryPath    = "library.path"
	keyTermSheetPath  = "termsheet.path"
	keyRenderColor    = "render.color"
	keyRenderNotes    = "render.notes"
	keyLintStrict     = "lint.strict"
	keyDefaultSession = "session.default"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Render: domain.RenderSettings{
			Color:     s.getColorMode(defaults.Render.Color),
			ShowNotes: s.getBool(keyRenderNotes, defaults.Render.ShowNotes),
		},
		Library: domain.LibrarySettings{
			Path:          s.getString(keyLibraryPath, defaults.Library.Path),
			TermSheetPath: s.getString(keyTermSheetPath, defaults.Library.TermSheetPath),
		},
		Lint: domain.LintSettings{
			Strict: s.getBool(keyLintStrict, defaults.Lint.Strict),
		},
		DefaultSession: s.configStore.GetString(keyDefaultSession),
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	// Save render settings
	if err := s.configStore.Set(keyRenderColor, settings.Render.Color.String()); err != nil {
		return fmt.Errorf("save render color: %w", err)
	}
	if err := s.configStore.Set(keyRenderNotes, settings.Render.ShowNotes); err != nil {
		return fmt.Errorf("save render notes: %w", err)
	}

	// Save library settings
	if err := s.configStore.Set(keyLibraryPath, settings.Library.Path); err != nil {
		return fmt.Errorf("save library path: %w", err)
	}
	if err := s.configStore.Set(keyTermSheetPath, settings.Library.TermSheetPath); err != nil {
		return fmt.Errorf("save termsheet path: %w", err)
	}

	if err := s.configStore.Set(keyLintStrict, settings.Lint.Strict); err != nil {
		return fmt.Errorf("save lint strict: %w", err)
	}
	if err := s.configStore.Set(keyDefaultSession, settings.DefaultSession); err != nil {
		return fmt.Errorf("save default session: %w", err)
	}

	return nil
}

// SetColorMode updates the redline colour mode.
func (s *SettingsService) SetColorMode(mode domain.ColorMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("invalid color mode: %s", mode)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Render.Color = mode
	return s.Save(settings)
}

// SetLibraryPath points the application at a library file.
func (s *SettingsService) SetLibraryPath(path string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Library.Path = path
	return s.Save(settings)
}

// SetDefaultSession sets the session loaded at startup.
func (s *SettingsService) SetDefaultSession(id string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.DefaultSession = id
	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getColorMode(defaultVal domain.ColorMode) domain.ColorMode {
	val := s.configStore.GetString(keyRenderColor)
	if val == "" {
		return defaultVal
	}
	mode := domain.ColorMode(val)
	if !mode.IsValid() {
		return defaultVal
	}
	return mode
}
