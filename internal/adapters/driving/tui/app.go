package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/suppdraft/internal/adapters/driving/format"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/views/final"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/views/section"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/views/sections"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/views/settings"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui/views/variables"
	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	menuView      *menu.View
	sectionsView  *sections.View
	sectionView   *section.View
	variablesView *variables.View
	finalView     *final.View
	settingsView  *settings.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	withFinal := ports.Final != nil && ports.Final.Available()

	a := &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		menuView:      menu.NewView(s, withFinal),
		sectionsView:  sections.NewView(s, ports.Draft),
		sectionView:   section.NewView(s, ports.Draft),
		variablesView: variables.NewView(s, ports.Draft),
		finalView:     final.NewView(s, ports.Final),
		settingsView:  settings.NewView(s, ports.Settings),
		currentView:   messages.ViewMenu,
	}

	if ports.Settings != nil {
		if cfg, err := ports.Settings.Get(); err == nil {
			a.applySettings(cfg)
		}
	}
	a.refreshMenu()
	return a, nil
}

// applySettings rebuilds the redline formatter from the render settings.
// The TUI always draws to a terminal, so auto means styled.
func (a *App) applySettings(cfg *domain.AppSettings) {
	f := format.New(io.Discard, format.Options{
		Color:      cfg.Render.Color,
		IsTerminal: true,
		ShowNotes:  cfg.Render.ShowNotes,
	})
	a.sectionView.SetFormatter(f)
	a.finalView.SetFormatter(f)
}

func (a *App) refreshMenu() {
	a.menuView.SetSession(a.ports.Draft.SessionID())
	a.menuView.SetProgress(a.ports.Draft.Progress())
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("suppdraft"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo,funlen // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
		case messages.ViewSections:
			a.sectionsView, cmd = a.sectionsView.Update(msg)
		case messages.ViewSection:
			a.sectionView, cmd = a.sectionView.Update(msg)
		case messages.ViewVariables:
			a.variablesView, cmd = a.variablesView.Update(msg)
		case messages.ViewFinal:
			a.finalView, cmd = a.finalView.Update(msg)
		case messages.ViewSettings:
			a.settingsView, cmd = a.settingsView.Update(msg)
		case messages.ViewHelp:
			// Esc from help goes to menu
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
			}
		}
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewMenu:
			a.refreshMenu()
		case messages.ViewSections:
			return a, a.sectionsView.Init()
		case messages.ViewVariables:
			return a, a.variablesView.Init()
		case messages.ViewFinal:
			return a, a.finalView.Init()
		case messages.ViewSettings:
			a.settingsView.Reset()
			return a, a.settingsView.Init()
		case messages.ViewSection, messages.ViewHelp:
			// Section is entered through SectionSelected; help is static
		}
		return a, nil

	case messages.SectionSelected:
		a.currentView = messages.ViewSection
		return a, a.sectionView.SetSection(msg.Key)

	case messages.RedlinesLoaded:
		a.sectionsView, cmd = a.sectionsView.Update(msg)
		return a, cmd

	case messages.SessionSaved:
		a.sectionsView, cmd = a.sectionsView.Update(msg)
		a.refreshMenu()
		return a, cmd

	case messages.SectionLoaded, messages.OverrideSaved:
		a.sectionView, cmd = a.sectionView.Update(msg)
		return a, cmd

	case messages.VariablesLoaded:
		a.variablesView, cmd = a.variablesView.Update(msg)
		return a, cmd

	case messages.ValueSaved:
		if a.currentView == messages.ViewVariables {
			a.variablesView, cmd = a.variablesView.Update(msg)
		} else {
			a.sectionView, cmd = a.sectionView.Update(msg)
		}
		return a, cmd

	case messages.FinalLoaded:
		a.finalView, cmd = a.finalView.Update(msg)
		return a, cmd

	case messages.SettingsLoaded:
		if msg.Err == nil && msg.Settings != nil {
			a.applySettings(msg.Settings)
		}
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.SettingsSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		switch a.currentView {
		case messages.ViewSections:
			a.sectionsView, cmd = a.sectionsView.Update(msg)
		case messages.ViewSection:
			a.sectionView, cmd = a.sectionView.Update(msg)
		case messages.ViewVariables:
			a.variablesView, cmd = a.variablesView.Update(msg)
		case messages.ViewFinal:
			a.finalView, cmd = a.finalView.Update(msg)
		case messages.ViewMenu, messages.ViewSettings, messages.ViewHelp:
			// Other views don't handle error messages
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (cursor blink, textarea ticks) to the active view
	switch a.currentView {
	case messages.ViewSection:
		a.sectionView, cmd = a.sectionView.Update(msg)
	case messages.ViewVariables:
		a.variablesView, cmd = a.variablesView.Update(msg)
	case messages.ViewMenu, messages.ViewSections, messages.ViewFinal,
		messages.ViewSettings, messages.ViewHelp:
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewSections:
		return a.sectionsView.View()
	case messages.ViewSection:
		return a.sectionView.View()
	case messages.ViewVariables:
		return a.variablesView.View()
	case messages.ViewFinal:
		return a.finalView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back
  ctrl+c      Quit

Sections:
  j/k, ↑/↓    Navigate sections
  enter       Open section
  s           Save session

Section:
  j/k, ↑/↓    Navigate variables
  enter       Edit value (empty reverts)
  a / r       Accept suggestion / revert
  e           Edit section text (ctrl+s applies)
  x           Restore template text
  t           Toggle redline / clean text
  pgup/pgdn   Scroll text

Variables:
  tab         Filter by source
  enter, a, r As in a section

Final document:
  t           Changed sections / all sections

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.sectionsView.SetDimensions(width, height)
	a.sectionView.SetDimensions(width, height)
	a.variablesView.SetDimensions(width, height)
	a.finalView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
