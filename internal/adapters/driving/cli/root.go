// Package cli provides the suppdraft command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/suppdraft/internal/adapters/driving/format"
	"github.com/custodia-labs/suppdraft/internal/core/domain"
	"github.com/custodia-labs/suppdraft/internal/core/ports/driving"
	"github.com/custodia-labs/suppdraft/internal/logger"
)

// version is set at build time with -ldflags.
var version = "dev"

// Options carries the global flags into the bootstrap.
type Options struct {
	// ConfigDir holds config.toml. Empty selects ~/.suppdraft.
	ConfigDir string

	// DataDir holds the session database. Empty selects ~/.suppdraft/data.
	DataDir string

	// LibraryPath overrides the configured library file.
	LibraryPath string

	// TermSheetPath overrides the library's term sheet.
	TermSheetPath string

	// Session selects a saved session instead of the default one.
	Session string
}

// Services are the driving ports the commands operate on.
type Services struct {
	Draft    driving.DraftService
	Final    driving.FinalService
	Lint     driving.LintService
	Sessions driving.SessionService

	// FinalLint checks the final template against the catalog with the
	// term sheet applied. May be nil.
	FinalLint driving.LintService

	Settings driving.SettingsService

	// LibraryPath and TermSheetPath are the files the library was read
	// from. Both are empty for the built-in library.
	LibraryPath   string
	TermSheetPath string

	// Close releases storage. May be nil.
	Close func() error
}

// Bootstrap builds the services from the global flags.
type Bootstrap func(ctx context.Context, opts Options) (*Services, error)

var (
	bootstrap Bootstrap
	opts      Options
	verbose   bool
	colorFlag string

	draftService    driving.DraftService
	finalService    driving.FinalService
	lintService     driving.LintService
	finalLint       driving.LintService
	sessionService  driving.SessionService
	settingsService driving.SettingsService
	closeServices   func() error
	libraryPath     string
	termSheetPath   string
)

var rootCmd = &cobra.Command{
	Use:   "suppdraft",
	Short: "Draft a prospectus supplement from the last deal",
	Long: `suppdraft rebuilds a securities offering supplement from a library of
section templates and the values used in the last finalized document.

Set new values for each variable, edit whole sections where needed, and
review a word-level redline of every change against the prior deal.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.ConfigDir, "config-dir", "", "configuration directory (default ~/.suppdraft)")
	flags.StringVar(&opts.DataDir, "data-dir", "", "session database directory (default ~/.suppdraft/data)")
	flags.StringVarP(&opts.LibraryPath, "library", "l", "", "section library file (default built-in)")
	flags.StringVar(&opts.TermSheetPath, "termsheet", "", "pricing term sheet file")
	flags.StringVarP(&opts.Session, "session", "s", "", "session ID (default from settings)")
	flags.StringVar(&colorFlag, "color", "", "redline colour: auto, always or never")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// SetBootstrap registers the function that wires services on startup.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices installs services directly, bypassing the bootstrap.
func SetServices(s *Services) {
	if s == nil {
		draftService, finalService, lintService, finalLint = nil, nil, nil, nil
		sessionService, settingsService = nil, nil
		closeServices = nil
		libraryPath, termSheetPath = "", ""
		return
	}
	draftService = s.Draft
	finalService = s.Final
	lintService = s.Lint
	finalLint = s.FinalLint
	sessionService = s.Sessions
	settingsService = s.Settings
	closeServices = s.Close
	libraryPath = s.LibraryPath
	termSheetPath = s.TermSheetPath
}

// SetVersion sets the reported version.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	defer func() {
		if closeServices != nil {
			if err := closeServices(); err != nil {
				logger.Warn("close storage: %v", err)
			}
		}
		logger.Sync()
	}()
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if colorFlag != "" && !domain.ColorMode(colorFlag).IsValid() {
		return fmt.Errorf("invalid --color %q: must be auto, always or never", colorFlag)
	}

	if cmd.Annotations[annotationNoServices] == "true" {
		return nil
	}
	if draftService != nil || bootstrap == nil {
		return nil
	}

	services, err := bootstrap(cmd.Context(), opts)
	if err != nil {
		return err
	}
	SetServices(services)
	return nil
}

// annotationNoServices marks commands that run without the bootstrap.
const annotationNoServices = "suppdraft/no-services"

var errDraftNotConfigured = errors.New("draft service not configured")

func requireDraft() error {
	if draftService == nil {
		return errDraftNotConfigured
	}
	return nil
}

// newFormatter builds a formatter for the command's output, honouring the
// --color flag over the configured render settings.
func newFormatter(cmd *cobra.Command) *format.Formatter {
	w := cmd.OutOrStdout()

	fo := format.Options{Color: domain.ColorAuto, ShowNotes: true}
	if settingsService != nil {
		if s, err := settingsService.Get(); err == nil {
			fo.Color = s.Render.Color
			fo.ShowNotes = s.Render.ShowNotes
		}
	}
	if colorFlag != "" {
		fo.Color = domain.ColorMode(colorFlag)
	}
	if f, ok := w.(*os.File); ok {
		fo.IsTerminal = term.IsTerminal(int(f.Fd()))
	}
	return format.New(w, fo)
}

// persist saves the working session. The first save of a fresh session
// also makes it the default so the next invocation picks it up.
func persist(cmd *cobra.Command) error {
	fresh := draftService.SessionID() == ""
	if err := draftService.Save(cmd.Context()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	if !fresh || settingsService == nil {
		return nil
	}

	if err := settingsService.SetDefaultSession(draftService.SessionID()); err != nil {
		return fmt.Errorf("set default session: %w", err)
	}
	cmd.PrintErrf("Started session %s\n", draftService.SessionID())
	return nil
}
