package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the library location, redline colours and lint behaviour.

Use subcommands to change a single setting or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

var settingsColorCmd = &cobra.Command{
	Use:   "color [auto|always|never]",
	Short: "Set redline colour mode",
	Long: `Set how redlines are marked.

Available modes:
  auto   - Colour when writing to a terminal, markers otherwise
  always - Always colour
  never  - Always use [-deleted-] and {+inserted+} markers`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsColor,
}

var settingsLibraryCmd = &cobra.Command{
	Use:   "library [path]",
	Short: "Set the library file",
	Long:  `Set the library file loaded on startup. Omit the path to use the built-in library.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSettingsLibrary,
}

var settingsTermSheetCmd = &cobra.Command{
	Use:   "termsheet [path]",
	Short: "Set the term sheet file",
	Long:  `Set a term sheet that replaces the library's own. Omit the path to clear it.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSettingsTermSheet,
}

var settingsNotesCmd = &cobra.Command{
	Use:   "notes [on|off]",
	Short: "Show or hide [Note: ...] annotations",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsNotes,
}

var settingsStrictCmd = &cobra.Command{
	Use:   "strict [on|off]",
	Short: "Treat unknown variables as lint errors",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsStrict,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	settingsCmd.AddCommand(settingsColorCmd)
	settingsCmd.AddCommand(settingsLibraryCmd)
	settingsCmd.AddCommand(settingsTermSheetCmd)
	settingsCmd.AddCommand(settingsNotesCmd)
	settingsCmd.AddCommand(settingsStrictCmd)
	rootCmd.AddCommand(settingsCmd)
}

var errSettingsNotConfigured = errors.New("settings service not configured")

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Library]")
	cmd.Printf("  Path: %s\n", orDefault(settings.Library.Path, "(built-in)"))
	cmd.Printf("  Term sheet: %s\n", orDefault(settings.Library.TermSheetPath, "(from library)"))
	cmd.Println()

	cmd.Println("[Render]")
	cmd.Printf("  Colour: %s\n", settings.Render.Color.Description())
	cmd.Printf("  Notes: %s\n", onOff(settings.Render.ShowNotes))
	cmd.Println()

	cmd.Println("[Lint]")
	cmd.Printf("  Strict: %s\n", onOff(settings.Lint.Strict))
	cmd.Println()

	cmd.Println("[Session]")
	cmd.Printf("  Default: %s\n", orDefault(settings.DefaultSession, "(none)"))

	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Suppdraft Settings Wizard")
	cmd.Println("=========================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	// Step 1: Library
	cmd.Println("Step 1: Library File")
	cmd.Println("--------------------")
	cmd.Printf("Path to the section library, blank for built-in [%s]: ", settings.Library.Path)
	if input := readLine(reader); input != "" {
		settings.Library.Path = input
	}
	cmd.Println()

	// Step 2: Colour
	cmd.Println("Step 2: Redline Colour")
	cmd.Println("----------------------")
	modes := []domain.ColorMode{domain.ColorAuto, domain.ColorAlways, domain.ColorNever}
	current := 1
	for i, mode := range modes {
		cmd.Printf("  %d. %s\n", i+1, mode.Description())
		if mode == settings.Render.Color {
			current = i + 1
		}
	}
	cmd.Printf("\nEnter choice [%d]: ", current)
	settings.Render.Color = modes[parseChoice(readLine(reader), len(modes), current)-1]
	cmd.Println()

	// Step 3: Notes
	cmd.Println("Step 3: Annotations")
	cmd.Println("-------------------")
	cmd.Printf("Show [Note: ...] annotations? (y/n) [%s]: ", yesNo(settings.Render.ShowNotes))
	settings.Render.ShowNotes = parseYesNo(readLine(reader), settings.Render.ShowNotes)
	cmd.Println()

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	cmd.Println("All settings are saved.")
	return nil
}

func runSettingsColor(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	mode := domain.ColorMode(args[0])
	if err := settingsService.SetColorMode(mode); err != nil {
		return fmt.Errorf("failed to set colour mode: %w", err)
	}
	cmd.Printf("Colour mode set to: %s\n", mode.Description())
	return nil
}

func runSettingsLibrary(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	if err := settingsService.SetLibraryPath(path); err != nil {
		return fmt.Errorf("failed to set library: %w", err)
	}
	cmd.Printf("Library set to: %s\n", orDefault(path, "(built-in)"))
	return nil
}

func runSettingsTermSheet(cmd *cobra.Command, args []string) error {
	return updateSettings(cmd, func(s *domain.AppSettings) string {
		s.Library.TermSheetPath = ""
		if len(args) == 1 {
			s.Library.TermSheetPath = args[0]
		}
		return "Term sheet set to: " + orDefault(s.Library.TermSheetPath, "(from library)")
	})
}

func runSettingsNotes(cmd *cobra.Command, args []string) error {
	on, err := parseOnOff(args[0])
	if err != nil {
		return err
	}
	return updateSettings(cmd, func(s *domain.AppSettings) string {
		s.Render.ShowNotes = on
		return "Notes: " + onOff(on)
	})
}

func runSettingsStrict(cmd *cobra.Command, args []string) error {
	on, err := parseOnOff(args[0])
	if err != nil {
		return err
	}
	return updateSettings(cmd, func(s *domain.AppSettings) string {
		s.Lint.Strict = on
		return "Strict lint: " + onOff(on)
	})
}

func updateSettings(cmd *cobra.Command, apply func(*domain.AppSettings) string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	msg := apply(settings)
	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	cmd.Println(msg)
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

func parseYesNo(input string, defaultVal bool) bool {
	switch strings.ToLower(input) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return defaultVal
	}
}

func parseOnOff(input string) (bool, error) {
	switch strings.ToLower(input) {
	case "on", "true", "yes":
		return true, nil
	case "off", "false", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected on or off, got %q", input)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func yesNo(b bool) string {
	if b {
		return "y"
	}
	return "n"
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
