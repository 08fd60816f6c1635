package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/suppdraft/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for suppdraft.

The TUI lists every section with its redline against the prior supplement,
lets you set variable values and edit section text, and shows the final
document once a term sheet is loaded. The session is saved on exit.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Select / Edit
  a        - Accept suggestion
  r        - Revert to prior
  Esc      - Back / Cancel
  ?        - Toggle help
  q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// tuiPorts builds the TUI ports from the installed services. The final
// port is only set when a final service exists so the interface stays nil.
func tuiPorts() *tui.Ports {
	ports := &tui.Ports{
		Draft:    draftService,
		Settings: settingsService,
	}
	if finalService != nil {
		ports.Final = finalService
	}
	return ports
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if err := requireDraft(); err != nil {
		return err
	}

	app, err := tui.NewApp(tuiPorts())
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if err := app.WithContext(cmd.Context()).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return persist(cmd)
}
