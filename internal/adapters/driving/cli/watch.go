package cli

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/suppdraft/internal/adapters/driven/watch"
	"github.com/custodia-labs/suppdraft/internal/logger"
)

var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Redline again whenever the library file changes",
	Long: `Watches the library file, and the term sheet when one is given, and
prints a fresh redline after every save. A library that fails to load is
reported and the last good one stays in use.

Press Ctrl+C to stop.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", watch.DefaultInterval, "minimum time between redlines")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if err := requireDraft(); err != nil {
		return err
	}
	if libraryPath == "" {
		return errors.New("watch needs a library file; set --library or library.path")
	}

	w, err := watch.New(watchInterval, libraryPath, termSheetPath)
	if err != nil {
		return err
	}

	printWatchRedline(cmd)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return w.Run(ctx, func(path string) {
		logger.Debug("reloading after change to %s", path)
		if err := reload(ctx); err != nil {
			cmd.PrintErrf("reload failed: %v\n", err)
			return
		}
		printWatchRedline(cmd)
	})
}

// reload rebuilds the services from disk, keeping the current ones if the
// library no longer loads.
func reload(ctx context.Context) error {
	if bootstrap == nil {
		return errors.New("reload not configured")
	}
	services, err := bootstrap(ctx, opts)
	if err != nil {
		return err
	}
	if closeServices != nil {
		if err := closeServices(); err != nil {
			logger.Warn("close storage: %v", err)
		}
	}
	SetServices(services)
	return nil
}

func printWatchRedline(cmd *cobra.Command) {
	cmd.Printf("--- %s ---\n", time.Now().Format("15:04:05"))
	redlines := draftService.RedlineAll()
	if !anyChanged(redlines) {
		cmd.Println("No changes.")
		return
	}
	if err := newFormatter(cmd).Redlines(cmd.OutOrStdout(), redlines, true); err != nil {
		cmd.PrintErrf("write redline: %v\n", err)
	}
}
