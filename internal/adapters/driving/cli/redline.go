package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

var (
	redlineJSON bool
	redlineAll  bool
)

var redlineCmd = &cobra.Command{
	Use:   "redline [section]",
	Short: "Show changes against the prior deal",
	Long: `Compares each section as rendered with the prior deal's values against
the current draft and marks word-level insertions and deletions.

Only changed sections are shown unless --all is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRedline,
}

func init() {
	redlineCmd.Flags().BoolVar(&redlineJSON, "json", false, "output as JSON")
	redlineCmd.Flags().BoolVarP(&redlineAll, "all", "a", false, "include unchanged sections")
	rootCmd.AddCommand(redlineCmd)
}

func runRedline(cmd *cobra.Command, args []string) error {
	if err := requireDraft(); err != nil {
		return err
	}

	var redlines []domain.SectionRedline
	if len(args) == 1 {
		r, err := draftService.RedlineSection(args[0])
		if err != nil {
			return err
		}
		redlines = []domain.SectionRedline{r}
	} else {
		redlines = draftService.RedlineAll()
	}

	return writeRedlines(cmd, redlines, len(args) == 0 && !redlineAll)
}

func writeRedlines(cmd *cobra.Command, redlines []domain.SectionRedline, changedOnly bool) error {
	if redlineJSON {
		return outputJSON(cmd, redlines)
	}
	if changedOnly && !anyChanged(redlines) {
		cmd.Println("No changes.")
		return nil
	}
	return newFormatter(cmd).Redlines(cmd.OutOrStdout(), redlines, changedOnly)
}

func anyChanged(redlines []domain.SectionRedline) bool {
	for _, r := range redlines {
		if r.Changed {
			return true
		}
	}
	return false
}
