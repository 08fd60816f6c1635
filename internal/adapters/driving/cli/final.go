package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

var finalJSON bool

var finalCmd = &cobra.Command{
	Use:   "final",
	Short: "Work with the final supplement",
	Long: `Once the deal is priced, the final template is filled from the term sheet.
Values set in the draft still take precedence over term sheet values.`,
}

var finalRenderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the final supplement",
	Args:  cobra.NoArgs,
	RunE:  runFinalRender,
}

var finalRedlineCmd = &cobra.Command{
	Use:   "redline",
	Short: "Show changes from the draft to the final supplement",
	Args:  cobra.NoArgs,
	RunE:  runFinalRedline,
}

var finalTermsCmd = &cobra.Command{
	Use:   "terms",
	Short: "Show the pricing term sheet",
	Args:  cobra.NoArgs,
	RunE:  runFinalTerms,
}

func init() {
	finalCmd.PersistentFlags().BoolVar(&finalJSON, "json", false, "output as JSON")
	finalRedlineCmd.Flags().BoolVarP(&redlineAll, "all", "a", false, "include unchanged sections")
	finalCmd.AddCommand(finalRenderCmd)
	finalCmd.AddCommand(finalRedlineCmd)
	finalCmd.AddCommand(finalTermsCmd)
	rootCmd.AddCommand(finalCmd)
}

var errNoFinal = errors.New("no final template loaded")

func requireFinal() error {
	if finalService == nil || !finalService.Available() {
		return errNoFinal
	}
	return nil
}

func finalTemplate() *domain.Template {
	if finalService == nil {
		return nil
	}
	return finalService.Template()
}

func runFinalRender(cmd *cobra.Command, _ []string) error {
	if err := requireFinal(); err != nil {
		return err
	}

	sections, err := finalService.RenderFinal()
	if err != nil {
		return err
	}
	if finalJSON {
		return outputJSON(cmd, sections)
	}
	return newFormatter(cmd).Sections(cmd.OutOrStdout(), sections)
}

func runFinalRedline(cmd *cobra.Command, _ []string) error {
	if err := requireFinal(); err != nil {
		return err
	}

	redlines, err := finalService.RedlineFinal()
	if err != nil {
		return err
	}
	if finalJSON {
		return outputJSON(cmd, redlines)
	}
	if !redlineAll && !anyChanged(redlines) {
		cmd.Println("No changes.")
		return nil
	}
	return newFormatter(cmd).Redlines(cmd.OutOrStdout(), redlines, !redlineAll)
}

func runFinalTerms(cmd *cobra.Command, _ []string) error {
	if finalService == nil {
		return errNoFinal
	}
	ts := finalService.TermSheet()
	if ts == nil {
		return errors.New("no term sheet loaded")
	}

	if finalJSON {
		return outputJSON(cmd, ts)
	}

	if ts.Title != "" {
		cmd.Println(ts.Title)
		cmd.Println()
	}
	for _, f := range ts.Fields {
		cmd.Printf("  %-18s %-30s %s\n", f.ID, f.Label, f.Value)
	}
	return nil
}
