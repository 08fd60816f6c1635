package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

var renderJSON bool

var renderCmd = &cobra.Command{
	Use:   "render [section]",
	Short: "Render the draft supplement",
	Long: `Renders every section, or a single section by key, with the current
variable values and section edits applied.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().BoolVar(&renderJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if err := requireDraft(); err != nil {
		return err
	}

	var sections []domain.RenderedSection
	if len(args) == 1 {
		sec, err := draftService.RenderSection(args[0])
		if err != nil {
			return err
		}
		sections = []domain.RenderedSection{sec}
	} else {
		sections = draftService.RenderAll()
	}

	if renderJSON {
		return outputJSON(cmd, sections)
	}
	return newFormatter(cmd).Sections(cmd.OutOrStdout(), sections)
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
