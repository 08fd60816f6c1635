package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/suppdraft/internal/adapters/driven/library"
	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

var libraryForce bool

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Inspect or copy the section library",
}

var libraryShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Summarise the loaded library",
	Args:  cobra.NoArgs,
	RunE:  runLibraryShow,
}

var libraryExportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Write the built-in library to a file",
	Long: `Writes the built-in library as YAML so it can be edited for a new deal.
Point library.path in settings, or --library, at the copy to use it.`,
	Args:        cobra.ExactArgs(1),
	Annotations: map[string]string{annotationNoServices: "true"},
	RunE:        runLibraryExport,
}

func init() {
	libraryExportCmd.Flags().BoolVarP(&libraryForce, "force", "f", false, "overwrite an existing file")
	libraryCmd.AddCommand(libraryShowCmd)
	libraryCmd.AddCommand(libraryExportCmd)
	rootCmd.AddCommand(libraryCmd)
}

func runLibraryShow(cmd *cobra.Command, _ []string) error {
	if err := requireDraft(); err != nil {
		return err
	}

	source := libraryPath
	if source == "" {
		source = "(built-in)"
	}
	cmd.Printf("Library:    %s\n", source)
	if termSheetPath != "" {
		cmd.Printf("Term sheet: %s\n", termSheetPath)
	}
	cmd.Printf("Variables:  %d\n", draftService.Catalog().Len())
	cmd.Printf("Sections:   %d draft", draftService.Template().Len())
	if t := finalTemplate(); t != nil {
		cmd.Printf(", %d final", t.Len())
	}
	cmd.Println()
	if finalService != nil {
		if ts := finalService.TermSheet(); ts != nil {
			cmd.Printf("Terms:      %d\n", len(ts.Fields))
		}
	}
	return nil
}

func runLibraryExport(cmd *cobra.Command, args []string) error {
	if err := library.Export(args[0], libraryForce); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return fmt.Errorf("%s exists; use --force to overwrite", args[0])
		}
		return err
	}
	cmd.Printf("Wrote library to %s\n", args[0])
	return nil
}
