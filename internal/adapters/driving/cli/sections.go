package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List template sections",
	Long:  `Lists the draft sections in order with the variables each one uses.`,
	Args:  cobra.NoArgs,
	RunE:  runSections,
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
}

func runSections(cmd *cobra.Command, _ []string) error {
	if err := requireDraft(); err != nil {
		return err
	}

	for _, sec := range draftService.Template().Sections() {
		mark := " "
		if _, ok := draftService.Override(sec.Key); ok {
			mark = "*"
		}
		cmd.Printf("%s %-14s %s\n", mark, sec.Key, sec.Title)

		states, err := draftService.SectionVariables(sec.Key)
		if err != nil {
			return err
		}
		if len(states) == 0 {
			continue
		}
		ids := make([]string, 0, len(states))
		for _, st := range states {
			id := st.Definition.ID
			if st.Changed {
				id += "*"
			}
			ids = append(ids, id)
		}
		cmd.Printf("  %-14s %s\n", "", strings.Join(ids, ", "))
	}
	return nil
}
