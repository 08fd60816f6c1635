package cli

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

var progressJSON bool

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show drafting progress",
	Args:  cobra.NoArgs,
	RunE:  runProgress,
}

func init() {
	progressCmd.Flags().BoolVar(&progressJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(progressCmd)
}

func runProgress(cmd *cobra.Command, _ []string) error {
	if err := requireDraft(); err != nil {
		return err
	}

	p := draftService.Progress()
	if progressJSON {
		return outputJSON(cmd, struct {
			domain.Progress
			Percent int    `json:"percent"`
			Session string `json:"session,omitempty"`
		}{p, p.Percent(), draftService.SessionID()})
	}

	if id := draftService.SessionID(); id != "" {
		cmd.Printf("Session:    %s\n", id)
	} else {
		cmd.Println("Session:    (unsaved)")
	}
	cmd.Printf("Changed:    %d of %d variables (%d%%)\n", p.Changed, p.Total, p.Percent())
	cmd.Printf("Edited:     %d sections\n", p.Overridden)
	cmd.Println()

	bySource := draftService.VariablesBySource()
	sources := make([]domain.VariableSource, 0, len(bySource))
	for src := range bySource {
		sources = append(sources, src)
	}
	order := make(map[domain.VariableSource]int)
	for i, src := range domain.AllSources() {
		order[src] = i
	}
	sort.Slice(sources, func(i, j int) bool { return order[sources[i]] < order[sources[j]] })

	for _, src := range sources {
		states := bySource[src]
		changed := 0
		for _, st := range states {
			if st.Changed {
				changed++
			}
		}
		cmd.Printf("  %-10s %d/%d\n", src.Label(), changed, len(states))
	}
	return nil
}
