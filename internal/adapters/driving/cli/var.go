package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

var (
	varSource  string
	varChanged bool
	varJSON    bool
)

var varCmd = &cobra.Command{
	Use:   "var",
	Short: "Manage variable values",
	Long: `Variables are the values that change from deal to deal. Each has a prior
value from the last finalized document and may carry a suggested next value.
A value set here takes precedence over both.`,
}

var varListCmd = &cobra.Command{
	Use:   "list",
	Short: "List variables and their current values",
	Args:  cobra.NoArgs,
	RunE:  runVarList,
}

var varShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a variable in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runVarShow,
}

var varSetCmd = &cobra.Command{
	Use:   "set [id] [value...]",
	Short: "Set a variable's value",
	Long: `Sets a variable's value. Remaining arguments are joined with spaces.
Setting the prior value, or an empty value, reverts the variable.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runVarSet,
}

var varAcceptCmd = &cobra.Command{
	Use:   "accept [id]",
	Short: "Accept a variable's suggested value",
	Args:  cobra.ExactArgs(1),
	RunE:  runVarAccept,
}

var varClearCmd = &cobra.Command{
	Use:   "clear [id]",
	Short: "Revert a variable to its default",
	Args:  cobra.ExactArgs(1),
	RunE:  runVarClear,
}

func init() {
	varListCmd.Flags().StringVar(&varSource, "source", "", "only variables from source (auto, counsel, client, underwriter)")
	varListCmd.Flags().BoolVar(&varChanged, "changed", false, "only variables with a value set")
	varListCmd.Flags().BoolVar(&varJSON, "json", false, "output as JSON")
	varShowCmd.Flags().BoolVar(&varJSON, "json", false, "output as JSON")

	varCmd.AddCommand(varListCmd)
	varCmd.AddCommand(varShowCmd)
	varCmd.AddCommand(varSetCmd)
	varCmd.AddCommand(varAcceptCmd)
	varCmd.AddCommand(varClearCmd)
	rootCmd.AddCommand(varCmd)
}

// variableJSON is the wire form of a variable state.
type variableJSON struct {
	ID         string `json:"id"`
	Value      string `json:"value"`
	Prior      string `json:"prior"`
	Suggested  string `json:"suggested,omitempty"`
	Source     string `json:"source"`
	Task       string `json:"task"`
	Hint       string `json:"hint,omitempty"`
	AutoSource string `json:"auto_source,omitempty"`
	Changed    bool   `json:"changed"`
}

func toVariableJSON(st domain.VariableState) variableJSON {
	d := st.Definition
	return variableJSON{
		ID:         d.ID,
		Value:      st.Value,
		Prior:      d.Prior,
		Suggested:  d.Suggested,
		Source:     d.Source.String(),
		Task:       d.Task.String(),
		Hint:       d.Hint,
		AutoSource: d.AutoSource,
		Changed:    st.Changed,
	}
}

func runVarList(cmd *cobra.Command, _ []string) error {
	if err := requireDraft(); err != nil {
		return err
	}

	var states []domain.VariableState
	if varSource != "" {
		source := domain.VariableSource(varSource)
		if !source.IsValid() {
			return fmt.Errorf("unknown source %q", varSource)
		}
		states = draftService.VariablesBySource()[source]
	} else {
		states = draftService.Variables()
	}

	if varChanged {
		filtered := states[:0:0]
		for _, st := range states {
			if st.Changed {
				filtered = append(filtered, st)
			}
		}
		states = filtered
	}

	if varJSON {
		out := make([]variableJSON, 0, len(states))
		for _, st := range states {
			out = append(out, toVariableJSON(st))
		}
		return outputJSON(cmd, out)
	}

	if len(states) == 0 {
		cmd.Println("No variables.")
		return nil
	}

	for _, st := range states {
		mark := " "
		if st.Changed {
			mark = "*"
		}
		cmd.Printf("%s %-12s [%-7s] %s\n", mark, st.Definition.ID, st.Definition.Source.Label(), st.Value)
	}
	return nil
}

func runVarShow(cmd *cobra.Command, args []string) error {
	if err := requireDraft(); err != nil {
		return err
	}

	st, err := draftService.Variable(args[0])
	if err != nil {
		return err
	}
	if varJSON {
		return outputJSON(cmd, toVariableJSON(st))
	}

	d := st.Definition
	cmd.Printf("ID:       %s\n", d.ID)
	cmd.Printf("Value:    %s\n", st.Value)
	cmd.Printf("Prior:    %s\n", d.Prior)
	if d.HasSuggestion() {
		cmd.Printf("Suggest:  %s\n", d.Suggested)
	}
	cmd.Printf("Source:   %s\n", d.Source.Label())
	cmd.Printf("Task:     %s\n", d.Task)
	if d.Hint != "" {
		cmd.Printf("Hint:     %s\n", d.Hint)
	}
	if d.AutoSource != "" {
		cmd.Printf("Lookup:   %s\n", d.AutoSource)
	}
	if st.Changed {
		cmd.Println("Status:   changed")
	} else {
		cmd.Println("Status:   default")
	}
	return nil
}

func runVarSet(cmd *cobra.Command, args []string) error {
	if err := requireDraft(); err != nil {
		return err
	}

	id := args[0]
	value := strings.Join(args[1:], " ")
	if err := draftService.SetValue(id, value); err != nil {
		return err
	}
	if err := persist(cmd); err != nil {
		return err
	}

	resolved, err := draftService.ResolvedValue(id)
	if err != nil {
		return err
	}
	cmd.Printf("%s = %s\n", id, resolved)
	return nil
}

func runVarAccept(cmd *cobra.Command, args []string) error {
	if err := requireDraft(); err != nil {
		return err
	}

	st, err := draftService.Variable(args[0])
	if err != nil {
		return err
	}
	if !st.Definition.HasSuggestion() {
		return errors.New(args[0] + " has no suggested value")
	}
	if err := draftService.SetValue(args[0], st.Definition.Suggested); err != nil {
		return err
	}
	if err := persist(cmd); err != nil {
		return err
	}
	cmd.Printf("%s = %s\n", args[0], st.Definition.Suggested)
	return nil
}

func runVarClear(cmd *cobra.Command, args []string) error {
	if err := requireDraft(); err != nil {
		return err
	}

	if err := draftService.ClearValue(args[0]); err != nil {
		return err
	}
	if err := persist(cmd); err != nil {
		return err
	}

	resolved, err := draftService.ResolvedValue(args[0])
	if err != nil {
		return err
	}
	cmd.Printf("%s reverted to %s\n", args[0], resolved)
	return nil
}
