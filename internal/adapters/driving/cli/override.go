package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var overrideFile string

var overrideCmd = &cobra.Command{
	Use:   "override",
	Short: "Edit whole sections",
	Long: `An override replaces a section's text verbatim. Variables inside an
override are not substituted, so later value changes do not reach it.`,
}

var overrideSetCmd = &cobra.Command{
	Use:   "set [section] [text...]",
	Short: "Replace a section's text",
	Long: `Replaces a section's text. The text is taken from the remaining arguments,
or from --file (use - for standard input). Text identical to the section's
prior rendering clears the override.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOverrideSet,
}

var overrideClearCmd = &cobra.Command{
	Use:   "clear [section]",
	Short: "Restore a section's template text",
	Args:  cobra.ExactArgs(1),
	RunE:  runOverrideClear,
}

var overrideListCmd = &cobra.Command{
	Use:   "list",
	Short: "List edited sections",
	Args:  cobra.NoArgs,
	RunE:  runOverrideList,
}

func init() {
	overrideSetCmd.Flags().StringVarP(&overrideFile, "file", "f", "", "read text from file (- for stdin)")
	overrideCmd.AddCommand(overrideSetCmd)
	overrideCmd.AddCommand(overrideClearCmd)
	overrideCmd.AddCommand(overrideListCmd)
	rootCmd.AddCommand(overrideCmd)
}

func runOverrideSet(cmd *cobra.Command, args []string) error {
	if err := requireDraft(); err != nil {
		return err
	}

	key := args[0]
	text, err := overrideText(cmd, args[1:])
	if err != nil {
		return err
	}

	if err := draftService.SetOverride(key, text); err != nil {
		return err
	}
	if err := persist(cmd); err != nil {
		return err
	}

	if _, ok := draftService.Override(key); ok {
		cmd.Printf("Section %s edited\n", key)
	} else {
		cmd.Printf("Section %s matches its template; edit cleared\n", key)
	}
	return nil
}

func overrideText(cmd *cobra.Command, args []string) (string, error) {
	switch {
	case overrideFile != "" && len(args) > 0:
		return "", fmt.Errorf("give text either as arguments or with --file, not both")
	case overrideFile == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	case overrideFile != "":
		data, err := os.ReadFile(overrideFile)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", overrideFile, err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	case len(args) == 0:
		return "", fmt.Errorf("no text given")
	default:
		return strings.Join(args, " "), nil
	}
}

func runOverrideClear(cmd *cobra.Command, args []string) error {
	if err := requireDraft(); err != nil {
		return err
	}

	if err := draftService.ClearOverride(args[0]); err != nil {
		return err
	}
	if err := persist(cmd); err != nil {
		return err
	}
	cmd.Printf("Section %s restored\n", args[0])
	return nil
}

func runOverrideList(cmd *cobra.Command, _ []string) error {
	if err := requireDraft(); err != nil {
		return err
	}

	found := false
	for _, key := range draftService.Template().Keys() {
		if _, ok := draftService.Override(key); !ok {
			continue
		}
		found = true
		sec, _ := draftService.Template().Section(key)
		cmd.Printf("  %-14s %s\n", key, sec.Title)
	}
	if !found {
		cmd.Println("No edited sections.")
	}
	return nil
}
