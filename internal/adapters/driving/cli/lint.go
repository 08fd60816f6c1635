package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

var (
	lintStrict bool
	lintFinal  bool
	lintJSON   bool
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Check templates for markers that will not resolve",
	Long: `Reports variable references missing from the catalog, unclosed markers
and deal-term blanks still to be filled.

Unknown variables render literally, so they are warnings by default. With
--strict (or lint.strict in settings) they are errors and the command exits
non-zero.`,
	Args: cobra.NoArgs,
	RunE: runLint,
}

func init() {
	lintCmd.Flags().BoolVar(&lintStrict, "strict", false, "treat unknown variables as errors")
	lintCmd.Flags().BoolVar(&lintFinal, "final", false, "lint the final template")
	lintCmd.Flags().BoolVar(&lintJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(lintCmd)
}

var errLintFailed = errors.New("lint found errors")

func runLint(cmd *cobra.Command, _ []string) error {
	if err := requireDraft(); err != nil {
		return err
	}

	svc, tmpl := lintService, draftService.Template()
	if lintFinal {
		if finalLint == nil || finalService == nil || !finalService.Available() {
			return errors.New("no final template loaded")
		}
		svc, tmpl = finalLint, finalTemplate()
	}
	if svc == nil {
		return errors.New("lint service not configured")
	}

	diags := svc.Lint(tmpl)
	if lintStrict {
		for i := range diags {
			if diags[i].Kind == domain.DiagUnknownVariable {
				diags[i].Severity = domain.SeverityError
			}
		}
	}

	if lintJSON {
		if diags == nil {
			diags = []domain.Diagnostic{}
		}
		if err := outputJSON(cmd, diags); err != nil {
			return err
		}
	} else {
		for _, d := range diags {
			cmd.Println(d.String())
		}
		cmd.Println(summary(diags))
	}

	if domain.HasErrors(diags) {
		return errLintFailed
	}
	return nil
}

func summary(diags []domain.Diagnostic) string {
	errs, warns := 0, 0
	for _, d := range diags {
		if d.Severity == domain.SeverityError {
			errs++
		} else {
			warns++
		}
	}
	return fmt.Sprintf("%d error(s), %d warning(s)", errs, warns)
}
