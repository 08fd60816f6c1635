package driving

import "github.com/custodia-labs/suppdraft/internal/core/domain"

// LintService checks templates for references that would render literally.
type LintService interface {
	// Lint returns the diagnostics for every section of tmpl.
	Lint(tmpl *domain.Template) []domain.Diagnostic
}
