package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/suppdraft/internal/core/domain"
	"github.com/custodia-labs/suppdraft/internal/core/ports/driving"
)

// Ensure LintService implements the interface.
var _ driving.LintService = (*LintService)(nil)

// unclosedVariable matches a '{' that starts an identifier but never
// reaches its closing brace.
var unclosedVariable = regexp.MustCompile(`\{\w+(?:[^\w}]|$)`)

// LintService reports template markers that would not resolve.
type LintService struct {
	catalog *domain.Catalog
	strict  bool
}

// NewLintService creates a lint service. In strict mode unknown
// variable references are errors rather than warnings.
func NewLintService(catalog *domain.Catalog, strict bool) *LintService {
	return &LintService{catalog: catalog, strict: strict}
}

// Lint returns the diagnostics for every section of tmpl in section order.
func (s *LintService) Lint(tmpl *domain.Template) []domain.Diagnostic {
	var diags []domain.Diagnostic
	for _, sec := range tmpl.Sections() {
		diags = append(diags, s.lintSection(sec)...)
	}
	return diags
}

func (s *LintService) lintSection(sec domain.Section) []domain.Diagnostic {
	var diags []domain.Diagnostic
	unknownSeverity := domain.SeverityWarning
	if s.strict {
		unknownSeverity = domain.SeverityError
	}

	for _, tok := range domain.Tokenize(sec.Text) {
		switch tok.Kind {
		case domain.TokenVariable:
			if s.catalog.Has(tok.Name) {
				continue
			}
			diags = append(diags, newDiagnostic(sec, tok.Offset, tok.Raw,
				domain.DiagUnknownVariable, unknownSeverity,
				fmt.Sprintf("unknown variable %q will render literally", tok.Name)))
		case domain.TokenBlank:
			diags = append(diags, newDiagnostic(sec, tok.Offset, tok.Raw,
				domain.DiagBlank, domain.SeverityWarning, "deal term not yet set"))
		case domain.TokenLiteral:
			diags = append(diags, unclosed(sec, tok)...)
		}
	}
	return diags
}

func unclosed(sec domain.Section, tok domain.Token) []domain.Diagnostic {
	var diags []domain.Diagnostic
	if i := strings.Index(tok.Raw, "[Note:"); i >= 0 {
		diags = append(diags, newDiagnostic(sec, tok.Offset+i, "[Note:",
			domain.DiagUnclosedMarker, domain.SeverityError, "note is never closed with ']'"))
	}
	for _, loc := range unclosedVariable.FindAllStringIndex(tok.Raw, -1) {
		ref := strings.TrimRight(tok.Raw[loc[0]:loc[1]], " \t\r\n.,;:")
		diags = append(diags, newDiagnostic(sec, tok.Offset+loc[0], ref,
			domain.DiagUnclosedMarker, domain.SeverityError, "variable reference is never closed with '}'"))
	}
	return diags
}

func newDiagnostic(
	sec domain.Section,
	offset int,
	ref string,
	kind domain.DiagnosticKind,
	severity domain.Severity,
	message string,
) domain.Diagnostic {
	line, col := position(sec.Text, offset)
	return domain.Diagnostic{
		Section:  sec.Key,
		Line:     line,
		Column:   col,
		Kind:     kind,
		Severity: severity,
		Ref:      ref,
		Message:  message,
	}
}

// position converts a byte offset to a 1-based line and column.
func position(text string, offset int) (line, col int) {
	line = 1 + strings.Count(text[:offset], "\n")
	col = offset - strings.LastIndexByte(text[:offset], '\n')
	return line, col
}
