package domain

import "fmt"

// Severity grades a lint diagnostic.
type Severity string

// Diagnostic severities.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// DiagnosticKind identifies what a lint diagnostic is about.
type DiagnosticKind string

// Diagnostic kinds.
const (
	// DiagUnknownVariable is a {id} reference with no catalog entry.
	// It would render literally.
	DiagUnknownVariable DiagnosticKind = "unknown_variable"

	// DiagUnclosedMarker is a "[Note:" or "{" that never closes.
	DiagUnclosedMarker DiagnosticKind = "unclosed_marker"

	// DiagBlank is a [___] deal term still waiting for a value.
	DiagBlank DiagnosticKind = "blank"
)

// Diagnostic is one finding in a template section.
type Diagnostic struct {
	// Section is the key of the section containing the issue.
	Section string `json:"section"`

	// Line is the 1-based line within the section text.
	Line int `json:"line"`

	// Column is the 1-based byte column within the line.
	Column int `json:"column"`

	Kind     DiagnosticKind `json:"kind"`
	Severity Severity       `json:"severity"`

	// Ref is the offending marker text.
	Ref string `json:"ref"`

	Message string `json:"message"`
}

// String formats the diagnostic as section:line:col: severity: message.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", d.Section, d.Line, d.Column, d.Severity, d.Message)
}

// HasErrors returns true if any diagnostic is an error.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
