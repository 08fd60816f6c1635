package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{
		Section:  "ranking",
		Line:     2,
		Column:   8,
		Kind:     DiagUnknownVariable,
		Severity: SeverityWarning,
		Message:  `unknown variable "x" will render literally`,
	}

	assert.Equal(t, `ranking:2:8: warning: unknown variable "x" will render literally`, d.String())
}

func TestHasErrors(t *testing.T) {
	assert.False(t, HasErrors(nil))
	assert.False(t, HasErrors([]Diagnostic{{Severity: SeverityWarning}}))
	assert.True(t, HasErrors([]Diagnostic{{Severity: SeverityWarning}, {Severity: SeverityError}}))
}
