package domain

const unknownDescription = "Unknown"

// VariableSource classifies who is expected to supply a variable's value.
// It is descriptive metadata and never affects resolution.
type VariableSource string

// Available variable sources.
const (
	// SourceSystem values come from an automated lookup (e.g. the latest 10-Q).
	SourceSystem VariableSource = "auto"

	// SourceCounsel values are supplied by legal counsel.
	SourceCounsel VariableSource = "counsel"

	// SourceClient values are supplied by the issuer.
	SourceClient VariableSource = "client"

	// SourceUnderwriter values are supplied by the underwriting banks.
	SourceUnderwriter VariableSource = "underwriter"

	// SourceTermSheet values come from the pricing term sheet.
	SourceTermSheet VariableSource = "termsheet"
)

// AllSources returns every source in legend order.
func AllSources() []VariableSource {
	return []VariableSource{SourceSystem, SourceCounsel, SourceClient, SourceUnderwriter, SourceTermSheet}
}

// IsValid returns true if the source is recognised.
func (s VariableSource) IsValid() bool {
	switch s {
	case SourceSystem, SourceCounsel, SourceClient, SourceUnderwriter, SourceTermSheet:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s VariableSource) String() string {
	return string(s)
}

// Label returns the short legend label for the source.
func (s VariableSource) Label() string {
	switch s {
	case SourceSystem:
		return "Auto"
	case SourceCounsel:
		return "Counsel"
	case SourceClient:
		return "Client"
	case SourceUnderwriter:
		return "Banks"
	case SourceTermSheet:
		return "Term Sheet"
	default:
		return unknownDescription
	}
}

// VariableTask says what the drafter has to do with a variable.
type VariableTask string

// Available variable tasks.
const (
	// TaskUpdate means the value is expected to change for the new deal.
	TaskUpdate VariableTask = "update"

	// TaskVerify means the value is usually stable and only needs confirming.
	TaskVerify VariableTask = "verify"
)

// IsValid returns true if the task is recognised.
func (t VariableTask) IsValid() bool {
	return t == TaskUpdate || t == TaskVerify
}

// String returns the string representation.
func (t VariableTask) String() string {
	return string(t)
}

// VariableDefinition is the immutable baseline for one template variable.
type VariableDefinition struct {
	// ID is the unique key referenced from templates as {id}.
	ID string

	// Prior is the value from the last finalized document.
	// It anchors the redline and is the default rendered value.
	Prior string

	// Source says who supplies the value.
	Source VariableSource

	// Task says whether the value should be updated or verified.
	Task VariableTask

	// Hint is optional guidance for the drafter.
	Hint string

	// Suggested is an optional proposed next value.
	Suggested string

	// AutoSource describes where an automated lookup would find the value.
	AutoSource string
}

// HasSuggestion returns true if a suggested value distinct from the prior exists.
func (d VariableDefinition) HasSuggestion() bool {
	return d.Suggested != ""
}

// Default returns the value rendered when the user has not touched the variable.
func (d VariableDefinition) Default() string {
	if d.Suggested != "" {
		return d.Suggested
	}
	return d.Prior
}

// VariableState is a definition paired with its current working value.
type VariableState struct {
	Definition VariableDefinition

	// Value is the resolved value (explicit > suggested > prior).
	Value string

	// Changed is true when the user supplied a value that differs from the prior.
	Changed bool
}
