package driving

import (
	"context"

	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

// DraftService is the working drafting session: values, overrides,
// rendering and redlining over the loaded library.
type DraftService interface {
	// Catalog returns the variable catalog.
	Catalog() *domain.Catalog

	// Template returns the draft template.
	Template() *domain.Template

	// ResolvedValue returns the current value of a variable.
	ResolvedValue(id string) (string, error)

	// SetValue records a user value. Empty text or the prior value reverts.
	SetValue(id, text string) error

	// ClearValue reverts a variable to its default.
	ClearValue(id string) error

	// Variable returns a variable's definition and current state.
	Variable(id string) (domain.VariableState, error)

	// Variables returns every variable state in catalog order.
	Variables() []domain.VariableState

	// VariablesBySource groups variable states by who supplies them.
	VariablesBySource() map[domain.VariableSource][]domain.VariableState

	// SetOverride replaces a section's text. Text equal to the section's
	// prior rendering, or empty text, clears the override.
	SetOverride(key, text string) error

	// ClearOverride removes a section's override.
	ClearOverride(key string) error

	// Override returns a section's override text, if any.
	Override(key string) (string, bool)

	// Progress summarises the session.
	Progress() domain.Progress

	// RenderSection renders one section.
	RenderSection(key string) (domain.RenderedSection, error)

	// RenderAll renders every section in order.
	RenderAll() []domain.RenderedSection

	// RedlineSection compares one section against its prior rendering.
	RedlineSection(key string) (domain.SectionRedline, error)

	// RedlineAll compares every section against its prior rendering.
	RedlineAll() []domain.SectionRedline

	// SectionVariables lists the variables a section references.
	SectionVariables(key string) ([]domain.VariableState, error)

	// Save persists the session. A new session gets an ID on first save.
	Save(ctx context.Context) error

	// Load replaces the working state with a saved session.
	Load(ctx context.Context, id string) error

	// SessionID returns the current session ID, empty if never saved.
	SessionID() string
}

// FinalService renders the final template once pricing terms are known.
type FinalService interface {
	// Available reports whether a final template is loaded.
	Available() bool

	// Template returns the final template, nil when none is loaded.
	Template() *domain.Template

	// Catalog returns the catalog with the term sheet applied.
	Catalog() *domain.Catalog

	// TermSheet returns the pricing term sheet, nil when none is loaded.
	TermSheet() *domain.TermSheet

	// RenderFinal renders every final section.
	RenderFinal() ([]domain.RenderedSection, error)

	// RedlineFinal compares each final section against the draft rendering
	// of the same key. Sections new in the final template compare against "".
	RedlineFinal() ([]domain.SectionRedline, error)
}
