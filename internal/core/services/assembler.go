package services

import (
	"fmt"

	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

// Assembler renders and redlines whole templates.
type Assembler struct {
	resolver *Resolver
}

// NewAssembler creates an assembler using resolver.
func NewAssembler(resolver *Resolver) *Assembler {
	return &Assembler{resolver: resolver}
}

// Resolver returns the resolver used by the assembler.
func (a *Assembler) Resolver() *Resolver {
	return a.resolver
}

// RenderSection renders a single section.
func (a *Assembler) RenderSection(
	tmpl *domain.Template,
	key string,
	values *domain.ValueStore,
	overrides *domain.OverrideStore,
) (domain.RenderedSection, error) {
	sec, ok := tmpl.Section(key)
	if !ok {
		return domain.RenderedSection{}, fmt.Errorf("%s: %w", key, domain.ErrSectionNotFound)
	}
	return a.render(sec, values, overrides), nil
}

// RenderAll renders every section in template order.
func (a *Assembler) RenderAll(
	tmpl *domain.Template,
	values *domain.ValueStore,
	overrides *domain.OverrideStore,
) []domain.RenderedSection {
	sections := tmpl.Sections()
	out := make([]domain.RenderedSection, 0, len(sections))
	for _, sec := range sections {
		out = append(out, a.render(sec, values, overrides))
	}
	return out
}

// RedlineSection compares a single section against its prior rendering.
func (a *Assembler) RedlineSection(
	tmpl *domain.Template,
	key string,
	values *domain.ValueStore,
	overrides *domain.OverrideStore,
) (domain.SectionRedline, error) {
	sec, ok := tmpl.Section(key)
	if !ok {
		return domain.SectionRedline{}, fmt.Errorf("%s: %w", key, domain.ErrSectionNotFound)
	}
	return a.redline(sec, values, overrides), nil
}

// RedlineAll compares every section against its prior rendering.
// Sections whose prior and current text are identical are reported
// unchanged with no segments.
func (a *Assembler) RedlineAll(
	tmpl *domain.Template,
	values *domain.ValueStore,
	overrides *domain.OverrideStore,
) []domain.SectionRedline {
	sections := tmpl.Sections()
	out := make([]domain.SectionRedline, 0, len(sections))
	for _, sec := range sections {
		out = append(out, a.redline(sec, values, overrides))
	}
	return out
}

// SectionVariables returns the catalog ids a section references, in
// order of first appearance. Unknown ids are omitted.
func (a *Assembler) SectionVariables(tmpl *domain.Template, key string) ([]string, error) {
	sec, ok := tmpl.Section(key)
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, domain.ErrSectionNotFound)
	}
	refs := domain.VariableRefs(sec.Text)
	ids := refs[:0]
	for _, id := range refs {
		if a.resolver.catalog.Has(id) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (a *Assembler) render(
	sec domain.Section,
	values *domain.ValueStore,
	overrides *domain.OverrideStore,
) domain.RenderedSection {
	override := overrides.Lookup(sec.Key)
	return domain.RenderedSection{
		Key:        sec.Key,
		Title:      sec.Title,
		Text:       a.resolver.Render(sec.Text, values, override),
		Overridden: override != nil,
	}
}

func (a *Assembler) redline(
	sec domain.Section,
	values *domain.ValueStore,
	overrides *domain.OverrideStore,
) domain.SectionRedline {
	rendered := a.render(sec, values, overrides)
	prior := a.resolver.RenderPrior(sec.Text)

	rl := domain.SectionRedline{
		Key:        sec.Key,
		Title:      sec.Title,
		Prior:      prior,
		Current:    rendered.Text,
		Overridden: rendered.Overridden,
	}
	if prior == rendered.Text {
		return rl
	}
	rl.Changed = true
	rl.Segments = Diff(prior, rendered.Text)
	return rl
}
