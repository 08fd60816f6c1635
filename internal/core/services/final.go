package services

import (
	"fmt"

	"github.com/custodia-labs/suppdraft/internal/core/domain"
	"github.com/custodia-labs/suppdraft/internal/core/ports/driving"
	"github.com/custodia-labs/suppdraft/internal/logger"
)

// Ensure FinalService implements the interface.
var _ driving.FinalService = (*FinalService)(nil)

// FinalService renders the final template with the term sheet layered
// under the draft's user values. Precedence for the final pass is
// explicit value > term sheet > suggestion > prior.
type FinalService struct {
	draft     *DraftService
	final     *domain.Template
	catalog   *domain.Catalog
	assembler *Assembler
}

// NewFinalService creates a final-pass service sharing draft's working state.
func NewFinalService(draft *DraftService) (*FinalService, error) {
	lib := draft.Library()
	catalog, err := lib.TermSheet.Apply(lib.Catalog)
	if err != nil {
		return nil, fmt.Errorf("apply term sheet: %w", err)
	}
	return &FinalService{
		draft:     draft,
		final:     lib.Final,
		catalog:   catalog,
		assembler: NewAssembler(NewResolver(catalog)),
	}, nil
}

// Available reports whether a final template is loaded.
func (s *FinalService) Available() bool {
	return s.final != nil
}

// Template returns the final template, nil when none is loaded.
func (s *FinalService) Template() *domain.Template {
	return s.final
}

// TermSheet returns the pricing term sheet, nil when none is loaded.
func (s *FinalService) TermSheet() *domain.TermSheet {
	return s.draft.Library().TermSheet
}

// Catalog returns the catalog with term sheet values applied.
func (s *FinalService) Catalog() *domain.Catalog {
	return s.catalog
}

// RenderFinal renders every final section.
func (s *FinalService) RenderFinal() ([]domain.RenderedSection, error) {
	if s.final == nil {
		return nil, fmt.Errorf("final template: %w", domain.ErrNotFound)
	}
	values, overrides := s.stores()
	return s.assembler.RenderAll(s.final, values, overrides), nil
}

// RedlineFinal compares each final section with the draft rendering of
// the same key. A section only present in the final template compares
// against empty text.
func (s *FinalService) RedlineFinal() ([]domain.SectionRedline, error) {
	if s.final == nil {
		return nil, fmt.Errorf("final template: %w", domain.ErrNotFound)
	}
	logger.Section("Final Redline")

	values, overrides := s.stores()
	finals := s.assembler.RenderAll(s.final, values, overrides)

	out := make([]domain.SectionRedline, 0, len(finals))
	for _, fin := range finals {
		var draftText string
		if rendered, err := s.draft.RenderSection(fin.Key); err == nil {
			draftText = rendered.Text
		} else {
			logger.Debug("Section %s is new in the final template", fin.Key)
		}

		rl := domain.SectionRedline{
			Key:        fin.Key,
			Title:      fin.Title,
			Prior:      draftText,
			Current:    fin.Text,
			Overridden: fin.Overridden,
		}
		if draftText != fin.Text {
			rl.Changed = true
			rl.Segments = Diff(draftText, fin.Text)
		}
		out = append(out, rl)
	}
	return out, nil
}

func (s *FinalService) stores() (*domain.ValueStore, *domain.OverrideStore) {
	vals, ovr := s.draft.Snapshot()
	values := domain.NewValueStore(s.catalog)
	values.Restore(vals)
	overrides := domain.NewOverrideStore()
	overrides.Restore(ovr)
	return values, overrides
}
