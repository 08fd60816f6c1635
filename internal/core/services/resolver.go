package services

import (
	"strings"

	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

// Resolver substitutes variable references in section text.
// Blanks and notes pass through untouched; unknown ids stay literal.
type Resolver struct {
	catalog *domain.Catalog
}

// NewResolver creates a resolver over catalog.
func NewResolver(catalog *domain.Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Render resolves text against values. A non-nil override is returned
// verbatim and skips resolution entirely.
func (r *Resolver) Render(text string, values *domain.ValueStore, override *string) string {
	if override != nil {
		return *override
	}
	return r.substitute(text, func(id string) (string, bool) {
		if values == nil {
			return r.defaultValue(id)
		}
		return values.ResolvedValue(id)
	})
}

// RenderPrior resolves text using prior values only. This is the redline baseline.
func (r *Resolver) RenderPrior(text string) string {
	return r.substitute(text, func(id string) (string, bool) {
		def, ok := r.catalog.Get(id)
		return def.Prior, ok
	})
}

// RenderClean is Render with [Note: ...] annotations removed.
func (r *Resolver) RenderClean(text string, values *domain.ValueStore, override *string) string {
	return domain.StripNotes(r.Render(text, values, override))
}

func (r *Resolver) defaultValue(id string) (string, bool) {
	def, ok := r.catalog.Get(id)
	return def.Default(), ok
}

func (r *Resolver) substitute(text string, lookup func(id string) (string, bool)) string {
	tokens := domain.Tokenize(text)
	var b strings.Builder
	b.Grow(len(text))
	for _, tok := range tokens {
		if tok.Kind != domain.TokenVariable {
			b.WriteString(tok.Raw)
			continue
		}
		if v, ok := lookup(tok.Name); ok {
			b.WriteString(v)
		} else {
			b.WriteString(tok.Raw)
		}
	}
	return b.String()
}
