package domain

import "fmt"

// Library is everything loaded once at startup: the catalog, the draft
// template, and optionally the final template and term sheet.
type Library struct {
	Catalog *Catalog
	Draft   *Template

	// Final is the template set used once pricing terms are known. May be nil.
	Final *Template

	// TermSheet holds the pricing term sheet values. May be nil.
	TermSheet *TermSheet
}

// TermSheetField is one deal term from the pricing term sheet.
type TermSheetField struct {
	// ID is the variable id the term fills.
	ID string

	// Label is a human-readable name (e.g. "2028 Notes - Coupon").
	Label string

	// Value is the term as printed on the term sheet.
	Value string

	// Section is the key of the section the term mainly feeds.
	Section string
}

// TermSheet is the set of deal terms fixed at pricing.
type TermSheet struct {
	// Title identifies the term sheet (e.g. issuer and trade date).
	Title string

	Fields []TermSheetField
}

// Field returns the field with id.
func (t *TermSheet) Field(id string) (TermSheetField, bool) {
	if t == nil {
		return TermSheetField{}, false
	}
	for _, f := range t.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return TermSheetField{}, false
}

// Apply layers the term sheet over catalog and returns a new catalog.
// A field whose id is already defined becomes that variable's suggestion,
// so explicit user values still win. Other fields are appended as
// term-sheet variables whose prior is the term value.
func (t *TermSheet) Apply(catalog *Catalog) (*Catalog, error) {
	if t == nil {
		return catalog, nil
	}

	defs := catalog.Definitions()
	index := make(map[string]int, len(defs))
	for i, def := range defs {
		index[def.ID] = i
	}

	for _, f := range t.Fields {
		if f.Value == "" {
			return nil, fmt.Errorf("term sheet field %s: %w", f.ID, ErrEmptyPrior)
		}
		if i, ok := index[f.ID]; ok {
			if f.Value != defs[i].Prior {
				defs[i].Suggested = f.Value
			}
			continue
		}
		index[f.ID] = len(defs)
		defs = append(defs, VariableDefinition{
			ID:     f.ID,
			Prior:  f.Value,
			Source: SourceTermSheet,
			Task:   TaskVerify,
			Hint:   f.Label,
		})
	}

	return NewCatalog(defs)
}
