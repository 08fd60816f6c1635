package domain

import "fmt"

// Catalog is the read-only registry of variable definitions.
// It is built once at startup and never mutated afterwards.
type Catalog struct {
	defs  map[string]VariableDefinition
	order []string
}

// NewCatalog builds a catalog from definitions, preserving their order.
// Ids must be unique and every definition needs a non-empty prior value.
func NewCatalog(defs []VariableDefinition) (*Catalog, error) {
	c := &Catalog{
		defs:  make(map[string]VariableDefinition, len(defs)),
		order: make([]string, 0, len(defs)),
	}
	for _, def := range defs {
		if def.ID == "" {
			return nil, fmt.Errorf("variable without id: %w", ErrInvalidInput)
		}
		if _, exists := c.defs[def.ID]; exists {
			return nil, fmt.Errorf("%s: %w", def.ID, ErrDuplicateVariable)
		}
		if def.Prior == "" {
			return nil, fmt.Errorf("%s: %w", def.ID, ErrEmptyPrior)
		}
		c.defs[def.ID] = def
		c.order = append(c.order, def.ID)
	}
	return c, nil
}

// Get returns the definition for id.
func (c *Catalog) Get(id string) (VariableDefinition, bool) {
	def, ok := c.defs[id]
	return def, ok
}

// Has returns true if id is defined.
func (c *Catalog) Has(id string) bool {
	_, ok := c.defs[id]
	return ok
}

// IDs returns all variable ids in catalog order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Definitions returns all definitions in catalog order.
func (c *Catalog) Definitions() []VariableDefinition {
	out := make([]VariableDefinition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.defs[id])
	}
	return out
}
