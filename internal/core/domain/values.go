package domain

import (
	"fmt"
	"sort"
)

// ValueStore is the mutable working copy layered over a Catalog.
// Absence of an entry means the variable still renders its default.
//
// A present entry never equals the definition's prior value; SetValue
// enforces this so changed and touched counts need no recomputation.
type ValueStore struct {
	catalog *Catalog
	values  map[string]string
}

// NewValueStore creates an empty store over catalog.
func NewValueStore(catalog *Catalog) *ValueStore {
	return &ValueStore{
		catalog: catalog,
		values:  make(map[string]string),
	}
}

// Catalog returns the catalog backing this store.
func (s *ValueStore) Catalog() *Catalog {
	return s.catalog
}

// ResolvedValue returns what the variable currently says:
// the explicit value, else the suggestion, else the prior.
func (s *ValueStore) ResolvedValue(id string) (string, bool) {
	def, ok := s.catalog.Get(id)
	if !ok {
		return "", false
	}
	if v, ok := s.values[id]; ok {
		return v, true
	}
	return def.Default(), true
}

// SetValue records text for id. Empty text or text equal to the prior
// removes the entry, reverting the variable to its default.
func (s *ValueStore) SetValue(id, text string) error {
	def, ok := s.catalog.Get(id)
	if !ok {
		return fmt.Errorf("%s: %w", id, ErrUnknownVariable)
	}
	if text == "" || text == def.Prior {
		delete(s.values, id)
		return nil
	}
	s.values[id] = text
	return nil
}

// Clear removes any entry for id.
func (s *ValueStore) Clear(id string) {
	delete(s.values, id)
}

// Value returns the explicit entry for id, if any.
func (s *ValueStore) Value(id string) (string, bool) {
	v, ok := s.values[id]
	return v, ok
}

// IsChanged reports whether an entry exists for id.
func (s *ValueStore) IsChanged(id string) bool {
	_, ok := s.values[id]
	return ok
}

// ChangedCount returns the number of variables that differ from their prior.
func (s *ValueStore) ChangedCount() int {
	n := 0
	for id, v := range s.values {
		if def, ok := s.catalog.Get(id); ok && v != def.Prior {
			n++
		}
	}
	return n
}

// TouchedCount returns the number of variables with an entry.
func (s *ValueStore) TouchedCount() int {
	return len(s.values)
}

// ChangedIDs returns the ids with entries, sorted.
func (s *ValueStore) ChangedIDs() []string {
	ids := make([]string, 0, len(s.values))
	for id := range s.values {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Snapshot returns a copy of the explicit entries.
func (s *ValueStore) Snapshot() map[string]string {
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Restore replaces the store's entries with values, applying each through
// SetValue. Ids that are no longer in the catalog are skipped and returned.
func (s *ValueStore) Restore(values map[string]string) []string {
	s.values = make(map[string]string, len(values))
	var skipped []string
	for id, v := range values {
		if err := s.SetValue(id, v); err != nil {
			skipped = append(skipped, id)
		}
	}
	sort.Strings(skipped)
	return skipped
}

// State returns the definition and current state for id.
func (s *ValueStore) State(id string) (VariableState, bool) {
	def, ok := s.catalog.Get(id)
	if !ok {
		return VariableState{}, false
	}
	value, _ := s.ResolvedValue(id)
	return VariableState{
		Definition: def,
		Value:      value,
		Changed:    s.IsChanged(id),
	}, true
}
