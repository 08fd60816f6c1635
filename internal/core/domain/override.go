package domain

import "sort"

// OverrideStore maps section keys to literal replacement text.
// A present entry supersedes template resolution for that section.
type OverrideStore struct {
	overrides map[string]string
}

// NewOverrideStore creates an empty override store.
func NewOverrideStore() *OverrideStore {
	return &OverrideStore{
		overrides: make(map[string]string),
	}
}

// Set records text as the override for key. Empty text clears it.
func (s *OverrideStore) Set(key, text string) {
	if text == "" {
		delete(s.overrides, key)
		return
	}
	s.overrides[key] = text
}

// Get returns the override for key, if any.
func (s *OverrideStore) Get(key string) (string, bool) {
	text, ok := s.overrides[key]
	return text, ok
}

// Lookup returns a pointer to the override text for key, or nil.
// It matches the optional override parameter of the resolver.
func (s *OverrideStore) Lookup(key string) *string {
	if s == nil {
		return nil
	}
	text, ok := s.overrides[key]
	if !ok {
		return nil
	}
	return &text
}

// Clear removes the override for key.
func (s *OverrideStore) Clear(key string) {
	delete(s.overrides, key)
}

// Keys returns the overridden section keys, sorted.
func (s *OverrideStore) Keys() []string {
	keys := make([]string, 0, len(s.overrides))
	for k := range s.overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of overridden sections.
func (s *OverrideStore) Len() int {
	return len(s.overrides)
}

// Snapshot returns a copy of all overrides.
func (s *OverrideStore) Snapshot() map[string]string {
	out := make(map[string]string, len(s.overrides))
	for k, v := range s.overrides {
		out[k] = v
	}
	return out
}

// Restore replaces all overrides with the given map.
func (s *OverrideStore) Restore(overrides map[string]string) {
	s.overrides = make(map[string]string, len(overrides))
	for k, v := range overrides {
		s.Set(k, v)
	}
}
