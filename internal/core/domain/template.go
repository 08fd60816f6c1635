package domain

import "fmt"

// Section is one block of prose in a template.
type Section struct {
	// Key is the stable identifier of the section.
	Key string

	// Title is the human-readable heading.
	Title string

	// Text is the body with embedded {variable}, [___] and [Note: ...] markers.
	Text string
}

// Template is an ordered sequence of sections with unique keys.
type Template struct {
	// Name identifies the template set (e.g. "draft" or "final").
	Name string

	sections []Section
	index    map[string]int
}

// NewTemplate builds a template, rejecting empty or duplicate keys.
func NewTemplate(name string, sections []Section) (*Template, error) {
	t := &Template{
		Name:     name,
		sections: make([]Section, 0, len(sections)),
		index:    make(map[string]int, len(sections)),
	}
	for _, sec := range sections {
		if sec.Key == "" {
			return nil, fmt.Errorf("section without key in %s: %w", name, ErrInvalidInput)
		}
		if _, exists := t.index[sec.Key]; exists {
			return nil, fmt.Errorf("%s: %w", sec.Key, ErrDuplicateSection)
		}
		t.index[sec.Key] = len(t.sections)
		t.sections = append(t.sections, sec)
	}
	return t, nil
}

// Sections returns the sections in template order.
func (t *Template) Sections() []Section {
	out := make([]Section, len(t.sections))
	copy(out, t.sections)
	return out
}

// Section returns the section with key.
func (t *Template) Section(key string) (Section, bool) {
	i, ok := t.index[key]
	if !ok {
		return Section{}, false
	}
	return t.sections[i], true
}

// Keys returns the section keys in order.
func (t *Template) Keys() []string {
	keys := make([]string, len(t.sections))
	for i, sec := range t.sections {
		keys[i] = sec.Key
	}
	return keys
}

// Len returns the number of sections.
func (t *Template) Len() int {
	return len(t.sections)
}
