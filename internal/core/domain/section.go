package domain

// RenderedSection is the resolved text of one section.
type RenderedSection struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Text  string `json:"text"`

	// Overridden is true when the text came from a block override.
	Overridden bool `json:"overridden"`
}

// SectionRedline pairs a section's baseline with its live render.
type SectionRedline struct {
	Key   string `json:"key"`
	Title string `json:"title"`

	// Prior is the baseline rendered from prior values only.
	Prior string `json:"prior"`

	// Current is the live render.
	Current string `json:"current"`

	// Changed is false when Prior and Current are identical.
	// Segments is empty in that case.
	Changed bool `json:"changed"`

	Segments []DiffSegment `json:"segments,omitempty"`

	Overridden bool `json:"overridden"`
}

// Progress summarises how far a drafting session has come.
type Progress struct {
	// Total is the number of variables in the catalog.
	Total int `json:"total"`

	// Changed is the number of variables that differ from their prior.
	Changed int `json:"changed"`

	// Touched is the number of variables with an explicit value.
	Touched int `json:"touched"`

	// Overridden is the number of sections with a block override.
	Overridden int `json:"overridden"`
}

// Percent returns the changed share of the catalog, 0-100.
func (p Progress) Percent() int {
	if p.Total == 0 {
		return 0
	}
	return p.Changed * 100 / p.Total
}
