package domain

import "time"

// Session is a saved drafting session: the user's working values and
// block overrides, keyed by a stable id.
type Session struct {
	// ID is the unique identifier for the session.
	ID string

	// Name is a human-readable label (e.g. "May 2025 notes offering").
	Name string

	// Values holds the explicit variable values.
	Values map[string]string

	// Overrides holds block override text by section key.
	Overrides map[string]string

	// CreatedAt is when the session was first saved.
	CreatedAt time.Time

	// UpdatedAt is when the session was last saved.
	UpdatedAt time.Time
}
