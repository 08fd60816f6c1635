// Package tui provides an interactive terminal user interface for suppdraft.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/suppdraft/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Draft is the working drafting session.
	Draft driving.DraftService

	// Final renders the final template. Optional.
	Final driving.FinalService

	// Settings manages application settings. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(draft driving.DraftService, final driving.FinalService) *Ports {
	return &Ports{
		Draft: draft,
		Final: final,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Draft == nil {
		return ErrMissingDraftService
	}
	return nil
}
