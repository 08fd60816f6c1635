package mcp

import (
	"github.com/custodia-labs/suppdraft/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Draft owns the working drafting session.
	Draft driving.DraftService

	// Final renders the post-pricing document. Optional.
	Final driving.FinalService

	// Lint checks the draft template. Optional.
	Lint driving.LintService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Draft == nil {
		return ErrMissingDraftService
	}
	return nil
}
