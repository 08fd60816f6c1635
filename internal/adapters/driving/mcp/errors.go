// Package mcp provides an MCP (Model Context Protocol) server adapter for suppdraft.
// It lets AI assistants read the draft supplement, set values and review redlines.
package mcp

import "errors"

// ErrMissingDraftService is returned when the draft service is not provided.
var ErrMissingDraftService = errors.New("mcp: draft service is required")

// ErrFinalUnavailable is returned by the final tool when no term sheet is loaded.
var ErrFinalUnavailable = errors.New("mcp: final document needs a term sheet")
