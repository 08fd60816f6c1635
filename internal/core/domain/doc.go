// Package domain defines the core business entities for suppdraft.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - VariableDefinition: An immutable baseline for one placeholder
//   - Catalog: The read-only registry of variable definitions
//   - ValueStore: The sparse working copy of user-supplied values
//   - Template: An ordered set of prose sections with embedded markers
//   - OverrideStore: Whole-section replacement text
//   - DiffSegment: One span of a word-level redline
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
