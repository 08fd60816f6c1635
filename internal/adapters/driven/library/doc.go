// Package library loads the variable catalog, section templates and pricing
// term sheet from YAML.
//
// A built-in library is embedded in the binary and used when no path is
// configured. It can be written to disk with Export as a starting point for
// a deal-specific library.
package library
