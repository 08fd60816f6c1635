// Package services implements the driving port interfaces.
// Services contain the core drafting logic: resolving templates,
// word-level redlining, and orchestrating calls to driven ports.
//
// Services are pure Go with no CGO dependencies.
package services
