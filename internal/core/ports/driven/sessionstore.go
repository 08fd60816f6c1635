package driven

import (
	"context"

	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

// SessionStore persists drafting sessions.
type SessionStore interface {
	// Save stores or updates a session.
	Save(ctx context.Context, session domain.Session) error

	// Get retrieves a session by ID.
	// Returns domain.ErrSessionNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.Session, error)

	// Delete removes a session.
	Delete(ctx context.Context, id string) error

	// List returns all sessions, most recently updated first.
	List(ctx context.Context) ([]domain.Session, error)
}
