package driving

import (
	"context"

	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

// SessionService manages saved drafting sessions.
type SessionService interface {
	// List returns all saved sessions.
	List(ctx context.Context) ([]domain.Session, error)

	// Create saves an empty named session and returns it.
	Create(ctx context.Context, name string) (*domain.Session, error)

	// Get retrieves a session by ID.
	Get(ctx context.Context, id string) (*domain.Session, error)

	// Delete removes a saved session.
	Delete(ctx context.Context, id string) error
}
