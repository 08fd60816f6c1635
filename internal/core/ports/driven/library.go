package driven

import (
	"context"

	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

// LibraryLoader reads the variable catalog, templates and term sheet.
// It is called once at startup; the returned library is read-only.
type LibraryLoader interface {
	Load(ctx context.Context) (*domain.Library, error)
}
