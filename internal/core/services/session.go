package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/suppdraft/internal/core/domain"
	"github.com/custodia-labs/suppdraft/internal/core/ports/driven"
	"github.com/custodia-labs/suppdraft/internal/core/ports/driving"
)

// Ensure SessionService implements the interface.
var _ driving.SessionService = (*SessionService)(nil)

// SessionService manages saved drafting sessions.
type SessionService struct {
	store driven.SessionStore
}

// NewSessionService creates a new session service.
func NewSessionService(store driven.SessionStore) *SessionService {
	return &SessionService{store: store}
}

// List returns all saved sessions.
func (s *SessionService) List(ctx context.Context) ([]domain.Session, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.List(ctx)
}

// Create saves an empty named session and returns it.
func (s *SessionService) Create(ctx context.Context, name string) (*domain.Session, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	session := domain.Session{
		ID:        uuid.NewString(),
		Name:      name,
		Values:    map[string]string{},
		Overrides: map[string]string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Get retrieves a session by ID.
func (s *SessionService) Get(ctx context.Context, id string) (*domain.Session, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.Get(ctx, id)
}

// Delete removes a saved session.
func (s *SessionService) Delete(ctx context.Context, id string) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}
