package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/suppdraft/internal/core/domain"
	"github.com/custodia-labs/suppdraft/internal/core/ports/driven"
)

// sessionStore implements driven.SessionStore.
type sessionStore struct {
	store *Store
}

var _ driven.SessionStore = (*sessionStore)(nil)

// Save stores or updates a session, replacing its values and overrides.
func (s *sessionStore) Save(ctx context.Context, session domain.Session) (err error) {
	if session.ID == "" {
		return fmt.Errorf("session without id: %w", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	if session.UpdatedAt.IsZero() {
		session.UpdatedAt = now
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, tx.Rollback())
		}
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO sessions (id, name, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			updated_at = excluded.updated_at
	`, session.ID, session.Name, session.CreatedAt.UTC(), session.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM session_values WHERE session_id = ?", session.ID); err != nil {
		return fmt.Errorf("clearing values: %w", err)
	}
	for id, value := range session.Values {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO session_values (session_id, variable_id, value) VALUES (?, ?, ?)",
			session.ID, id, value)
		if err != nil {
			return fmt.Errorf("saving value %s: %w", id, err)
		}
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM session_overrides WHERE session_id = ?", session.ID); err != nil {
		return fmt.Errorf("clearing overrides: %w", err)
	}
	for key, text := range session.Overrides {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO session_overrides (session_id, section_key, text) VALUES (?, ?, ?)",
			session.ID, key, text)
		if err != nil {
			return fmt.Errorf("saving override %s: %w", key, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing session: %w", err)
	}
	return nil
}

// Get retrieves a session by ID.
func (s *sessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM sessions WHERE id = ?
	`, id)

	session, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}

	if err := s.loadChildren(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Delete removes a session. Values and overrides cascade.
func (s *sessionStore) Delete(ctx context.Context, id string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// List returns all sessions, most recently updated first.
func (s *sessionStore) List(ctx context.Context) ([]domain.Session, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM sessions
		ORDER BY updated_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.Session //nolint:prealloc // size unknown from query
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		sessions = append(sessions, *session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	rows.Close()

	for i := range sessions {
		if err := s.loadChildren(ctx, &sessions[i]); err != nil {
			return nil, err
		}
	}
	return sessions, nil
}

func (s *sessionStore) loadChildren(ctx context.Context, session *domain.Session) error {
	values, err := s.queryMap(ctx,
		"SELECT variable_id, value FROM session_values WHERE session_id = ?", session.ID)
	if err != nil {
		return fmt.Errorf("loading values: %w", err)
	}
	overrides, err := s.queryMap(ctx,
		"SELECT section_key, text FROM session_overrides WHERE session_id = ?", session.ID)
	if err != nil {
		return fmt.Errorf("loading overrides: %w", err)
	}
	session.Values = values
	session.Overrides = overrides
	return nil
}

func (s *sessionStore) queryMap(ctx context.Context, query, id string) (map[string]string, error) {
	rows, err := s.store.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, rows.Err()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*domain.Session, error) {
	var session domain.Session
	var createdAt, updatedAt sql.NullTime
	if err := row.Scan(&session.ID, &session.Name, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if createdAt.Valid {
		session.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		session.UpdatedAt = updatedAt.Time
	}
	return &session, nil
}
