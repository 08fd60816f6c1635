package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "suppdraft-test-*")
	require.NoError(t, err)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		assert.NoError(t, store.Close())
		assert.NoError(t, os.RemoveAll(tempDir))
	}

	return store, cleanup
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	assert.Equal(t, dbFileName, filepath.Base(store.Path()))
	_, err := os.Stat(store.Path())
	assert.NoError(t, err)

	version, err := store.SchemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestNewStore_ReopenSkipsAppliedMigrations(t *testing.T) {
	tempDir := t.TempDir()

	first, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NoError(t, first.SessionStore().Save(context.Background(), domain.Session{ID: "sess-1"}))
	require.NoError(t, first.Close())

	second, err := NewStore(tempDir)
	require.NoError(t, err)
	defer second.Close()

	_, err = second.SessionStore().Get(context.Background(), "sess-1")
	assert.NoError(t, err)
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	sessions := store.SessionStore()

	created := time.Date(2025, 5, 12, 9, 0, 0, 0, time.UTC)
	session := domain.Session{
		ID:        "sess-1",
		Name:      "May 2025 notes",
		Values:    map[string]string{"asof": "June 29, 2025", "sr_notes": "$16,000.0 million"},
		Overrides: map[string]string{"cover": "Hand-edited cover."},
		CreatedAt: created,
		UpdatedAt: created.Add(time.Hour),
	}
	require.NoError(t, sessions.Save(ctx, session))

	got, err := sessions.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "May 2025 notes", got.Name)
	assert.Equal(t, session.Values, got.Values)
	assert.Equal(t, session.Overrides, got.Overrides)
	assert.True(t, created.Equal(got.CreatedAt))
	assert.True(t, created.Add(time.Hour).Equal(got.UpdatedAt))
}

func TestSessionStore_Save_ReplacesChildren(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	sessions := store.SessionStore()

	require.NoError(t, sessions.Save(ctx, domain.Session{
		ID:        "sess-1",
		Values:    map[string]string{"asof": "June 29, 2025", "sr_notes": "x"},
		Overrides: map[string]string{"cover": "a"},
	}))
	require.NoError(t, sessions.Save(ctx, domain.Session{
		ID:     "sess-1",
		Name:   "renamed",
		Values: map[string]string{"asof": "July 1, 2025"},
	}))

	got, err := sessions.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)
	assert.Equal(t, map[string]string{"asof": "July 1, 2025"}, got.Values)
	assert.Empty(t, got.Overrides)
}

func TestSessionStore_Save_RequiresID(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.SessionStore().Save(context.Background(), domain.Session{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSessionStore_Get_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.SessionStore().Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionStore_Delete_Cascades(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	sessions := store.SessionStore()

	require.NoError(t, sessions.Save(ctx, domain.Session{
		ID:        "sess-1",
		Values:    map[string]string{"asof": "June 29, 2025"},
		Overrides: map[string]string{"cover": "a"},
	}))
	require.NoError(t, sessions.Delete(ctx, "sess-1"))

	_, err := sessions.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	var orphans int
	require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM session_values").Scan(&orphans))
	assert.Zero(t, orphans)
	require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM session_overrides").Scan(&orphans))
	assert.Zero(t, orphans)
}

func TestSessionStore_List_MostRecentFirst(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	sessions := store.SessionStore()

	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, sessions.Save(ctx, domain.Session{ID: "old", CreatedAt: base, UpdatedAt: base}))
	require.NoError(t, sessions.Save(ctx, domain.Session{
		ID:        "new",
		CreatedAt: base,
		UpdatedAt: base.Add(24 * time.Hour),
		Values:    map[string]string{"asof": "June 29, 2025"},
	}))

	list, err := sessions.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0].ID)
	assert.Equal(t, "June 29, 2025", list[0].Values["asof"])
	assert.Equal(t, "old", list[1].ID)
	assert.Empty(t, list[1].Values)
}

func TestSessionStore_List_Empty(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	list, err := store.SessionStore().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}
