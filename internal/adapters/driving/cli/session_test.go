package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

func TestSessionList_Empty(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := run(t, "session", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No saved sessions.")
}

func TestSessionNew_AndList(t *testing.T) {
	env, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := run(t, "session", "new", "May", "2025", "notes", "--use")
	require.NoError(t, err)
	assert.Contains(t, out, "(May 2025 notes)")

	id := env.config.GetString("session.default")
	require.NotEmpty(t, id)
	assert.Contains(t, out, "Default session is now "+id)

	resetFlags()
	out, err = run(t, "session", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "* "+id)
	assert.Contains(t, out, "May 2025 notes")
}

func TestSessionUse_Unknown(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	_, err := run(t, "session", "use", "missing")

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionDelete_ClearsDefault(t *testing.T) {
	env, cleanup := setupTestServices(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, env.draft.SetValue("asof", "June 29, 2025"))
	require.NoError(t, env.draft.Save(ctx))
	id := env.draft.SessionID()
	require.NoError(t, env.config.Set("session.default", id))

	out, err := run(t, "session", "delete", id)

	require.NoError(t, err)
	assert.Contains(t, out, "Deleted session "+id)
	assert.Empty(t, env.config.GetString("session.default"))
	_, err = env.sessions.Get(ctx, id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
