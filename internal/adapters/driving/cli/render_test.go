package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

func TestRenderCmd_Use(t *testing.T) {
	assert.Equal(t, "render [section]", renderCmd.Use)
}

func TestRenderCmd_All(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := run(t, "render")

	require.NoError(t, err)
	assert.Contains(t, out, "## Ranking\nAs of March 30, 2025, we had $15,700.0 million outstanding.")
	assert.Contains(t, out, "## Cover\nPrior supplement. [Note: confirm date]")
}

func TestRenderCmd_Section(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := run(t, "render", "cover")

	require.NoError(t, err)
	assert.NotContains(t, out, "Ranking")
	assert.Contains(t, out, "Prior supplement.")
}

func TestRenderCmd_UnknownSection(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	_, err := run(t, "render", "missing")

	assert.ErrorIs(t, err, domain.ErrSectionNotFound)
}

func TestRenderCmd_HidesNotes(t *testing.T) {
	env, cleanup := setupTestServices(t)
	defer cleanup()
	require.NoError(t, env.config.Set("render.notes", false))

	out, err := run(t, "render", "cover")

	require.NoError(t, err)
	assert.Contains(t, out, "Prior supplement.\n")
	assert.NotContains(t, out, "[Note:")
}

func TestRenderCmd_JSON(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := run(t, "render", "--json")
	require.NoError(t, err)

	var sections []domain.RenderedSection
	require.NoError(t, json.Unmarshal([]byte(out), &sections))
	require.Len(t, sections, 2)
	assert.Equal(t, "ranking", sections[0].Key)
}

func TestRenderCmd_NotConfigured(t *testing.T) {
	SetServices(nil)
	defer resetFlags()

	_, err := run(t, "render")

	assert.ErrorIs(t, err, errDraftNotConfigured)
}

func TestRootCmd_InvalidColor(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	_, err := run(t, "--color", "sometimes", "render")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --color")
}
